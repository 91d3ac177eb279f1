package cache

import (
	"sync"
	"time"
)

/*
janitor periodically purges expired entries so they do not sit in
memory waiting for a read to discover them.

The janitor is an ordinary caller, not a privileged owner: each sweep
acquires the cache lock like any other operation. Reads stay correct
without it because Get purges lazily; the janitor only bounds how long
expired values occupy memory.
*/
type janitor struct {
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func startJanitor(c *TaggedLRUCache, interval time.Duration) *janitor {
	j := &janitor{stop: make(chan struct{})}

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-t.C:
				c.Sweep()
			case <-j.stop:
				return
			}
		}
	}()

	return j
}

// stopOnce shuts the janitor down and waits for the goroutine to exit.
// Safe to call more than once.
func (j *janitor) stopOnce() {
	j.once.Do(func() { close(j.stop) })
	j.wg.Wait()
}
