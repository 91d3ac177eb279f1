// This file implements LFU eviction.

package eviction

/*
lfu groups keys into buckets by read count and remembers the smallest
count currently present, so eviction normally never scans all keys.

When several keys share the lowest count, the victim among them is
arbitrary (map iteration order).
*/
type lfu struct {
	freq    map[string]int              // key -> read count
	buckets map[int]map[string]struct{} // read count -> keys
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		freq:    make(map[string]int),
		buckets: make(map[int]map[string]struct{}),
	}
}

// OnGet moves the key one bucket up.
func (l *lfu) OnGet(key string) {
	n, ok := l.freq[key]
	if !ok {
		return
	}
	l.unbucket(key, n)
	l.freq[key] = n + 1
	l.bucket(key, n+1)
	l.fixMin()
}

// OnPut starts tracking a new key with a read count of 1.
func (l *lfu) OnPut(key string) {
	if _, ok := l.freq[key]; ok {
		return
	}
	l.freq[key] = 1
	l.bucket(key, 1)
	l.minFreq = 1
}

// Evict removes and returns some key from the lowest-count bucket.
// As long as Len() > 0 this always finds a victim.
func (l *lfu) Evict() (string, bool) {
	for key := range l.buckets[l.minFreq] {
		l.unbucket(key, l.minFreq)
		delete(l.freq, key)
		l.fixMin()
		return key, true
	}
	return "", false
}

func (l *lfu) Remove(key string) {
	n, ok := l.freq[key]
	if !ok {
		return
	}
	l.unbucket(key, n)
	delete(l.freq, key)
	l.fixMin()
}

func (l *lfu) Len() int {
	return len(l.freq)
}

func (l *lfu) bucket(key string, n int) {
	b, ok := l.buckets[n]
	if !ok {
		b = make(map[string]struct{})
		l.buckets[n] = b
	}
	b[key] = struct{}{}
}

func (l *lfu) unbucket(key string, n int) {
	b, ok := l.buckets[n]
	if !ok {
		return
	}
	delete(b, key)
	if len(b) == 0 {
		delete(l.buckets, n)
	}
}

// fixMin re-anchors minFreq after the minimum bucket may have emptied.
// The scan is over distinct counts, not keys, so it stays cheap.
func (l *lfu) fixMin() {
	if _, ok := l.buckets[l.minFreq]; ok {
		return
	}
	l.minFreq = 0
	for n := range l.buckets {
		if l.minFreq == 0 || n < l.minFreq {
			l.minFreq = n
		}
	}
}
