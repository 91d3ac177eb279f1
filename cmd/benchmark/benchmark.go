package main

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/krisalay/tagged-lru-cache"
)

// Load generator comparing a single-lock cache with a sharded one
// under concurrent readers and writers.

const (
	shards      = 8
	capacity    = 200000
	maxMemory   = 256 << 20
	preloadKeys = 100000
	goroutines  = 200
	opsPerG     = 5000
)

func main() {
	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("-------------------------------------------------------")

	single := cache.New(cache.Config{
		MaxEntries:     capacity,
		MaxMemoryBytes: maxMemory,
	})
	run("single lock", single)

	sharded := cache.NewSharded(shards, cache.Config{
		MaxEntries:     capacity,
		MaxMemoryBytes: maxMemory,
	})
	fmt.Println("Shards       :", shards)
	run("sharded", sharded)
}

func run(name string, c cache.Store) {
	fmt.Printf("[%s] preloading...\n", name)
	for i := 0; i < preloadKeys; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
	}

	fmt.Printf("[%s] running...\n", name)
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				key := fmt.Sprintf("key-%d", (id*opsPerG+j)%preloadKeys)
				if j%10 == 0 {
					c.Put(key, j)
				} else {
					c.Get(key)
				}
			}
		}(g)
	}
	wg.Wait()

	elapsed := time.Since(start)
	totalOps := goroutines * opsPerG
	fmt.Printf("[%s] %d ops in %v (%.0f ops/sec)\n\n",
		name, totalOps, elapsed, float64(totalOps)/elapsed.Seconds())
}
