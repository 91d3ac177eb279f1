package main

import (
	"context"
	"fmt"
	"time"

	cache "github.com/krisalay/tagged-lru-cache"
	"github.com/krisalay/tagged-lru-cache/metrics"
	"github.com/krisalay/tagged-lru-cache/types"
)

// This demo is the composition root: it builds one cache explicitly
// and threads it through. No globals, no implicit state.

func main() {
	counters := metrics.NewCounters()

	c := cache.New(cache.Config{
		MaxEntries:     4,
		MaxMemoryBytes: 1 << 20,
		SweepInterval:  50 * time.Millisecond,
		Metrics:        counters,
	})
	defer c.Close()

	fmt.Println("================ TAGGED CACHE DEMO =================")

	// ---------------- Basic put/get ----------------
	c.Put("greeting", "hello world")
	if v, ok := c.Get("greeting"); ok {
		fmt.Println("GET greeting →", v)
	}

	// ---------------- Tagged entries ----------------
	c.Put("user:1:name", "alice", "user:1")
	c.Put("user:1:plan", "pro", "user:1")
	c.Put("user:2:name", "bob", "user:2")

	removed := c.ClearByTags("user:1")
	fmt.Println("CLEAR user:1 → removed", removed, "entries")

	if _, ok := c.Get("user:1:name"); !ok {
		fmt.Println("GET user:1:name → miss (invalidated)")
	}
	if v, ok := c.Get("user:2:name"); ok {
		fmt.Println("GET user:2:name →", v)
	}

	// ---------------- TTL ----------------
	c.PutWithTTL("session:42", "token", 80*time.Millisecond)
	fmt.Println("TTL session:42 →", c.TTL("session:42"))
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get("session:42"); !ok {
		fmt.Println("GET session:42 → miss (expired, swept by janitor)")
	}

	// ---------------- Eviction ----------------
	for i := 0; i < 8; i++ {
		c.Put(fmt.Sprintf("bulk:%d", i), i)
	}
	fmt.Println("LEN after 8 puts into cap-4 cache →", c.Len())

	// ---------------- Read-through ----------------
	loader := types.LoadFunc(func(ctx context.Context, key string) (any, error) {
		fmt.Println("LOADER → computing", key)
		return "value-for-" + key, nil
	})
	rt := cache.NewReadThrough(c, loader, time.Minute, "loaded")

	ctx := context.Background()
	v1, _ := rt.Get(ctx, "expensive")
	v2, _ := rt.Get(ctx, "expensive") // served from cache, loader silent
	fmt.Println("READTHROUGH →", v1, "/", v2)

	// ---------------- Stats ----------------
	s := c.Stats()
	fmt.Printf("STATS → size=%d mem=%dB hits=%d misses=%d hit_rate=%.2f\n",
		s.Size, s.MemoryUsage, s.Hits, s.Misses, s.HitRate)
	fmt.Printf("        evictions=%d memory_evictions=%d ttl_evictions=%d\n",
		s.Evictions, s.MemoryEvictions, s.TTLEvictions)

	snap := counters.Snapshot()
	fmt.Printf("OBSERVER → hits=%d misses=%d ttl_evictions=%d\n",
		snap.Hits, snap.Misses, snap.TTLEvictions)
}
