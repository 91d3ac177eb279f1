package cache

import (
	"hash/fnv"
	"time"

	"github.com/krisalay/tagged-lru-cache/types"
)

/*
ShardedCache splits the key space across independent TaggedLRUCache
instances so unrelated keys never contend on the same lock.

Each shard keeps the full single-lock contract of TaggedLRUCache; the
wrapper owns no mutable state of its own, so it needs no lock. The
configured bounds are budgets for the WHOLE sharded cache and are
divided evenly across shards, which makes the memory bound slightly
stricter per shard than a single cache with the same budget.

Tag invalidation and Stats fan out to every shard, so they are atomic
per shard but not across shards. Callers that need a strictly atomic
ClearByTags should use a single TaggedLRUCache.
*/
type ShardedCache struct {
	shards []*TaggedLRUCache
}

// NewSharded creates a cache of n shards sharing cfg's budgets.
// n < 1 is treated as 1.
func NewSharded(n int, cfg Config) *ShardedCache {
	if n < 1 {
		n = 1
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.MaxMemoryBytes <= 0 {
		cfg.MaxMemoryBytes = DefaultMaxMemoryBytes
	}

	// Split the budgets, rounding up so n never zeroes a bound.
	per := cfg
	per.MaxEntries = (cfg.MaxEntries + n - 1) / n
	per.MaxMemoryBytes = (cfg.MaxMemoryBytes + int64(n) - 1) / int64(n)

	s := make([]*TaggedLRUCache, n)
	for i := range s {
		s[i] = New(per)
	}
	return &ShardedCache{shards: s}
}

// shardFor picks the shard that owns a key. FNV-1a is cheap and
// spreads typical key shapes well enough.
func (c *ShardedCache) shardFor(key string) *TaggedLRUCache {
	h := fnv.New32a()
	h.Write([]byte(key))
	return c.shards[int(h.Sum32())%len(c.shards)]
}

func (c *ShardedCache) Get(key string) (any, bool) {
	return c.shardFor(key).Get(key)
}

func (c *ShardedCache) Put(key string, value any, tags ...string) {
	c.shardFor(key).Put(key, value, tags...)
}

func (c *ShardedCache) PutWithTTL(key string, value any, ttl time.Duration, tags ...string) {
	c.shardFor(key).PutWithTTL(key, value, ttl, tags...)
}

func (c *ShardedCache) Remove(key string) bool {
	return c.shardFor(key).Remove(key)
}

// ClearByTags invalidates the tags on every shard and returns the
// total number of entries removed.
func (c *ShardedCache) ClearByTags(tags ...string) int {
	n := 0
	for _, sh := range c.shards {
		n += sh.ClearByTags(tags...)
	}
	return n
}

func (c *ShardedCache) Expire(key string, ttl time.Duration) bool {
	return c.shardFor(key).Expire(key, ttl)
}

func (c *ShardedCache) TTL(key string) time.Duration {
	return c.shardFor(key).TTL(key)
}

func (c *ShardedCache) Len() int {
	n := 0
	for _, sh := range c.shards {
		n += sh.Len()
	}
	return n
}

// Stats aggregates the shards' snapshots. The hit rate is recomputed
// from the summed hit and miss counts.
func (c *ShardedCache) Stats() types.Stats {
	var total types.Stats
	for _, sh := range c.shards {
		s := sh.Stats()
		total.Size += s.Size
		total.MaxSize += s.MaxSize
		total.MemoryUsage += s.MemoryUsage
		total.MaxMemory += s.MaxMemory
		total.Hits += s.Hits
		total.Misses += s.Misses
		total.Evictions += s.Evictions
		total.MemoryEvictions += s.MemoryEvictions
		total.TTLEvictions += s.TTLEvictions
		total.Rejections += s.Rejections
	}
	if n := total.Hits + total.Misses; n > 0 {
		total.HitRate = float64(total.Hits) / float64(n)
	}
	return total
}

func (c *ShardedCache) Close() {
	for _, sh := range c.shards {
		sh.Close()
	}
}
