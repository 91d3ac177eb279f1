package cache

import (
	"sync"
	"time"

	"github.com/krisalay/tagged-lru-cache/eviction"
	"github.com/krisalay/tagged-lru-cache/sizeof"
	"github.com/krisalay/tagged-lru-cache/types"
)

/*
TaggedLRUCache is a bounded, thread-safe key/value store with per-entry
TTL, approximate memory accounting, recency-based eviction, and group
invalidation via tags.

This struct is the orchestrator that connects:
- the entry map (storage)
- the eviction policy (who goes first when space runs out)
- the tag index (bulk invalidation)
- the janitor (optional background expiry sweep)
- metrics (observation)

CONCURRENCY MODEL:
------------------
One exclusive mutex guards every public operation for its full
duration, including the lazy TTL sweep inside Get. Every operation is
therefore atomic to other goroutines: nobody ever observes a partially
evicted or partially inserted state. Internal helpers named *Locked
assume the mutex is already held and never take it themselves.
*/
type TaggedLRUCache struct {
	mu sync.Mutex

	// entries and policy are mutated together, never independently:
	// every key in the policy has exactly one entry here.
	entries map[string]*types.CacheEntry
	policy  eviction.Policy

	// tagged maps tag -> set of keys carrying it, maintained in
	// lockstep with entries so ClearByTags never scans the whole map.
	tagged map[string]map[string]struct{}

	maxEntries int
	maxMemory  int64

	// memory always equals the sum of SizeBytes over live entries.
	memory int64

	hits            int64
	misses          int64
	evictions       int64
	memoryEvictions int64
	ttlEvictions    int64
	rejections      int64

	metrics types.Metrics
	janitor *janitor
}

// Config carries the construction-time settings of a cache.
// The bounds are fixed for the cache's lifetime.
type Config struct {

	// MaxEntries is the entry-count bound. Defaults to 1024.
	MaxEntries int

	// MaxMemoryBytes bounds the summed approximate size of all
	// values. A single value larger than this is rejected outright.
	// Defaults to 64 MiB.
	MaxMemoryBytes int64

	// Policy selects the eviction strategy. Defaults to LRU, which is
	// the behavior the rest of this documentation assumes.
	Policy eviction.PolicyType

	// SweepInterval, when positive, starts a background janitor that
	// periodically purges expired entries. Zero disables it; expired
	// entries are then purged lazily on reads only.
	SweepInterval time.Duration

	// Metrics receives lifecycle events. Nil means no observation.
	Metrics types.Metrics
}

const (
	DefaultMaxEntries     = 1024
	DefaultMaxMemoryBytes = 64 << 20
)

// New creates a cache. The returned cache is ready for concurrent use.
// Call Close when done if a SweepInterval was configured.
func New(cfg Config) *TaggedLRUCache {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.MaxMemoryBytes <= 0 {
		cfg.MaxMemoryBytes = DefaultMaxMemoryBytes
	}
	if cfg.Metrics == nil {
		// Avoids nil checks on every event below.
		cfg.Metrics = types.NoopMetrics{}
	}

	c := &TaggedLRUCache{
		entries:    make(map[string]*types.CacheEntry),
		policy:     eviction.New(cfg.Policy),
		tagged:     make(map[string]map[string]struct{}),
		maxEntries: cfg.MaxEntries,
		maxMemory:  cfg.MaxMemoryBytes,
		metrics:    cfg.Metrics,
	}

	if cfg.SweepInterval > 0 {
		c.janitor = startJanitor(c, cfg.SweepInterval)
	}

	return c
}

/*
Get retrieves the value stored under key.

Before the lookup, every expired entry in the cache is purged, so a
caller can never observe a value whose TTL has elapsed. A hit marks
the key most recently used and bumps its access count; a hit or miss
is recorded either way.
*/
func (c *TaggedLRUCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.purgeExpiredLocked(now)

	ent, ok := c.entries[key]
	if !ok {
		c.misses++
		c.metrics.Miss()
		return nil, false
	}

	ent.LastAccessedAt = now
	ent.AccessCount++
	c.policy.OnGet(key)

	c.hits++
	c.metrics.Hit()
	return ent.Value, true
}

// Put stores a value that never expires by time. Optional tags attach
// the entry to invalidation groups.
func (c *TaggedLRUCache) Put(key string, value any, tags ...string) {
	c.put(key, value, false, 0, tags)
}

/*
PutWithTTL stores a value that expires ttl after insertion.

A zero or negative ttl means "already expired": the entry is a miss on
the very next Get and is removed by the next sweep. Re-putting an
existing key replaces it entirely; TTL, tags, recency position and
size accounting all come from this call alone.
*/
func (c *TaggedLRUCache) PutWithTTL(key string, value any, ttl time.Duration, tags ...string) {
	c.put(key, value, true, ttl, tags)
}

func (c *TaggedLRUCache) put(key string, value any, hasTTL bool, ttl time.Duration, tags []string) {
	size := sizeof.Estimate(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A single value may never exceed the whole-cache budget.
	// This is data, not an error: the put is counted and dropped.
	if size > c.maxMemory {
		c.rejections++
		c.metrics.Rejection()
		return
	}

	// Remove any previous entry first so its size is not counted
	// twice while we make room for the new one.
	if _, ok := c.entries[key]; ok {
		c.removeLocked(key)
	}

	// Make room by memory, least recently used first.
	for c.memory+size > c.maxMemory && len(c.entries) > 0 {
		if !c.evictLocked(evictForMemory) {
			break
		}
	}

	// Then make room by count.
	for len(c.entries) >= c.maxEntries {
		if !c.evictLocked(evictForCount) {
			break
		}
	}

	now := time.Now()
	ent := &types.CacheEntry{
		Key:            key,
		Value:          value,
		CreatedAt:      now,
		LastAccessedAt: now,
		SizeBytes:      size,
	}
	if hasTTL {
		ent.ExpireAt = now.Add(ttl)
	}
	if len(tags) > 0 {
		ent.Tags = make(map[string]struct{}, len(tags))
		for _, t := range tags {
			ent.Tags[t] = struct{}{}
		}
	}

	c.entries[key] = ent
	c.policy.OnPut(key)
	c.indexTagsLocked(ent)
	c.memory += size
}

// Remove deletes a key immediately. It reports whether anything was
// removed; removing an absent key is a safe no-op.
func (c *TaggedLRUCache) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(key)
}

/*
ClearByTags removes every entry whose tag set intersects the given
tags and returns how many entries were removed. The whole operation
runs under the cache lock, so it is atomic to external observers.
*/
func (c *TaggedLRUCache) ClearByTags(tags ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Collect first: removing mutates the tag index being read.
	var victims []string
	seen := make(map[string]struct{})
	for _, t := range tags {
		for key := range c.tagged[t] {
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				victims = append(victims, key)
			}
		}
	}

	for _, key := range victims {
		c.removeLocked(key)
	}
	return len(victims)
}

/*
Expire resets the TTL of an existing key to now + ttl.

Returns false when the key is absent or already expired. A zero or
negative ttl expires the key immediately.
*/
func (c *TaggedLRUCache) Expire(key string, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	ent, ok := c.entries[key]
	if !ok || ent.Expired(now) {
		return false
	}
	ent.ExpireAt = now.Add(ttl)
	return true
}

/*
TTL returns the remaining time-to-live for a key, with Redis-style
semantics:

	> 0 : duration remaining before expiration
	-1  : key exists but never expires by time
	-2  : key does not exist or is already expired
*/
func (c *TaggedLRUCache) TTL(key string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		return -2
	}
	if ent.ExpireAt.IsZero() {
		return -1
	}
	d := time.Until(ent.ExpireAt)
	if d <= 0 {
		return -2
	}
	return d
}

// Len returns the number of physically present entries. Expired
// entries still count until a read or a sweep purges them.
func (c *TaggedLRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a consistent snapshot of the cache's counters.
func (c *TaggedLRUCache) Stats() types.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := types.Stats{
		Size:            len(c.entries),
		MaxSize:         c.maxEntries,
		MemoryUsage:     c.memory,
		MaxMemory:       c.maxMemory,
		Hits:            c.hits,
		Misses:          c.misses,
		Evictions:       c.evictions,
		MemoryEvictions: c.memoryEvictions,
		TTLEvictions:    c.ttlEvictions,
		Rejections:      c.rejections,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}

// Sweep purges every expired entry right now and returns how many were
// removed. The janitor calls this periodically; callers may too.
func (c *TaggedLRUCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purgeExpiredLocked(time.Now())
}

// Close stops the background janitor, if one was configured. The cache
// itself remains usable; Close only releases the goroutine.
func (c *TaggedLRUCache) Close() {
	if c.janitor != nil {
		c.janitor.stopOnce()
	}
}

//
// ---- internal helpers, lock already held ----
//

type evictReason int

const (
	evictForCount evictReason = iota
	evictForMemory
)

// purgeExpiredLocked removes every entry whose TTL has elapsed.
// Full scan: worst case O(entries), which keeps the observable
// contract trivial at the cost of read-path work.
func (c *TaggedLRUCache) purgeExpiredLocked(now time.Time) int {
	var expired []string
	for key, ent := range c.entries {
		if ent.Expired(now) {
			expired = append(expired, key)
		}
	}
	for _, key := range expired {
		c.removeEntryLocked(key, true)
		c.ttlEvictions++
		c.metrics.TTLEviction()
	}
	return len(expired)
}

// evictLocked removes the policy's next victim and reports whether
// there was one. Only the boolean decides that: the empty string is a
// legal key. The reason picks which counter moves.
func (c *TaggedLRUCache) evictLocked(reason evictReason) bool {
	key, ok := c.policy.Evict()
	if !ok {
		return false
	}

	// The policy already dropped the key; clean up everything else.
	c.removeEntryLocked(key, false)

	switch reason {
	case evictForMemory:
		c.memoryEvictions++
		c.metrics.MemoryEviction()
	default:
		c.evictions++
		c.metrics.Eviction()
	}
	return true
}

// removeLocked is the shared removal path for explicit deletes, TTL
// purges and tag invalidation.
func (c *TaggedLRUCache) removeLocked(key string) bool {
	return c.removeEntryLocked(key, true)
}

// removeEntryLocked deletes the entry and keeps every structure
// consistent: entry map, tag index, memory counter and, when
// untrackPolicy is set, the eviction policy (Evict untracks itself).
func (c *TaggedLRUCache) removeEntryLocked(key string, untrackPolicy bool) bool {
	ent, ok := c.entries[key]
	if !ok {
		return false
	}

	delete(c.entries, key)
	if untrackPolicy {
		c.policy.Remove(key)
	}
	c.unindexTagsLocked(ent)
	c.memory -= ent.SizeBytes
	return true
}

func (c *TaggedLRUCache) indexTagsLocked(ent *types.CacheEntry) {
	for t := range ent.Tags {
		keys, ok := c.tagged[t]
		if !ok {
			keys = make(map[string]struct{})
			c.tagged[t] = keys
		}
		keys[ent.Key] = struct{}{}
	}
}

func (c *TaggedLRUCache) unindexTagsLocked(ent *types.CacheEntry) {
	for t := range ent.Tags {
		keys, ok := c.tagged[t]
		if !ok {
			continue
		}
		delete(keys, ent.Key)
		if len(keys) == 0 {
			delete(c.tagged, t)
		}
	}
}
