package types

// Stats is a point-in-time snapshot of what the cache holds and how it
// has been behaving since construction. All counters are cumulative.
type Stats struct {
	// Size is the number of physically present entries. An expired
	// entry still counts until a read or a sweep purges it.
	Size    int `json:"size"`
	MaxSize int `json:"max_size"`

	// MemoryUsage is the sum of SizeBytes over all present entries.
	MemoryUsage int64 `json:"memory_usage"`
	MaxMemory   int64 `json:"max_memory"`

	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`

	// Evictions counts removals forced by the entry-count bound,
	// MemoryEvictions those forced by the memory bound, and
	// TTLEvictions purges of expired entries.
	Evictions       int64 `json:"evictions"`
	MemoryEvictions int64 `json:"memory_evictions"`
	TTLEvictions    int64 `json:"ttl_evictions"`

	// Rejections counts puts refused because a single value exceeded
	// the whole-cache memory budget.
	Rejections int64 `json:"rejections"`

	// HitRate is Hits / (Hits + Misses), 0 when there have been no
	// accesses at all.
	HitRate float64 `json:"hit_rate"`
}
