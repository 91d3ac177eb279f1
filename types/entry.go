package types

import "time"

/*
CacheEntry is one stored item together with all of its bookkeeping.

The cache mutates entries only while holding its lock, so none of these
fields need their own synchronization. Timestamps use wall-clock time.
*/
type CacheEntry struct {
	Key   string
	Value any

	CreatedAt      time.Time
	LastAccessedAt time.Time

	// AccessCount is incremented on every successful read.
	AccessCount int64

	// ExpireAt is the absolute expiry deadline.
	// Zero means the entry never expires by time.
	ExpireAt time.Time

	// SizeBytes is the approximate in-memory cost of Value,
	// computed once at insertion time.
	SizeBytes int64

	// Tags are non-unique group labels used for bulk invalidation.
	// Many entries may share a tag.
	Tags map[string]struct{}
}

/*
Expired reports whether the entry is logically absent at the given time.

An entry written with a zero or negative TTL has ExpireAt at or before
its creation instant, so it is expired on the very next read.
*/
func (e *CacheEntry) Expired(now time.Time) bool {
	return !e.ExpireAt.IsZero() && !now.Before(e.ExpireAt)
}
