package eviction

/*
This package decides WHICH key the cache removes when it needs space.
The cache owns the data and the lock; a Policy only tracks key order.

All Policy methods are called with the cache lock held, so
implementations need no synchronization of their own.
*/

// Policy is the contract every eviction strategy must satisfy.
type Policy interface {

	// OnGet is called whenever a key is read from the cache.
	// Recency-based strategies care about this; FIFO ignores it.
	OnGet(key string)

	// OnPut is called whenever a key is inserted. The cache removes
	// an old entry before re-inserting a key, so OnPut only ever sees
	// keys the policy is not currently tracking.
	OnPut(key string)

	// Remove is called when a key is removed for any reason other
	// than Evict (explicit delete, TTL purge, tag invalidation).
	Remove(key string)

	// Evict chooses the next victim, stops tracking it, and returns
	// its key. The boolean is false only when nothing is tracked; any
	// returned key, the empty string included, is a real victim. The
	// cache is responsible for actually deleting the entry.
	Evict() (string, bool)

	// Len reports how many keys are tracked. It must always equal the
	// cache's live entry count.
	Len() int
}

// PolicyType identifies a built-in eviction strategy.
type PolicyType string

const (
	// LRU evicts the key that has gone unread for the longest time.
	LRU PolicyType = "LRU"

	// LFU evicts a key with the lowest read count.
	LFU PolicyType = "LFU"

	// FIFO evicts the oldest inserted key regardless of reads.
	FIFO PolicyType = "FIFO"
)

// New creates the policy for the given type. Unknown types panic:
// the type is fixed at construction time, so this is a programming
// error, not a runtime condition.
func New(t PolicyType) Policy {
	switch t {
	case LRU, "":
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		panic("eviction: unknown policy type " + string(t))
	}
}
