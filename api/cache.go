package cache

import (
	"time"

	"github.com/krisalay/tagged-lru-cache/types"
)

/*
Cache defines the PUBLIC API of the tagged cache.
This is a contract that guarantees certain behaviors without exposing
internals. TaggedLRUCache and ShardedCache both satisfy it; callers
that only need this surface can hold the interface and swap the
implementation freely.
*/
type Cache interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		1. Every expired entry is purged before the lookup, so a
		   logically expired value is never returned.
		2. On a hit the key becomes most recently used and its access
		   count is bumped.
		3. The boolean reports presence; a miss is ordinary control
		   flow, never an error.
	*/
	Get(key string) (any, bool)

	/*
		Put stores a key-value pair with no time-based expiry.

		Optional tags attach the entry to invalidation groups; many
		entries may share a tag. If storing would exceed the entry or
		memory bound, least-recently-used entries are evicted first.
		A single value larger than the whole memory budget is counted
		and silently dropped.
	*/
	Put(key string, value any, tags ...string)

	/*
		PutWithTTL stores a key-value pair that expires ttl after
		insertion.

		A zero or negative ttl means "already expired". Re-putting an
		existing key replaces it entirely: TTL, tags, recency and size
		accounting are governed solely by the newest put.
	*/
	PutWithTTL(key string, value any, ttl time.Duration, tags ...string)

	/*
		Remove deletes a key immediately and reports whether anything
		was removed. Removing an absent key is a safe no-op.
	*/
	Remove(key string) bool

	/*
		ClearByTags removes every entry whose tag set intersects the
		given tags and returns the number of entries removed.

		USE CASES:
		----------
		- Invalidate everything belonging to one user or tenant
		- Drop all derived values after a source update
	*/
	ClearByTags(tags ...string) int

	/*
		Expire resets the TTL of an existing, unexpired key to
		now + ttl and returns true; otherwise it returns false.
	*/
	Expire(key string, ttl time.Duration) bool

	/*
		TTL returns the remaining time-to-live for a key
		(Redis-compatible semantics):

		> 0 : duration remaining before expiration
		-1  : key exists but has no TTL
		-2  : key does not exist or is already expired
	*/
	TTL(key string) time.Duration

	// Len returns the number of physically present entries.
	Len() int

	// Stats returns a consistent snapshot of sizes and counters.
	// This is the cache's only observability surface besides the
	// push-style Metrics hooks.
	Stats() types.Stats

	/*
		Close stops background work (the expiry janitor). The cache
		stays usable afterwards; call it on shutdown and in tests.
	*/
	Close()
}
