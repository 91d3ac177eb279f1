package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an observer for cache lifecycle events.

The cache calls exactly one of these methods for every event it records
internally, so an implementation can mirror the cache's own statistics
into whatever monitoring system the application uses.

Every method runs while the cache lock is held. Implementations MUST be
fast and must never call back into the cache.
*/
type Metrics interface {

	// Hit is called when a read returns a live value.
	Hit()

	// Miss is called when a read finds no live value for the key.
	Miss()

	// Eviction is called when an entry is removed because the cache
	// is at its entry-count bound.
	Eviction()

	// MemoryEviction is called when an entry is removed to make room
	// for an insertion that would exceed the memory bound.
	MemoryEviction()

	// TTLEviction is called when an entry is purged because its TTL
	// elapsed.
	TTLEviction()

	// Rejection is called when a put is refused because the value
	// alone is larger than the whole-cache memory budget.
	Rejection()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

It exists so the cache never has to nil-check its metrics field.
Callers that do not care about observation simply get this by default.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()            {}
func (NoopMetrics) Miss()           {}
func (NoopMetrics) Eviction()       {}
func (NoopMetrics) MemoryEviction() {}
func (NoopMetrics) TTLEviction()    {}
func (NoopMetrics) Rejection()      {}
