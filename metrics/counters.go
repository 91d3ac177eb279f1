/*
Package metrics provides ready-made implementations of the cache's
Metrics observer: plain atomic counters for tests and simple setups,
and a Prometheus exporter for real monitoring.
*/
package metrics

import "sync/atomic"

// Counters records cache events in atomic counters. All methods are
// safe for concurrent use and never block.
type Counters struct {
	hits            atomic.Int64
	misses          atomic.Int64
	evictions       atomic.Int64
	memoryEvictions atomic.Int64
	ttlEvictions    atomic.Int64
	rejections      atomic.Int64
}

func NewCounters() *Counters { return &Counters{} }

func (c *Counters) Hit()            { c.hits.Add(1) }
func (c *Counters) Miss()           { c.misses.Add(1) }
func (c *Counters) Eviction()       { c.evictions.Add(1) }
func (c *Counters) MemoryEviction() { c.memoryEvictions.Add(1) }
func (c *Counters) TTLEviction()    { c.ttlEvictions.Add(1) }
func (c *Counters) Rejection()      { c.rejections.Add(1) }

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Hits            int64
	Misses          int64
	Evictions       int64
	MemoryEvictions int64
	TTLEvictions    int64
	Rejections      int64
}

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Hits:            c.hits.Load(),
		Misses:          c.misses.Load(),
		Evictions:       c.evictions.Load(),
		MemoryEvictions: c.memoryEvictions.Load(),
		TTLEvictions:    c.ttlEvictions.Load(),
		Rejections:      c.rejections.Load(),
	}
}
