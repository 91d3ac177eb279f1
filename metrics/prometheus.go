package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus mirrors cache events into Prometheus counters.
//
// Counter increments run while the cache lock is held, so only cheap
// Inc calls happen here; scraping is entirely the registry's business.
type Prometheus struct {
	Hits            prometheus.Counter
	Misses          prometheus.Counter
	Evictions       prometheus.Counter
	MemoryEvictions prometheus.Counter
	TTLEvictions    prometheus.Counter
	Rejections      prometheus.Counter
}

// NewPrometheus creates and registers the cache counters on reg under
// the given namespace. Use one namespace per cache instance; the
// registry rejects duplicate registration.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		Hits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total reads that returned a live value",
		}),
		Misses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total reads that found no live value",
		}),
		Evictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total entries evicted by the entry-count bound",
		}),
		MemoryEvictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_memory_evictions_total",
			Help:      "Total entries evicted by the memory bound",
		}),
		TTLEvictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_ttl_evictions_total",
			Help:      "Total entries purged after their TTL elapsed",
		}),
		Rejections: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_rejections_total",
			Help:      "Total puts refused for exceeding the memory budget alone",
		}),
	}
}

func (p *Prometheus) Hit()            { p.Hits.Inc() }
func (p *Prometheus) Miss()           { p.Misses.Inc() }
func (p *Prometheus) Eviction()       { p.Evictions.Inc() }
func (p *Prometheus) MemoryEviction() { p.MemoryEvictions.Inc() }
func (p *Prometheus) TTLEviction()    { p.TTLEvictions.Inc() }
func (p *Prometheus) Rejection()      { p.Rejections.Inc() }
