// Package metrics exports naivedate completion cache statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rabitt1ove/naivedate"
)

// CacheCollector is a prometheus.Collector reporting the counters of a
// naivedate.Cache at scrape time.
type CacheCollector struct {
	cache *naivedate.Cache

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	entries   *prometheus.Desc
	capacity  *prometheus.Desc
}

// NewCacheCollector creates a collector for cache. Metric names are prefixed
// with namespace, e.g. "naivedate_completion_cache_hits_total". A nil cache
// reports zeros.
func NewCacheCollector(namespace string, cache *naivedate.Cache) *CacheCollector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "completion_cache", n)
	}
	return &CacheCollector{
		cache:     cache,
		hits:      prometheus.NewDesc(name("hits_total"), "Completion cache lookups served from the cache.", nil, nil),
		misses:    prometheus.NewDesc(name("misses_total"), "Completion cache lookups that required generation.", nil, nil),
		evictions: prometheus.NewDesc(name("evictions_total"), "Times the completion cache was cleared to make room.", nil, nil),
		entries:   prometheus.NewDesc(name("entries"), "Years currently held in the completion cache.", nil, nil),
		capacity:  prometheus.NewDesc(name("capacity"), "Maximum number of years held in the completion cache.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.entries
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.cache.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Entries))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
}
