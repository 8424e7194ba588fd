package library

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/notargets/gotab/cell"
	"github.com/notargets/gotab/element"
)

type Key struct {
	Family Family
	Cell   cell.Type
	Degree int
}

type cacheMetrics struct {
	hits, misses, failures *prometheus.CounterVec
	buildSeconds           *prometheus.HistogramVec
}

func newCacheMetrics() *cacheMetrics {
	labels := []string{"family"}
	return &cacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gotab",
			Subsystem: "element_cache",
			Name:      "hits_total",
			Help:      "Element requests served from the cache.",
		}, labels),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gotab",
			Subsystem: "element_cache",
			Name:      "misses_total",
			Help:      "Element requests that required a construction.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gotab",
			Subsystem: "element_cache",
			Name:      "build_failures_total",
			Help:      "Element constructions that returned an error.",
		}, labels),
		buildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gotab",
			Subsystem: "element_cache",
			Name:      "build_seconds",
			Help:      "Time spent constructing elements.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
		}, labels),
	}
}

func (m *cacheMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.hits, m.misses, m.failures, m.buildSeconds}
}

// Cache holds constructed elements keyed by (family, cell, degree). Elements
// are immutable so one instance is shared by every caller.
type Cache struct {
	mu       sync.Mutex
	elements map[Key]*element.FiniteElement
	metrics  *cacheMetrics
	logger   *slog.Logger
}

// NewCache registers the cache metrics on reg, which may be nil
func NewCache(reg prometheus.Registerer, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{
		elements: make(map[Key]*element.FiniteElement),
		metrics:  newCacheMetrics(),
		logger:   logger,
	}
	if reg != nil {
		for _, col := range c.metrics.collectors() {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Get returns the cached element, building it on first request. Failed
// constructions are not cached.
func (c *Cache) Get(f Family, ct cell.Type, degree int) (fe *element.FiniteElement, err error) {
	var (
		key   = Key{Family: f, Cell: ct, Degree: degree}
		label = f.String()
	)
	c.mu.Lock()
	defer c.mu.Unlock()
	if fe = c.elements[key]; fe != nil {
		c.metrics.hits.WithLabelValues(label).Inc()
		return
	}
	c.metrics.misses.WithLabelValues(label).Inc()
	timer := prometheus.NewTimer(c.metrics.buildSeconds.WithLabelValues(label))
	fe, err = Create(f, ct, degree)
	elapsed := timer.ObserveDuration()
	if err != nil {
		c.metrics.failures.WithLabelValues(label).Inc()
		c.logger.Warn("Element construction failed",
			slog.String("family", label), slog.String("cell", ct.String()),
			slog.Int("degree", degree), slog.String("error", err.Error()))
		return nil, err
	}
	c.elements[key] = fe
	c.logger.Debug("Element constructed",
		slog.String("family", label), slog.String("cell", ct.String()),
		slog.Int("degree", degree), slog.Int("dofs", fe.Dim()),
		slog.Duration("elapsed", elapsed))
	return
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.elements)
}
