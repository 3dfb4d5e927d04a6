package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the library
type Registry struct {
	// Graph store metrics
	GraphNodesTotal         prometheus.Gauge
	GraphEdgesTotal         prometheus.Gauge
	GraphEdgesRejectedTotal prometheus.Counter

	// Shortest path metrics
	SearchesTotal          *prometheus.CounterVec
	SearchRounds           prometheus.Histogram
	SearchRelaxationsTotal prometheus.Counter
	SearchDuration         *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initSearchMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
