package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSearchMetrics() {
	r.SearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "cluso_search_total",
			Help: "Shortest path searches by outcome",
		},
		[]string{"result"}, // found, unreachable, limit
	)

	r.SearchRounds = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cluso_search_rounds",
			Help:    "Frontier rounds executed per search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	r.SearchRelaxationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cluso_search_relaxations_total",
			Help: "Recorded paths replaced by a strictly shorter one",
		},
	)

	r.SearchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cluso_search_duration_seconds",
			Help:    "Shortest path search duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"result"},
	)
}
