package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "cluso_graph_nodes_total",
			Help: "Number of nodes held by the graph store",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "cluso_graph_edges_total",
			Help: "Number of distinct undirected edges held by the graph store",
		},
	)

	r.GraphEdgesRejectedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cluso_graph_edges_rejected_total",
			Help: "Edges refused because an endpoint was not in the store",
		},
	)
}
