package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/common/expfmt"
)

// Search outcomes used as the "result" label.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultLimit       = "limit"
)

// UpdateGraphSize sets the node and edge gauges
func (r *Registry) UpdateGraphSize(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// RecordRejectedEdge counts an edge refused by the store
func (r *Registry) RecordRejectedEdge() {
	r.GraphEdgesRejectedTotal.Inc()
}

// RecordSearch records one shortest path search
func (r *Registry) RecordSearch(result string, rounds, relaxations int, duration time.Duration) {
	r.SearchesTotal.WithLabelValues(result).Inc()
	r.SearchRounds.Observe(float64(rounds))
	r.SearchRelaxationsTotal.Add(float64(relaxations))
	r.SearchDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// WriteText writes every gathered metric family in the Prometheus text format
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
