package graph

import (
	"github.com/dd0wney/cluso-structures/pkg/logging"
	"github.com/dd0wney/cluso-structures/pkg/metrics"
)

// Option configures a Graph.
type Option func(*config)

type config struct {
	logger  logging.Logger
	metrics *metrics.Registry
}

// WithLogger logs rejected edges at WARN and insertions at DEBUG.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrNop(l)
	}
}

// WithMetrics keeps the registry's graph gauges in step with the store.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *config) {
		c.metrics = r
	}
}
