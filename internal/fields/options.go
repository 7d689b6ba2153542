package fields

import (
	"log/slog"

	fieldmetrics "pulse/internal/fields/metrics"
)

type config struct {
	logger      *slog.Logger
	metrics     *fieldmetrics.Metrics
	maxListSize int
	strict      bool
}

func newConfig(opts ...Option) config {
	cfg := config{maxListSize: MaxListSize, strict: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Option configures a field constructor. All components are nil-safe with
// respect to logger and metrics.
type Option func(*config)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics attaches field metrics.
func WithMetrics(m *fieldmetrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithMaxListSize overrides the default list-size ceiling.
func WithMaxListSize(max int) Option {
	return func(c *config) {
		c.maxListSize = max
	}
}

// WithLenientURNs disables strict URN validation: values still must
// normalize, but scheme-specific semantic rules (country codes, handle
// shapes) are not enforced. For exploratory parsing only; callers resolving
// addresses for storage keep the strict default.
func WithLenientURNs() Option {
	return func(c *config) {
		c.strict = false
	}
}
