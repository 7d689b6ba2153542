package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes recorded per lookup.
const (
	OutcomeResolved = "resolved"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics provides observability for the fields module. Tracks resolution
// outcomes and latency per entity type, plus guard and URN rejections.
type Metrics struct {
	ResolveTotal    *prometheus.CounterVec
	ResolveDuration *prometheus.HistogramVec
	ListRejected    prometheus.Counter
	URNRejected     prometheus.Counter
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates a Metrics instance registered on reg. Tests pass a private
// registry to avoid duplicate-registration panics across instances.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResolveTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pulse_field_resolutions_total",
			Help: "Reference resolutions by entity type and outcome",
		}, []string{"entity", "outcome"}),
		ResolveDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pulse_field_resolve_duration_seconds",
			Help:    "Duration of reference resolutions (request critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"entity"}),
		ListRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "pulse_field_list_rejections_total",
			Help: "Incoming lists rejected by the size guard",
		}),
		URNRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "pulse_field_urn_rejections_total",
			Help: "URN values rejected by normalization or strict validation",
		}),
	}
}

// ObserveResolve records one resolution outcome and its duration.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveResolve(entity, outcome string, start time.Time) {
	m.ResolveTotal.WithLabelValues(entity, outcome).Inc()
	m.ResolveDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
}

// IncListRejected records a guard rejection.
func (m *Metrics) IncListRejected() {
	m.ListRejected.Inc()
}

// IncURNRejected records a URN validation rejection.
func (m *Metrics) IncURNRejected() {
	m.URNRejected.Inc()
}
