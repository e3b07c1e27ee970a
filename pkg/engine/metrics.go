package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus metrics for resolution passes. A disabled
// instance is a no-op, so callers never need nil checks.
type Metrics struct {
	enabled  bool
	registry *prometheus.Registry

	evaluations  *prometheus.CounterVec
	unitsByState *prometheus.CounterVec
	passDuration prometheus.Histogram
}

// NewMetrics creates and registers the engine metrics under the given
// namespace.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		enabled:  true,
		registry: registry,

		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "condition_evaluations_total",
				Help:      "Condition evaluations by result.",
			},
			[]string{"result"},
		),
		unitsByState: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "units_total",
				Help:      "Configuration units by final state.",
			},
			[]string{"state"},
		),
		passDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolve_duration_seconds",
				Help:      "Duration of resolution passes.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	registry.MustRegister(m.evaluations, m.unitsByState, m.passDuration)
	return m
}

// NopMetrics returns a disabled metrics instance.
func NopMetrics() *Metrics {
	return &Metrics{}
}

// Registry returns the underlying Prometheus registry, or nil when the
// metrics are disabled.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveEvaluation counts one condition evaluation.
func (m *Metrics) ObserveEvaluation(matched bool) {
	if !m.enabled {
		return
	}
	result := "no_match"
	if matched {
		result = "match"
	}
	m.evaluations.WithLabelValues(result).Inc()
}

// ObserveUnitState counts a unit reaching a final state.
func (m *Metrics) ObserveUnitState(state State) {
	if !m.enabled {
		return
	}
	m.unitsByState.WithLabelValues(string(state)).Inc()
}

// ObservePassDuration records the duration of one resolution pass.
func (m *Metrics) ObservePassDuration(d time.Duration) {
	if !m.enabled {
		return
	}
	m.passDuration.Observe(d.Seconds())
}
