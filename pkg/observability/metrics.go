// Package observability exposes playback activity as Prometheus
// metrics. The collectors are fed through lifecycle hooks, so the
// controller stays unaware of the metrics backend.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/strobe/pkg/domain"
)

// Metrics holds all Prometheus collectors for playback activity.
type Metrics struct {
	StepsApplied   *prometheus.CounterVec
	RunsCompleted  *prometheus.CounterVec
	Comparisons    *prometheus.CounterVec
	Mutations      *prometheus.CounterVec
	StateChanges   *prometheus.CounterVec
	GenerationTime *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with the given
// registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		StepsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strobe_steps_applied_total",
				Help: "Total number of playback steps applied",
			},
			[]string{"family", "algorithm"},
		),
		RunsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strobe_runs_completed_total",
				Help: "Total number of runs played to completion",
			},
			[]string{"family", "algorithm"},
		),
		Comparisons: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strobe_comparisons_total",
				Help: "Comparisons recorded by completed runs",
			},
			[]string{"family", "algorithm"},
		),
		Mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strobe_mutations_total",
				Help: "Mutations recorded by completed runs",
			},
			[]string{"family", "algorithm"},
		),
		StateChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strobe_state_changes_total",
				Help: "Playback state transitions by target state",
			},
			[]string{"to"},
		),
		GenerationTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "strobe_generation_seconds",
				Help:    "Step log generation time in seconds",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"family"},
		),
	}
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepApplied: func(_ context.Context, event *domain.StepEvent) {
			m.StepsApplied.WithLabelValues(string(event.Family), event.Algorithm).Inc()
		},
		OnStateChange: func(_ context.Context, event *domain.StateEvent) {
			m.StateChanges.WithLabelValues(string(event.To)).Inc()
		},
		OnRunCompleted: func(_ context.Context, event *domain.RunEvent) {
			labels := []string{string(event.Family), event.Algorithm}
			m.RunsCompleted.WithLabelValues(labels...).Inc()
			m.Comparisons.WithLabelValues(labels...).Add(float64(event.Comparisons))
			m.Mutations.WithLabelValues(labels...).Add(float64(event.Mutations))
			m.GenerationTime.WithLabelValues(string(event.Family)).Observe(event.GenerationTime.Seconds())
		},
	}
}
