package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/pkg/algorithms/sorting"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/observability"
	"github.com/aretw0/strobe/pkg/playback"
)

func TestMetrics_CountPlaybackActivity(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	ctx := context.Background()
	c := playback.New(domain.FamilySorting, "bubble",
		func() (*domain.Log, domain.Counters, error) {
			return sorting.Run([]int{3, 1, 2}, sorting.Bubble)
		},
		playback.WithBaseDelay(time.Millisecond),
		playback.WithHooks(metrics.Hooks()),
	)

	require.NoError(t, c.Start(ctx))
	now := time.Unix(100, 0)
	for c.State() == domain.StateRunning {
		now = now.Add(time.Millisecond)
		c.Tick(ctx, now)
	}
	require.Equal(t, domain.StateCompleted, c.State())

	steps := metrics.StepsApplied.WithLabelValues("sorting", "bubble")
	assert.Equal(t, 6.0, testutil.ToFloat64(steps))

	runs := metrics.RunsCompleted.WithLabelValues("sorting", "bubble")
	assert.Equal(t, 1.0, testutil.ToFloat64(runs))

	comparisons := metrics.Comparisons.WithLabelValues("sorting", "bubble")
	assert.Equal(t, 3.0, testutil.ToFloat64(comparisons))

	mutations := metrics.Mutations.WithLabelValues("sorting", "bubble")
	assert.Equal(t, 2.0, testutil.ToFloat64(mutations))

	// Stopped->Running and Running->Completed.
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StateChanges.WithLabelValues("running")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StateChanges.WithLabelValues("completed")))
}

func TestMergeHooks_FansOut(t *testing.T) {
	var first, second int
	merged := domain.MergeHooks(
		domain.LifecycleHooks{OnStepApplied: func(context.Context, *domain.StepEvent) { first++ }},
		domain.LifecycleHooks{OnStepApplied: func(context.Context, *domain.StepEvent) { second++ }},
	)

	merged.OnStepApplied(context.Background(), &domain.StepEvent{})
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
