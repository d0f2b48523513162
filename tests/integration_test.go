// Package integration exercises the full stack: config presets through
// session management, playback and history persistence.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/internal/config"
	"github.com/aretw0/strobe/pkg/adapters/memory"
	"github.com/aretw0/strobe/pkg/cue"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/perf"
	"github.com/aretw0/strobe/pkg/playback"
	"github.com/aretw0/strobe/pkg/session"
)

const presetConfig = `
speed: 4.0
presets:
  demo-sort:
    family: sorting
    algorithm: insertion
    size: 16
    shape: nearly-sorted
    seed: 11
  demo-maze:
    family: pathfinding
    algorithm: dijkstra
    seed: 3
`

func driveToCompletion(t *testing.T, c *playback.Controller) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	now := time.Unix(0, 0)
	for c.State() == domain.StateRunning {
		c.Tick(ctx, now)
		now = now.Add(c.BaseDelay())
	}
	require.Equal(t, domain.StateCompleted, c.State())
}

func TestPresetRunRecordsHistory(t *testing.T) {
	cfg, err := config.Parse([]byte(presetConfig), ".yaml")
	require.NoError(t, err)

	spec, err := cfg.Preset("demo-sort")
	require.NoError(t, err)
	assert.Equal(t, 4.0, spec.Speed)

	history := memory.NewHistory()
	controller, err := session.NewController(spec,
		playback.WithRecorder(perf.NewRecorder(perf.WithStore(history))),
	)
	require.NoError(t, err)

	driveToCompletion(t, controller)

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "insertion", records[0].Algorithm)
	assert.Equal(t, domain.FamilySorting, records[0].Family)
	assert.Equal(t, controller.Counters().Comparisons, records[0].Comparisons)
}

func TestEveryPresetFamilyCompletes(t *testing.T) {
	cfg, err := config.Parse([]byte(presetConfig), ".yaml")
	require.NoError(t, err)

	for _, name := range []string{"demo-sort", "demo-maze"} {
		t.Run(name, func(t *testing.T) {
			spec, err := cfg.Preset(name)
			require.NoError(t, err)

			controller, err := session.NewController(spec)
			require.NoError(t, err)
			driveToCompletion(t, controller)

			cursor, total := controller.Progress()
			assert.Equal(t, total, cursor)
		})
	}
}

func TestManagedSessionsReplayIndependently(t *testing.T) {
	history := memory.NewHistory()
	manager := session.NewManager(func(spec session.RunSpec) (*playback.Controller, error) {
		return session.NewController(spec,
			playback.WithRecorder(perf.NewRecorder(perf.WithStore(history))),
			playback.WithDispatcher(cue.NewDispatcher()),
		)
	})

	first, err := manager.Create(session.RunSpec{Family: domain.FamilySorting, Algorithm: "merge", Size: 12, Seed: 2})
	require.NoError(t, err)
	second, err := manager.Create(session.RunSpec{Family: domain.FamilyGraph, Algorithm: "toposort"})
	require.NoError(t, err)

	for _, s := range []*session.Session{first, second} {
		require.NoError(t, s.With(func(c *playback.Controller) error {
			driveToCompletion(t, c)
			assert.NotEmpty(t, c.DrainCues())
			return nil
		}))
	}

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, !records[1].Timestamp.Before(records[0].Timestamp))
}
