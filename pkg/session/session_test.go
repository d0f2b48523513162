package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/playback"
	"github.com/aretw0/strobe/pkg/session"
)

func TestNewGenerator_EveryFamily(t *testing.T) {
	specs := []session.RunSpec{
		{Family: domain.FamilySorting, Algorithm: "bubble", Size: 12, Seed: 1},
		{Family: domain.FamilySearching, Algorithm: "binary", Size: 12, Seed: 1},
		{Family: domain.FamilyPathfinding, Algorithm: "bfs", Seed: 1},
		{Family: domain.FamilyTree, Algorithm: "avl", Size: 8, Seed: 1},
		{Family: domain.FamilyTree, Algorithm: "minheap", Size: 6, Seed: 1},
		{Family: domain.FamilyGraph, Algorithm: "kruskal"},
	}

	for _, spec := range specs {
		t.Run(string(spec.Family)+"/"+spec.Algorithm, func(t *testing.T) {
			generate, err := session.NewGenerator(spec)
			require.NoError(t, err)

			log, counters, err := generate()
			require.NoError(t, err)
			require.Greater(t, log.Len(), 0)
			assert.Equal(t, spec.Family, log.Family())

			// Exactly one terminal step, and it is the last one.
			terminals := 0
			for i := 0; i < log.Len(); i++ {
				if log.At(i).Flags.Terminal {
					terminals++
				}
			}
			assert.Equal(t, 1, terminals)
			last, ok := log.Last()
			require.True(t, ok)
			assert.True(t, last.Flags.Terminal)
			assert.GreaterOrEqual(t, counters.Comparisons, 0)
		})
	}
}

func TestNewGenerator_TreeRunDemonstratesEveryOperation(t *testing.T) {
	generate, err := session.NewGenerator(session.RunSpec{
		Family: domain.FamilyTree, Algorithm: "bst", Size: 8, Seed: 1,
	})
	require.NoError(t, err)

	log, _, err := generate()
	require.NoError(t, err)

	var descriptions []string
	for i := 0; i < log.Len(); i++ {
		descriptions = append(descriptions, log.At(i).Description)
	}

	// Insertions first, then a search, a delete and a closing in-order
	// traversal, with the traversal's terminal as the run's only one.
	assertAnyContains(t, descriptions, "Inserted")
	assertAnyContains(t, descriptions, "Searching for value")
	assertAnyContains(t, descriptions, "Delete of")
	assertAnyContains(t, descriptions, "Starting inorder traversal")

	last, ok := log.Last()
	require.True(t, ok)
	assert.True(t, last.Flags.Terminal)
	assert.Equal(t, "Traversal completed", last.Description)

	terminals := 0
	for i := 0; i < log.Len(); i++ {
		if log.At(i).Flags.Terminal {
			terminals++
		}
	}
	assert.Equal(t, 1, terminals)
}

func assertAnyContains(t *testing.T, haystack []string, fragment string) {
	t.Helper()
	for _, s := range haystack {
		if strings.Contains(s, fragment) {
			return
		}
	}
	t.Errorf("no step description contains %q", fragment)
}

func TestNewGenerator_RegeneratesIdentically(t *testing.T) {
	generate, err := session.NewGenerator(session.RunSpec{
		Family: domain.FamilySorting, Algorithm: "quick", Size: 20, Seed: 9,
	})
	require.NoError(t, err)

	first, firstCounters, err := generate()
	require.NoError(t, err)
	second, secondCounters, err := generate()
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	assert.Equal(t, firstCounters, secondCounters)
	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, first.At(i).Description, second.At(i).Description)
	}
}

func TestNewGenerator_UnknownSelections(t *testing.T) {
	_, err := session.NewGenerator(session.RunSpec{Family: "cooking", Algorithm: "stir"})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)

	_, err = session.NewGenerator(session.RunSpec{Family: domain.FamilySorting, Algorithm: "bogo"})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)

	_, err = session.NewGenerator(session.RunSpec{
		Family: domain.FamilySorting, Algorithm: "bubble", Shape: "zigzag",
	})
	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestNewController_AppliesSpecSpeed(t *testing.T) {
	c, err := session.NewController(session.RunSpec{
		Family: domain.FamilySorting, Algorithm: "bubble", Speed: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, c.Speed())
	assert.Equal(t, domain.BaseStepDelay, c.BaseDelay())
}

func TestManager_SessionLifecycle(t *testing.T) {
	m := session.NewManager(nil)

	s, err := m.Create(session.RunSpec{Family: domain.FamilySorting, Algorithm: "merge"})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	err = s.With(func(c *playback.Controller) error {
		ctx := context.Background()
		if err := c.Start(ctx); err != nil {
			return err
		}
		now := time.Unix(100, 0)
		for c.State() == domain.StateRunning {
			now = now.Add(time.Second)
			c.Tick(ctx, now)
		}
		assert.Equal(t, domain.StateCompleted, c.State())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{s.ID}, m.List())
	require.NoError(t, m.Delete(s.ID))
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.ErrorIs(t, m.Delete(s.ID), session.ErrNotFound)
}

func TestManager_CreateRejectsBadSpec(t *testing.T) {
	m := session.NewManager(nil)
	_, err := m.Create(session.RunSpec{Family: domain.FamilySorting, Algorithm: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}
