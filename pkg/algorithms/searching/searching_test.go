package searching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/pkg/algorithms/searching"
	"github.com/aretw0/strobe/pkg/domain"
)

func comparisonSteps(log *domain.Log) []domain.Step {
	var steps []domain.Step
	for i := 0; i < log.Len(); i++ {
		if log.At(i).Flags.Comparison {
			steps = append(steps, log.At(i))
		}
	}
	return steps
}

func TestBinarySearch_FindsTarget(t *testing.T) {
	log, counters, err := searching.Run([]int{1, 3, 5, 7, 9}, 7, searching.Binary)
	require.NoError(t, err)

	comparisons := comparisonSteps(log)
	require.Len(t, comparisons, 2)

	// First probe at mid-index 2 (value 5), target greater.
	assert.Equal(t, []int{2}, comparisons[0].Highlights)
	// Second probe at mid-index 3 (value 7).
	assert.Equal(t, []int{3}, comparisons[1].Highlights)

	last, ok := log.Last()
	require.True(t, ok)
	assert.True(t, last.Flags.Terminal)
	assert.Equal(t, 3, last.Snapshot.(domain.ArraySnapshot).Found)
	assert.Equal(t, 2, counters.Comparisons)
	assert.Equal(t, 0, counters.Mutations)
}

func TestLinearSearch_EmptyArray(t *testing.T) {
	log, counters, err := searching.Run(nil, 5, searching.Linear)
	require.NoError(t, err)

	require.Equal(t, 1, log.Len())
	step := log.At(0)
	assert.True(t, step.Flags.Terminal)
	assert.Equal(t, -1, step.Snapshot.(domain.ArraySnapshot).Found)
	assert.Equal(t, 0, counters.Comparisons)
}

func TestLinearSearch_ComparisonPerIndex(t *testing.T) {
	log, counters, err := searching.Run([]int{4, 8, 15}, 15, searching.Linear)
	require.NoError(t, err)

	comparisons := comparisonSteps(log)
	require.Len(t, comparisons, 3)
	for i, step := range comparisons {
		assert.Equal(t, []int{i}, step.Highlights)
	}
	assert.Equal(t, 3, counters.Comparisons)
}

func TestRun_AllAlgorithmsLocateEveryElement(t *testing.T) {
	values := []int{2, 5, 8, 12, 16, 23, 38, 56, 72, 91}

	for _, algorithm := range searching.Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			for want, target := range values {
				log, _, err := searching.Run(values, target, algorithm)
				require.NoError(t, err)

				last, ok := log.Last()
				require.True(t, ok)
				require.True(t, last.Flags.Terminal)
				assert.Equal(t, want, last.Snapshot.(domain.ArraySnapshot).Found,
					"target %d", target)
			}
		})
	}
}

func TestRun_AllAlgorithmsReportMissingTarget(t *testing.T) {
	values := []int{2, 5, 8, 12, 16}

	for _, algorithm := range searching.Algorithms() {
		for _, target := range []int{1, 7, 99} {
			log, _, err := searching.Run(values, target, algorithm)
			require.NoError(t, err, algorithm)

			last, ok := log.Last()
			require.True(t, ok)
			assert.True(t, last.Flags.Terminal, algorithm)
			assert.Equal(t, -1, last.Snapshot.(domain.ArraySnapshot).Found,
				"%s should not find %d", algorithm, target)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	values := []int{1, 4, 9, 16, 25, 36, 49}

	for _, algorithm := range searching.Algorithms() {
		first, firstCounters, err := searching.Run(values, 25, algorithm)
		require.NoError(t, err)
		second, secondCounters, err := searching.Run(values, 25, algorithm)
		require.NoError(t, err)

		require.Equal(t, first.Len(), second.Len(), algorithm)
		assert.Equal(t, firstCounters, secondCounters, algorithm)
		for i := 0; i < first.Len(); i++ {
			assert.Equal(t, first.At(i), second.At(i), algorithm)
		}
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	_, _, err := searching.Run([]int{1}, 1, searching.Algorithm("psychic"))
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}
