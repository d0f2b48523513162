package sorting_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strobe/pkg/algorithms/sorting"
	"github.com/aretw0/strobe/pkg/domain"
)

// transcript renders a log into a line-per-step form used by the golden
// tests.
func transcript(log *domain.Log) string {
	var b strings.Builder
	for i := 0; i < log.Len(); i++ {
		step := log.At(i)
		snapshot := step.Snapshot.(domain.ArraySnapshot)
		fmt.Fprintf(&b, "%02d %v cmp=%t mut=%t term=%t hl=%v | %s\n",
			i, snapshot.Values, step.Flags.Comparison, step.Flags.Mutation,
			step.Flags.Terminal, step.Highlights, step.Description)
	}
	return b.String()
}

func TestBubbleSort_RecordsExpectedSteps(t *testing.T) {
	log, counters, err := sorting.Run([]int{3, 1, 2}, sorting.Bubble)
	require.NoError(t, err)

	// Comparisons (0,1), swap, (1,2), swap, (0,1), terminal.
	require.Equal(t, 6, log.Len())

	step := log.At(0)
	assert.True(t, step.Flags.Comparison)
	assert.Equal(t, []int{0, 1}, step.Highlights)
	assert.Equal(t, []int{3, 1, 2}, step.Snapshot.(domain.ArraySnapshot).Values)

	step = log.At(1)
	assert.True(t, step.Flags.Mutation)
	assert.Equal(t, []int{1, 3, 2}, step.Snapshot.(domain.ArraySnapshot).Values)

	step = log.At(2)
	assert.True(t, step.Flags.Comparison)
	assert.Equal(t, []int{1, 2}, step.Highlights)

	step = log.At(3)
	assert.True(t, step.Flags.Mutation)
	assert.Equal(t, []int{1, 2, 3}, step.Snapshot.(domain.ArraySnapshot).Values)

	step = log.At(4)
	assert.True(t, step.Flags.Comparison)
	assert.Equal(t, []int{0, 1}, step.Highlights)

	last, ok := log.Last()
	require.True(t, ok)
	assert.True(t, last.Flags.Terminal)

	assert.Equal(t, 3, counters.Comparisons)
	assert.Equal(t, 2, counters.Mutations)
}

func TestBubbleSort_GoldenTranscript(t *testing.T) {
	log, _, err := sorting.Run([]int{3, 1, 2}, sorting.Bubble)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "bubble_3_1_2", []byte(transcript(log)))
}

func TestRun_AllAlgorithmsSort(t *testing.T) {
	input := sorting.Random(30, 42)
	want := make([]int, len(input))
	copy(want, input)
	sort.Ints(want)

	for _, algorithm := range sorting.Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			log, counters, err := sorting.Run(input, algorithm)
			require.NoError(t, err)
			require.Greater(t, log.Len(), 0)

			last, ok := log.Last()
			require.True(t, ok)
			require.True(t, last.Flags.Terminal)
			assert.Equal(t, want, last.Snapshot.(domain.ArraySnapshot).Values)
			assert.Greater(t, counters.Comparisons, 0)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	input := sorting.Random(25, 7)

	for _, algorithm := range sorting.Algorithms() {
		first, firstCounters, err := sorting.Run(input, algorithm)
		require.NoError(t, err)
		second, secondCounters, err := sorting.Run(input, algorithm)
		require.NoError(t, err)

		assert.Equal(t, firstCounters, secondCounters, algorithm)
		assert.Equal(t, transcript(first), transcript(second), algorithm)
	}
}

func TestRun_InputNotMutated(t *testing.T) {
	input := []int{5, 4, 3, 2, 1}
	_, _, err := sorting.Run(input, sorting.Quick)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, input)
}

func TestRun_SnapshotsAreIsolated(t *testing.T) {
	log, _, err := sorting.Run([]int{2, 1}, sorting.Bubble)
	require.NoError(t, err)

	// The swap recorded at step 1 must not retroactively change the
	// snapshot recorded at step 0.
	assert.Equal(t, []int{2, 1}, log.At(0).Snapshot.(domain.ArraySnapshot).Values)
	assert.Equal(t, []int{1, 2}, log.At(1).Snapshot.(domain.ArraySnapshot).Values)
}

func TestTournamentSort_PlaysAllRounds(t *testing.T) {
	log, counters, err := sorting.Run([]int{3, 1, 2}, sorting.Tournament)
	require.NoError(t, err)

	// Each of the n-1 rounds compares every remaining element against
	// the current winner.
	assert.Equal(t, 3, counters.Comparisons)
	assert.Contains(t, transcript(log), "Tournament: 3 vs 1")
	assert.Contains(t, transcript(log), "Tournament winner 1 removed, 2 elements remaining")

	last, ok := log.Last()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, last.Snapshot.(domain.ArraySnapshot).Values)
}

func TestIntroSort_FallsBackToHeapSort(t *testing.T) {
	// A reversed array drives the last-element pivot into its worst
	// case, so recursion exhausts the depth limit.
	log, _, err := sorting.Run(sorting.Reversed(32), sorting.Intro)
	require.NoError(t, err)

	assert.Contains(t, transcript(log), "Starting introsort with depth limit 10")
	assert.Contains(t, transcript(log), "Depth limit reached, heap sorting range")

	last, ok := log.Last()
	require.True(t, ok)
	assert.True(t, sort.IntsAreSorted(last.Snapshot.(domain.ArraySnapshot).Values))
}

func TestPatienceSort_DealsAndMerges(t *testing.T) {
	// Descending input stacks onto a single pile; ascending positions
	// within it come back out during the merge.
	log, counters, err := sorting.Run([]int{3, 2, 1}, sorting.Patience)
	require.NoError(t, err)

	assert.Contains(t, transcript(log), "Placing 2 on pile 0")
	assert.Contains(t, transcript(log), "Dealing complete: 1 piles")
	assert.Contains(t, transcript(log), "Extracting minimum 1 from pile 0")

	// One write per element during the merge phase.
	assert.Equal(t, 3, counters.Mutations)

	last, ok := log.Last()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, last.Snapshot.(domain.ArraySnapshot).Values)
}

func TestRun_EmptyInput_SingleTerminalStep(t *testing.T) {
	log, counters, err := sorting.Run(nil, sorting.Merge)
	require.NoError(t, err)
	require.Equal(t, 1, log.Len())
	assert.True(t, log.At(0).Flags.Terminal)
	assert.Equal(t, domain.Counters{}, counters)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	_, _, err := sorting.Run([]int{1, 2}, sorting.Algorithm("bogo"))
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestGenerators(t *testing.T) {
	t.Run("random is reproducible", func(t *testing.T) {
		assert.Equal(t, sorting.Random(20, 1), sorting.Random(20, 1))
	})
	t.Run("reversed descends", func(t *testing.T) {
		values := sorting.Reversed(10)
		assert.Equal(t, 10, values[0])
		assert.Equal(t, 1, values[9])
	})
	t.Run("size clamped", func(t *testing.T) {
		assert.Len(t, sorting.Reversed(2), domain.MinArraySize)
		assert.Len(t, sorting.Reversed(10_000), domain.MaxArraySize)
	})
}
