// Package sorting implements the sorting-family executors. Each
// algorithm runs eagerly to completion against a working copy of the
// input and records an ordered step log: one comparison step per
// element comparison (before branching on its result), one mutation
// step per array write (post-mutation snapshot), and a final terminal
// step.
package sorting

import (
	"fmt"

	"github.com/aretw0/strobe/pkg/domain"
)

// Algorithm selects one sorting algorithm.
type Algorithm string

const (
	Bubble     Algorithm = "bubble"
	Selection  Algorithm = "selection"
	Insertion  Algorithm = "insertion"
	Quick      Algorithm = "quick"
	Merge      Algorithm = "merge"
	Heap       Algorithm = "heap"
	Tournament Algorithm = "tournament"
	Intro      Algorithm = "intro"
	Patience   Algorithm = "patience"
)

// Algorithms returns all sorting algorithms in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Quick, Merge, Heap, Tournament, Intro, Patience}
}

// DisplayName returns the human-readable algorithm name.
func (a Algorithm) DisplayName() string {
	switch a {
	case Bubble:
		return "Bubble Sort"
	case Selection:
		return "Selection Sort"
	case Insertion:
		return "Insertion Sort"
	case Quick:
		return "Quick Sort"
	case Merge:
		return "Merge Sort"
	case Heap:
		return "Heap Sort"
	case Tournament:
		return "Tournament Sort"
	case Intro:
		return "Intro Sort"
	case Patience:
		return "Patience Sort"
	}
	return "Unknown"
}

// Parse maps a slug to an Algorithm.
func Parse(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: sorting algorithm %q", domain.ErrUnknownAlgorithm, name)
}

// Run executes the algorithm against a copy of values and returns the
// step log plus final counters. Run is a pure transformation: it never
// consults the wall clock and produces identical logs for identical
// inputs.
func Run(values []int, algorithm Algorithm) (*domain.Log, domain.Counters, error) {
	r := newRecorder(values)

	if len(values) == 0 {
		r.terminal("Nothing to sort: the array is empty")
		return r.log, r.counters, nil
	}

	switch algorithm {
	case Bubble:
		r.bubbleSort()
	case Selection:
		r.selectionSort()
	case Insertion:
		r.insertionSort()
	case Quick:
		r.quickSort()
	case Merge:
		r.mergeSort()
	case Heap:
		r.heapSort()
	case Tournament:
		r.tournamentSort()
	case Intro:
		r.introSort()
	case Patience:
		r.patienceSort()
	default:
		return nil, domain.Counters{}, fmt.Errorf("%w: sorting algorithm %q", domain.ErrUnknownAlgorithm, algorithm)
	}

	r.terminal(algorithm.DisplayName() + " completed")
	return r.log, r.counters, nil
}

// recorder owns the working copy and appends steps. Snapshots copy the
// working array so later mutation cannot corrupt earlier steps.
type recorder struct {
	log      *domain.Log
	counters domain.Counters
	values   []int
}

func newRecorder(values []int) *recorder {
	working := make([]int, len(values))
	copy(working, values)
	return &recorder{
		log:    domain.NewLog(domain.FamilySorting),
		values: working,
	}
}

func (r *recorder) snapshot(pivot int) domain.ArraySnapshot {
	s := domain.NewArraySnapshot(r.values)
	s.Pivot = pivot
	return s
}

func (r *recorder) record(description string, flags domain.Classification, pivot int, highlights ...int) {
	r.log.Append(domain.Step{
		Snapshot:    r.snapshot(pivot),
		Description: description,
		Highlights:  highlights,
		Flags:       flags,
	})
}

// comparison records a comparison of the highlighted positions. Always
// called before branching on the comparison's result.
func (r *recorder) comparison(description string, pivot int, highlights ...int) {
	r.counters.Comparisons++
	r.record(description, domain.Classification{Comparison: true}, pivot, highlights...)
}

// swap exchanges two positions and records the post-mutation snapshot.
func (r *recorder) swap(description string, pivot, a, b int) {
	r.values[a], r.values[b] = r.values[b], r.values[a]
	r.counters.Mutations++
	r.record(description, domain.Classification{Mutation: true}, pivot, a, b)
}

// write stores value at index and records the post-mutation snapshot.
func (r *recorder) write(description string, index, value int) {
	r.values[index] = value
	r.counters.Mutations++
	r.record(description, domain.Classification{Mutation: true}, -1, index)
}

// narration records an unclassified display-only step.
func (r *recorder) narration(description string, pivot int, highlights ...int) {
	r.record(description, domain.Classification{}, pivot, highlights...)
}

func (r *recorder) terminal(description string) {
	r.record(description, domain.Classification{Terminal: true}, -1)
}
