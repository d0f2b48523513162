// Package searching implements the search-family executors. All
// algorithms except linear search expect a sorted input. Each probe of
// the array is recorded as a comparison step before branching on its
// result; the outcome (found index or not-found) is a terminal step.
package searching

import (
	"fmt"
	"math"

	"github.com/aretw0/strobe/pkg/domain"
)

// Algorithm selects one search algorithm.
type Algorithm string

const (
	Linear        Algorithm = "linear"
	Binary        Algorithm = "binary"
	Interpolation Algorithm = "interpolation"
	Exponential   Algorithm = "exponential"
	Jump          Algorithm = "jump"
)

// Algorithms returns all search algorithms in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{Linear, Binary, Interpolation, Exponential, Jump}
}

// DisplayName returns the human-readable algorithm name.
func (a Algorithm) DisplayName() string {
	switch a {
	case Linear:
		return "Linear Search"
	case Binary:
		return "Binary Search"
	case Interpolation:
		return "Interpolation Search"
	case Exponential:
		return "Exponential Search"
	case Jump:
		return "Jump Search"
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
	return "", fmt.Errorf("%w: search algorithm %q", domain.ErrUnknownAlgorithm, name)
}

// Run executes the search and returns the step log plus counters.
// An empty input yields a single terminal "not found" step.
func Run(values []int, target int, algorithm Algorithm) (*domain.Log, domain.Counters, error) {
	r := &searchRecorder{
		log:    domain.NewLog(domain.FamilySearching),
		values: values,
	}

	if len(values) == 0 {
		r.notFound(target)
		return r.log, r.counters, nil
	}

	switch algorithm {
	case Linear:
		r.linear(target)
	case Binary:
		r.binary(target)
	case Interpolation:
		r.interpolation(target)
	case Exponential:
		r.exponential(target)
	case Jump:
		r.jump(target)
	default:
		return nil, domain.Counters{}, fmt.Errorf("%w: search algorithm %q", domain.ErrUnknownAlgorithm, algorithm)
	}

	return r.log, r.counters, nil
}

type searchRecorder struct {
	log      *domain.Log
	counters domain.Counters
	values   []int
}

func (r *searchRecorder) snapshot(low, high, found int) domain.ArraySnapshot {
	s := domain.NewArraySnapshot(r.values)
	s.Low = low
	s.High = high
	s.Found = found
	return s
}

// comparison records a probe of index within the active [low, high]
// window, before branching on its result.
func (r *searchRecorder) comparison(description string, index, low, high int) {
	r.counters.Comparisons++
	r.log.Append(domain.Step{
		Snapshot:    r.snapshot(low, high, -1),
		Description: description,
		Highlights:  []int{index},
		Flags:       domain.Classification{Comparison: true},
	})
}

func (r *searchRecorder) narration(description string, low, high int) {
	r.log.Append(domain.Step{
		Snapshot:    r.snapshot(low, high, -1),
		Description: description,
		Flags:       domain.Classification{},
	})
}

func (r *searchRecorder) found(target, index int) {
	r.log.Append(domain.Step{
		Snapshot:    r.snapshot(-1, -1, index),
		Description: fmt.Sprintf("Found target %d at index %d", target, index),
		Highlights:  []int{index},
		Flags:       domain.Classification{Terminal: true},
	})
}

func (r *searchRecorder) notFound(target int) {
	r.log.Append(domain.Step{
		Snapshot:    r.snapshot(-1, -1, -1),
		Description: fmt.Sprintf("Target %d not found", target),
		Flags:       domain.Classification{Terminal: true},
	})
}

func (r *searchRecorder) linear(target int) {
	for i, value := range r.values {
		r.comparison(fmt.Sprintf("Checking index %d (value %d)", i, value), i, -1, -1)
		if value == target {
			r.found(target, i)
			return
		}
	}
	r.notFound(target)
}

func (r *searchRecorder) binary(target int) {
	low, high := 0, len(r.values)-1

	for low <= high {
		mid := low + (high-low)/2
		r.comparison(fmt.Sprintf("Checking middle index %d (value %d)", mid, r.values[mid]), mid, low, high)

		switch {
		case r.values[mid] == target:
			r.found(target, mid)
			return
		case r.values[mid] < target:
			low = mid + 1
			r.narration(fmt.Sprintf("Target is greater than %d, narrowing to the right half", r.values[mid]), low, high)
		default:
			high = mid - 1
			r.narration(fmt.Sprintf("Target is less than %d, narrowing to the left half", r.values[mid]), low, high)
		}
	}
	r.notFound(target)
}

func (r *searchRecorder) interpolation(target int) {
	low, high := 0, len(r.values)-1

	for low <= high && target >= r.values[low] && target <= r.values[high] {
		pos := low
		if r.values[high] != r.values[low] {
			pos = low + (target-r.values[low])*(high-low)/(r.values[high]-r.values[low])
		}
		if pos < low {
			pos = low
		}
		if pos > high {
			pos = high
		}

		r.comparison(fmt.Sprintf("Interpolated position %d (value %d)", pos, r.values[pos]), pos, low, high)

		switch {
		case r.values[pos] == target:
			r.found(target, pos)
			return
		case r.values[pos] < target:
			low = pos + 1
			r.narration(fmt.Sprintf("Target is greater than %d, searching right of %d", r.values[pos], pos), low, high)
		default:
			high = pos - 1
			r.narration(fmt.Sprintf("Target is less than %d, searching left of %d", r.values[pos], pos), low, high)
		}
	}
	r.notFound(target)
}

func (r *searchRecorder) exponential(target int) {
	n := len(r.values)

	r.comparison(fmt.Sprintf("Checking index 0 (value %d)", r.values[0]), 0, -1, -1)
	if r.values[0] == target {
		r.found(target, 0)
		return
	}

	bound := 1
	for bound < n {
		r.comparison(fmt.Sprintf("Probing bound %d (value %d)", bound, r.values[bound]), bound, -1, -1)
		if r.values[bound] >= target {
			break
		}
		bound *= 2
	}

	low := bound / 2
	high := bound
	if high > n-1 {
		high = n - 1
	}
	r.narration(fmt.Sprintf("Range [%d, %d] identified, switching to binary search", low, high), low, high)

	for low <= high {
		mid := low + (high-low)/2
		r.comparison(fmt.Sprintf("Checking middle index %d (value %d)", mid, r.values[mid]), mid, low, high)

		switch {
		case r.values[mid] == target:
			r.found(target, mid)
			return
		case r.values[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	r.notFound(target)
}

func (r *searchRecorder) jump(target int) {
	n := len(r.values)
	block := int(math.Sqrt(float64(n)))
	if block < 1 {
		block = 1
	}

	// Jump phase: find the block whose last element bounds the target.
	prev := 0
	step := block
	for {
		edge := step
		if edge > n {
			edge = n
		}
		r.comparison(fmt.Sprintf("Jumping to index %d (value %d)", edge-1, r.values[edge-1]), edge-1, prev, edge-1)
		if r.values[edge-1] >= target {
			break
		}
		prev = step
		step += block
		if prev >= n {
			r.notFound(target)
			return
		}
	}

	limit := step
	if limit > n {
		limit = n
	}
	r.narration(fmt.Sprintf("Scanning block [%d, %d] linearly", prev, limit-1), prev, limit-1)

	for i := prev; i < limit; i++ {
		r.comparison(fmt.Sprintf("Checking index %d (value %d)", i, r.values[i]), i, prev, limit-1)
		if r.values[i] == target {
			r.found(target, i)
			return
		}
		if r.values[i] > target {
			break
		}
	}
	r.notFound(target)
}
