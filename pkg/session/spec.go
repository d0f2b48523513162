// Package session builds playback controllers from declarative run
// specifications and manages named controller sessions for hosts that
// serve more than one run at a time (the HTTP surface, scenario files).
package session

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/aretw0/strobe/pkg/algorithms/graph"
	"github.com/aretw0/strobe/pkg/algorithms/pathfinding"
	"github.com/aretw0/strobe/pkg/algorithms/searching"
	"github.com/aretw0/strobe/pkg/algorithms/sorting"
	"github.com/aretw0/strobe/pkg/algorithms/tree"
	"github.com/aretw0/strobe/pkg/cue"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/playback"
)

// RunSpec declares one run: the algorithm selection plus the input
// shape. Zero values fall back to family defaults.
type RunSpec struct {
	Family    domain.Family `json:"family" mapstructure:"family"`
	Algorithm string        `json:"algorithm" mapstructure:"algorithm"`

	// Array families.
	Size  int    `json:"size,omitempty" mapstructure:"size"`
	Shape string `json:"shape,omitempty" mapstructure:"shape"`
	Seed  int64  `json:"seed,omitempty" mapstructure:"seed"`

	// Searching.
	Target int `json:"target,omitempty" mapstructure:"target"`

	// Playback.
	Speed float64 `json:"speed,omitempty" mapstructure:"speed"`
	Audio bool    `json:"audio,omitempty" mapstructure:"audio"`
}

// Input shapes for the array families.
const (
	ShapeRandom       = "random"
	ShapeReversed     = "reversed"
	ShapeNearlySorted = "nearly-sorted"
)

const defaultSize = 30

// normalize fills family defaults into a copy of the spec.
func (s RunSpec) normalize() RunSpec {
	if s.Size == 0 {
		s.Size = defaultSize
	}
	if s.Shape == "" {
		s.Shape = ShapeRandom
	}
	if s.Speed == 0 {
		s.Speed = 1.0
	}
	return s
}

// InputSize reports the effective input size for performance records.
func (s RunSpec) InputSize() int {
	switch s.Family {
	case domain.FamilyPathfinding:
		return domain.GridWidth * domain.GridHeight
	default:
		return s.normalize().Size
	}
}

// NewGenerator builds the run's step log generator. The returned
// closure regenerates the same log on every call, so Reset+Start
// replays identically.
func NewGenerator(spec RunSpec) (playback.Generator, error) {
	spec = spec.normalize()

	switch spec.Family {
	case domain.FamilySorting:
		algorithm, err := sorting.Parse(spec.Algorithm)
		if err != nil {
			return nil, err
		}
		values, err := arrayInput(spec)
		if err != nil {
			return nil, err
		}
		return func() (*domain.Log, domain.Counters, error) {
			return sorting.Run(values, algorithm)
		}, nil

	case domain.FamilySearching:
		algorithm, err := searching.Parse(spec.Algorithm)
		if err != nil {
			return nil, err
		}
		values := sortedInput(spec.Size, spec.Seed)
		target := spec.Target
		if target == 0 && len(values) > 0 {
			target = values[len(values)/2]
		}
		return func() (*domain.Log, domain.Counters, error) {
			return searching.Run(values, target, algorithm)
		}, nil

	case domain.FamilyPathfinding:
		algorithm, err := pathfinding.Parse(spec.Algorithm)
		if err != nil {
			return nil, err
		}
		grid := mazeGrid(spec.Seed)
		return func() (*domain.Log, domain.Counters, error) {
			return pathfinding.Run(grid, algorithm)
		}, nil

	case domain.FamilyTree:
		return treeGenerator(spec)

	case domain.FamilyGraph:
		algorithm, err := graph.Parse(spec.Algorithm)
		if err != nil {
			return nil, err
		}
		input := graph.Sample()
		if spec.Size > 0 {
			input = graph.Random(spec.Size, spec.Seed)
		}
		return func() (*domain.Log, domain.Counters, error) {
			return graph.Run(input, algorithm)
		}, nil
	}
	return nil, fmt.Errorf("%w: family %q", domain.ErrUnknownAlgorithm, spec.Family)
}

// NewController builds a controller for the spec with its family's base
// delay and the spec's initial speed.
func NewController(spec RunSpec, opts ...playback.Option) (*playback.Controller, error) {
	generate, err := NewGenerator(spec)
	if err != nil {
		return nil, err
	}

	normalized := spec.normalize()
	base := []playback.Option{
		playback.WithSpeed(normalized.Speed),
		playback.WithInputSize(spec.InputSize()),
	}
	if normalized.Audio {
		base = append(base, playback.WithDispatcher(cue.NewDispatcher()))
	}
	return playback.New(spec.Family, spec.Algorithm, generate, append(base, opts...)...), nil
}

func arrayInput(spec RunSpec) ([]int, error) {
	switch spec.Shape {
	case ShapeRandom:
		return sorting.Random(spec.Size, spec.Seed), nil
	case ShapeReversed:
		return sorting.Reversed(spec.Size), nil
	case ShapeNearlySorted:
		return sorting.NearlySorted(spec.Size, spec.Seed), nil
	}
	return nil, fmt.Errorf("%w: input shape %q", domain.ErrMissingInput, spec.Shape)
}

// sortedInput produces an ascending array with seeded gaps, the input
// the search algorithms expect.
func sortedInput(size int, seed int64) []int {
	values := sorting.Random(size, seed)
	sort.Ints(values)
	return values
}

// mazeGrid builds the default pathfinding input: start and end in
// opposite corners with a seeded maze between them.
func mazeGrid(seed int64) *pathfinding.Grid {
	grid := pathfinding.NewGrid()
	grid.SetStart(domain.Point{X: 1, Y: 1})
	grid.SetEnd(domain.Point{X: domain.GridWidth - 2, Y: domain.GridHeight - 2})
	grid.GenerateMaze(seed)
	return grid
}

// treeGenerator scripts a demonstration run: build the structure from
// seeded values, recording every operation into one combined log.
func treeGenerator(spec RunSpec) (playback.Generator, error) {
	size := spec.Size
	if size > 15 {
		size = 15
	}
	seed := spec.Seed

	switch spec.Algorithm {
	case string(tree.BST), string(tree.AVL):
		kind := tree.Kind(spec.Algorithm)
		return func() (*domain.Log, domain.Counters, error) {
			var t *tree.Tree
			if kind == tree.AVL {
				t = tree.NewAVL()
			} else {
				t = tree.NewBST()
			}

			combined := domain.NewLog(domain.FamilyTree)
			var counters domain.Counters
			values := treeValues(size, seed)
			for _, v := range values {
				log, c := t.Insert(v)
				counters.Add(c)
				mergeRun(combined, log, false)
			}

			if len(values) == 0 {
				return combined, counters, nil
			}

			// Demonstrate the remaining operations on the built tree:
			// search an interior value, delete the first insertion,
			// close with an in-order traversal.
			log, c := t.Search(values[len(values)/2])
			counters.Add(c)
			mergeRun(combined, log, false)

			log, c = t.Delete(values[0])
			counters.Add(c)
			mergeRun(combined, log, false)

			walk, _, err := t.Traverse(tree.InOrder)
			if err != nil {
				return nil, domain.Counters{}, err
			}
			mergeRun(combined, walk, true)
			return combined, counters, nil
		}, nil

	case string(tree.MinHeap), string(tree.MaxHeap):
		kind := tree.HeapKind(spec.Algorithm)
		return func() (*domain.Log, domain.Counters, error) {
			var h *tree.Heap
			if kind == tree.MinHeap {
				h = tree.NewMinHeap()
			} else {
				h = tree.NewMaxHeap()
			}

			combined := domain.NewLog(domain.FamilyTree)
			var counters domain.Counters
			values := treeValues(size, seed)
			for _, v := range values {
				log, c := h.Insert(v)
				counters.Add(c)
				mergeRun(combined, log, false)
			}
			for h.Len() > 0 {
				_, _, log, c := h.Extract()
				counters.Add(c)
				mergeRun(combined, log, h.Len() == 0)
			}
			return combined, counters, nil
		}, nil
	}
	return nil, fmt.Errorf("%w: tree algorithm %q", domain.ErrUnknownAlgorithm, spec.Algorithm)
}

// treeValues yields distinct seeded values in 1..99.
func treeValues(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[int]bool, n)
	values := make([]int, 0, n)
	for len(values) < n {
		v := rng.Intn(99) + 1
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// mergeRun appends src's steps to dst. Intermediate operations lose
// their terminal flag so the combined log terminates exactly once.
func mergeRun(dst, src *domain.Log, final bool) {
	for i := 0; i < src.Len(); i++ {
		step := src.At(i)
		if step.Flags.Terminal && !final {
			step.Flags.Terminal = false
		}
		dst.Append(step)
	}
}
