package tree

import (
	"fmt"

	"github.com/aretw0/strobe/pkg/domain"
)

// HeapKind selects the heap ordering.
type HeapKind string

const (
	MinHeap HeapKind = "minheap"
	MaxHeap HeapKind = "maxheap"
)

// DisplayName returns the human-readable heap kind.
func (k HeapKind) DisplayName() string {
	switch k {
	case MinHeap:
		return "Min Heap"
	case MaxHeap:
		return "Max Heap"
	}
	return "Unknown Heap"
}

// Heap is a binary heap stored in array form, with children of index i
// at 2i+1 and 2i+2. Steps carry array snapshots since the array is the
// canonical representation.
type Heap struct {
	kind   HeapKind
	values []int
}

// NewMinHeap creates an empty min-ordered heap.
func NewMinHeap() *Heap {
	return &Heap{kind: MinHeap}
}

// NewMaxHeap creates an empty max-ordered heap.
func NewMaxHeap() *Heap {
	return &Heap{kind: MaxHeap}
}

// Kind returns the heap ordering.
func (h *Heap) Kind() HeapKind { return h.kind }

// Len returns the number of stored values.
func (h *Heap) Len() int { return len(h.values) }

// Values returns a copy of the backing array.
func (h *Heap) Values() []int {
	out := make([]int, len(h.values))
	copy(out, h.values)
	return out
}

// Insert appends value and sifts it up, recording each comparison and
// swap.
func (h *Heap) Insert(value int) (*domain.Log, domain.Counters) {
	r := h.recorder()

	h.values = append(h.values, value)
	r.mutation(fmt.Sprintf("Inserting %d into heap", value), len(h.values)-1)
	h.siftUp(len(h.values)-1, r)

	r.terminal(fmt.Sprintf("Inserted %d successfully", value))
	return r.log, r.counters
}

// Extract removes the root and sifts the replacement down. Extracting
// from an empty heap records a single terminal step and reports ok
// false.
func (h *Heap) Extract() (int, bool, *domain.Log, domain.Counters) {
	r := h.recorder()

	if len(h.values) == 0 {
		r.terminal("Heap is empty, cannot extract")
		return 0, false, r.log, r.counters
	}

	extracted := h.values[0]
	r.narration(fmt.Sprintf("Extracting root element: %d", extracted), 0)

	h.values[0] = h.values[len(h.values)-1]
	h.values = h.values[:len(h.values)-1]
	r.mutation("Moving last element to the root", rootOrNone(h.values))
	if len(h.values) > 0 {
		h.siftDown(0, r)
	}

	r.terminal(fmt.Sprintf("Extracted %d successfully", extracted))
	return extracted, true, r.log, r.counters
}

func rootOrNone(values []int) int {
	if len(values) == 0 {
		return -1
	}
	return 0
}

// ordered reports whether parent may stay above child.
func (h *Heap) ordered(parent, child int) bool {
	if h.kind == MinHeap {
		return h.values[parent] <= h.values[child]
	}
	return h.values[parent] >= h.values[child]
}

func (h *Heap) siftUp(index int, r *heapRecorder) {
	for index > 0 {
		parent := (index - 1) / 2
		r.comparison(fmt.Sprintf("Comparing %d with parent %d", h.values[index], h.values[parent]), index, parent)
		if h.ordered(parent, index) {
			return
		}
		r.swap(fmt.Sprintf("Swapping %d with parent %d", h.values[index], h.values[parent]), index, parent)
		index = parent
	}
}

func (h *Heap) siftDown(index int, r *heapRecorder) {
	size := len(h.values)
	for {
		target := index
		left := 2*index + 1
		right := 2*index + 2

		if left < size {
			r.comparison(fmt.Sprintf("Comparing %d with child %d", h.values[target], h.values[left]), target, left)
			if !h.ordered(target, left) {
				target = left
			}
		}
		if right < size {
			r.comparison(fmt.Sprintf("Comparing %d with child %d", h.values[target], h.values[right]), target, right)
			if !h.ordered(target, right) {
				target = right
			}
		}
		if target == index {
			return
		}
		r.swap(fmt.Sprintf("Swapping %d with %d", h.values[index], h.values[target]), index, target)
		index = target
	}
}

func (h *Heap) recorder() *heapRecorder {
	return &heapRecorder{log: domain.NewLog(domain.FamilyTree), heap: h}
}

type heapRecorder struct {
	log      *domain.Log
	counters domain.Counters
	heap     *Heap
}

func (r *heapRecorder) append(description string, highlights []int, flags domain.Classification) {
	r.log.Append(domain.Step{
		Snapshot:    domain.NewArraySnapshot(r.heap.values),
		Description: description,
		Highlights:  highlights,
		Flags:       flags,
	})
}

func (r *heapRecorder) comparison(description string, i, j int) {
	r.counters.Comparisons++
	r.append(description, []int{i, j}, domain.Classification{Comparison: true})
}

func (r *heapRecorder) mutation(description string, highlight int) {
	r.counters.Mutations++
	var highlights []int
	if highlight >= 0 {
		highlights = []int{highlight}
	}
	r.append(description, highlights, domain.Classification{Mutation: true})
}

func (r *heapRecorder) swap(description string, i, j int) {
	r.heap.values[i], r.heap.values[j] = r.heap.values[j], r.heap.values[i]
	r.counters.Mutations++
	r.append(description, []int{i, j}, domain.Classification{Mutation: true})
}

func (r *heapRecorder) narration(description string, highlight int) {
	var highlights []int
	if highlight >= 0 {
		highlights = []int{highlight}
	}
	r.append(description, highlights, domain.Classification{})
}

func (r *heapRecorder) terminal(description string) {
	r.append(description, nil, domain.Classification{Terminal: true})
}
