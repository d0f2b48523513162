package sorting

import (
	"fmt"
	"math/bits"
)

// tournamentSort runs a selection tournament over the unsorted suffix:
// every remaining element challenges the current winner, and each
// round's winner is swapped to the front of the suffix.
func (r *recorder) tournamentSort() {
	n := len(r.values)
	for i := 0; i < n-1; i++ {
		winner := i
		for j := i + 1; j < n; j++ {
			r.comparison(fmt.Sprintf("Tournament: %d vs %d", r.values[winner], r.values[j]), -1, winner, j)
			if r.values[j] < r.values[winner] {
				winner = j
			}
		}
		if winner != i {
			r.swap(fmt.Sprintf("Tournament winner %d moves to position %d", r.values[winner], i), -1, i, winner)
		}
		r.narration(fmt.Sprintf("Tournament winner %d removed, %d elements remaining", r.values[i], n-i-1), -1, i)
	}
}

// introSort is quicksort with a recursion depth limit of twice the
// input's log depth; ranges that exceed it fall back to heap sort,
// bounding the worst case at O(n log n).
func (r *recorder) introSort() {
	n := len(r.values)
	depth := 2 * (bits.Len(uint(n)) - 1)
	r.narration(fmt.Sprintf("Starting introsort with depth limit %d", depth), -1)
	r.introSortRange(0, n-1, depth)
}

func (r *recorder) introSortRange(low, high, depth int) {
	if low >= high {
		return
	}
	if depth == 0 {
		r.narration(fmt.Sprintf("Depth limit reached, heap sorting range [%d, %d]", low, high), -1, low, high)
		r.heapSortRange(low, high)
		return
	}
	p := r.partition(low, high)
	r.introSortRange(low, p-1, depth-1)
	r.introSortRange(p+1, high, depth-1)
}

// heapSortRange heap sorts the inclusive range with the heap rooted at
// low.
func (r *recorder) heapSortRange(low, high int) {
	size := high - low + 1
	for i := size/2 - 1; i >= 0; i-- {
		r.heapifyRange(low, high, low+i)
	}
	for i := high; i > low; i-- {
		r.swap(fmt.Sprintf("Moving max element %d to position %d", r.values[low], i), -1, low, i)
		r.heapifyRange(low, i-1, low)
	}
}

func (r *recorder) heapifyRange(low, high, i int) {
	largest := i
	left := low + 2*(i-low) + 1
	right := left + 1

	if left <= high {
		r.comparison(fmt.Sprintf("Comparing child %d with %d", left, largest), -1, left, largest)
		if r.values[left] > r.values[largest] {
			largest = left
		}
	}
	if right <= high {
		r.comparison(fmt.Sprintf("Comparing child %d with %d", right, largest), -1, right, largest)
		if r.values[right] > r.values[largest] {
			largest = right
		}
	}

	if largest != i {
		r.swap(fmt.Sprintf("Restoring heap property between %d and %d", i, largest), -1, i, largest)
		r.heapifyRange(low, high, largest)
	}
}

// patienceSort deals elements onto piles solitaire style (each pile
// descending from bottom to top), then merges the piles back into the
// array by repeatedly extracting the smallest pile top.
func (r *recorder) patienceSort() {
	top := func(pile []int) int { return pile[len(pile)-1] }

	var piles [][]int
	for i := 0; i < len(r.values); i++ {
		element := r.values[i]
		placed := false
		for p := range piles {
			r.comparison(fmt.Sprintf("Comparing %d with top of pile %d", element, p), -1, i)
			if top(piles[p]) >= element {
				piles[p] = append(piles[p], element)
				r.narration(fmt.Sprintf("Placing %d on pile %d", element, p), -1, i)
				placed = true
				break
			}
		}
		if !placed {
			piles = append(piles, []int{element})
			r.narration(fmt.Sprintf("Creating pile %d for element %d", len(piles)-1, element), -1, i)
		}
	}
	r.narration(fmt.Sprintf("Dealing complete: %d piles", len(piles)), -1)

	for out := 0; len(piles) > 0; out++ {
		min := 0
		for p := 1; p < len(piles); p++ {
			r.comparison(fmt.Sprintf("Comparing pile tops %d and %d", top(piles[p]), top(piles[min])), -1, out)
			if top(piles[p]) < top(piles[min]) {
				min = p
			}
		}

		value := top(piles[min])
		piles[min] = piles[min][:len(piles[min])-1]
		r.write(fmt.Sprintf("Extracting minimum %d from pile %d", value, min), out, value)

		if len(piles[min]) == 0 {
			piles = append(piles[:min], piles[min+1:]...)
		}
	}
}
