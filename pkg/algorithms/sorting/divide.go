package sorting

import "fmt"

func (r *recorder) quickSort() {
	r.quickSortRange(0, len(r.values)-1)
}

func (r *recorder) quickSortRange(low, high int) {
	if low >= high {
		return
	}
	p := r.partition(low, high)
	r.quickSortRange(low, p-1)
	r.quickSortRange(p+1, high)
}

// partition uses the last element as pivot; elements strictly below the
// pivot move to the left partition (ties stay right, matching the
// textbook Lomuto scheme).
func (r *recorder) partition(low, high int) int {
	pivot := r.values[high]
	i := low - 1

	r.narration(fmt.Sprintf("Using %d as pivot", pivot), high)

	for j := low; j < high; j++ {
		r.comparison(fmt.Sprintf("Comparing %d with pivot %d", r.values[j], pivot), high, j)
		if r.values[j] < pivot {
			i++
			r.swap(fmt.Sprintf("Moving %d to the left partition", r.values[j]), high, i, j)
		}
	}

	r.swap("Placing pivot in its final position", i+1, i+1, high)
	return i + 1
}

func (r *recorder) mergeSort() {
	r.mergeSortRange(0, len(r.values)-1)
}

func (r *recorder) mergeSortRange(left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2

	r.narration(fmt.Sprintf("Dividing range [%d, %d] at %d", left, right, mid), mid, left, right)

	r.mergeSortRange(left, mid)
	r.mergeSortRange(mid+1, right)
	r.merge(left, mid, right)
}

// merge compares across the two sorted halves, then writes the merged
// result back one position at a time. Ties favor the left half, which
// keeps the sort stable.
func (r *recorder) merge(left, mid, right int) {
	r.narration(fmt.Sprintf("Merging ranges [%d, %d] and [%d, %d]", left, mid, mid+1, right), mid, left, right)

	temp := make([]int, 0, right-left+1)
	i, j := left, mid+1

	for i <= mid && j <= right {
		r.comparison(fmt.Sprintf("Comparing %d and %d", r.values[i], r.values[j]), -1, i, j)
		if r.values[i] <= r.values[j] {
			temp = append(temp, r.values[i])
			i++
		} else {
			temp = append(temp, r.values[j])
			j++
		}
	}
	for ; i <= mid; i++ {
		temp = append(temp, r.values[i])
	}
	for ; j <= right; j++ {
		temp = append(temp, r.values[j])
	}

	for k, value := range temp {
		if r.values[left+k] != value {
			r.write(fmt.Sprintf("Writing %d at position %d", value, left+k), left+k, value)
		}
	}
}

func (r *recorder) heapSort() {
	n := len(r.values)

	for i := n/2 - 1; i >= 0; i-- {
		r.heapifyDown(n, i)
	}
	r.narration("Max heap built", -1)

	for i := n - 1; i > 0; i-- {
		r.swap(fmt.Sprintf("Moving max element %d to the sorted portion", r.values[0]), -1, 0, i)
		r.heapifyDown(i, 0)
	}
}

func (r *recorder) heapifyDown(n, i int) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < n {
		r.comparison(fmt.Sprintf("Comparing child %d with %d", left, largest), -1, left, largest)
		if r.values[left] > r.values[largest] {
			largest = left
		}
	}
	if right < n {
		r.comparison(fmt.Sprintf("Comparing child %d with %d", right, largest), -1, right, largest)
		if r.values[right] > r.values[largest] {
			largest = right
		}
	}

	if largest != i {
		r.swap(fmt.Sprintf("Restoring heap property between %d and %d", i, largest), -1, i, largest)
		r.heapifyDown(n, largest)
	}
}
