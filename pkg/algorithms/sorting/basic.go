package sorting

import "fmt"

func (r *recorder) bubbleSort() {
	n := len(r.values)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			r.comparison(fmt.Sprintf("Comparing elements at positions %d and %d", j, j+1), -1, j, j+1)
			if r.values[j] > r.values[j+1] {
				r.swap(fmt.Sprintf("Swapping elements at positions %d and %d", j, j+1), -1, j, j+1)
			}
		}
	}
}

func (r *recorder) selectionSort() {
	n := len(r.values)
	for i := 0; i < n-1; i++ {
		minIdx := i
		r.narration(fmt.Sprintf("Selecting minimum from position %d", i), -1, i)

		for j := i + 1; j < n; j++ {
			r.comparison(fmt.Sprintf("Comparing position %d with current minimum at %d", j, minIdx), -1, j, minIdx)
			if r.values[j] < r.values[minIdx] {
				minIdx = j
				r.narration(fmt.Sprintf("New minimum found at position %d", minIdx), -1, minIdx)
			}
		}

		if minIdx != i {
			r.swap(fmt.Sprintf("Swapping minimum element to position %d", i), -1, i, minIdx)
		}
	}
}

func (r *recorder) insertionSort() {
	n := len(r.values)
	for i := 1; i < n; i++ {
		key := r.values[i]
		j := i - 1

		r.narration(fmt.Sprintf("Inserting element %d into the sorted portion", key), -1, i)

		for j >= 0 {
			r.comparison(fmt.Sprintf("Comparing %d with %d", r.values[j], key), -1, j, j+1)
			if r.values[j] <= key {
				break
			}
			r.write(fmt.Sprintf("Shifting element %d to the right", r.values[j]), j+1, r.values[j])
			j--
		}
		r.write(fmt.Sprintf("Placing %d at position %d", key, j+1), j+1, key)
	}
}
