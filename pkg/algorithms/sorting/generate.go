package sorting

import (
	"math/rand"

	"github.com/aretw0/strobe/pkg/domain"
)

func clampSize(n int) int {
	if n < domain.MinArraySize {
		return domain.MinArraySize
	}
	if n > domain.MaxArraySize {
		return domain.MaxArraySize
	}
	return n
}

// Random generates n values uniformly drawn from 1..n. The seed makes
// input generation reproducible; executors themselves are seed-free.
func Random(n int, seed int64) []int {
	n = clampSize(n)
	rng := rand.New(rand.NewSource(seed))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(n) + 1
	}
	return values
}

// Reversed generates n..1, the classic worst case for the quadratic
// sorts.
func Reversed(n int) []int {
	n = clampSize(n)
	values := make([]int, n)
	for i := range values {
		values[i] = n - i
	}
	return values
}

// NearlySorted generates 1..n with a tenth of the positions shuffled.
func NearlySorted(n int, seed int64) []int {
	n = clampSize(n)
	rng := rand.New(rand.NewSource(seed))
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	for i := 0; i < n/10; i++ {
		a := rng.Intn(n)
		b := rng.Intn(n)
		values[a], values[b] = values[b], values[a]
	}
	return values
}
