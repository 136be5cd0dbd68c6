package sorter

import "math/rand/v2"

// Permutation returns 1..n in ascending order.
func Permutation(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

// NewShuffled builds an engine over a shuffled permutation of 1..n.
func NewShuffled(n int, rng *rand.Rand, stream Stream, opts Options) *Engine {
	values := Permutation(n)
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return NewEngine(values, stream, opts)
}
