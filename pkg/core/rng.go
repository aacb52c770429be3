package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). n <= 0 yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Permutation returns 0..n-1 shuffled with a Fisher-Yates pass from the top
// index down, so equal seeds give equal tables.
func (r *RNG) Permutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.r.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Seeds derives n child seeds, used to fan out independent runs.
func (r *RNG) Seeds(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = r.r.Int64()
	}
	return out
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
