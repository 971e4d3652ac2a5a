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

// Float64n returns a random float64 in [0, n).
func (r *RNG) Float64n(n float64) float64 {
	if n <= 0 {
		return 0
	}
	return r.r.Float64() * n
}

// Scatter returns count random (x, y, value) triples with x in [0, w),
// y in [0, h) and value in [0, maxValue).
func (r *RNG) Scatter(count int, w, h, maxValue float64) [][3]float64 {
	if count <= 0 {
		return nil
	}
	out := make([][3]float64, count)
	for i := range out {
		out[i] = [3]float64{r.Float64n(w), r.Float64n(h), r.Float64n(maxValue)}
	}
	return out
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
