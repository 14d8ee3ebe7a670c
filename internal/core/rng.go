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

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillDensity sets each cell alive independently with probability density.
func FillDensity(r *RNG, buf []uint8, density float64) {
	for i := range buf {
		buf[i] = Dead
		if r.Chance(density) {
			buf[i] = Alive
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
