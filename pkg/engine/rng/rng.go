// Package rng provides the random source used by the simulation and generators.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation draws from.
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// New returns a source seeded with seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a source seeded from the wall clock, along with the seed used.
func NewTimeSeeded() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Range returns a value in [lo, hi).
func Range(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo)
}

// Bool returns true half of the time.
func Bool(src Source) bool {
	return src.Intn(2) == 0
}
