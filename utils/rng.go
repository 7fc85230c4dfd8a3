package utils

import "math/rand/v2"

// NewRNG creates a deterministic PCG-backed generator for the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
