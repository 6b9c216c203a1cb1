package testutil

import "math/rand/v2"

// FixedRNG returns a PCG-backed generator with a fixed seed so noise
// tests are reproducible.
func FixedRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// CountEqual returns how many values equal target exactly.
func CountEqual(values []float64, target float64) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}
