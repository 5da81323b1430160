package vmath

import (
	"math"

	"golang.org/x/exp/rand"
)

// Uniform draws from [lo, hi)
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// UnitSphere draws a uniformly distributed point on the unit sphere
// Returns (x, y, z) using θ = 2πu, φ = acos(2v − 1)
func UnitSphere(rng *rand.Rand) (x, y, z float64) {
	theta := Tau * rng.Float64()
	phi := math.Acos(2*rng.Float64() - 1)
	sinPhi := math.Sin(phi)
	return sinPhi * math.Cos(theta), sinPhi * math.Sin(theta), math.Cos(phi)
}

// NewRand returns a deterministic generator for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
