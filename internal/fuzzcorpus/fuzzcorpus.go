// Package fuzzcorpus generates reproducible pseudo-random doubles for
// property tests. Every Generator draws from math/rand/v2 with an explicit
// seed (never wall-clock entropy), so a given seed pair yields the same
// sequence across runs and machines and a failing case stays reproducible.
package fuzzcorpus

import (
	"math"
	"math/rand/v2"
)

// Generator produces doubles from a fixed seed.
type Generator struct {
	r *rand.Rand
}

// New returns a Generator seeded deterministically from seed1/seed2.
func New(seed1, seed2 uint64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Any returns an arbitrary bit pattern reinterpreted as a double, including
// NaNs, infinities, and subnormals -- callers that only want finite values
// should filter with math.IsNaN/math.IsInf.
func (g *Generator) Any() float64 {
	return float64frombits(g.r.Uint64())
}

// Finite returns a finite, non-NaN double, redrawing until Any produces
// one; the distribution this skews toward is irrelevant for the round-trip
// and digit-range properties these values feed.
func (g *Generator) Finite() float64 {
	for {
		x := g.Any()
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			return x
		}
	}
}

// Denormal returns a finite subnormal double with a uniformly random
// mantissa, exercising the MinExp boundary Decompose special-cases.
func (g *Generator) Denormal() float64 {
	bits := g.r.Uint64() & denormalMantissaMask // zero exponent, random mantissa
	if bits == 0 {
		bits = 1
	}
	return float64frombits(bits)
}

// MantissaBoundary returns a finite double whose significand is exactly
// 2^52, the asymmetric-rounding-interval boundary the Setup step branches
// on via bigint.Int.Is2To52.
func (g *Generator) MantissaBoundary(exponentBits uint64) float64 {
	const mantissaTwoTo52 = uint64(1) << 52
	bits := (exponentBits << 52) | mantissaTwoTo52
	return float64frombits(bits)
}

const denormalMantissaMask = (uint64(1) << 52) - 1

func float64frombits(bits uint64) float64 {
	return math.Float64frombits(bits)
}
