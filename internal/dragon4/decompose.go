// Package dragon4 implements the Burger-Dybvig/Dragon4 shortest-digit
// scale-and-generate algorithm over the bigint package's exact rational
// arithmetic. It is the engine behind the numconv package's Stringify; it
// has no notion of sinks, literals, or fast paths — those live one layer up
// in numconv, which is the only thing allowed to know about special values.
package dragon4

import (
	"math"

	"github.com/duktee/numconv/internal/bigint"
	"github.com/duktee/numconv/internal/tracelog"
)

const (
	ieeeDoubleExpBias = 1023
	ieeeDoubleExpMin  = -1022
	mantissaBits      = 52
)

// MinExp is the binary exponent of the smallest (denormal) IEEE-754 double,
// expressed in the same e such that value == f * 2^e. It is the boundary
// at which case 4 of Setup always applies regardless of f's mantissa shape.
const MinExp = ieeeDoubleExpMin - mantissaBits

// Context holds every bigint and scalar the Dragon4 algorithm touches for a
// single conversion. It is a plain value type: stack-allocated by the
// caller, never heap-allocated, and never shared across goroutines.
type Context struct {
	F, R, S, Mp, Mm, T1, T2 bigint.Int

	E int // binary exponent of F, such that value == F * 2^E
	B int // output radix, 2 <= B <= 36
	K int // scale exponent discovered by Scale

	LowOK, HighOK bool

	Log *tracelog.Logger // never nil; defaults to tracelog.Disabled
}

// Decompose extracts the 53-bit significand and binary exponent of a
// finite, positive, non-zero double into ctx.F and ctx.E, such that the
// value equals F * 2^E. The byte layout is taken from math.Float64bits, a
// portable 64-bit view of the IEEE-754 bit pattern — never from an unsafe
// pointer cast over the native float64 layout.
func (ctx *Context) Decompose(x float64) {
	bits := math.Float64bits(x)

	lo := uint32(bits)
	hi := uint32(bits >> 32)

	ctx.F.N = 2
	ctx.F.V[0] = lo
	ctx.F.V[1] = hi & 0x000fffff

	exp := int((hi >> 20) & 0x7ff)
	if exp == 0 {
		// Denormal: no hidden bit, smallest possible exponent.
		ctx.E = MinExp
	} else {
		// Normal: restore the implicit leading 1-bit at position 52.
		ctx.F.V[1] |= 0x00100000
		ctx.E = exp - ieeeDoubleExpBias - mantissaBits
	}

	ctx.F.N = 2
	ctx.F.Normalize()

	ctx.Log.Bigint("f", &ctx.F)
	ctx.Log.Step("decompose", ctx.E, ctx.B, ctx.LowOK, ctx.HighOK)
}
