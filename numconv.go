// Package numconv converts an IEEE-754 double-precision float into its
// shortest round-tripping textual representation at any radix from 2 to
// 36, using a Dragon4/Burger-Dybvig bigint-rational algorithm. It is a Go
// port of duktape's duk_numconv.c, restructured so the host program (the
// "embedding runtime" in the original's terms) supplies a Sink rather than
// pushing directly onto an interpreter's value stack or string table.
//
// The engine itself (internal/bigint, internal/dragon4) never touches a
// clock or the filesystem, and it logs only through the tracelog.Logger on
// its dragon4.Context, which Stringify sets to the no-op tracelog.Disabled.
// internal/bigint never allocates on the heap; dragon4's Generate and
// Format each return a newly allocated digit slice. The remaining ambient
// concerns live in this package's CLI host (cmd/numconv) and its
// supporting internal packages.
package numconv

import (
	"math"

	"github.com/duktee/numconv/internal/dragon4"
	"github.com/duktee/numconv/internal/tracelog"
)

// LiteralKind identifies one of the reserved-word outputs the CORE never
// computes digit-by-digit: NaN, the two infinities, and zero (whose sign
// is deliberately not rendered). The concrete spelling of each literal is
// owned by the Sink, not by this package, matching the spec's "external
// string table" collaborator boundary.
type LiteralKind int

const (
	LiteralZero LiteralKind = iota
	LiteralNaN
	LiteralInfinity
	LiteralNegInfinity
)

// Sink is the output collaborator the CORE delegates to: pushing a
// reserved literal, pushing a fast-path formatted unsigned integer, or
// pushing the general-path digit sequence produced by Generate/Format.
// Exactly one of these three methods is called per Stringify invocation.
type Sink interface {
	// PushLiteral pushes one of the reserved-word spellings for kind.
	PushLiteral(kind LiteralKind)

	// PushFormattedUint pushes the base-10 rendering of v, the fast path
	// taken for small non-negative integers that happen to be exact
	// float64 values. neg indicates a leading '-' should be prepended.
	PushFormattedUint(neg bool, v uint32)

	// PushDigits pushes the general-path result: a byte sequence already
	// containing the placed decimal point (if any), with no sign. neg
	// indicates a leading '-' should be prepended.
	PushDigits(neg bool, digits []byte)
}

// Stringify converts x to its shortest round-tripping base-radix textual
// form and delivers it to sink. radix must be in [2, 36]; behavior outside
// that range is undefined, as in the original specification -- callers
// that accept untrusted radixes should validate before calling (see
// internal/config for the CLI's validation layer).
//
// digitsHint is accepted for interface compatibility with the original
// engine's calling convention but is unused: this engine only ever
// produces the shortest correct representation (see package doc and
// SPEC_FULL.md's non-goals on user-requested precision).
func Stringify(sink Sink, x float64, radix int, digitsHint int) {
	stringifyWithLog(sink, x, radix, tracelog.Disabled)
}

// StringifyTraced behaves exactly like Stringify but routes the engine's
// internal bigint/stage tracing through log instead of discarding it. It
// exists for cmd/numconv's --verbose flag; ordinary callers should use
// Stringify, whose default (tracelog.Disabled) costs nothing.
func StringifyTraced(sink Sink, x float64, radix int, log *tracelog.Logger) {
	stringifyWithLog(sink, x, radix, log)
}

func stringifyWithLog(sink Sink, x float64, radix int, log *tracelog.Logger) {
	switch {
	case math.IsNaN(x):
		sink.PushLiteral(LiteralNaN)
		return
	case math.IsInf(x, 1):
		sink.PushLiteral(LiteralInfinity)
		return
	case math.IsInf(x, -1):
		sink.PushLiteral(LiteralNegInfinity)
		return
	case x == 0:
		// Sign of zero is deliberately dropped; -0.0 renders the same as 0.0.
		sink.PushLiteral(LiteralZero)
		return
	}

	neg := false
	if x < 0 {
		x = -x
		neg = true
	}

	// Fast path: radix-10 integers that fit exactly in a uint32 are
	// extremely common in practice and don't need the bigint machinery at
	// all -- the exact float64->uint32 round trip below is itself the
	// correctness proof for taking this path.
	if radix == 10 {
		if u := uint32(x); float64(u) == x {
			sink.PushFormattedUint(neg, u)
			return
		}
	}

	var ctx dragon4.Context
	ctx.B = radix
	ctx.Log = log

	ctx.Decompose(x)
	ctx.Setup()
	ctx.Scale()
	digits := ctx.Generate()

	sink.PushDigits(neg, dragon4.Format(digits, ctx.K))
}
