package dragon4

import "github.com/duktee/numconv/internal/bigint"

// maxDigits is a generous static bound on how many digits Generate can ever
// produce for a float64: roughly log_2(|x|) plus a small constant, bounded
// in practice by the ~1100-bit headroom of the bigints involved. It exists
// only to guard against an algorithm bug turning into an infinite loop; no
// finite float64 input reaches anywhere near it.
const maxDigits = 128

// symbolTable is the process-wide, read-only digit alphabet. It is a var
// rather than a Go array constant (Go has no const arrays) but is never
// written to after package init, and every access is through Digit.
var symbolTable = [36]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
	'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't',
	'u', 'v', 'w', 'x', 'y', 'z',
}

// Digit maps a digit value in [0, 35] to its alphabet character.
func Digit(d byte) byte {
	return symbolTable[d]
}

// Generate runs the digit-production loop: long-divide r*B by s to extract
// each digit, then test whether the current prefix already uniquely
// identifies the input double. It returns the generated digit *values*
// (not characters; each in [0, B-1] after the final-digit carry fix-up
// below) most-significant first.
//
// Unlike the reference C implementation, which can emit a digit equal to B
// at the final position and index one past the last alphabet entry, this
// port performs a proper carry into the previous digit when that happens
// (see finishCarry), so every returned digit is always a valid index into
// the symbol table.
func (ctx *Context) Generate() []byte {
	digits := make([]byte, 0, 24)

	for {
		ctx.R.MulSmall(uint32(ctx.B), &ctx.T1) // t1 = r * B

		var d uint32
		for ctx.T1.Compare(&ctx.S) >= 0 {
			ctx.T1.Sub(&ctx.S, &ctx.T2) // t2 = t1 - s
			ctx.T2.Copy(&ctx.T1)        // t1 = t2
			d++
		}
		ctx.T1.Copy(&ctx.R) // r = remainder of (r*B)/s; d = quotient, in [0, B-1]

		ctx.Mp.MulSmall(uint32(ctx.B), &ctx.T1)
		ctx.T1.Copy(&ctx.Mp)
		ctx.Mm.MulSmall(uint32(ctx.B), &ctx.T1)
		ctx.T1.Copy(&ctx.Mm)

		tc1 := lowBoundaryReached(&ctx.R, &ctx.Mm, ctx.LowOK)

		ctx.R.Add(&ctx.Mp, &ctx.T1) // t1 = r + m+
		tc2 := highBoundaryReached(&ctx.T1, &ctx.S, ctx.HighOK)

		ctx.Log.Step("generate", ctx.K, ctx.B, ctx.LowOK, ctx.HighOK)

		switch {
		case tc1 && tc2:
			// Tied between stopping on d and stopping on d+1: break the tie
			// toward whichever one the remaining r/s fraction is actually
			// closer to.
			ctx.R.MulSmall(2, &ctx.T1)
			if ctx.T1.Compare(&ctx.S) < 0 {
				digits = append(digits, byte(d))
			} else {
				digits = append(digits, byte(d+1))
			}
			return ctx.finishCarry(digits)
		case tc1:
			digits = append(digits, byte(d))
			return ctx.finishCarry(digits)
		case tc2:
			digits = append(digits, byte(d+1))
			return ctx.finishCarry(digits)
		default:
			digits = append(digits, byte(d))
			if len(digits) >= maxDigits {
				return ctx.finishCarry(digits)
			}
		}
	}
}

// lowBoundaryReached is "compare(r, m-) <= (lowOK ? 0 : -1)" from the
// reference algorithm: the remaining fraction already falls inside (or, if
// lowOK, touches) the lower half of the rounding interval.
func lowBoundaryReached(r, mm *bigint.Int, lowOK bool) bool {
	c := r.Compare(mm)
	if lowOK {
		return c <= 0
	}
	return c < 0
}

// highBoundaryReached is "compare(r+m+, s) >= (highOK ? 0 : 1)" from the
// reference algorithm. Note the reference C source actually compares
// against the *address* of its high_ok flag (`&nc_ctx->high_ok`) rather
// than the flag's value -- a transcription bug that happens to evaluate
// true in C because pointers are never null. This port always compares the
// boolean value, as specified.
func highBoundaryReached(rPlusMp, s *bigint.Int, highOK bool) bool {
	c := rPlusMp.Compare(s)
	if highOK {
		return c >= 0
	}
	return c > 0
}

// finishCarry fixes up the one corner the reference algorithm leaves as an
// out-of-range digit: if the tie-break or the "stop on d+1" branch pushed
// the final digit to exactly base (36 when base is 36), symbolTable has no
// such entry. Rather than special-case base==36, the carry is propagated
// uniformly: a run of (base-1) digits immediately preceding the overflow
// also rolls over, and if the carry reaches past the first digit, a
// leading 1 is prepended. That last case shifts every digit one position
// to the right of where Scale predicted (e.g. "999" rounding up to "1000"),
// so ctx.K is incremented to match -- Output positions digits from K, and
// would otherwise place the decimal point one digit too far left.
func (ctx *Context) finishCarry(digits []byte) []byte {
	base := byte(ctx.B)
	i := len(digits) - 1
	for i >= 0 && digits[i] == base {
		digits[i] = 0
		i--
		if i >= 0 {
			digits[i]++
		}
	}
	if i < 0 {
		// Carried out of the most significant digit: prepend a 1 and widen
		// the integer part by one position.
		out := make([]byte, len(digits)+1)
		out[0] = 1
		copy(out[1:], digits)
		ctx.K++
		return out
	}
	return digits
}
