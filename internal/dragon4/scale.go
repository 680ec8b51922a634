package dragon4

import "github.com/duktee/numconv/internal/bigint"

// Scale finds the integer K such that B^(K-1) <= value < B^K (with the
// round-to-even flags adjusting the boundary), by repeatedly multiplying S
// upward (K too low) or multiplying R/Mp/Mm downward (K too high). Exactly
// one of the two loops below ever runs: if the first loop increments K at
// all, the starting K was too low and can never also be too high, so the
// second loop is skipped entirely.
//
// A logarithm-based initial estimate for K would cut the iteration count
// for very large/small magnitudes; it is not used, since the reference
// algorithm doesn't need it for correctness and the loop form stays
// directly auditable against that reference.
func (ctx *Context) Scale() {
	k := 0

	for {
		ctx.R.Add(&ctx.Mp, &ctx.T1) // t1 = r + m+
		if !kTooLow(&ctx.T1, &ctx.S, ctx.HighOK) {
			break
		}
		// k is too low: grow s by one more factor of B.
		ctx.S.MulSmall(uint32(ctx.B), &ctx.T2)
		ctx.T2.Copy(&ctx.S)
		k++
		ctx.Log.Step("scale(inc)", k, ctx.B, ctx.LowOK, ctx.HighOK)
	}

	if k == 0 {
		for {
			ctx.R.Add(&ctx.Mp, &ctx.T1)             // t1 = r + m+
			ctx.T1.MulSmall(uint32(ctx.B), &ctx.T2) // t2 = (r + m+) * B
			if !kTooHigh(&ctx.T2, &ctx.S, ctx.HighOK) {
				break
			}
			// k is too high: shift r, m+, m- up by one factor of B instead.
			ctx.R.MulSmall(uint32(ctx.B), &ctx.T1)
			ctx.T1.Copy(&ctx.R)
			ctx.Mp.MulSmall(uint32(ctx.B), &ctx.T1)
			ctx.T1.Copy(&ctx.Mp)
			ctx.Mm.MulSmall(uint32(ctx.B), &ctx.T1)
			ctx.T1.Copy(&ctx.Mm)
			k--
			ctx.Log.Step("scale(dec)", k, ctx.B, ctx.LowOK, ctx.HighOK)
		}
	}

	ctx.K = k
	ctx.Log.Step("scale(final)", k, ctx.B, ctx.LowOK, ctx.HighOK)
}

// kTooLow reports whether the current K is too low, i.e. whether
// r+m+ reaches or passes s. highOK makes the boundary inclusive
// ("compare(r+m+, s) >= (highOK ? 0 : 1)" in the reference algorithm).
func kTooLow(rPlusMp, s *bigint.Int, highOK bool) bool {
	c := rPlusMp.Compare(s)
	if highOK {
		return c >= 0
	}
	return c > 0
}

// kTooHigh reports whether the current K is too high, i.e. whether
// (r+m+)*B still falls at or below s. The inclusive/exclusive sense of
// highOK is the mirror image of kTooLow's, because this is testing the
// complementary condition against the same flag
// ("compare((r+m+)*B, s) <= (highOK ? -1 : 0)" in the reference algorithm).
func kTooHigh(rPlusMpTimesB, s *bigint.Int, highOK bool) bool {
	c := rPlusMpTimesB.Compare(s)
	if highOK {
		return c < 0
	}
	return c <= 0
}
