package dragon4

// Setup initializes the round-to-even tie flags and the rational state
// (R, S, Mp, Mm) from the decomposed (F, E) pair, following the four cases
// of the Burger-Dybvig paper (Figure 1). B must already be set on ctx; the
// algebra here is expressed for b=2, the double's native radix — the
// output radix B only enters in Scale and Generate.
func (ctx *Context) Setup() {
	// IEEE round-to-nearest-even: a tie at the rendered value should land on
	// the representation whose mantissa is even, so the shortest digit
	// string is only allowed to use an inclusive boundary when F itself is
	// even. Forcing both flags false unconditionally still terminates but
	// under-rounds some inputs (e.g. 1e23 at radix 10 gets a leading digit
	// equal to the radix) -- this port does not expose a way to disable it.
	if ctx.F.IsEven() {
		ctx.LowOK = true
		ctx.HighOK = true
	} else {
		ctx.LowOK = false
		ctx.HighOK = false
	}

	switch {
	case ctx.E >= 0 && ctx.F.Is2To52():
		// Case 1: non-negative exponent, smallest mantissa for it ->
		// unequal gaps (the next double down has a smaller exponent, so
		// the gap below is half the gap above).
		ctx.T1.SetTwoExp(ctx.E + 2)
		ctx.F.Mul(&ctx.T1, &ctx.R)
		ctx.S.SetSmall(4)
		ctx.Mp.SetTwoExp(ctx.E + 1)
		ctx.Mm.SetTwoExp(ctx.E)

	case ctx.E >= 0:
		// Case 2: non-negative exponent, not the smallest mantissa ->
		// equal gaps.
		ctx.T1.SetTwoExp(ctx.E + 1)
		ctx.F.Mul(&ctx.T1, &ctx.R)
		ctx.S.SetSmall(2)
		ctx.T1.SetTwoExp(ctx.E)
		ctx.T1.Copy(&ctx.Mp)
		ctx.T1.Copy(&ctx.Mm)

	case ctx.E > MinExp && ctx.F.Is2To52():
		// Case 3: negative exponent, not the minimum exponent, smallest
		// mantissa for it -> unequal gaps.
		ctx.F.MulSmall(4, &ctx.R)
		ctx.S.SetTwoExp(2 - ctx.E)
		ctx.Mp.SetSmall(2)
		ctx.Mm.SetSmall(1)

	default:
		// Case 4: negative exponent, and either the minimum exponent (where
		// there is no smaller-exponent neighbor below) or not the smallest
		// mantissa -> equal gaps.
		ctx.F.MulSmall(2, &ctx.R)
		ctx.S.SetTwoExp(1 - ctx.E)
		ctx.Mp.SetSmall(1)
		ctx.Mm.SetSmall(1)
	}

	ctx.Log.Bigint("r(setup)", &ctx.R)
	ctx.Log.Bigint("s(setup)", &ctx.S)
	ctx.Log.Bigint("mp(setup)", &ctx.Mp)
	ctx.Log.Bigint("mm(setup)", &ctx.Mm)
}
