package dragon4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duktee/numconv/internal/tracelog"
)

func TestFinishCarryNoOverflowIsUnchanged(t *testing.T) {
	ctx := &Context{B: 10, K: 3, Log: tracelog.Disabled}
	digits := ctx.finishCarry([]byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, digits)
	assert.Equal(t, 3, ctx.K)
}

func TestFinishCarryPropagatesThroughTrailingMax(t *testing.T) {
	// 1,9,10 at base 10 rolls the trailing 9 over too: 1,9,10 -> 1,10,0 -> 2,0,0.
	ctx := &Context{B: 10, K: 3, Log: tracelog.Disabled}
	digits := ctx.finishCarry([]byte{1, 9, 10})
	assert.Equal(t, []byte{2, 0, 0}, digits)
	assert.Equal(t, 3, ctx.K, "no leading digit was added, so K is untouched")
}

func TestFinishCarryOverflowingLeadingDigitBumpsK(t *testing.T) {
	// 9,9,10 at base 10 carries all the way out: 9,9,10 -> 9,10,0 -> 10,0,0
	// -> prepend a leading 1, i.e. what was "999" rounds up to "1000".
	ctx := &Context{B: 10, K: 3, Log: tracelog.Disabled}
	digits := ctx.finishCarry([]byte{9, 9, 10})
	assert.Equal(t, []byte{1, 0, 0, 0}, digits)
	assert.Equal(t, 4, ctx.K, "an extra leading digit widens the integer part by one")
}

func TestFinishCarrySingleDigitOverflow(t *testing.T) {
	ctx := &Context{B: 10, K: 1, Log: tracelog.Disabled}
	digits := ctx.finishCarry([]byte{10})
	assert.Equal(t, []byte{1, 0}, digits)
	assert.Equal(t, 2, ctx.K)
}

func TestFinishCarryFormatsBackToExpectedString(t *testing.T) {
	// Exercises the bug this carry fix-up and K-adjustment together resolve:
	// without the K bump, this would render as "100.0" instead of "1000".
	ctx := &Context{B: 10, K: 3, Log: tracelog.Disabled}
	digits := ctx.finishCarry([]byte{9, 9, 10})
	out := Format(digits, ctx.K)
	require.Equal(t, "1000", string(out))
}
