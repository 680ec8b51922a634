// Package tracelog provides the optional structured tracing of Dragon4's
// internal bigint state, grounded in the reference implementation's
// DUK_DPRINT/BI_PRINT debug macros -- those were compiled out entirely in
// release builds; this port keeps the same "pay nothing when disabled"
// property but checks at runtime, via zap's level gate, instead of at
// compile time via a preprocessor flag.
package tracelog

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/duktee/numconv/internal/bigint"
)

// Logger wraps a *zap.SugaredLogger for the narrow tracing vocabulary the
// conversion engine needs. The zero value (which is what Disabled is)
// discards every call; use New for a logger that writes.
type Logger struct {
	sugar   *zap.SugaredLogger
	enabled bool
}

// Disabled is the package-level no-op logger. It is the default on every
// dragon4.Context the numconv package constructs, so production callers
// pay no formatting or allocation cost for tracing they never asked for.
var Disabled = &Logger{}

// New wraps z as a tracing Logger, gated on zap's debug level so that
// Bigint/Step calls are free when the underlying core would discard them
// anyway.
func New(z *zap.Logger) *Logger {
	return &Logger{
		sugar:   z.Sugar(),
		enabled: z.Core().Enabled(zap.DebugLevel),
	}
}

// Bigint logs a limb dump of b under name, equivalent to the reference
// implementation's bi_print. Formatting the (up to 35-limb) array is
// skipped entirely unless the logger is both non-nil and debug-enabled.
func (l *Logger) Bigint(name string, b *bigint.Int) {
	if l == nil || !l.enabled {
		return
	}
	l.sugar.Debugw("bigint", "name", name, "n", b.N, "limbs", formatLimbs(b))
}

// Step logs the per-iteration context of the scale/generate loops,
// equivalent to the reference implementation's per-round DUK_DPRINT calls.
func (l *Logger) Step(stage string, k, b int, lowOK, highOK bool) {
	if l == nil || !l.enabled {
		return
	}
	l.sugar.Debugw(stage, "k", k, "base", b, "lowOK", lowOK, "highOK", highOK)
}

func formatLimbs(b *bigint.Int) string {
	if b.N == 0 {
		return "0"
	}
	s := ""
	for i := b.N - 1; i >= 0; i-- {
		s += fmt.Sprintf("%08x", b.V[i])
		if i > 0 {
			s += " "
		}
	}
	return s
}
