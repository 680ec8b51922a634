package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/duktee/numconv"
	"github.com/duktee/numconv/internal/metrics"
	"github.com/duktee/numconv/internal/tracelog"
)

func newStringifyCmd(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stringify <float>",
		Short: "Convert a single float to its shortest round-tripping string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}

			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("numconv: parse %q: %w", args[0], err)
			}

			rec, stop := newRecorder(cfg.MetricsAddr)
			if stop != nil {
				defer stop()
			}

			s := stringifyOne(x, cfg.DefaultRadix, state.newLogger(cmd.ErrOrStderr()), rec)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().IntVar(&state.radix, "radix", 0, "output radix, 2-36 (default from config, else 10)")
	return cmd
}

// stringifyOne performs one conversion and records its dispatch-path
// metric, shared by the stringify and batch commands.
func stringifyOne(x float64, radix int, log *tracelog.Logger, rec *metrics.Recorder) string {
	var sink numconv.StringBuilderSink
	numconv.StringifyTraced(&sink, x, radix, log)
	rec.ObserveConversion(radix, classifyPath(x, radix))
	return sink.String()
}

func classifyPath(x float64, radix int) metrics.Path {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0) || x == 0:
		return metrics.PathLiteral
	case radix == 10:
		abs := math.Abs(x)
		if u := uint32(abs); float64(u) == abs {
			return metrics.PathFastUint
		}
	}
	return metrics.PathGeneral
}
