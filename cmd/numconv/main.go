// Command numconv is a small host program around the numconv conversion
// library: it stringifies one value at a time, or streams a batch of
// values through a bounded cache, with optional structured tracing and
// Prometheus metrics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	state := &appState{}

	root := &cobra.Command{
		Use:           "numconv",
		Short:         "Convert IEEE-754 doubles to shortest round-tripping strings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&state.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "trace bigint/stage state to stderr")
	root.PersistentFlags().StringVar(&state.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (disabled if empty)")

	root.AddCommand(newStringifyCmd(state))
	root.AddCommand(newBatchCmd(state))

	return root
}
