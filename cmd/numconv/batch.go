package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/segmentio/textio"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/duktee/numconv/internal/config"
	"github.com/duktee/numconv/internal/convcache"
	"github.com/duktee/numconv/internal/metrics"
	"github.com/duktee/numconv/internal/tracelog"
	"github.com/duktee/numconv/internal/wire"
)

func newBatchCmd(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one float per line, memoizing repeated values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("numconv: open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			rec, stop := newRecorder(cfg.MetricsAddr)
			if stop != nil {
				defer stop()
			}

			var traceOut io.Writer = cmd.ErrOrStderr()
			if state.verbose {
				traceOut = textio.NewPrefixWriter(cmd.ErrOrStderr(), "  ")
			}
			log := state.newLogger(traceOut)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runBatch(ctx, in, cmd.OutOrStdout(), cfg, log, rec, state.auditLogPath)
		},
	}
	cmd.Flags().IntVar(&state.radix, "radix", 0, "output radix, 2-36 (default from config, else 10)")
	cmd.Flags().IntVar(&state.cacheSize, "cache-size", 0, "memoization cache capacity (default from config)")
	cmd.Flags().StringVar(&state.auditLogPath, "audit-log", "", "write a binary replay log of every conversion to this path")
	return cmd
}

// runBatch converts one float per line from in, writing one result per
// line to out. Conversions are memoized in a convcache.Cache sized by
// cfg.CacheSize; between lines (never mid-conversion, since the CORE
// itself is not cancellable) it checks ctx for SIGINT/SIGTERM and stops
// early. When out is a terminal, progress is rendered with a live bar;
// otherwise the bar is suppressed so redirected output stays clean. If
// auditLogPath is set, every conversion (including cache hits) is appended
// to an in-memory wire.Record log and flushed to that path on return, so a
// batch run can be replayed without re-parsing its decimal input.
func runBatch(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, log *tracelog.Logger, rec *metrics.Recorder, auditLogPath string) (err error) {
	cache := convcache.New(cfg.CacheSize)
	var audit []wire.Record
	if auditLogPath != "" {
		defer func() {
			if flushErr := flushAuditLog(auditLogPath, audit); err == nil {
				err = flushErr
			}
		}()
	}

	var bar *mpb.Bar
	var progress *mpb.Progress
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		progress = mpb.New(mpb.WithOutput(os.Stderr))
		bar = progress.New(0,
			mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding(" ").Rbound("]"),
			mpb.PrependDecorators(decor.Name("batch")),
			mpb.AppendDecorators(decor.CurrentNoUnit("%d lines")),
		)
	}

	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			if bar != nil {
				bar.Abort(true)
				progress.Wait()
			}
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		x, parseErr := strconv.ParseFloat(line, 64)
		if parseErr != nil {
			return fmt.Errorf("numconv: parse %q: %w", line, parseErr)
		}

		key := convcache.Key(x, cfg.DefaultRadix)
		s, hit := cache.Get(key)
		if !hit {
			s = stringifyOne(x, cfg.DefaultRadix, log, rec)
			cache.Put(key, s)
		}

		if auditLogPath != "" {
			audit = append(audit, wire.Record{
				Bits:  math.Float64bits(x),
				Radix: uint8(cfg.DefaultRadix),
				Text:  s,
			})
		}

		if _, werr := fmt.Fprintln(writer, s); werr != nil {
			return fmt.Errorf("numconv: write output: %w", werr)
		}

		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Abort(false)
		progress.Wait()
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return fmt.Errorf("numconv: read input: %w", scanErr)
	}
	return nil
}

func flushAuditLog(path string, records []wire.Record) error {
	var buf bytes.Buffer
	wire.Encode(&buf, records)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("numconv: write audit log %s: %w", path, err)
	}
	return nil
}
