package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/duktee/numconv/internal/config"
	"github.com/duktee/numconv/internal/metrics"
	"github.com/duktee/numconv/internal/tracelog"
)

// appState holds the flags and lazily-built collaborators shared by every
// subcommand, mirroring this codebase's pattern of a single struct of
// persistent flags threaded through a command tree instead of package
// globals.
type appState struct {
	configPath  string
	verbose     bool
	metricsAddr string

	radix     int
	cacheSize int

	auditLogPath string
}

func (s *appState) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("numconv: %w", err)
	}
	if s.radix != 0 {
		cfg.DefaultRadix = s.radix
	}
	if s.metricsAddr != "" {
		cfg.MetricsAddr = s.metricsAddr
	}
	if s.cacheSize != 0 {
		cfg.CacheSize = s.cacheSize
	}
	return cfg, nil
}

// newLogger builds a trace logger writing through w (so batch's textio
// indentation applies to the engine's per-digit trace lines) when verbose
// tracing was requested, or the zero-cost disabled logger otherwise.
func (s *appState) newLogger(w io.Writer) *tracelog.Logger {
	if !s.verbose {
		return tracelog.Disabled
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return tracelog.New(zap.New(core))
}

// newRecorder builds a metrics.Recorder and, if addr is non-empty, starts a
// background HTTP server exposing it. The returned stop func should be
// called (or ignored, for a process that simply exits) when the caller is
// done; it is nil when no server was started.
func newRecorder(addr string) (*metrics.Recorder, func()) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	if addr == "" {
		return rec, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return rec, func() { _ = srv.Close() }
}
