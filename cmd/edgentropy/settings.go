package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/edgentropy/config"
	"github.com/katalvlaran/edgentropy/pipeline"
)

// settings loads the configuration and applies explicitly set flags on top.
func (a *app) settings(cmd *cobra.Command) (config.Config, error) {
	if a.envFile != "" {
		if err := config.LoadDotenv(a.envFile); err != nil {
			return config.Default(), err
		}
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Lookup(name) != nil && f.Changed(name) {
			apply()
		}
	}
	set("log-level", func() { cfg.Log.Level = a.logLevel })
	set("log-format", func() { cfg.Log.Format = a.logFormat })
	set("metrics-textfile", func() { cfg.Metrics.Textfile = a.metricsTextfile })
	set("trace", func() { cfg.Tracing.Stdout = a.trace })
	set("index-base", func() { cfg.IndexBase = a.indexBase })
	set("partition", func() { cfg.Partition = a.partition })
	set("mode", func() { cfg.Mode = a.mode })
	set("kernel", func() { cfg.Kernel = a.kernel })
	set("workers", func() { cfg.Workers = a.workers })
	set("partition-workers", func() { cfg.PartitionWorkers = a.partWorkers })

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// session is the wired runtime of one command: logger, runner and the
// observability sinks that are flushed on close.
type session struct {
	cfg      config.Config
	runID    string
	log      *slog.Logger
	runner   *pipeline.Runner
	registry *prometheus.Registry
	tp       *sdktrace.TracerProvider
}

// open wires logging, metrics and tracing around a new Runner.
func (a *app) open(cmd *cobra.Command) (*session, error) {
	cfg, err := a.settings(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, runID: uuid.NewString()}

	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	s.log = logger.With(slog.String("run_id", s.runID), slog.String("command", cmd.Name()))

	opts := append(cfg.PipelineOptions(), pipeline.WithLogger(s.log))
	if cfg.Metrics.Textfile != "" {
		s.registry = prometheus.NewRegistry()
		opts = append(opts, pipeline.WithMetrics(pipeline.NewMetrics(s.registry)))
	}
	if cfg.Tracing.Stdout {
		s.tp, err = newStdoutTracer(cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithTracerProvider(s.tp))
	}
	s.runner = pipeline.New(opts...)

	s.log.Debug("configuration loaded",
		slog.String("mode", cfg.Mode),
		slog.String("kernel", cfg.Kernel),
		slog.Int("workers", cfg.Workers),
		slog.String("partition", cfg.Partition),
		slog.Int("index_base", cfg.IndexBase),
	)

	return s, nil
}

// close flushes spans and writes the metrics textfile.
func (s *session) close(ctx context.Context) error {
	var errs []error
	if s.tp != nil {
		if err := s.tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush traces: %w", err))
		}
	}
	if s.registry != nil {
		if err := prometheus.WriteToTextfile(s.cfg.Metrics.Textfile, s.registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		} else {
			s.log.Debug("metrics written", slog.String("path", s.cfg.Metrics.Textfile))
		}
	}

	return errors.Join(errs...)
}

func newStdoutTracer(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
