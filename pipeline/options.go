// SPDX-License-Identifier: MIT
// Package: pipeline
//
// options.go — functional configuration for Runner.
// Option constructors panic on nonsensical values (programmer error).

package pipeline

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/edgentropy/motif"
)

// tracerName is the instrumentation scope of every pipeline span.
const tracerName = "edgentropy.pipeline"

// Option customizes a Runner.
type Option func(*options)

type options struct {
	mode           motif.Mode
	kernel         motif.Kernel
	workers        int
	partWorkers    int
	logger         *slog.Logger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
}

// defaultOptions: ModeEdges, bitset kernel, sequential, default slog logger,
// no metrics, global tracer provider.
func defaultOptions() options {
	return options{
		mode:        motif.ModeEdges,
		kernel:      motif.KernelBitset,
		workers:     1,
		partWorkers: 1,
		logger:      slog.Default(),
	}
}

// WithMode selects which pairs are counted. See motif.WithMode.
func WithMode(m motif.Mode) Option {
	if m != motif.ModeEdges && m != motif.ModeExhaustive {
		panic(fmt.Sprintf("pipeline: WithMode(%d): unknown mode", int(m)))
	}
	return func(o *options) { o.mode = m }
}

// WithKernel selects the shape kernel. See motif.WithKernel.
func WithKernel(k motif.Kernel) Option {
	if k != motif.KernelBitset && k != motif.KernelScan {
		panic(fmt.Sprintf("pipeline: WithKernel(%d): unknown kernel", int(k)))
	}
	return func(o *options) { o.kernel = k }
}

// WithWorkers bounds the goroutines counting motifs of one graph. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("pipeline: WithWorkers(%d): need at least 1", n))
	}
	return func(o *options) { o.workers = n }
}

// WithPartitionWorkers bounds the number of partitions processed concurrently.
// Panics if n < 1.
func WithPartitionWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("pipeline: WithPartitionWorkers(%d): need at least 1", n))
	}
	return func(o *options) { o.partWorkers = n }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
// A nil *Metrics disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
// Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("pipeline: WithTracerProvider(nil)")
	}
	return func(o *options) { o.tracerProvider = tp }
}

// tracer resolves the configured provider, falling back to the global one.
func (o options) tracer() trace.Tracer {
	if o.tracerProvider != nil {
		return o.tracerProvider.Tracer(tracerName)
	}

	return otel.Tracer(tracerName)
}

// motifOptions maps the runner configuration onto motif.Count options.
func (o options) motifOptions() []motif.Option {
	return []motif.Option{
		motif.WithMode(o.mode),
		motif.WithKernel(o.kernel),
		motif.WithWorkers(o.workers),
	}
}
