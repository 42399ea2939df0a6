// SPDX-License-Identifier: MIT
// Package: pipeline
//
// pipeline.go — Runner and its entry points.
//
// Every entry point follows the same shape: one span for the whole run, one
// child span per stage, a run counter with the outcome, and a log record at
// the end. Results are all-or-nothing.

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/entropy"
	"github.com/katalvlaran/edgentropy/motif"
	"github.com/katalvlaran/edgentropy/partition"
)

// Stage names, shared by spans, the stage histogram and log records.
const (
	stageAdjacency = "adjacency.build"
	stageCount     = "motif.count"
	stageGraph     = "entropy.graph"
	stageAssign    = "entropy.assign"
	stagePartition = "partition"
)

// Result holds every intermediate product of one graph.
type Result struct {
	Adjacency *adjacency.Matrix
	Table     *motif.Table
	Entropy   *entropy.GraphEntropy
	Scores    *entropy.EdgeMap
}

// Runner executes the pipeline. A Runner holds no mutable state and is safe
// for concurrent use.
type Runner struct {
	opts   options
	tracer trace.Tracer
	log    *slog.Logger
}

// New builds a Runner from options applied over the defaults.
func New(opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{opts: o, tracer: o.tracer(), log: o.logger}
}

// Run scores one graph given as an edge list over n nodes. The result has one
// score per input edge, in input order; self-loops score 0.
// Stage 1 (Validate): adjacency.Build rejects out-of-range endpoints.
// Stage 2 (Execute): Graph on the built adjacency.
// Stage 3 (Finalize): look up every input edge.
// Complexity: dominated by motif.Count.
func (r *Runner) Run(ctx context.Context, edges []adjacency.Edge, n int) (scores []float64, err error) {
	ctx, span := r.tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(
		attribute.Int("nodes", n),
		attribute.Int("edges", len(edges)),
	))
	start := time.Now()
	defer func() { r.finish(ctx, span, entryRun, start, err, slog.Int("nodes", n), slog.Int("edges", len(edges))) }()

	var adj *adjacency.Matrix
	err = r.stage(ctx, stageAdjacency, func(context.Context) error {
		var bErr error
		adj, bErr = adjacency.Build(edges, n)
		return bErr
	})
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	res, err := r.Graph(ctx, adj)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	scores, err = res.Scores.Scores(edges)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return scores, nil
}

// RunDense runs the pipeline on a dense adjacency matrix. Any non-zero entry
// is an edge; see adjacency.FromDense.
func (r *Runner) RunDense(ctx context.Context, d mat.Matrix) (res *Result, err error) {
	ctx, span := r.tracer.Start(ctx, "pipeline.RunDense")
	start := time.Now()
	defer func() { r.finish(ctx, span, entryDense, start, err) }()

	var adj *adjacency.Matrix
	err = r.stage(ctx, stageAdjacency, func(context.Context) error {
		var bErr error
		adj, bErr = adjacency.FromDense(d)
		return bErr
	})
	if err != nil {
		return nil, fmt.Errorf("RunDense: %w", err)
	}

	res, err = r.Graph(ctx, adj)
	if err != nil {
		return nil, fmt.Errorf("RunDense: %w", err)
	}

	return res, nil
}

// RunPartitioned scores a batch of graphs sharing one node index space.
// graphIDs maps every global node to its graph and must be sorted; see
// partition.ByGraphID. Every graph gets its own motif probabilities; the
// result is aligned with edges.
// Returns partition.ErrUnsortedPartition, partition.ErrCrossPartitionEdge,
// adjacency.ErrInvalidEdge, or any stage error.
func (r *Runner) RunPartitioned(ctx context.Context, edges []adjacency.Edge, graphIDs []int) (scores []float64, err error) {
	ctx, span := r.tracer.Start(ctx, "pipeline.RunPartitioned", trace.WithAttributes(
		attribute.Int("nodes", len(graphIDs)),
		attribute.Int("edges", len(edges)),
	))
	start := time.Now()
	defer func() {
		r.finish(ctx, span, entryPartitioned, start, err, slog.Int("nodes", len(graphIDs)), slog.Int("edges", len(edges)))
	}()

	var parts []partition.Part
	err = r.stage(ctx, stagePartition, func(context.Context) error {
		var pErr error
		parts, pErr = partition.ByGraphID(edges, graphIDs)
		return pErr
	})
	if err != nil {
		return nil, fmt.Errorf("RunPartitioned: %w", err)
	}

	scores, err = r.scoreParts(ctx, parts, len(edges))
	if err != nil {
		return nil, fmt.Errorf("RunPartitioned: %w", err)
	}

	return scores, nil
}

// RunComponents scores one graph by connected component: each component is
// treated as an independent graph with its own motif probabilities.
func (r *Runner) RunComponents(ctx context.Context, edges []adjacency.Edge, n int) (scores []float64, err error) {
	ctx, span := r.tracer.Start(ctx, "pipeline.RunComponents", trace.WithAttributes(
		attribute.Int("nodes", n),
		attribute.Int("edges", len(edges)),
	))
	start := time.Now()
	defer func() {
		r.finish(ctx, span, entryComponents, start, err, slog.Int("nodes", n), slog.Int("edges", len(edges)))
	}()

	var parts []partition.Part
	err = r.stage(ctx, stagePartition, func(context.Context) error {
		var pErr error
		parts, pErr = partition.ByComponents(edges, n)
		return pErr
	})
	if err != nil {
		return nil, fmt.Errorf("RunComponents: %w", err)
	}

	scores, err = r.scoreParts(ctx, parts, len(edges))
	if err != nil {
		return nil, fmt.Errorf("RunComponents: %w", err)
	}

	return scores, nil
}

// Graph runs the counting and scoring stages on built adjacency.
// Stage 1 (Execute): motif.Count.
// Stage 2 (Execute): entropy.Graph on the table's aggregate and edge counts.
// Stage 3 (Finalize): entropy.Assign.
// Returns motif.ErrNilMatrix, motif.ErrTooManyPairs, ctx.Err() or an entropy error.
func (r *Runner) Graph(ctx context.Context, adj *adjacency.Matrix) (*Result, error) {
	res := &Result{Adjacency: adj}

	err := r.stage(ctx, stageCount, func(ctx context.Context) error {
		var cErr error
		res.Table, cErr = motif.Count(ctx, adj, r.opts.motifOptions()...)
		return cErr
	})
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}
	r.opts.metrics.observeTable(res.Table)

	err = r.stage(ctx, stageGraph, func(context.Context) error {
		var gErr error
		res.Entropy, gErr = entropy.Graph(entropy.InputOf(res.Table))
		return gErr
	})
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}
	r.opts.metrics.observeEntropy(res.Entropy.Total())

	err = r.stage(ctx, stageAssign, func(context.Context) error {
		var aErr error
		res.Scores, aErr = entropy.Assign(res.Entropy, res.Table)
		return aErr
	})
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}

	return res, nil
}

// GraphParts runs Graph on every part, at most WithPartitionWorkers at a time.
// results[p] belongs to parts[p]; the first error cancels the remaining parts.
func (r *Runner) GraphParts(ctx context.Context, parts []partition.Part) ([]*Result, error) {
	results := make([]*Result, len(parts))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.partWorkers)
	for p := range parts {
		p := p
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := r.Graph(gCtx, parts[p].Adjacency)
			if err != nil {
				return fmt.Errorf("graph %d: %w", parts[p].GraphID, err)
			}
			results[p] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("GraphParts: %w", err)
	}
	r.opts.metrics.observeParts(len(parts))

	return results, nil
}

// scoreParts runs every part and scatters local scores to global edge order.
func (r *Runner) scoreParts(ctx context.Context, parts []partition.Part, total int) ([]float64, error) {
	results, err := r.GraphParts(ctx, parts)
	if err != nil {
		return nil, err
	}

	values := make([][]float64, len(parts))
	for p, res := range results {
		values[p], err = res.Scores.Scores(parts[p].Edges)
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", parts[p].GraphID, err)
		}
	}

	return partition.Scatter(parts, values, total)
}

// stage runs fn inside a child span and records its duration.
func (r *Runner) stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := r.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	r.opts.metrics.observeStage(name, elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	r.log.LogAttrs(ctx, slog.LevelDebug, "stage completed",
		slog.String("stage", name),
		slog.Duration("elapsed", elapsed),
	)

	return nil
}

// finish closes the run span, counts the run and logs its outcome.
func (r *Runner) finish(ctx context.Context, span trace.Span, entry string, start time.Time, err error, attrs ...slog.Attr) {
	defer span.End()
	r.opts.metrics.observeRun(entry, err)

	attrs = append(attrs,
		slog.String("entry", entry),
		slog.String("mode", r.opts.mode.String()),
		slog.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.LogAttrs(ctx, slog.LevelError, "pipeline run failed", append(attrs, slog.Any("error", err))...)
		return
	}
	span.SetStatus(codes.Ok, "")
	r.log.LogAttrs(ctx, slog.LevelInfo, "pipeline run completed", attrs...)
}
