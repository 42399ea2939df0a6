// SPDX-License-Identifier: MIT
// Package: motif
//
// counter.go — MotifCounter and EdgeCounter.
//
// Count enumerates pairs in row-major order (I < J), computes each pair's
// Shape with the selected kernel and classifies it. Work is split into
// contiguous chunks; with WithWorkers(n>1) chunks run under an errgroup.
// Every chunk writes only its own rows, so no locking is needed and the
// table is bit-identical for every worker count.

package motif

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/edgentropy/adjacency"
)

// Count builds the MotifCountTable of adj.
// Stage 1 (Validate): non-nil matrix; exhaustive pair count fits in an int.
// Stage 2 (Prepare): enumerate pairs for the selected mode.
// Stage 3 (Execute): shape + classify every pair, optionally in parallel.
// Stage 4 (Finalize): build the lookup index (ModeEdges).
// Returns ErrNilMatrix, ErrTooManyPairs or ctx.Err(); never a partial table.
// Complexity: O(P·N) scan kernel, O(P·N/64) bitset kernel.
func Count(ctx context.Context, adj *adjacency.Matrix, opts ...Option) (*Table, error) {
	if adj == nil {
		return nil, fmt.Errorf("Count: %w", ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	pairs, err := enumeratePairs(adj, o.mode)
	if err != nil {
		return nil, fmt.Errorf("Count: %w", err)
	}

	rows := make([]Counts, len(pairs))
	if err = fill(ctx, adj, pairs, rows, kernelFunc(o.kernel), o.workers); err != nil {
		return nil, fmt.Errorf("Count: %w", err)
	}

	t := &Table{n: adj.Len(), mode: o.mode, pairs: pairs, rows: rows}
	if o.mode == ModeEdges {
		t.index = make(map[Pair]int, len(pairs))
		for k, p := range pairs {
			t.index[p] = k
		}
	}

	return t, nil
}

// CountEdges computes the EdgeCountTable of adj: per category, the number of
// pairs exhibiting it. It runs the same classification as Count.
// Complexity: as Count.
func CountEdges(ctx context.Context, adj *adjacency.Matrix, opts ...Option) (EdgeCounts, error) {
	t, err := Count(ctx, adj, opts...)
	if err != nil {
		return EdgeCounts{}, fmt.Errorf("CountEdges: %w", err)
	}

	return t.EdgeCounts(), nil
}

// enumeratePairs lists the pairs that receive a row, in row-major order.
func enumeratePairs(adj *adjacency.Matrix, mode Mode) ([]Pair, error) {
	n := adj.Len()
	if mode == ModeEdges {
		edges := adj.Edges()
		pairs := make([]Pair, len(edges))
		for k, e := range edges {
			pairs[k] = Pair{I: e.U, J: e.V}
		}

		return pairs, nil
	}

	total := uint64(n) * uint64(max(n-1, 0)) / 2
	if total > math.MaxInt32 {
		return nil, fmt.Errorf("n=%d gives %d pairs: %w", n, total, ErrTooManyPairs)
	}
	pairs := make([]Pair, 0, int(total))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}

	return pairs, nil
}

// fill classifies pairs[lo:hi] into rows[lo:hi] chunk by chunk.
func fill(ctx context.Context, adj *adjacency.Matrix, pairs []Pair, rows []Counts, shape shapeFunc, workers int) error {
	size := chunkSize(len(pairs), workers)
	work := func(lo, hi int) {
		for k := lo; k < hi; k++ {
			p := pairs[k]
			rows[k] = Classify(shape(adj, p.I, p.J))
		}
	}

	if workers <= 1 || len(pairs) <= size {
		for lo := 0; lo < len(pairs); lo += size {
			if err := ctx.Err(); err != nil {
				return err
			}
			work(lo, min(lo+size, len(pairs)))
		}

		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(pairs); lo += size {
		lo, hi := lo, min(lo+size, len(pairs))
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			work(lo, hi)

			return nil
		})
	}

	return g.Wait()
}

// chunkSize spreads n pairs over roughly four chunks per worker, never below minChunk.
func chunkSize(n, workers int) int {
	size := n / (workers * 4)
	if size < minChunk {
		size = minChunk
	}

	return size
}
