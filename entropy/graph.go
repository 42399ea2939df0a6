// SPDX-License-Identifier: MIT
// Package: entropy
//
// graph.go — GraphEntropyEngine.
// Vector indices follow motif.Category; the two packages share that order.

package entropy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/edgentropy/motif"
)

// Vector holds one value per motif category (MotifEntropyVector).
type Vector [motif.NumCategories]float64

// Input is everything the engine reads: the aggregate motif occurrences per
// category, the EdgeCountTable, and the node count of the graph.
type Input struct {
	Aggregate motif.Counts
	Edges     motif.EdgeCounts
	Nodes     int
}

// InputOf collects the engine input from a counted table.
// Complexity: O(P).
func InputOf(t *motif.Table) Input {
	return Input{Aggregate: t.Aggregate(), Edges: t.EdgeCounts(), Nodes: t.Nodes()}
}

// GraphEntropy is the graph-level result: per-category probabilities and
// entropy contributions.
type GraphEntropy struct {
	Values        Vector // H_c = −p_c·ln p_c
	Probabilities Vector // p_c
	Nodes         int    // node count of the graph
	Observed      int    // Σ EdgeCounts, the probability denominator
}

// Graph computes the entropy vector of one graph.
// Stage 1 (Validate): non-negative counts, aggregate/edge agreement per category.
// Stage 2 (Execute): p_c = Edges[c]/ΣEdges, H_c = −p_c·ln p_c for p_c > 0.
// Stage 3 (Finalize): zero-occurrence categories keep exactly 0.
// Returns ErrInvalidNodeCount, ErrNegativeCount or ErrCountMismatch.
// Complexity: O(NumCategories).
func Graph(in Input) (*GraphEntropy, error) {
	if in.Nodes < 0 {
		return nil, fmt.Errorf("Graph: nodes=%d: %w", in.Nodes, ErrInvalidNodeCount)
	}
	for c := 0; c < motif.NumCategories; c++ {
		cat := motif.Category(c)
		if in.Aggregate[c] < 0 || in.Edges[c] < 0 {
			return nil, fmt.Errorf("Graph: %s aggregate=%d edges=%d: %w", cat, in.Aggregate[c], in.Edges[c], ErrNegativeCount)
		}
		if (in.Aggregate[c] > 0) != (in.Edges[c] > 0) {
			return nil, fmt.Errorf("Graph: %s aggregate=%d edges=%d: %w", cat, in.Aggregate[c], in.Edges[c], ErrCountMismatch)
		}
	}

	g := &GraphEntropy{Nodes: in.Nodes, Observed: in.Edges.Total()}
	if g.Observed == 0 {
		return g, nil // no motifs at all: every contribution is 0
	}

	total := float64(g.Observed)
	for c := 0; c < motif.NumCategories; c++ {
		if in.Edges[c] == 0 {
			continue
		}
		p := float64(in.Edges[c]) / total
		g.Probabilities[c] = p
		g.Values[c] = contribution(p)
	}

	return g, nil
}

// contribution returns −p·ln p for p in (0, 1], clamped so p = 1 yields +0.
func contribution(p float64) float64 {
	if p <= 0 {
		return 0
	}

	return math.Max(0, -p*math.Log(p))
}

// Total returns the Shannon entropy (nats) of the category distribution.
// It equals Sum() up to rounding.
func (g *GraphEntropy) Total() float64 {
	return stat.Entropy(g.Probabilities[:])
}

// Sum returns Σ_c H_c.
func (g *GraphEntropy) Sum() float64 {
	return floats.Sum(g.Values[:])
}
