// SPDX-License-Identifier: MIT
// Package: entropy
//
// edge.go — EdgeEntropyAssigner and the EdgeEntropyMap it produces.

package entropy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/motif"
)

// EdgeMap maps every pair of a motif.Table to its entropy score.
// It shares the table's pair index and is read-only.
type EdgeMap struct {
	table  *motif.Table
	scores []float64
}

// Assign scores every row of t against the graph entropy g.
// Stage 1 (Validate): non-nil inputs.
// Stage 2 (Execute): ScoreRow for every row, in table order.
// Returns ErrNilEntropy or ErrNilTable.
// Complexity: O(P·NumCategories).
func Assign(g *GraphEntropy, t *motif.Table) (*EdgeMap, error) {
	if g == nil {
		return nil, fmt.Errorf("Assign: %w", ErrNilEntropy)
	}
	if t == nil {
		return nil, fmt.Errorf("Assign: %w", ErrNilTable)
	}

	scores := make([]float64, t.Len())
	for k := range scores {
		scores[k] = ScoreRow(g.Values, t.Row(k))
	}

	return &EdgeMap{table: t, scores: scores}, nil
}

// ScoreRow is the combination rule: the count-weighted average of v over the
// categories present in r; 0 for an all-zero row.
// Complexity: O(NumCategories).
func ScoreRow(v Vector, r motif.Counts) float64 {
	var w Vector
	for c, n := range r {
		w[c] = float64(n)
	}
	den := floats.Sum(w[:])
	if den == 0 {
		return 0
	}

	return floats.Dot(w[:], v[:]) / den
}

// Len returns the number of scored pairs.
func (m *EdgeMap) Len() int {
	return len(m.scores)
}

// Table returns the motif table the scores are aligned with.
func (m *EdgeMap) Table() *motif.Table {
	return m.table
}

// Score returns the entropy score of {i, j} in either orientation.
// Returns ErrUnknownEdge when the pair has no row.
// Complexity: O(1).
func (m *EdgeMap) Score(i, j int) (float64, error) {
	k, ok := m.table.IndexOf(i, j)
	if !ok {
		return 0, fmt.Errorf("Score: (%d,%d): %w", i, j, ErrUnknownEdge)
	}

	return m.scores[k], nil
}

// Scores looks up a list of edges and returns their scores in the same order.
// Self-loops (u == v inside the node range) score 0: the adjacency model
// drops them, so they take part in no motif. Any other missing pair fails
// the whole lookup with ErrUnknownEdge.
// Complexity: O(E).
func (m *EdgeMap) Scores(edges []adjacency.Edge) ([]float64, error) {
	out := make([]float64, len(edges))
	for k, e := range edges {
		if e.U == e.V && e.U >= 0 && e.U < m.table.Nodes() {
			continue
		}
		s, err := m.Score(e.U, e.V)
		if err != nil {
			return nil, fmt.Errorf("Scores: edge #%d: %w", k, err)
		}
		out[k] = s
	}

	return out, nil
}

// Each calls fn for every scored pair in table order.
func (m *EdgeMap) Each(fn func(p motif.Pair, score float64)) {
	for k, s := range m.scores {
		fn(m.table.Pair(k), s)
	}
}

// Dense exports the symmetric N×N score matrix; pairs without a row are 0.
// Returns nil for a graph without nodes.
// Complexity: O(N² + P).
func (m *EdgeMap) Dense() *mat.Dense {
	n := m.table.Nodes()
	if n == 0 {
		return nil
	}
	d := mat.NewDense(n, n, nil)
	m.Each(func(p motif.Pair, s float64) {
		d.Set(p.I, p.J, s)
		d.Set(p.J, p.I, s)
	})

	return d
}
