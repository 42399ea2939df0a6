// SPDX-License-Identifier: MIT
// Package adjacency: adapters to and from gonum.

package adjacency

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// FromDense builds a Matrix from a dense square matrix. Any non-zero entry
// (i, j) is an edge; the result is symmetrised and its diagonal zeroed,
// so an upper- or lower-triangular input is accepted as well.
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Execute): scan all N² entries.
// Stage 3 (Finalize): zero the diagonal, cache degrees.
// Complexity: O(N²).
func FromDense(d mat.Matrix) (*Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	r, c := d.Dims()
	if r != c {
		return nil, fmt.Errorf("FromDense: %dx%d: %w", r, c, ErrNonSquare)
	}

	m := newMatrix(r)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if d.At(i, j) != 0 {
				m.set(i, j)
				m.set(j, i)
			}
		}
	}
	m.finalize()

	return m, nil
}

// ToSymDense exports the adjacency as a gonum symmetric 0/1 matrix.
// Returns nil for the empty graph (gonum rejects zero-length matrices).
// Complexity: O(N² + E).
func (m *Matrix) ToSymDense() *mat.SymDense {
	if m.n == 0 {
		return nil
	}
	s := mat.NewSymDense(m.n, nil)
	for _, e := range m.Edges() {
		s.SetSym(e.U, e.V, 1)
	}

	return s
}

// ToGraph exports the adjacency as a gonum undirected graph whose node IDs are
// the matrix indices. Isolated nodes are kept.
// Complexity: O(N + E).
func (m *Matrix) ToGraph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < m.n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range m.Edges() {
		g.SetEdge(simple.Edge{F: simple.Node(int64(e.U)), T: simple.Node(int64(e.V))})
	}

	return g
}
