// SPDX-License-Identifier: MIT
// Package adjacency: Matrix is a row-major bitset adjacency matrix.
// Each row i is a slice of ⌈N/64⌉ words where bit j is set iff {i,j} is an edge.
// Rows share one flat backing slice for cache friendliness.

package adjacency

import (
	"fmt"
	"math/bits"
)

// wordBits is the number of adjacency bits packed into one storage word.
const wordBits = 64

// Edge is an undirected pair of 0-based node indices.
type Edge struct {
	U, V int
}

// Matrix is an immutable symmetric binary adjacency matrix without self-loops.
// n is the node count, words the number of uint64 words per row,
// data holds n*words words, degree caches the popcount of every row.
type Matrix struct {
	n      int
	words  int
	data   []uint64
	degree []int
	edges  int
}

// newMatrix allocates an empty n×n matrix.
// Complexity: O(n²/64) memory.
func newMatrix(n int) *Matrix {
	words := (n + wordBits - 1) / wordBits

	return &Matrix{
		n:      n,
		words:  words,
		data:   make([]uint64, n*words),
		degree: make([]int, n),
	}
}

// Build constructs the adjacency matrix of an undirected simple graph.
// Stage 1 (Validate): n ≥ 0 and every endpoint in [0, n).
// Stage 2 (Execute): set both [u][v] and [v][u] for every edge.
// Stage 3 (Finalize): zero the diagonal, cache degrees.
// Duplicate edges collapse; asymmetric input is symmetrised; self-loops are dropped.
// Returns ErrInvalidNodeCount or ErrInvalidEdge (wrapped with the edge position).
// Complexity: O(n²/64 + E) time and memory.
func Build(edges []Edge, n int) (*Matrix, error) {
	// Validate node count
	if n < 0 {
		return nil, fmt.Errorf("Build: n=%d: %w", n, ErrInvalidNodeCount)
	}
	// Validate every endpoint before allocating
	for k, e := range edges {
		if err := ValidateEdge(e, n); err != nil {
			return nil, fmt.Errorf("Build: edge #%d: %w", k, err)
		}
	}

	m := newMatrix(n)
	for _, e := range edges {
		m.set(e.U, e.V) // mirror both directions
		m.set(e.V, e.U)
	}
	m.finalize()

	return m, nil
}

// set raises bit (i, j). Caller guarantees bounds.
func (m *Matrix) set(i, j int) {
	m.data[i*m.words+j/wordBits] |= 1 << uint(j%wordBits)
}

// finalize clears the diagonal and recomputes degree and edge caches.
// Complexity: O(n²/64).
func (m *Matrix) finalize() {
	var total int
	for i := 0; i < m.n; i++ {
		m.data[i*m.words+i/wordBits] &^= 1 << uint(i%wordBits) // no self-loops
		d := 0
		for _, w := range m.row(i) {
			d += bits.OnesCount64(w)
		}
		m.degree[i] = d
		total += d
	}
	m.edges = total / 2
}

// row returns the bitset row of node i without bounds checks.
func (m *Matrix) row(i int) []uint64 {
	return m.data[i*m.words : (i+1)*m.words]
}

// Len returns the node count N.
// Complexity: O(1).
func (m *Matrix) Len() int {
	return m.n
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (m *Matrix) EdgeCount() int {
	return m.edges
}

// At reports whether {i, j} is an edge. Out-of-range indices report false.
// Complexity: O(1).
func (m *Matrix) At(i, j int) bool {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return false
	}

	return m.data[i*m.words+j/wordBits]&(1<<uint(j%wordBits)) != 0
}

// Degree returns the number of neighbours of node i (0 when out of range).
// Complexity: O(1).
func (m *Matrix) Degree(i int) int {
	if i < 0 || i >= m.n {
		return 0
	}

	return m.degree[i]
}

// Neighbors returns the neighbours of node i in ascending order.
// Complexity: O(n/64 + deg(i)).
func (m *Matrix) Neighbors(i int) []int {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]int, 0, m.degree[i])
	for wi, w := range m.row(i) {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+b)
			w &= w - 1 // clear lowest set bit
		}
	}

	return out
}

// CommonNeighbors returns |N(i) ∩ N(j)|. Neither i nor j is ever counted
// because the diagonal is zero.
// Complexity: O(n/64).
func (m *Matrix) CommonNeighbors(i, j int) int {
	ri, rj := m.row(i), m.row(j)
	c := 0
	for k := range ri {
		c += bits.OnesCount64(ri[k] & rj[k])
	}

	return c
}

// SymmetricDifference returns |N(i) Δ N(j)|. When {i,j} is an edge the result
// includes i and j themselves (j ∈ N(i), i ∈ N(j)).
// Complexity: O(n/64).
func (m *Matrix) SymmetricDifference(i, j int) int {
	ri, rj := m.row(i), m.row(j)
	c := 0
	for k := range ri {
		c += bits.OnesCount64(ri[k] ^ rj[k])
	}

	return c
}

// Edges returns every edge once as (u, v) with u < v in row-major order.
// Complexity: O(n²/64 + E).
func (m *Matrix) Edges() []Edge {
	out := make([]Edge, 0, m.edges)
	for i := 0; i < m.n; i++ {
		for _, j := range m.Neighbors(i) {
			if j > i {
				out = append(out, Edge{U: i, V: j})
			}
		}
	}

	return out
}

// String renders the matrix as rows of 0/1 for debugging.
// Complexity: O(n²).
func (m *Matrix) String() string {
	buf := make([]byte, 0, m.n*(m.n+1))
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.At(i, j) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}
