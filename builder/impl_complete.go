// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — Complete(n): the complete graph K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//
// Complexity: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := g.addNodes(n, cfg.block)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.addEdge(base, i, j)
			}
		}

		return nil
	}
}
