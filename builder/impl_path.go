// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — Path(n): the path P_n = 0—1—…—(n-1).
//
// Contract: n ≥ 2 (else ErrTooFewVertices). Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends a simple path over n nodes.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := g.addNodes(n, cfg.block)
		for i := 0; i+1 < n; i++ {
			g.addEdge(base, i, i+1)
		}

		return nil
	}
}
