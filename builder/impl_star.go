// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go — Star(n): hub node 0 with n-1 leaves.
//
// Contract: n ≥ 2 (else ErrTooFewVertices). Complexity: O(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star whose hub is the first node of the block.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := g.addNodes(n, cfg.block)
		for i := 1; i < n; i++ {
			g.addEdge(base, 0, i)
		}

		return nil
	}
}
