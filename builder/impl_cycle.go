// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — Cycle(n): the simple cycle C_n.
//
// Contract: n ≥ 3 (else ErrTooFewVertices); edges i→i+1 then the closing (n-1)→0.
// Complexity: O(n).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := g.addNodes(n, cfg.block)
		for i := 0; i+1 < n; i++ {
			g.addEdge(base, i, i+1)
		}
		g.addEdge(base, n-1, 0) // close the ring

		return nil
	}
}
