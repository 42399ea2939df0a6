// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go — Wheel(n): Wₙ = Cₙ₋₁ plus a hub joined to every ring node.
//
// Contract:
//   • n ≥ 4 (the ring must be a valid cycle), else ErrTooFewVertices.
//   • Ring nodes are 0..n-2 of the block, the hub is node n-1.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends Wₙ.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := g.addNodes(n, cfg.block)
		ring := n - 1
		for i := 0; i < ring; i++ {
			g.addEdge(base, i, (i+1)%ring)
		}
		for i := 0; i < ring; i++ {
			g.addEdge(base, n-1, i) // spokes
		}

		return nil
	}
}
