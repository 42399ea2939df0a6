// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_pendant.go — TrianglePendant(): the 4-node reference graph
// {(0,1),(1,2),(2,0),(2,3)}: a triangle with a pendant leaf on node 2.

package builder

import "fmt"

// TrianglePendant returns a Constructor that appends the triangle-plus-pendant graph.
func TrianglePendant() Constructor {
	return func(g *Graph, cfg builderConfig) error {
		base := g.addNodes(4, cfg.block)
		g.addEdge(base, 0, 1)
		g.addEdge(base, 1, 2)
		g.addEdge(base, 2, 0)
		g.addEdge(base, 2, 3)

		return nil
	}
}

// Isolated returns a Constructor that appends n nodes without edges.
// n = 0 is a no-op.
func Isolated(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("Isolated: n=%d: %w", n, ErrTooFewVertices)
		}
		g.addNodes(n, cfg.block)

		return nil
	}
}
