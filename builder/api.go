// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — public entry point and the Graph fixture type.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order.
//   - Each constructor appends a fresh block of nodes; blocks never share nodes.
//   - Never panic at runtime; option constructors may panic on nonsense values.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgentropy/adjacency"
)

// Graph is a generated fixture: node count, edge list, and the block
// (graph id) every node belongs to.
type Graph struct {
	N        int
	Edges    []adjacency.Edge
	GraphIDs []int
}

// Constructor appends one block of nodes and edges to g.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph resolves options and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w".
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := &Graph{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		cfg.block = i
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes reserves n new nodes for the current block and returns the first index.
func (g *Graph) addNodes(n int, block int) int {
	base := g.N
	for i := 0; i < n; i++ {
		g.GraphIDs = append(g.GraphIDs, block)
	}
	g.N += n

	return base
}

// addEdge appends the edge (base+u, base+v).
func (g *Graph) addEdge(base, u, v int) {
	g.Edges = append(g.Edges, adjacency.Edge{U: base + u, V: base + v})
}

// Matrix builds the adjacency matrix of the fixture.
func (g *Graph) Matrix() (*adjacency.Matrix, error) {
	return adjacency.Build(g.Edges, g.N)
}
