// SPDX-License-Identifier: MIT
// Package: partition
//
// partition.go — GraphPartitioner.
//
// Both entry points reduce to the same split: an owner part and a local
// index for every global node, then one pass over the edge list that moves
// each edge into its owner's local index space, keeping the input position.

package partition

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/edgentropy/adjacency"
)

// Part is one independent graph of a batch.
type Part struct {
	GraphID   int               // graph id (ByGraphID) or component ordinal (ByComponents)
	Nodes     []int             // local index → global node index, ascending
	Adjacency *adjacency.Matrix // local 0-based adjacency
	Edges     []adjacency.Edge  // the part's input edges in local indices, input order
	EdgeIndex []int             // EdgeIndex[k] is the global position of Edges[k]
}

// ByGraphID splits edges by the graph-id array graphIDs (one id per global node).
// Stage 1 (Validate): ids non-decreasing along the node index.
// Stage 2 (Prepare): one part per run of equal ids, ascending id order.
// Stage 3 (Execute): assign every edge to the part holding both endpoints.
// Stage 4 (Finalize): build each local adjacency matrix.
// Returns ErrUnsortedPartition, ErrCrossPartitionEdge or adjacency.ErrInvalidEdge.
// Complexity: O(N + E + Σ nᵢ²/64).
func ByGraphID(edges []adjacency.Edge, graphIDs []int) ([]Part, error) {
	var groups [][]int
	var ids []int
	for v, id := range graphIDs {
		if v > 0 && id < graphIDs[v-1] {
			return nil, fmt.Errorf("ByGraphID: node %d has id %d after id %d: %w", v, id, graphIDs[v-1], ErrUnsortedPartition)
		}
		if v == 0 || id != graphIDs[v-1] {
			groups = append(groups, nil)
			ids = append(ids, id)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], v)
	}

	parts, err := split(edges, len(graphIDs), groups, ids)
	if err != nil {
		return nil, fmt.Errorf("ByGraphID: %w", err)
	}

	return parts, nil
}

// ByComponents splits edges by connected component of the graph on n nodes.
// Parts are ordered by their smallest node index; isolated nodes form
// single-node parts. GraphID is the part's ordinal.
// Returns adjacency.ErrInvalidNodeCount or adjacency.ErrInvalidEdge.
// Complexity: O(N + E + Σ nᵢ²/64) plus component search.
func ByComponents(edges []adjacency.Edge, n int) ([]Part, error) {
	adj, err := adjacency.Build(edges, n)
	if err != nil {
		return nil, fmt.Errorf("ByComponents: %w", err)
	}

	comps := topo.ConnectedComponents(adj.ToGraph())
	groups := make([][]int, len(comps))
	for c, comp := range comps {
		nodes := make([]int, len(comp))
		for k, node := range comp {
			nodes[k] = int(node.ID())
		}
		slices.Sort(nodes)
		groups[c] = nodes
	}
	slices.SortFunc(groups, func(a, b []int) int { return a[0] - b[0] })

	ids := make([]int, len(groups))
	for c := range ids {
		ids[c] = c
	}

	parts, err := split(edges, n, groups, ids)
	if err != nil {
		return nil, fmt.Errorf("ByComponents: %w", err)
	}

	return parts, nil
}

// split moves edges into the local index space of their owner group.
func split(edges []adjacency.Edge, n int, groups [][]int, ids []int) ([]Part, error) {
	owner := make([]int, n)
	local := make([]int, n)
	parts := make([]Part, len(groups))
	for p, nodes := range groups {
		parts[p] = Part{GraphID: ids[p], Nodes: nodes}
		for k, v := range nodes {
			owner[v] = p
			local[v] = k
		}
	}

	for k, e := range edges {
		if err := adjacency.ValidateEdge(e, n); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", k, err)
		}
		p := owner[e.U]
		if owner[e.V] != p {
			return nil, fmt.Errorf("edge #%d (%d,%d) joins graphs %d and %d: %w",
				k, e.U, e.V, parts[p].GraphID, parts[owner[e.V]].GraphID, ErrCrossPartitionEdge)
		}
		parts[p].Edges = append(parts[p].Edges, adjacency.Edge{U: local[e.U], V: local[e.V]})
		parts[p].EdgeIndex = append(parts[p].EdgeIndex, k)
	}

	for p := range parts {
		adj, err := adjacency.Build(parts[p].Edges, len(parts[p].Nodes))
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", parts[p].GraphID, err)
		}
		parts[p].Adjacency = adj
	}

	return parts, nil
}

// Scatter writes values[p][k] to position parts[p].EdgeIndex[k] of a slice of
// length total. Every position must be written exactly once.
// Returns ErrScatterMismatch otherwise.
// Complexity: O(E).
func Scatter(parts []Part, values [][]float64, total int) ([]float64, error) {
	if len(values) != len(parts) {
		return nil, fmt.Errorf("Scatter: %d value sets for %d parts: %w", len(values), len(parts), ErrScatterMismatch)
	}
	out := make([]float64, total)
	written := make([]bool, total)
	for p, part := range parts {
		if len(values[p]) != len(part.EdgeIndex) {
			return nil, fmt.Errorf("Scatter: graph %d: %d values for %d edges: %w",
				part.GraphID, len(values[p]), len(part.EdgeIndex), ErrScatterMismatch)
		}
		for k, pos := range part.EdgeIndex {
			if pos < 0 || pos >= total || written[pos] {
				return nil, fmt.Errorf("Scatter: graph %d: position %d: %w", part.GraphID, pos, ErrScatterMismatch)
			}
			out[pos] = values[p][k]
			written[pos] = true
		}
	}
	for pos, ok := range written {
		if !ok {
			return nil, fmt.Errorf("Scatter: position %d never written: %w", pos, ErrScatterMismatch)
		}
	}

	return out, nil
}
