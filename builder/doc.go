// Package builder provides deterministic edge-list fixtures for the
// motif-entropy pipeline: classic topologies (complete, path, cycle, star,
// wheel), the triangle-with-pendant reference graph, and seeded random
// sparse graphs.
//
// Constructors compose: every constructor appends a new block of nodes after
// the ones already emitted, so BuildGraph(nil, Complete(3), Path(4)) is the
// disjoint union K₃ ⊔ P₄. Each block is tagged with its constructor position
// in Graph.GraphIDs, which is exactly the node → graph-id array expected by
// partition.ByGraphID.
//
// Determinism: the same constructors, order, and seed always yield the same
// edge list in the same order.
package builder
