// Package partition splits a batch of graphs that share one global node index
// space into independent parts, each with its own local adjacency matrix.
//
// What:
//
//   - ByGraphID groups nodes by an external graph-id array. Ids must be sorted
//     (non-decreasing by node index), so every graph occupies one contiguous
//     range of node indices.
//   - ByComponents groups nodes by connected component, for single graphs that
//     are in fact a disjoint union.
//   - Scatter writes per-part edge values back into the order of the global
//     edge list.
//
// Why:
//
//   - Motif statistics are per graph: counts never cross a part boundary, and
//     each part gets its own category probabilities.
//   - Parts are independent, so callers may process them concurrently.
//
// Complexity:
//
//   - ByGraphID:    O(N + E + Σ nᵢ²/64).
//   - ByComponents: O(N + E + Σ nᵢ²/64) plus the gonum component search.
//   - Scatter:      O(E).
//
// Errors:
//
//   - ErrUnsortedPartition: graph ids decrease somewhere along the node index.
//   - ErrCrossPartitionEdge: an edge joins two different parts.
//   - ErrScatterMismatch: per-part values do not line up with the parts.
//   - adjacency.ErrInvalidEdge: an endpoint lies outside the node range.
package partition
