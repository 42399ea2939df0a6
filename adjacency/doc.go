// Package adjacency holds the in-memory graph model consumed by the
// motif-entropy pipeline: a symmetric 0/1 adjacency matrix over N nodes.
//
// What:
//
//   - Matrix stores one bitset row per node (N×⌈N/64⌉ words).
//   - Build symmetrises an edge list and removes self-loops.
//   - FromDense ingests any gonum mat.Matrix (non-zero entry ⇒ edge).
//   - Normalize converts 1-based input ids to the internal 0-based convention.
//   - ToSymDense / ToGraph export to gonum for linear algebra or graph algorithms.
//
// Invariants (hold for every Matrix returned by this package):
//
//   - At(i, i) == false for all i.
//   - At(i, j) == At(j, i) for all i, j.
//   - A Matrix is never mutated after construction.
//
// Complexity:
//
//   - Build:      O(N²/64 + E) time, O(N²/64) memory.
//   - FromDense:  O(N²) time.
//   - Common / symmetric-difference neighbour counts: O(N/64) per pair.
//
// Errors:
//
//   - ErrInvalidEdge: an endpoint lies outside [0, N).
//   - ErrInvalidNodeCount: N < 0.
//   - ErrNonSquare: dense input is not square.
//   - ErrInvalidBase: index base other than 0 or 1.
//   - ErrLengthMismatch: source/destination columns differ in length.
package adjacency
