// Package entropy turns motif counts into entropy features.
//
// What:
//
//   - Graph (GraphEntropyEngine) estimates the category distribution
//     p_c = EdgeCounts[c] / Σ EdgeCounts and the per-category contribution
//     H_c = −p_c·ln(p_c). Natural logarithm throughout (nats).
//   - Assign (EdgeEntropyAssigner) scores every pair of a motif.Table with the
//     count-weighted average of H_c over the categories present in its row:
//
//     score(i,j) = Σ_c r_c·H_c / Σ_c r_c,   score = 0 for an all-zero row.
//
// Guarantees:
//
//   - Every H_c and every score is finite and ≥ 0.
//   - A category with zero occurrences contributes exactly 0.
//   - Scores are a pure function of the table: repeated runs are bit-identical.
//
// Errors:
//
//   - ErrUnknownEdge: lookup of a pair absent from the table.
//   - ErrNegativeCount, ErrCountMismatch: inconsistent engine input.
//   - ErrNilTable, ErrNilEntropy: missing inputs.
package entropy
