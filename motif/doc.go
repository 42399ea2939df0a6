// Package motif enumerates the local 3-node structure around node pairs of an
// adjacency.Matrix and tallies it per motif category.
//
// What:
//
//   - Category is the fixed, ordered motif taxonomy shared by every stage of
//     the pipeline: Triangle, Wedge, Pendant, Dyad, OpenTriangle.
//   - Classify is the one decision table mapping a pair's Shape to Counts.
//   - Count builds a Table (pair → Counts) for every edge (ModeEdges) or every
//     node pair (ModeExhaustive).
//   - CountEdges / Table.EdgeCounts report, per category, how many pairs
//     exhibit it: the denominators of the entropy estimate.
//
// Decision table (Classify):
//
//	| adjacent | common t | exclusive w | degrees                 | counts                   |
//	|----------|----------|-------------|-------------------------|--------------------------|
//	| yes      | t        | w           | any                     | Triangle=t, Wedge=w      |
//	| yes      | 0        | 0           | deg(i)=deg(j)=1         | Dyad=1                   |
//	| yes      | any      | any         | exactly one degree is 1 | Pendant=1 (in addition)  |
//	| no       | t>0      | any         | any                     | OpenTriangle=t           |
//	| no       | 0        | any         | any                     | all zero                 |
//
// where t = |N(i)∩N(j)| and, for adjacent pairs, w = |N(i)ΔN(j)| − 2
// (third nodes attached to exactly one endpoint).
//
// Complexity:
//
//   - Count: O(P·N) with the scan kernel, O(P·N/64) with the bitset kernel,
//     where P is the number of pairs (E in ModeEdges, N(N−1)/2 in
//     ModeExhaustive). The naive exhaustive form is O(N³) and dominates the
//     whole pipeline.
//   - Memory: O(P) rows of NumCategories ints.
//
// Concurrency:
//
//   - Count may split pairs across WithWorkers goroutines. Each pair is a pure
//     function of the read-only matrix and every worker writes disjoint rows,
//     so results are identical for any worker count.
package motif
