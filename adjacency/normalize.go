package adjacency

import "fmt"

// Normalize shifts edges given in the index base `base` (0 or 1) to the
// internal 0-based convention. This is the only index-base conversion point;
// everything downstream of it assumes 0-based ids.
// Returns ErrInvalidBase, or ErrInvalidEdge for an id below the base.
// The input slice is never modified.
// Complexity: O(E).
func Normalize(edges []Edge, base int) ([]Edge, error) {
	if err := ValidateBase(base); err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	out := make([]Edge, len(edges))
	for k, e := range edges {
		if e.U < base || e.V < base {
			return nil, fmt.Errorf("Normalize: edge #%d (%d,%d) below base %d: %w", k, e.U, e.V, base, ErrInvalidEdge)
		}
		out[k] = Edge{U: e.U - base, V: e.V - base}
	}

	return out, nil
}

// FromColumns zips parallel source/destination arrays into an edge list,
// the layout used by node-classification datasets.
// Returns ErrLengthMismatch when the arrays differ in length.
// Complexity: O(E).
func FromColumns(src, dst []int) ([]Edge, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("FromColumns: len(src)=%d len(dst)=%d: %w", len(src), len(dst), ErrLengthMismatch)
	}
	out := make([]Edge, len(src))
	for k := range src {
		out[k] = Edge{U: src[k], V: dst[k]}
	}

	return out, nil
}
