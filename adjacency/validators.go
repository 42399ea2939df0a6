// SPDX-License-Identifier: MIT
// Package: adjacency
//
// Purpose:
//  - Single source of truth for boundary validation of edge input.
//  - Return wrapped sentinels so call sites can add their own position context.

package adjacency

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateEdge ensures both endpoints of e lie in [0, n).
//
// Returns wrapped ErrInvalidEdge on violation.
// Complexity: O(1).
func ValidateEdge(e Edge, n int) error {
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		return validatorErrorf(fmt.Sprintf("ValidateEdge: (%d,%d) outside [0,%d)", e.U, e.V, n), ErrInvalidEdge)
	}

	return nil
}

// ValidateBase ensures the index base is 0 or 1.
// Complexity: O(1).
func ValidateBase(base int) error {
	if base != 0 && base != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateBase: %d", base), ErrInvalidBase)
	}

	return nil
}
