// SPDX-License-Identifier: MIT
// Package entropy: sentinel error set.

package entropy

import "errors"

var (
	// ErrUnknownEdge indicates a score lookup for a pair without a motif row.
	// Never silently defaulted to 0 so upstream bugs stay visible.
	ErrUnknownEdge = errors.New("entropy: unknown edge")

	// ErrNegativeCount indicates a negative aggregate or edge count.
	ErrNegativeCount = errors.New("entropy: negative count")

	// ErrCountMismatch indicates that aggregate motif counts and edge counts
	// disagree on whether a category occurs at all.
	ErrCountMismatch = errors.New("entropy: motif/edge count mismatch")

	// ErrInvalidNodeCount indicates a negative node count.
	ErrInvalidNodeCount = errors.New("entropy: invalid node count")

	// ErrNilTable indicates a nil *motif.Table.
	ErrNilTable = errors.New("entropy: nil motif table")

	// ErrNilEntropy indicates a nil *GraphEntropy.
	ErrNilEntropy = errors.New("entropy: nil graph entropy")
)
