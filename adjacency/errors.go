// SPDX-License-Identifier: MIT
// Package adjacency: sentinel error set.
// Every constructor returns one of these, wrapped with the operation name via
// fmt.Errorf("Op: ctx: %w", ErrX); callers branch with errors.Is.

package adjacency

import "errors"

var (
	// ErrInvalidEdge indicates an edge endpoint outside [0, nodeCount).
	// Raised at construction time, never deferred to later stages.
	ErrInvalidEdge = errors.New("adjacency: invalid edge")

	// ErrInvalidNodeCount indicates a negative node count.
	ErrInvalidNodeCount = errors.New("adjacency: invalid node count")

	// ErrNonSquare signals that a dense input matrix was not square.
	ErrNonSquare = errors.New("adjacency: matrix is not square")

	// ErrInvalidBase indicates an index base other than 0 or 1.
	ErrInvalidBase = errors.New("adjacency: index base must be 0 or 1")

	// ErrLengthMismatch indicates source and destination columns of different length.
	ErrLengthMismatch = errors.New("adjacency: source/destination length mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a graph is required.
	ErrNilMatrix = errors.New("adjacency: nil matrix")
)
