package motif

import "errors"

var (
	// ErrNilMatrix indicates Count was called without an adjacency matrix.
	ErrNilMatrix = errors.New("motif: nil adjacency matrix")

	// ErrTooManyPairs indicates ModeExhaustive was requested for a graph whose
	// pair count overflows the table index.
	ErrTooManyPairs = errors.New("motif: too many node pairs for exhaustive mode")
)
