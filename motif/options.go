// SPDX-License-Identifier: MIT
// Package: motif
//
// options.go — functional configuration for Count.
// Option constructors panic on nonsensical values (programmer error);
// Count itself never panics on user input.

package motif

import "fmt"

// Mode selects which node pairs receive a row in the Table.
type Mode int

const (
	// ModeEdges counts only adjacent pairs (graph-classification features).
	ModeEdges Mode = iota
	// ModeExhaustive counts every unordered pair i≠j (node-classification
	// features, where arbitrary pairs may be looked up).
	ModeExhaustive
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case ModeEdges:
		return "edges"
	case ModeExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode resolves a configuration name ("edges", "exhaustive").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "edges", "":
		return ModeEdges, nil
	case "exhaustive":
		return ModeExhaustive, nil
	}

	return ModeEdges, fmt.Errorf("motif: unknown mode %q", s)
}

// Kernel selects how a pair's Shape is computed. Both kernels produce
// identical shapes; they differ only in constant factor.
type Kernel int

const (
	// KernelBitset uses popcounts over AND/XOR of bitset rows.
	KernelBitset Kernel = iota
	// KernelScan tests adj[i][k] and adj[j][k] for every third node k.
	KernelScan
)

// String returns the configuration name of k.
func (k Kernel) String() string {
	switch k {
	case KernelBitset:
		return "bitset"
	case KernelScan:
		return "scan"
	default:
		return fmt.Sprintf("kernel(%d)", int(k))
	}
}

// ParseKernel resolves a configuration name ("bitset", "scan").
func ParseKernel(s string) (Kernel, error) {
	switch s {
	case "bitset", "":
		return KernelBitset, nil
	case "scan":
		return KernelScan, nil
	}

	return KernelBitset, fmt.Errorf("motif: unknown kernel %q", s)
}

// Defaults.
const (
	DefaultMode    = ModeEdges
	DefaultKernel  = KernelBitset
	DefaultWorkers = 1

	// minChunk is the smallest number of pairs handed to one worker.
	minChunk = 256
)

// Option configures Count.
type Option func(*options)

type options struct {
	mode    Mode
	kernel  Kernel
	workers int
}

// WithMode selects ModeEdges or ModeExhaustive. Panics on unknown modes.
func WithMode(m Mode) Option {
	if m != ModeEdges && m != ModeExhaustive {
		panic(fmt.Sprintf("motif: WithMode(%d): unknown mode", int(m)))
	}
	return func(o *options) { o.mode = m }
}

// WithKernel selects the Shape kernel. Panics on unknown kernels.
func WithKernel(k Kernel) Option {
	if k != KernelBitset && k != KernelScan {
		panic(fmt.Sprintf("motif: WithKernel(%d): unknown kernel", int(k)))
	}
	return func(o *options) { o.kernel = k }
}

// WithWorkers sets the number of concurrent counting goroutines. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("motif: WithWorkers(%d): must be >= 1", n))
	}
	return func(o *options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{mode: DefaultMode, kernel: DefaultKernel, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
