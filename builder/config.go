// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration resolved from options.
// Defaults are deterministic: no RNG unless seeded.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng   *rand.Rand // nil means "no randomness"
	block int        // position of the running constructor, used as graph id
}

// newBuilderConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
