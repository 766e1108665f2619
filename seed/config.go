// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • spacing    = 1.0   (matches the growth step r)
//   • rootWeight = 1.0
//   • leafWeight = 1.0

package seed

import "strconv"

// seedConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type seedConfig struct {
	spacing    float64 // distance between adjacent seed vertices
	rootWeight float64 // weight of vertex "0"
	leafWeight float64 // weight of every other seed vertex
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSpacing = 1.0
	defaultWeight  = 1.0
	rootID         = "0"
)

// newSeedConfig constructs a config with defaults and applies all options in
// order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newSeedConfig(opts ...Option) seedConfig {
	cfg := seedConfig{
		spacing:    defaultSpacing,
		rootWeight: defaultWeight,
		leafWeight: defaultWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weightOf returns the configured weight for the vertex at index i.
func (c seedConfig) weightOf(i int) float64 {
	if i == 0 {
		return c.rootWeight
	}

	return c.leafWeight
}

// decimalID maps index i to its growth key ("0","1",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
