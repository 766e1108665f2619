// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// options.go - functional options for the seed package.
//
// Contract:
//   • Options are functional (type Option func(*seedConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package seed

import "math"

// Option customizes a seed layout before construction begins.
type Option func(*seedConfig)

// WithSpacing sets the distance between adjacent seed vertices.
// Panics if d is not positive and finite.
func WithSpacing(d float64) Option {
	if !(d > 0) || math.IsInf(d, 0) {
		panic("seed: WithSpacing(d<=0)")
	}
	return func(c *seedConfig) { c.spacing = d }
}

// WithRootWeight sets the weight of the root vertex "0".
// Panics if w is negative or NaN.
func WithRootWeight(w float64) Option {
	if !(w >= 0) {
		panic("seed: WithRootWeight(w<0)")
	}
	return func(c *seedConfig) { c.rootWeight = w }
}

// WithLeafWeight sets the weight of every non-root seed vertex.
// Panics if w is negative or NaN.
func WithLeafWeight(w float64) Option {
	if !(w >= 0) {
		panic("seed: WithLeafWeight(w<0)")
	}
	return func(c *seedConfig) { c.leafWeight = w }
}
