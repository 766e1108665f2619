// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// errors.go - sentinel errors for the seed package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.
//   • Constructors never panic; validation panics are confined to WithX options.

package seed

import "errors"

// ErrTooFewVertices indicates that n is smaller than the layout's minimum.
var ErrTooFewVertices = errors.New("seed: parameter too small")

// ErrUnknownLayout indicates Build was asked for a layout name it does not know.
var ErrUnknownLayout = errors.New("seed: unknown layout")

// ErrConstructFailed indicates a nil constructor or a failed core insertion.
var ErrConstructFailed = errors.New("seed: construction failed")
