// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// api.go - public entry points: Constructor, BuildGraph and Build.

package seed

import (
	"fmt"

	"github.com/katalvlaran/lichtenberg/core"
)

// Layout names accepted by Build.
const (
	LayoutPair = "pair"
	LayoutLine = "line"
	LayoutRing = "ring"
	LayoutStar = "star"
)

// Constructor adds one seed layout to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg seedConfig) error

// BuildGraph creates a new graph, resolves options and applies each
// constructor in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped once here.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newSeedConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build selects a layout by name. n is ignored for LayoutPair.
//
// Errors:
//   - ErrUnknownLayout for an unrecognized name.
//   - ErrTooFewVertices when n is below the layout minimum.
func Build(layout string, n int, opts ...Option) (*core.Graph, error) {
	var cons Constructor
	switch layout {
	case LayoutPair:
		cons = Pair()
	case LayoutLine:
		cons = Line(n)
	case LayoutRing:
		cons = Ring(n)
	case LayoutStar:
		cons = Star(n)
	default:
		return nil, fmt.Errorf("Build(%q): %w", layout, ErrUnknownLayout)
	}

	return BuildGraph(opts, cons)
}
