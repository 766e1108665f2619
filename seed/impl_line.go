// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// impl_line.go - implementation of Line(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex i at (i·spacing, 0), linked to i-1. Root "0" is the left end.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package seed

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
)

const (
	methodLine   = "Line"
	minLineNodes = 2
)

// Line returns a Constructor that builds a straight chain of n vertices.
func Line(n int) Constructor {
	return func(g *core.Graph, cfg seedConfig) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewVertices)
		}

		var (
			i    int
			id   string
			opts []core.VertexOption
		)
		for i = 0; i < n; i++ {
			id = decimalID(i)
			opts = []core.VertexOption{core.WithWeight(cfg.weightOf(i))}
			if i > 0 {
				opts = append(opts, core.WithNeighbors(decimalID(i-1)))
			}
			if err := g.AddVertex(id, r2.Vec{X: float64(i) * cfg.spacing}, opts...); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodLine, id, err)
			}
		}

		return nil
	}
}
