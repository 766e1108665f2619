// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// impl_ring.go - implementation of Ring(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - n vertices on a circle centered at the origin, sized so adjacent
//     vertices are exactly spacing apart: R = spacing / (2·sin(π/n)).
//   - Vertex i at angle 2πi/n, linked to i-1; the last vertex closes the
//     cycle back to root "0".
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package seed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that builds a closed cycle of n vertices.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg seedConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		radius := cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))

		var (
			i     int
			id    string
			theta float64
			opts  []core.VertexOption
		)
		for i = 0; i < n; i++ {
			id = decimalID(i)
			theta = 2 * math.Pi * float64(i) / float64(n)
			opts = []core.VertexOption{core.WithWeight(cfg.weightOf(i))}
			if i > 0 {
				opts = append(opts, core.WithNeighbors(decimalID(i-1)))
			}
			if i == n-1 {
				opts = append(opts, core.WithNeighbors(rootID))
			}
			pos := r2.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
			if err := g.AddVertex(id, pos, opts...); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRing, id, err)
			}
		}

		return nil
	}
}
