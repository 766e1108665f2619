// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Root "0" at the origin; leaves "1".."n-1" evenly spaced on a circle of
//     radius cfg.spacing, starting at angle 0, counter-clockwise.
//   - Each leaf is linked to the root at insertion.
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
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 radial leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg seedConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(rootID, r2.Vec{}, core.WithWeight(cfg.rootWeight)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, rootID, err)
		}

		step := 2 * math.Pi / float64(n-1)
		var (
			i      int
			theta  float64
			leafID string
		)
		for i = 1; i < n; i++ {
			leafID = decimalID(i)
			theta = step * float64(i-1)
			pos := r2.Vec{X: cfg.spacing * math.Cos(theta), Y: cfg.spacing * math.Sin(theta)}
			if err := g.AddVertex(leafID, pos, core.WithWeight(cfg.leafWeight), core.WithNeighbors(rootID)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}
		}

		return nil
	}
}
