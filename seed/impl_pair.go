// SPDX-License-Identifier: MIT
// Package: lichtenberg/seed
//
// impl_pair.go - the reference two-vertex seed.
//
// Contract:
//   - Root "0" at (0,0), leaf "1" at (spacing, spacing), linked.

package seed

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
)

const methodPair = "Pair"

// Pair returns a Constructor for the two-vertex seed the growth engine
// starts from by default.
func Pair() Constructor {
	return func(g *core.Graph, cfg seedConfig) error {
		if err := g.AddVertex(rootID, r2.Vec{}, core.WithWeight(cfg.rootWeight)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodPair, rootID, err)
		}
		leaf := decimalID(1)
		pos := r2.Vec{X: cfg.spacing, Y: cfg.spacing}
		if err := g.AddVertex(leaf, pos, core.WithWeight(cfg.leafWeight), core.WithNeighbors(rootID)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodPair, leaf, err)
		}

		return nil
	}
}
