// Package lichtenberg grows Lichtenberg figures: branching, lightning-like
// graphs built one vertex at a time by a stochastic inverse-square field.
//
// What a run does
//
//	Every vertex has a fixed position, a weight and an activation. Each step
//	picks a vertex with probability proportional to its net force, proposes a
//	point one step length away along a skewed force direction, and either
//	inserts a new leaf there or, after too many rejected proposals, merges
//	into a nearby vertex. The heaviest path back to the root is then
//	reinforced and everything else decays, so established channels keep
//	attracting growth.
//
// Layout
//
//	core/     - positional, weighted, undirected vertex store with insertion-ordered iteration
//	paths/    - simple-path enumeration and maximum-weight path selection
//	field/    - pairwise and net inverse-square forces
//	growth/   - the step engine: selection, proposal, merge, reinforcement, config
//	seed/     - initial layouts (pair, line, ring, star)
//	snapshot/ - YAML persistence with bit-exact floats
//	render/   - Graphviz DOT frames
//	metrics/  - Prometheus observer for growth steps
//	cmd/lichtenberg - the driver
//
// Quick start:
//
//	g, _ := seed.Build(seed.LayoutPair, 0, seed.WithRootWeight(5))
//	eng, _ := growth.NewEngine(g, growth.WithSeed(42))
//	_, _ = eng.Grow(50)
//	_ = render.WriteDOT(os.Stdout, g)
//
// Cost grows quickly with the vertex count: each step enumerates every
// simple path from the expansion vertex to the root.
package lichtenberg
