// Package growth implements the stochastic dendritic ("Lichtenberg") growth
// engine on top of core.Graph, field and paths.
//
// One growth step (GrowOnce):
//
//  1. PickExpansionVertex - roulette wheel over |net force| per vertex.
//  2. PickExpansionPoint  - skew the force direction with four uniform draws,
//     normalize, step r from the vertex.
//  3. TooClose            - is any vertex strictly within merge_factor·r?
//  4. Too close to a vertex other than the expansion vertex → re-draw,
//     at most max_retries attempts, then force-merge into that vertex.
//  5. Otherwise insert a new leaf keyed by the vertex count, linked to the
//     expansion vertex.
//  6. Reinforce           - best (max summed weight) path from the expansion
//     vertex to the root gains activation and weight, everything else decays.
//
// Draw order under a seeded Sampler is fixed: one draw for vertex selection,
// then x-scale, x-skew, y-scale, y-skew for the point. A re-drawn attempt
// consumes a fresh five.
//
// Reinforcement quirk:
//
//	Step 6 is seeded at the expansion vertex, never at the newly inserted
//	leaf. The leaf only starts gaining activation once it is itself picked
//	for expansion or lies on a later best path.
//
// Degenerate force:
//
//	A zero or non-finite skewed force has no direction. The attempt counts
//	toward the retry cap and is re-drawn; if the final attempt is degenerate
//	the step merges into the expansion vertex without adding an edge.
//
// Configuration comes from Config (YAML-mappable, see LoadConfig) and
// functional Options:
//
//	WithConfig, WithStepDistance, WithMergeFactor, WithMaxRetries,
//	WithRoot, WithSeed, WithSampler, WithObserver
//
// Concurrency:
//
//	An Engine is single-goroutine. Steps are strictly sequential because
//	force evaluation and path enumeration read the whole graph.
package growth
