// Package field evaluates the inverse-square force field over a core.Graph.
//
// For two distinct vertices a and b:
//
//	F(a→b) = (w(a) + w(b)) · (p(b) − p(a)) / |p(b) − p(a)|³
//
// The weights are SUMMED, not multiplied. This is not electrostatics; the
// sum keeps expansion probabilities well behaved when weights decay toward
// zero off the active path.
//
// The net force on v is Σ_{u≠v} F(u→v): every other vertex pushes v away
// from itself. NetForceAll recomputes that sum for every vertex, O(V²) with
// no caching, and is called once per growth step.
//
// Errors:
//
//	ErrGraphNil           – nil graph
//	ErrSelfPair           – PairwiseForce(a, a)
//	core.ErrVertexNotFound – missing key
package field
