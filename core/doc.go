// Package core provides the weighted, positional vertex store that the
// growth engine builds on.
//
// The Graph G = (V,E) is undirected and keeps, per vertex:
//
//   - Position  r2.Vec   fixed at creation, never mutated
//   - Weight    float64  conductance-like scalar (default 1)
//   - Activation float64 saturating "burnt" accumulator (starts at 0)
//   - Neighbors          insertion-ordered set of vertex IDs
//
// Self-loops are permitted. Parallel edges collapse: a pair of vertices is
// either linked or not, and Edges() reports each linked pair once.
//
// Ordering:
//
//	Vertices(), VertexStates() and Edges() iterate in insertion order, and a
//	vertex's neighbors come back in the order they were linked. Growth keys
//	are decimal strings ("0", "1", ... "10"), so insertion order is numeric
//	order, not lexicographic. Every stochastic decision downstream (roulette
//	selection, first-maximum tie breaks, nearest-vertex ties) depends on it.
//
// Core Methods:
//
//	AddVertex(id, pos, opts...) error  // idempotent; WithWeight, WithNeighbors, WithActivation
//	LinkNeighbors(a, b) error          // symmetric; creates a missing endpoint at the origin
//	HasVertex(id) bool
//	VertexCount() int
//	Vertices() []string
//	VertexStates() []Vertex            // value snapshots, one lock acquisition
//	Vertex(id) (Vertex, error)
//	Position/Weight/Activation(id)
//	NeighborIDs(id) ([]string, error)
//	SetWeight/SetActivation(id, x) error
//	Edges() []Edge
//	EdgeCount() int
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex, or a dangling WithNeighbors reference
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog. The growth engine is the only
//	writer; renderers and exporters may read concurrently between steps.
package core
