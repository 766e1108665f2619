// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, VertexOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Vertex state is a fixed-shape record: position, weight, activation, neighbor set.
//   - Positions are written once at creation and never mutated afterwards.
//   - Iteration order everywhere is insertion order (see doc.go).

package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates FromStates received the same ID twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrAsymmetricLink indicates a neighbor list names a vertex that does not
	// list the owner back.
	ErrAsymmetricLink = errors.New("core: asymmetric neighbor link")
)

// DefaultWeight is the weight assigned to a vertex created without WithWeight.
const DefaultWeight = 1.0

// vertex is the live, lock-protected record stored in the catalog.
// neighbors holds string IDs in the order they were linked.
type vertex struct {
	id         string
	position   r2.Vec
	weight     float64
	activation float64
	neighbors  *linkedhashset.Set
}

// Vertex is a read-only value snapshot of a stored vertex.
//
// Mutating a Vertex returned by Graph.Vertex has no effect on the Graph.
type Vertex struct {
	// ID uniquely identifies this vertex within its Graph.
	ID string

	// Position is the fixed spatial coordinate assigned at creation.
	Position r2.Vec

	// Weight is the conductance-like scalar used by force and path scoring.
	Weight float64

	// Activation is the saturating "burnt" accumulator.
	Activation float64

	// Neighbors lists adjacent vertex IDs in link order.
	Neighbors []string
}

// Edge is an unordered vertex pair with at least one connecting link.
// From == To denotes a self-loop.
type Edge struct {
	From string
	To   string
}

// VertexOption configures a vertex before it is inserted by AddVertex.
type VertexOption func(*vertexConfig)

type vertexConfig struct {
	weight     float64
	activation float64
	neighbors  []string
}

// WithWeight sets the initial weight of the new vertex (default DefaultWeight).
func WithWeight(w float64) VertexOption {
	return func(c *vertexConfig) { c.weight = w }
}

// WithActivation sets the initial activation of the new vertex (default 0).
// Intended for restoring persisted state; growth always starts at zero.
func WithActivation(a float64) VertexOption {
	return func(c *vertexConfig) { c.activation = a }
}

// WithNeighbors links the new vertex to the given existing vertices.
// The new vertex's own ID is accepted and records a self-loop.
func WithNeighbors(ids ...string) VertexOption {
	return func(c *vertexConfig) { c.neighbors = append(c.neighbors, ids...) }
}

// Graph is the weighted, positional, undirected vertex store.
//
// mu guards the whole catalog; every exported method acquires it, so a Graph
// may be read from another goroutine (e.g. a renderer) between growth steps.
// vertices maps ID → *vertex and preserves insertion order.
type Graph struct {
	mu       sync.RWMutex
	vertices *linkedhashmap.Map
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{vertices: linkedhashmap.New()}
}

// newNeighborSet allocates an empty insertion-ordered neighbor set.
func newNeighborSet() *linkedhashset.Set {
	return linkedhashset.New()
}

// lookup returns the live record for id or nil. Caller holds mu.
func (g *Graph) lookup(id string) *vertex {
	raw, ok := g.vertices.Get(id)
	if !ok {
		return nil
	}

	return raw.(*vertex)
}
