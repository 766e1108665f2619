// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, accessors and the two state mutators.
//
// Determinism:
//   - Vertices() and VertexStates() return insertion order.
//
// Concurrency:
//   - Readers take mu.RLock, mutators take mu.Lock.

package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// AddVertex inserts a vertex at pos if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID) and apply options.
//   - Stage 2: Under mu write lock, return early if the vertex already exists.
//   - Stage 3: Verify every requested neighbor exists before writing anything.
//   - Stage 4: Register the vertex, then link each neighbor symmetrically.
//
// Behavior highlights:
//   - Adding an existing ID is a no-op: position, weight and neighbors are untouched.
//   - The vertex is registered before its edges, so no neighbor set ever
//     references a missing key.
//   - Activation starts at 0 unless WithActivation is given.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if a WithNeighbors ID (other than id itself) is absent.
//
// Complexity:
//   - Time O(k) for k neighbors, Space O(k).
func (g *Graph) AddVertex(id string, pos r2.Vec, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	cfg := vertexConfig{weight: DefaultWeight}
	var opt VertexOption
	for _, opt = range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.lookup(id) != nil {
		return nil // idempotent insert
	}

	// Reject dangling neighbor references up front so a failed call leaves no trace.
	var nid string
	for _, nid = range cfg.neighbors {
		if nid == "" {
			return ErrEmptyVertexID
		}
		if nid != id && g.lookup(nid) == nil {
			return fmt.Errorf("core: AddVertex(%q) neighbor %q: %w", id, nid, ErrVertexNotFound)
		}
	}

	v := &vertex{
		id:         id,
		position:   pos,
		weight:     cfg.weight,
		activation: cfg.activation,
		neighbors:  newNeighborSet(),
	}
	g.vertices.Put(id, v)

	for _, nid = range cfg.neighbors {
		g.link(v, g.lookup(nid))
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lookup(id) != nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Size()
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, g.vertices.Size())
	it := g.vertices.Iterator()
	for it.Next() {
		ids = append(ids, it.Key().(string))
	}

	return ids
}

// VertexStates returns a value snapshot of every vertex in insertion order.
// The force evaluator uses it to read all positions and weights under a
// single lock acquisition.
// Complexity: O(V + E).
func (g *Graph) VertexStates() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, g.vertices.Size())
	it := g.vertices.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*vertex).snapshot())
	}

	return out
}

// Vertex returns a value snapshot of the vertex with the given ID.
// Returns ErrVertexNotFound if absent.
// Complexity: O(deg(v)).
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.lookup(id)
	if v == nil {
		return Vertex{}, ErrVertexNotFound
	}

	return v.snapshot(), nil
}

// Position returns the fixed coordinate of id.
func (g *Graph) Position(id string) (r2.Vec, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.lookup(id)
	if v == nil {
		return r2.Vec{}, ErrVertexNotFound
	}

	return v.position, nil
}

// Weight returns the current weight of id.
func (g *Graph) Weight(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.lookup(id)
	if v == nil {
		return 0, ErrVertexNotFound
	}

	return v.weight, nil
}

// Activation returns the current activation of id.
func (g *Graph) Activation(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.lookup(id)
	if v == nil {
		return 0, ErrVertexNotFound
	}

	return v.activation, nil
}

// NeighborIDs returns the neighbors of id in link order.
// A self-loop shows up as id itself.
// Complexity: O(deg(v)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.lookup(id)
	if v == nil {
		return nil, ErrVertexNotFound
	}

	return v.neighborIDs(), nil
}

// SetWeight overwrites the weight of id.
// Returns ErrVertexNotFound if absent.
func (g *Graph) SetWeight(id string, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.lookup(id)
	if v == nil {
		return ErrVertexNotFound
	}
	v.weight = w

	return nil
}

// SetActivation overwrites the activation of id.
// Returns ErrVertexNotFound if absent.
func (g *Graph) SetActivation(id string, a float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.lookup(id)
	if v == nil {
		return ErrVertexNotFound
	}
	v.activation = a

	return nil
}

// snapshot copies v into an exported value. Caller holds mu.
func (v *vertex) snapshot() Vertex {
	return Vertex{
		ID:         v.id,
		Position:   v.position,
		Weight:     v.weight,
		Activation: v.activation,
		Neighbors:  v.neighborIDs(),
	}
}

// neighborIDs copies the neighbor set in link order. Caller holds mu.
func (v *vertex) neighborIDs() []string {
	ids := make([]string, 0, v.neighbors.Size())
	v.neighbors.Each(func(_ int, raw interface{}) {
		ids = append(ids, raw.(string))
	})

	return ids
}
