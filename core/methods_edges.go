// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Neighbor linking and undirected edge enumeration.
//
// Determinism:
//   - Edges() walks vertices in insertion order and each neighbor set in link order;
//     every pair is reported once, in the orientation it was first seen.
//
// Concurrency:
//   - LinkNeighbors under mu write lock; Edges/EdgeCount under mu read lock.

package core

import "gonum.org/v1/gonum/spatial/r2"

// LinkNeighbors adds a and b to each other's neighbor sets if not already present.
//
// Implementation:
//   - Stage 1: Validate non-empty IDs.
//   - Stage 2: Create any missing endpoint at the origin with DefaultWeight.
//   - Stage 3: Insert both directions; a == b records the self-loop once.
//
// Behavior highlights:
//   - Idempotent: relinking an existing pair changes nothing.
//   - Missing endpoints are created so the no-dangling-reference invariant holds;
//     the growth engine always pre-creates vertices with real positions.
//
// Errors:
//   - ErrEmptyVertexID: if a == "" or b == "".
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) LinkNeighbors(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	va := g.ensure(a)
	vb := g.ensure(b)
	g.link(va, vb)

	return nil
}

// Edges returns each undirected vertex pair with at least one link exactly once.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[[2]string]struct{})
	edges := make([]Edge, 0, g.vertices.Size())

	it := g.vertices.Iterator()
	for it.Next() {
		v := it.Value().(*vertex)
		v.neighbors.Each(func(_ int, raw interface{}) {
			nid := raw.(string)
			key := pairKey(v.id, nid)
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			edges = append(edges, Edge{From: v.id, To: nid})
		})
	}

	return edges
}

// EdgeCount returns len(Edges()) without materializing the slice order.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[[2]string]struct{})
	it := g.vertices.Iterator()
	for it.Next() {
		v := it.Value().(*vertex)
		v.neighbors.Each(func(_ int, raw interface{}) {
			seen[pairKey(v.id, raw.(string))] = struct{}{}
		})
	}

	return len(seen)
}

// ensure returns the record for id, creating it at the origin when missing.
// Caller holds mu for writing.
func (g *Graph) ensure(id string) *vertex {
	if v := g.lookup(id); v != nil {
		return v
	}
	v := &vertex{id: id, position: r2.Vec{}, weight: DefaultWeight, neighbors: newNeighborSet()}
	g.vertices.Put(id, v)

	return v
}

// link records a symmetric adjacency between a and b. Caller holds mu for writing.
func (g *Graph) link(a, b *vertex) {
	if !a.neighbors.Contains(b.id) {
		a.neighbors.Add(b.id)
	}
	if !b.neighbors.Contains(a.id) {
		b.neighbors.Add(a.id)
	}
}

// pairKey canonicalizes an unordered pair for deduplication.
func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}
