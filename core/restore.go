// SPDX-License-Identifier: MIT
//
// File: restore.go
// Role: Rebuild a Graph from value snapshots with exact iteration order.
//
// Determinism:
//   - Vertex order follows the input slice; every neighbor set is rebuilt
//     in the listed order, so path enumeration on the result matches the
//     graph the snapshots were taken from.

package core

import "fmt"

// FromStates builds a new Graph from the given vertex snapshots, typically
// the output of VertexStates on another Graph.
//
// Implementation:
//   - Stage 1: Register every vertex with its position, weight and activation.
//   - Stage 2: Validate that each listed neighbor exists and lists the owner back.
//   - Stage 3: Fill each neighbor set in the listed order.
//
// Errors:
//   - ErrEmptyVertexID: a vertex or neighbor ID is "".
//   - ErrDuplicateVertex: an ID occurs twice.
//   - ErrVertexNotFound: a neighbor references an ID not in states.
//   - ErrAsymmetricLink: u lists v but v does not list u.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func FromStates(states []Vertex) (*Graph, error) {
	g := NewGraph()
	listed := make(map[string]map[string]struct{}, len(states))

	var st Vertex
	for _, st = range states {
		if st.ID == "" {
			return nil, ErrEmptyVertexID
		}
		if g.lookup(st.ID) != nil {
			return nil, fmt.Errorf("core: FromStates(%q): %w", st.ID, ErrDuplicateVertex)
		}
		g.vertices.Put(st.ID, &vertex{
			id:         st.ID,
			position:   st.Position,
			weight:     st.Weight,
			activation: st.Activation,
			neighbors:  newNeighborSet(),
		})
		set := make(map[string]struct{}, len(st.Neighbors))
		for _, nid := range st.Neighbors {
			set[nid] = struct{}{}
		}
		listed[st.ID] = set
	}

	var nid string
	for _, st = range states {
		for _, nid = range st.Neighbors {
			if nid == "" {
				return nil, ErrEmptyVertexID
			}
			back, ok := listed[nid]
			if !ok {
				return nil, fmt.Errorf("core: FromStates(%q) neighbor %q: %w", st.ID, nid, ErrVertexNotFound)
			}
			if _, ok = back[st.ID]; !ok {
				return nil, fmt.Errorf("core: FromStates(%q) neighbor %q: %w", st.ID, nid, ErrAsymmetricLink)
			}
		}
	}

	for _, st = range states {
		v := g.lookup(st.ID)
		for _, nid = range st.Neighbors {
			v.neighbors.Add(nid) // set semantics drop repeats
		}
	}

	return g, nil
}
