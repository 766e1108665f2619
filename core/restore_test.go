// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
)

// TestFromStates_RoundTrip rebuilds a graph whose neighbor order is not
// recoverable by replaying symmetric links in vertex order.
func TestFromStates_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, r2.Vec{}, core.WithWeight(5)))
	require.NoError(t, g.AddVertex(VertexB, r2.Vec{X: 1}, core.WithNeighbors(VertexA)))
	require.NoError(t, g.AddVertex(VertexC, r2.Vec{Y: 1}, core.WithNeighbors(VertexB), core.WithActivation(0.25)))
	require.NoError(t, g.LinkNeighbors(VertexA, VertexC))
	require.NoError(t, g.LinkNeighbors(VertexC, VertexC))

	want := g.VertexStates()
	h, err := core.FromStates(want)
	require.NoError(t, err)

	assert.Equal(t, want, h.VertexStates())
	assert.Equal(t, g.Edges(), h.Edges())
	nb, err := h.NeighborIDs(VertexC)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexA, VertexC}, nb)
}

func TestFromStates_Rejects(t *testing.T) {
	cases := map[string]struct {
		states []core.Vertex
		want   error
	}{
		"empty id": {
			states: []core.Vertex{{ID: ""}},
			want:   core.ErrEmptyVertexID,
		},
		"duplicate": {
			states: []core.Vertex{{ID: VertexA}, {ID: VertexA}},
			want:   core.ErrDuplicateVertex,
		},
		"dangling": {
			states: []core.Vertex{{ID: VertexA, Neighbors: []string{VertexX}}},
			want:   core.ErrVertexNotFound,
		},
		"asymmetric": {
			states: []core.Vertex{{ID: VertexA, Neighbors: []string{VertexB}}, {ID: VertexB}},
			want:   core.ErrAsymmetricLink,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := core.FromStates(tc.states)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
