// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph vertex and edge contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"
)

// TestGraph_AddVertexIdempotent checks defaults, idempotency and empty-ID rejection.
func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex("", r2.Vec{}), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexA, r2.Vec{X: 1, Y: 2}))
	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{X: 1, Y: 2}, v.Position)
	assert.Equal(t, core.DefaultWeight, v.Weight)
	assert.Zero(t, v.Activation)
	assert.Empty(t, v.Neighbors)

	// Second insert with different data must not change anything.
	require.NoError(t, g.AddVertex(VertexA, r2.Vec{X: 9, Y: 9}, core.WithWeight(7)))
	v, err = g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{X: 1, Y: 2}, v.Position)
	assert.Equal(t, core.DefaultWeight, v.Weight)
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddVertexNeighbors checks symmetric linking and dangling-reference rejection.
func TestGraph_AddVertexNeighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, r2.Vec{}))
	require.NoError(t, g.AddVertex(VertexB, r2.Vec{X: 1}, core.WithNeighbors(VertexA), core.WithWeight(3)))

	nb, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB}, nb)
	nb, err = g.NeighborIDs(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA}, nb)

	w, err := g.Weight(VertexB)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	err = g.AddVertex(VertexC, r2.Vec{}, core.WithNeighbors(VertexX))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasVertex(VertexC), "failed insert must leave no vertex behind")
}

// TestGraph_SelfLoop checks that a vertex may neighbor itself and the loop is one edge.
func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, r2.Vec{}, core.WithNeighbors(VertexA)))
	require.NoError(t, g.LinkNeighbors(VertexA, VertexA))

	nb, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA}, nb)
	assert.Equal(t, []core.Edge{{From: VertexA, To: VertexA}}, g.Edges())
}

// TestGraph_LinkNeighbors checks symmetry, idempotency and the missing-endpoint fallback.
func TestGraph_LinkNeighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, r2.Vec{X: 5, Y: 5}))

	require.ErrorIs(t, g.LinkNeighbors("", VertexA), core.ErrEmptyVertexID)

	require.NoError(t, g.LinkNeighbors(VertexA, VertexB))
	require.NoError(t, g.LinkNeighbors(VertexB, VertexA))

	pos, err := g.Position(VertexB)
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{}, pos, "fallback vertex sits at the origin")

	nb, _ := g.NeighborIDs(VertexA)
	assert.Equal(t, []string{VertexB}, nb)
	nb, _ = g.NeighborIDs(VertexB)
	assert.Equal(t, []string{VertexA}, nb)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_EdgesUnique checks that every linked pair appears once with endpoints present.
func TestGraph_EdgesUnique(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"0", "1", "2", "3"}
	for i, id := range ids {
		require.NoError(t, g.AddVertex(id, r2.Vec{X: float64(i)}))
	}
	links := [][2]string{{"0", "1"}, {"1", "0"}, {"1", "2"}, {"2", "0"}, {"3", "3"}, {"2", "1"}}
	for _, l := range links {
		require.NoError(t, g.LinkNeighbors(l[0], l[1]))
	}

	edges := g.Edges()
	assert.Len(t, edges, 4)
	assert.Equal(t, 4, g.EdgeCount())

	seen := map[[2]string]bool{}
	for _, e := range edges {
		a, b := e.From, e.To
		if b < a {
			a, b = b, a
		}
		assert.False(t, seen[[2]string{a, b}], "duplicate pair %v", e)
		seen[[2]string{a, b}] = true
		assert.True(t, g.HasVertex(e.From))
		assert.True(t, g.HasVertex(e.To))
	}
	assert.Equal(t, core.Edge{From: "0", To: "1"}, edges[0], "first-seen orientation")
}

// TestGraph_InsertionOrder checks that numeric keys iterate numerically, not lexicographically.
func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	want := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}
	for _, id := range want {
		require.NoError(t, g.AddVertex(id, r2.Vec{}))
	}
	assert.Equal(t, want, g.Vertices())

	states := g.VertexStates()
	require.Len(t, states, len(want))
	for i, s := range states {
		assert.Equal(t, want[i], s.ID)
	}
}

// TestGraph_Mutators checks SetWeight/SetActivation and missing-vertex errors.
func TestGraph_Mutators(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, r2.Vec{}))

	require.NoError(t, g.SetWeight(VertexA, 1.5))
	require.NoError(t, g.SetActivation(VertexA, 0.25))
	w, _ := g.Weight(VertexA)
	a, _ := g.Activation(VertexA)
	assert.Equal(t, 1.5, w)
	assert.Equal(t, 0.25, a)

	require.ErrorIs(t, g.SetWeight(VertexX, 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetActivation(VertexX, 1), core.ErrVertexNotFound)
	_, err := g.Position(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Activation(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_SnapshotIsolation checks that a returned Vertex does not alias the store.
func TestGraph_SnapshotIsolation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, r2.Vec{}))
	require.NoError(t, g.AddVertex(VertexB, r2.Vec{X: 1}, core.WithNeighbors(VertexA)))

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	v.Neighbors[0] = VertexX
	v.Weight = 99

	nb, _ := g.NeighborIDs(VertexA)
	assert.Equal(t, []string{VertexB}, nb)
	w, _ := g.Weight(VertexA)
	assert.Equal(t, core.DefaultWeight, w)
}
