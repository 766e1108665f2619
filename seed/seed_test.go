package seed_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
	"github.com/katalvlaran/lichtenberg/seed"
)

const eps = 1e-12

// dist returns the Euclidean distance between two seed vertices.
func dist(t *testing.T, g *core.Graph, a, b string) float64 {
	t.Helper()
	pa, err := g.Position(a)
	require.NoError(t, err)
	pb, err := g.Position(b)
	require.NoError(t, err)
	return r2.Norm(r2.Sub(pa, pb))
}

func TestPair(t *testing.T) {
	g, err := seed.BuildGraph(nil, seed.Pair())
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, g.Vertices())
	assert.Equal(t, []core.Edge{{From: "0", To: "1"}}, g.Edges())

	p, err := g.Position("1")
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, p)

	w, err := g.Weight("0")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultWeight, w)
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   seed.Constructor
		wantV  int
		wantE  int
		verify func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Line(4)",
			ctor:  seed.Line(4),
			wantV: 4, wantE: 3,
			verify: func(t *testing.T, g *core.Graph) {
				p, err := g.Position("3")
				require.NoError(t, err)
				assert.Equal(t, r2.Vec{X: 3}, p)
				nbs, err := g.NeighborIDs("1")
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"0", "2"}, nbs)
			},
		},
		{
			name:  "Ring(6)",
			ctor:  seed.Ring(6),
			wantV: 6, wantE: 6,
			verify: func(t *testing.T, g *core.Graph) {
				for i, id := range g.Vertices() {
					next := g.Vertices()[(i+1)%6]
					assert.InDelta(t, 1.0, dist(t, g, id, next), eps, "%s-%s", id, next)
				}
				p, err := g.Position("0")
				require.NoError(t, err)
				assert.InDelta(t, 0.0, p.Y, eps, "root sits at angle 0")
				nbs, err := g.NeighborIDs("0")
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"1", "5"}, nbs)
			},
		},
		{
			name:  "Star(5)",
			ctor:  seed.Star(5),
			wantV: 5, wantE: 4,
			verify: func(t *testing.T, g *core.Graph) {
				nbs, err := g.NeighborIDs("0")
				require.NoError(t, err)
				assert.Len(t, nbs, 4)
				for _, leaf := range []string{"1", "2", "3", "4"} {
					assert.InDelta(t, 1.0, dist(t, g, "0", leaf), eps)
				}
				assert.InDelta(t, math.Sqrt2, dist(t, g, "1", "2"), eps)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := seed.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, "0", g.Vertices()[0])
			tc.verify(t, g)
		})
	}
}

func TestOptions(t *testing.T) {
	g, err := seed.Build(seed.LayoutLine, 3,
		seed.WithSpacing(2.5), seed.WithRootWeight(4), seed.WithLeafWeight(0.5))
	require.NoError(t, err)

	assert.InDelta(t, 2.5, dist(t, g, "0", "1"), eps)
	w, err := g.Weight("0")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
	w, err = g.Weight("2")
	require.NoError(t, err)
	assert.Equal(t, 0.5, w)

	g, err = seed.Build(seed.LayoutRing, 8, seed.WithSpacing(3))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, dist(t, g, "7", "0"), eps)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { seed.WithSpacing(0) })
	assert.Panics(t, func() { seed.WithSpacing(math.Inf(1)) })
	assert.Panics(t, func() { seed.WithRootWeight(-1) })
	assert.Panics(t, func() { seed.WithLeafWeight(math.NaN()) })
	assert.NotPanics(t, func() { seed.WithLeafWeight(0) })
}

func TestBuild_Errors(t *testing.T) {
	_, err := seed.Build("spiral", 4)
	require.ErrorIs(t, err, seed.ErrUnknownLayout)

	for _, tc := range []struct {
		layout string
		n      int
	}{
		{seed.LayoutLine, 1},
		{seed.LayoutRing, 2},
		{seed.LayoutStar, 1},
	} {
		_, err = seed.Build(tc.layout, tc.n)
		require.ErrorIs(t, err, seed.ErrTooFewVertices, "%s(%d)", tc.layout, tc.n)
	}

	_, err = seed.Build(seed.LayoutPair, 0)
	require.NoError(t, err, "n is ignored for pair")

	_, err = seed.BuildGraph(nil, seed.Pair(), nil)
	require.ErrorIs(t, err, seed.ErrConstructFailed)
}
