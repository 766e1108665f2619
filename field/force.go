package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
)

// PairwiseForce returns the contribution of vertex a on vertex b.
// Distinct vertices sharing a position contribute a zero vector.
// Complexity: O(1).
func PairwiseForce(g *core.Graph, a, b string) (r2.Vec, error) {
	if g == nil {
		return r2.Vec{}, ErrGraphNil
	}
	if a == b {
		return r2.Vec{}, fmt.Errorf("field: PairwiseForce(%q): %w", a, ErrSelfPair)
	}
	va, err := g.Vertex(a)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("field: PairwiseForce(%q): %w", a, err)
	}
	vb, err := g.Vertex(b)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("field: PairwiseForce(%q): %w", b, err)
	}

	return pairwise(va, vb), nil
}

// NetForce returns the summed force of every other vertex on id.
// Complexity: O(V).
func NetForce(g *core.Graph, id string) (r2.Vec, error) {
	if g == nil {
		return r2.Vec{}, ErrGraphNil
	}
	states := g.VertexStates()
	idx := -1
	for i := range states {
		if states[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r2.Vec{}, fmt.Errorf("field: NetForce(%q): %w", id, core.ErrVertexNotFound)
	}

	return net(states, idx), nil
}

// NetForceAll returns the net force on every vertex, in vertex order.
// Complexity: O(V²).
func NetForceAll(g *core.Graph) ([]Force, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	states := g.VertexStates()
	out := make([]Force, len(states))
	for i := range states {
		out[i] = Force{ID: states[i].ID, Vec: net(states, i)}
	}

	return out, nil
}

// net sums pairwise(u, states[idx]) over u ≠ idx in slice order.
func net(states []core.Vertex, idx int) r2.Vec {
	var f r2.Vec
	for i := range states {
		if i == idx {
			continue
		}
		f = r2.Add(f, pairwise(states[i], states[idx]))
	}

	return f
}

// pairwise is F(a→b) on value snapshots.
func pairwise(a, b core.Vertex) r2.Vec {
	d := r2.Sub(b.Position, a.Position)
	n2 := r2.Norm2(d)
	if n2 == 0 {
		return r2.Vec{} // coincident positions
	}

	return r2.Scale((a.Weight+b.Weight)/math.Pow(n2, 1.5), d)
}
