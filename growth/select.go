package growth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/field"
)

// Perturbation ranges for PickExpansionPoint.
const (
	scaleHi = 1.0 // x/y scale draw ~ U(0, scaleHi)
	skewHi  = 0.3 // x/y skew draw  ~ U(0, skewHi)
)

// PickExpansionVertex selects the vertex to grow from by roulette wheel over
// net-force magnitudes.
//
// Implementation:
//   - Stage 1: Compute NetForceAll and total = Σ|F(v)|.
//   - Stage 2: Draw P ~ U(0, total) (exactly one sampler call).
//   - Stage 3: Walk vertices in insertion order subtracting |F(v)|; return the
//     first v where P ≤ 0.
//   - Stage 4: If rounding keeps P above zero, return the first vertex.
//
// Errors:
//   - ErrEmptyGraph if the graph has no vertices.
//
// Complexity:
//   - Time O(V²), Space O(V).
func (e *Engine) PickExpansionVertex() (string, error) {
	forces, err := field.NetForceAll(e.graph)
	if err != nil {
		return "", err
	}
	if len(forces) == 0 {
		return "", ErrEmptyGraph
	}

	mags := make([]float64, len(forces))
	var total float64
	for i := range forces {
		mags[i] = forces[i].Magnitude()
		total += mags[i]
	}

	p := uniform(e.sampler, 0, total)
	for i := range forces {
		p -= mags[i]
		if p <= 0 {
			return forces[i].ID, nil
		}
	}

	return forces[0].ID, nil
}

// PickExpansionPoint proposes the next point one step r away from id.
//
// The net force F on id is skewed with four draws, consumed in this order:
//
//	Fx ← Fx·(U(0,1) + Fy·U(0,0.3))
//	Fy ← Fy·(U(0,1) + Fx·U(0,0.3))   // Fx is already updated here
//
// then normalized to length r and added to the position of id.
//
// Errors:
//   - core.ErrVertexNotFound (wrapped) if id is absent.
//   - ErrDegenerateForce if the skewed force has zero or non-finite length.
//     The returned point is then the position of id itself.
func (e *Engine) PickExpansionPoint(id string) (r2.Vec, error) {
	pos, err := e.graph.Position(id)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("growth: PickExpansionPoint(%q): %w", id, err)
	}
	f, err := field.NetForce(e.graph, id)
	if err != nil {
		return r2.Vec{}, err
	}

	return perturb(e.sampler, pos, f, e.cfg.StepDistance)
}

// perturb applies the skewed draw sequence and projects a step of length r.
func perturb(s Sampler, pos, f r2.Vec, r float64) (r2.Vec, error) {
	xScale := uniform(s, 0, scaleHi)
	xSkew := uniform(s, 0, skewHi)
	f.X *= xScale + f.Y*xSkew

	yScale := uniform(s, 0, scaleHi)
	ySkew := uniform(s, 0, skewHi)
	f.Y *= yScale + f.X*ySkew

	n := r2.Norm(f)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return pos, ErrDegenerateForce
	}

	return r2.Add(pos, r2.Scale(r/n, f)), nil
}
