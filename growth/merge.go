package growth

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// TooClose reports whether any vertex lies strictly within Threshold() of p.
//
// The scan stops at the first vertex inside the threshold, which is not
// necessarily the closest one, so on a hit the answer is resolved by a
// separate NearestVertex scan. The two queries stay independent.
//
// Complexity: O(V).
func (e *Engine) TooClose(p r2.Vec) (string, bool) {
	limit := e.cfg.Threshold()
	for _, v := range e.graph.VertexStates() {
		if r2.Norm(r2.Sub(p, v.Position)) < limit {
			return e.NearestVertex(p)
		}
	}

	return "", false
}

// NearestVertex returns the vertex closest to p; ties go to the earliest
// inserted. The boolean is false on an empty graph.
//
// Complexity: O(V).
func (e *Engine) NearestVertex(p r2.Vec) (string, bool) {
	var (
		best  string
		bestD float64
		found bool
	)
	for _, v := range e.graph.VertexStates() {
		d := r2.Norm(r2.Sub(v.Position, p))
		if !found || d < bestD {
			best, bestD, found = v.ID, d, true
		}
	}

	return best, found
}
