package field

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("field: graph is nil")

	// ErrSelfPair indicates a pairwise force was requested between a vertex and itself.
	ErrSelfPair = errors.New("field: pairwise force of a vertex with itself")
)

// Force is the net force acting on one vertex.
type Force struct {
	// ID is the vertex the force acts on.
	ID string

	// Vec is the summed force vector.
	Vec r2.Vec
}

// Magnitude returns |f.Vec|.
func (f Force) Magnitude() float64 {
	return r2.Norm(f.Vec)
}
