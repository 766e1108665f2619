// Sentinel errors, the step outcome record, and the sampler and observer
// contracts.

package growth

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrGraphNil is returned when NewEngine receives a nil *core.Graph.
	ErrGraphNil = errors.New("growth: graph is nil")

	// ErrEmptyGraph indicates that no vertex exists to expand from.
	ErrEmptyGraph = errors.New("growth: graph has no vertices")

	// ErrRootNotFound indicates the configured root vertex is missing.
	ErrRootNotFound = errors.New("growth: root vertex not found")

	// ErrDegenerateForce indicates the perturbed force on the expansion vertex
	// has zero or non-finite magnitude, so no growth direction exists.
	ErrDegenerateForce = errors.New("growth: degenerate force direction")

	// ErrDisconnected indicates reinforcement found no path from the seed to
	// the root. It is an invariant violation and should be treated as fatal.
	ErrDisconnected = errors.New("growth: seed vertex not connected to root")

	// ErrBadConfig indicates an invalid configuration value.
	ErrBadConfig = errors.New("growth: invalid configuration")
)

// Sampler supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// Observer receives the outcome of every completed growth step.
type Observer interface {
	OnStep(StepResult)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(StepResult)

// OnStep calls f(res).
func (f ObserverFunc) OnStep(res StepResult) { f(res) }

// StepResult describes one call to GrowOnce.
type StepResult struct {
	// Expansion is the vertex selected on the accepted (or final) attempt.
	// Reinforcement is always seeded here.
	Expansion string

	// Touched is the new vertex when Inserted, otherwise the vertex the
	// step merged into.
	Touched string

	// Point is the proposed expansion point of the final attempt. For a
	// degenerate final attempt it is the expansion vertex position.
	Point r2.Vec

	// Inserted reports that a new vertex was created.
	Inserted bool

	// Fallback reports that the retry cap was hit and the step force-merged.
	Fallback bool

	// Attempts counts selection/proposal rounds, including the accepted one.
	Attempts int

	// Path is the reinforced best path from Expansion to the root.
	Path []string
}
