package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lichtenberg/paths"
)

// Reinforcement constants.
const (
	ActivationStep = 0.005 // added per reinforcement while below ActivationCap
	ActivationCap  = 15.0  // activation never exceeds this
	WeightFloor    = 1.0   // on-path weights below this are raised to it
	WeightCeil     = 2.0   // on-path multiplicative growth stops at this
	WeightGain     = 1.1   // on-path multiplier while in [WeightFloor, WeightCeil)
	WeightDecay    = 0.025 // off-path decrement while weight > WeightDecay
)

// Reinforce strengthens the best path from seed to the root and decays
// every other vertex. It returns the reinforced path.
//
// On the path:
//
//	activation += ActivationStep (capped at ActivationCap)
//	non-root:  weight < 1 → 1;  1 ≤ weight < 2 → weight·1.1
//
// Off the path:
//
//	weight > 0.025 → weight − 0.025
//
// The root's weight is never changed by the on-path branch.
//
// Errors:
//   - ErrDisconnected (wrapping paths.ErrNoPath) when seed cannot reach the root.
func (e *Engine) Reinforce(seed string) ([]string, error) {
	path, err := paths.BestPath(e.graph, seed, e.cfg.Root)
	if errors.Is(err, paths.ErrNoPath) {
		return nil, fmt.Errorf("%w: %w", ErrDisconnected, err)
	}
	if err != nil {
		return nil, err
	}

	onPath := make(map[string]struct{}, len(path))
	var id string
	for _, id = range path {
		onPath[id] = struct{}{}
	}

	for _, v := range e.graph.VertexStates() {
		if _, ok := onPath[v.ID]; ok {
			if err = e.strengthen(v.ID, v.Weight, v.Activation); err != nil {
				return nil, err
			}
			continue
		}
		if v.Weight > WeightDecay {
			if err = e.graph.SetWeight(v.ID, v.Weight-WeightDecay); err != nil {
				return nil, err
			}
		}
	}

	return path, nil
}

// strengthen applies the on-path rule to one vertex.
func (e *Engine) strengthen(id string, w, a float64) error {
	if a < ActivationCap {
		if err := e.graph.SetActivation(id, math.Min(a+ActivationStep, ActivationCap)); err != nil {
			return err
		}
	}
	if id == e.cfg.Root {
		return nil
	}

	switch {
	case w < WeightFloor:
		return e.graph.SetWeight(id, WeightFloor)
	case w < WeightCeil:
		return e.graph.SetWeight(id, w*WeightGain)
	}

	return nil
}
