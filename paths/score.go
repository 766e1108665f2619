package paths

import (
	"fmt"

	"github.com/katalvlaran/lichtenberg/core"
)

// PathWeight returns the exact sum of vertex weights along path.
// An empty path weighs 0.
// Complexity: O(len(path)).
func PathWeight(g *core.Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	var (
		total float64
		w     float64
		id    string
		err   error
	)
	for _, id = range path {
		if w, err = g.Weight(id); err != nil {
			return 0, fmt.Errorf("paths: PathWeight(%q): %w", id, err)
		}
		total += w
	}

	return total, nil
}

// PathWeights returns the weight of every path from start to end, index-aligned
// with FindAllPaths(g, start, end).
func PathWeights(g *core.Graph, start, end string) ([]float64, error) {
	all, err := FindAllPaths(g, start, end)
	if err != nil {
		return nil, err
	}

	return weigh(g, all)
}

// BestPath returns the path from start to end with the largest summed weight.
// Ties resolve to the first maximum in enumeration order.
// Returns ErrNoPath if start and end are not connected (or start is absent).
func BestPath(g *core.Graph, start, end string) ([]string, error) {
	all, err := FindAllPaths(g, start, end)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("paths: BestPath(%q→%q): %w", start, end, ErrNoPath)
	}

	weights, err := weigh(g, all)
	if err != nil {
		return nil, err
	}

	best := 0
	for i := 1; i < len(weights); i++ {
		if weights[i] > weights[best] {
			best = i
		}
	}

	return all[best], nil
}

// weigh scores each path in all.
func weigh(g *core.Graph, all [][]string) ([]float64, error) {
	out := make([]float64, len(all))

	var err error
	for i := range all {
		if out[i], err = PathWeight(g, all[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
