package paths

import (
	"fmt"

	"github.com/katalvlaran/lichtenberg/core"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph *core.Graph // underlying graph
	end   string      // destination vertex
	out   [][]string  // completed paths, in discovery order
}

// FindAllPaths returns every simple path from start to end.
//
// Neighbors are explored in link order, and a path is only extended into a
// vertex not already on that same path; different branches may reuse a
// vertex. Self-loops are skipped by the same check.
//
// Returns an empty result if start is absent, whatever end is. If start ==
// end the only path is [start].
func FindAllPaths(g *core.Graph, start, end string) ([][]string, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Missing start yields no paths (not an error)
	if !g.HasVertex(start) {
		return [][]string{}, nil
	}

	// 3. Walk
	w := &pathWalker{graph: g, end: end, out: make([][]string, 0, 1)}
	if err := w.walk(start, nil); err != nil {
		return nil, err
	}

	return w.out, nil
}

// walk appends id to prefix and either records a finished path or recurses
// into each neighbor not yet on it.
func (w *pathWalker) walk(id string, prefix []string) error {
	// 1. Extend the current path
	path := extend(prefix, id)

	// 2. Base case
	if id == w.end {
		w.out = append(w.out, path)
		return nil
	}

	// 3. Fetch neighbors once
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("paths: NeighborIDs(%q): %w", id, err)
	}

	// 4. Explore each neighbor not already on this path
	var nid string
	for _, nid = range nbs {
		if indexOf(path, nid) >= 0 {
			continue
		}
		if err = w.walk(nid, path); err != nil {
			return err
		}
	}

	return nil
}
