package paths

import (
	"fmt"

	"github.com/katalvlaran/lichtenberg/core"
)

// DepthResult holds a breadth-first traversal from one vertex.
type DepthResult struct {
	Order  []string          // vertices in visitation order
	Depth  map[string]int    // hop count from the start
	Parent map[string]string // BFS tree parent; the start has none
}

// MaxDepth returns the largest hop count in r, 0 for a lone start.
func (r *DepthResult) MaxDepth() int {
	if len(r.Order) == 0 {
		return 0
	}

	return r.Depth[r.Order[len(r.Order)-1]]
}

// queueItem pairs a vertex ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// depthWalker encapsulates mutable BFS state.
type depthWalker struct {
	graph *core.Graph
	queue []queueItem
	res   *DepthResult
}

// Depths runs a breadth-first search from start and reports the hop count
// of every reachable vertex. Neighbors are expanded in link order, so the
// result is deterministic for a given graph.
//
// Unlike BestPath this ignores weights; growth uses it to report how far
// the figure has branched from its root.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - core.ErrVertexNotFound if start is absent.
//
// Complexity: O(V + E) time and memory.
func Depths(g *core.Graph, start string) (*DepthResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("paths: Depths(%q): %w", start, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &depthWalker{
		graph: g,
		queue: make([]queueItem, 0, n),
		res: &DepthResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id seen at depth d and records its parent.
func (w *depthWalker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop drains the queue.
func (w *depthWalker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("paths: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}
