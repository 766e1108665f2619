package growth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lichtenberg/core"
)

// GrowOnce performs one growth step: select, propose, merge-or-insert,
// reinforce.
//
// Implementation:
//   - Stage 1: Verify the root exists (ErrRootNotFound).
//   - Stage 2: Up to MaxRetries attempts:
//     v ← PickExpansionVertex; p ← PickExpansionPoint(v).
//     A degenerate force re-draws. If p is too close to a vertex other than v,
//     re-draw. Otherwise insert a new vertex at p linked to v and stop.
//   - Stage 3: If every attempt was rejected, force-merge: link v with the
//     vertex the last attempt landed near (no new vertex). When the last
//     attempt was degenerate there is nothing to link; the step merges into v.
//   - Stage 4: Reinforce the best path from v to the root and notify the observer.
//
// Behavior highlights:
//   - New vertices get the decimal key of the current vertex count, skipping
//     upward past keys that are already taken.
//   - Reinforcement is seeded at the expansion vertex v even when a new
//     vertex was inserted; the new leaf is never the seed.
//
// Errors:
//   - ErrRootNotFound, ErrEmptyGraph, ErrDisconnected (all fatal for drivers).
//
// Complexity:
//   - Time O(A·V²) for A attempts plus the path enumeration cost.
func (e *Engine) GrowOnce() (StepResult, error) {
	if !e.graph.HasVertex(e.cfg.Root) {
		return StepResult{}, fmt.Errorf("growth: root %q: %w", e.cfg.Root, ErrRootNotFound)
	}

	var (
		res        StepResult
		near       string
		degenerate bool
		err        error
	)
	for res.Attempts < e.cfg.MaxRetries {
		res.Attempts++

		if res.Expansion, err = e.PickExpansionVertex(); err != nil {
			return StepResult{}, err
		}
		res.Point, err = e.PickExpansionPoint(res.Expansion)
		if errors.Is(err, ErrDegenerateForce) {
			degenerate = true
			continue
		}
		if err != nil {
			return StepResult{}, err
		}
		degenerate = false

		var hit bool
		if near, hit = e.TooClose(res.Point); hit && near != res.Expansion {
			continue
		}

		id := e.nextID()
		if err = e.graph.AddVertex(id, res.Point, core.WithNeighbors(res.Expansion)); err != nil {
			return StepResult{}, fmt.Errorf("growth: insert %q: %w", id, err)
		}
		res.Touched, res.Inserted = id, true

		return e.finish(res)
	}

	// Retry cap reached: force-merge.
	res.Fallback = true
	if degenerate {
		res.Touched = res.Expansion
	} else {
		if err = e.graph.LinkNeighbors(res.Expansion, near); err != nil {
			return StepResult{}, fmt.Errorf("growth: merge %q→%q: %w", res.Expansion, near, err)
		}
		res.Touched = near
	}

	return e.finish(res)
}

// Grow runs n sequential growth steps and stops at the first error.
// It returns the number of steps completed.
func (e *Engine) Grow(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := e.GrowOnce(); err != nil {
			return i, err
		}
	}

	return n, nil
}

// finish reinforces from the expansion vertex and notifies the observer.
func (e *Engine) finish(res StepResult) (StepResult, error) {
	path, err := e.Reinforce(res.Expansion)
	if err != nil {
		return StepResult{}, err
	}
	res.Path = path
	if e.observer != nil {
		e.observer.OnStep(res)
	}

	return res, nil
}

// nextID returns the first free decimal key starting at the vertex count.
func (e *Engine) nextID() string {
	n := e.graph.VertexCount()
	for e.graph.HasVertex(strconv.Itoa(n)) {
		n++
	}

	return strconv.Itoa(n)
}
