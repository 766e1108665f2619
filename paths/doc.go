// Package paths finds the "easiest" route between two vertices of a
// core.Graph: the simple path whose vertex weights sum highest.
//
// Algorithm:
//
//	FindAllPaths(start, end):
//	    path ← [start]
//	    if start = end: return [path]
//	    for n in neighbors(start) (link order):
//	        if n ∉ path: collect FindAllPaths(n, end) extended from path
//
//	BestPath(start, end) = argmax_{p ∈ FindAllPaths} Σ_{v∈p} weight(v)
//	                       (first maximum wins)
//
// The enumeration is exhaustive and exponential in the worst case; memory is
// O(P·L) for P paths of length ≤ L. Replacing it with a shortest-hop search
// would change which vertices get reinforced. Depths is the hop-count BFS,
// kept separate and used only for reporting.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrNoPath                 from BestPath when no path exists.
//   - core.ErrVertexNotFound    from PathWeight or Depths on a missing key.
//
// Example:
//
//	    1───2
//	    │   │
//	    0───3        weights: 0:1, 1:5, 2:1, 3:1
//
//	FindAllPaths(2, 0) = [[2 1 0] [2 3 0]]
//	BestPath(2, 0)     = [2 1 0]   (7 > 3)
package paths
