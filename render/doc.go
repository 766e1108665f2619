// Package render writes a growth graph as a Graphviz DOT frame.
//
// A frame is an undirected graph laid out with fdp. Every vertex is a point
// pinned at its position (pos="x,y!"), and every edge is drawn with
//
//	penwidth = (activation(a) + activation(b)) · scale
//
// so reinforced channels show up thicker as the run progresses. Two corner
// anchors at (-extent,-extent) and (extent,extent) keep the canvas size
// constant across frames; WithoutCorners drops them.
//
// Self-loops are not drawn.
//
// Encoding goes through gonum's graph/encoding/dot, so node order in the
// output follows vertex insertion order.
package render
