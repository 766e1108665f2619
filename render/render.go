package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lichtenberg/core"
)

// ErrGraphNil is returned by WriteDOT for a nil graph.
var ErrGraphNil = errors.New("render: graph is nil")

// Defaults.
const (
	DefaultName     = "G"
	DefaultPenScale = 10.0
	DefaultExtent   = 50.0
	layoutEngine    = "fdp"
	nodeShape       = "point"
)

type options struct {
	name     string
	penScale float64
	extent   float64
	corners  bool
}

// Option customizes WriteDOT.
type Option func(*options)

// WithName sets the DOT graph name. Panics on "".
func WithName(name string) Option {
	if name == "" {
		panic("render: WithName(\"\")")
	}
	return func(o *options) { o.name = name }
}

// WithPenScale sets the multiplier from summed activation to penwidth.
// Panics if s is negative or not finite.
func WithPenScale(s float64) Option {
	if !(s >= 0) || math.IsInf(s, 0) {
		panic("render: WithPenScale(s<0)")
	}
	return func(o *options) { o.penScale = s }
}

// WithCorners sets the half-width of the canvas anchored by the corner nodes.
// Panics if e is not positive and finite.
func WithCorners(e float64) Option {
	if !(e > 0) || math.IsInf(e, 0) {
		panic("render: WithCorners(e<=0)")
	}
	return func(o *options) {
		o.extent = e
		o.corners = true
	}
}

// WithoutCorners omits the corner anchor nodes.
func WithoutCorners() Option {
	return func(o *options) { o.corners = false }
}

// WriteDOT writes one frame of g to w.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - Any encoder or writer error, wrapped.
func WriteDOT(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := options{name: DefaultName, penScale: DefaultPenScale, extent: DefaultExtent, corners: true}
	for _, opt := range opts {
		opt(&o)
	}

	f := buildFrame(g, o)
	b, err := dot.Marshal(f, o.name, "", "\t")
	if err != nil {
		return fmt.Errorf("render: marshal: %w", err)
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	_, err = io.WriteString(w, "\n")

	return err
}

// buildFrame converts g into a gonum graph carrying DOT attributes.
// Node IDs are insertion indices, which the encoder sorts by.
func buildFrame(g *core.Graph, o options) *frame {
	f := &frame{
		UndirectedGraph: simple.NewUndirectedGraph(),
		graphAttrs:      attrs{{Key: "layout", Value: layoutEngine}},
		nodeAttrs:       attrs{{Key: "shape", Value: nodeShape}},
	}

	states := g.VertexStates()
	nodes := make(map[string]node, len(states))
	for i, v := range states {
		n := node{id: int64(i), name: v.ID, attrs: attrs{{Key: "pos", Value: pin(v.Position.X, v.Position.Y)}}}
		nodes[v.ID] = n
		f.AddNode(n)
	}
	if o.corners {
		base := int64(len(states))
		f.AddNode(node{id: base, name: anchorName(g, "corner1"), attrs: attrs{{Key: "pos", Value: pin(-o.extent, -o.extent)}}})
		f.AddNode(node{id: base + 1, name: anchorName(g, "corner2"), attrs: attrs{{Key: "pos", Value: pin(o.extent, o.extent)}}})
	}

	act := make(map[string]float64, len(states))
	for _, v := range states {
		act[v.ID] = v.Activation
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		width := (act[e.From] + act[e.To]) * o.penScale
		f.SetEdge(edge{
			from:  nodes[e.From],
			to:    nodes[e.To],
			attrs: attrs{{Key: "penwidth", Value: strconv.FormatFloat(width, 'g', -1, 64)}},
		})
	}

	return f
}

// anchorName returns base, suffixed with "_" until no vertex of g uses it.
func anchorName(g *core.Graph, base string) string {
	name := base
	for g.HasVertex(name) {
		name += "_"
	}

	return name
}

// pin formats a fixed fdp position.
func pin(x, y float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64) + "," + strconv.FormatFloat(y, 'g', -1, 64) + "!"
}

// frame is the encoder's view of one DOT graph.
type frame struct {
	*simple.UndirectedGraph
	graphAttrs attrs
	nodeAttrs  attrs
}

// DOTAttributers returns the graph-wide and default node attributes.
func (f *frame) DOTAttributers() (g, n, e encoding.Attributer) {
	return f.graphAttrs, f.nodeAttrs, attrs(nil)
}

type attrs []encoding.Attribute

func (a attrs) Attributes() []encoding.Attribute { return a }

type node struct {
	id   int64
	name string
	attrs
}

func (n node) ID() int64     { return n.id }
func (n node) DOTID() string { return n.name }

type edge struct {
	from, to node
	attrs
}

func (e edge) From() graph.Node         { return e.from }
func (e edge) To() graph.Node           { return e.to }
func (e edge) ReversedEdge() graph.Edge { return edge{from: e.to, to: e.from, attrs: e.attrs} }
