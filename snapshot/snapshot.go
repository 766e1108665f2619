package snapshot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lichtenberg/core"
)

var (
	// ErrGraphNil is returned by Encode for a nil graph.
	ErrGraphNil = errors.New("snapshot: graph is nil")

	// ErrRootNotFound indicates the document's root is empty or names no vertex.
	ErrRootNotFound = errors.New("snapshot: root vertex not found")
)

// Document is the YAML shape of a snapshot.
type Document struct {
	Run      string   `yaml:"run,omitempty"` // identifier of the run that produced it
	Root     string   `yaml:"root"`
	Vertices []Record `yaml:"vertices"`
}

// Record is one vertex.
type Record struct {
	ID         string   `yaml:"id"`
	X          float64  `yaml:"x"`
	Y          float64  `yaml:"y"`
	Weight     float64  `yaml:"weight"`
	Activation float64  `yaml:"activation"`
	Neighbors  []string `yaml:"neighbors,flow"`
}

// MarshalYAML writes r with sign-preserving floats.
func (r Record) MarshalYAML() (interface{}, error) {
	return recordYAML{
		ID:         r.ID,
		X:          exactFloat(r.X),
		Y:          exactFloat(r.Y),
		Weight:     exactFloat(r.Weight),
		Activation: exactFloat(r.Activation),
		Neighbors:  r.Neighbors,
	}, nil
}

// recordYAML is the encoded form of Record.
type recordYAML struct {
	ID         string     `yaml:"id"`
	X          exactFloat `yaml:"x"`
	Y          exactFloat `yaml:"y"`
	Weight     exactFloat `yaml:"weight"`
	Activation exactFloat `yaml:"activation"`
	Neighbors  []string   `yaml:"neighbors,flow"`
}

// exactFloat encodes like float64 except for negative zero, whose default
// form "-0" resolves to the integer 0 and loses the sign.
type exactFloat float64

const negativeZero = "-0.0"

func (f exactFloat) MarshalYAML() (interface{}, error) {
	v := float64(f)
	if v == 0 && math.Signbit(v) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: negativeZero}, nil
	}

	return v, nil
}

// FromGraph captures g into a Document.
func FromGraph(g *core.Graph, root string) (Document, error) {
	if g == nil {
		return Document{}, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return Document{}, fmt.Errorf("snapshot: root %q: %w", root, ErrRootNotFound)
	}
	states := g.VertexStates()
	doc := Document{Root: root, Vertices: make([]Record, len(states))}
	for i, v := range states {
		doc.Vertices[i] = Record{
			ID:         v.ID,
			X:          v.Position.X,
			Y:          v.Position.Y,
			Weight:     v.Weight,
			Activation: v.Activation,
			Neighbors:  v.Neighbors,
		}
	}

	return doc, nil
}

// Graph rebuilds the graph described by d.
//
// Errors:
//   - ErrRootNotFound if Root is empty or absent from Vertices.
//   - core.ErrVertexNotFound for a dangling neighbor.
//   - core.ErrDuplicateVertex, core.ErrAsymmetricLink, core.ErrEmptyVertexID.
func (d Document) Graph() (*core.Graph, error) {
	states := make([]core.Vertex, len(d.Vertices))
	for i, rec := range d.Vertices {
		states[i] = core.Vertex{
			ID:         rec.ID,
			Position:   r2.Vec{X: rec.X, Y: rec.Y},
			Weight:     rec.Weight,
			Activation: rec.Activation,
			Neighbors:  rec.Neighbors,
		}
	}
	g, err := core.FromStates(states)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if !g.HasVertex(d.Root) {
		return nil, fmt.Errorf("snapshot: root %q: %w", d.Root, ErrRootNotFound)
	}

	return g, nil
}

// Write encodes d as one YAML document.
func (d Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	return enc.Close()
}

// Read decodes one YAML document from r. Unknown keys are rejected.
func Read(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("snapshot: decode: %w", err)
	}

	return doc, nil
}

// Encode writes g as a YAML document to w.
func Encode(w io.Writer, g *core.Graph, root string) error {
	doc, err := FromGraph(g, root)
	if err != nil {
		return err
	}

	return doc.Write(w)
}

// Decode reads one YAML document from r and rebuilds its graph.
func Decode(r io.Reader) (*core.Graph, string, error) {
	doc, err := Read(r)
	if err != nil {
		return nil, "", err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, "", err
	}

	return g, doc.Root, nil
}
