package core_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lichtenberg/core"
)

// ExampleGraph demonstrates creation, linking and edge enumeration.
func ExampleGraph() {
	g := core.NewGraph()

	// Root at the origin, one leaf diagonally away.
	_ = g.AddVertex("0", r2.Vec{})
	_ = g.AddVertex("1", r2.Vec{X: 1, Y: 1}, core.WithNeighbors("0"))
	_ = g.AddVertex("2", r2.Vec{X: -1, Y: 0}, core.WithNeighbors("0"))

	fmt.Println("Vertices:", g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s\n", e.From, e.To)
	}

	// Output:
	// Vertices: [0 1 2]
	// 0-1
	// 0-2
}
