package seed_test

import (
	"fmt"

	"github.com/katalvlaran/lichtenberg/seed"
)

// ExampleBuild builds a four-vertex ring with a heavy root.
func ExampleBuild() {
	g, err := seed.Build(seed.LayoutRing, 4, seed.WithRootWeight(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Vertices:", g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s\n", e.From, e.To)
	}
	// Output:
	// Vertices: [0 1 2 3]
	// 0-1
	// 0-3
	// 1-2
	// 2-3
}
