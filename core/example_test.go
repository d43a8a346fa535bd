package core_test

import (
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// ExampleGraph demonstrates building a small directed graph and querying it.
func ExampleGraph() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddVertex("F") // isolated vertex must be added explicitly

	nbs, _ := g.Neighbors("A")
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges out of A:", nbs)
	fmt.Println("F present?", g.HasVertex("F"))

	// Output:
	// vertices: [A B C F]
	// edges out of A: [{B 4} {C 2}]
	// F present? true
}

// ExampleGraph_ValidateWeights shows the fail-fast weight check.
func ExampleGraph_ValidateWeights() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", -3)

	fmt.Println(g.ValidateWeights())

	// Output:
	// core: negative edge weight: edge A→B weight=-3
}
