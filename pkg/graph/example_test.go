package graph_test

import (
	"fmt"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
)

func ExampleGraph_GenerateEdges() {
	rng := graph.NewRand(42)
	g, _ := graph.New(50, graph.Area{Width: 800, Height: 600, Margin: 50}, rng)
	if err := g.GenerateEdges(50, rng); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Valid:", g.Validate() == nil)
	// Output:
	// Nodes: 50
	// Edges: 50
	// Valid: true
}

func ExampleGraph_GenerateEdges_tooMany() {
	rng := graph.NewRand(1)
	g, _ := graph.New(4, graph.Area{Width: 200, Height: 200, Margin: 10}, rng)

	err := g.GenerateEdges(7, rng)
	fmt.Println(errors.Is(err, errors.ErrCodeInvalidConfig))
	fmt.Println(errors.UserMessage(err))
	// Output:
	// true
	// edge count 7 exceeds the maximum of 6 for 4 nodes
}
