package graph_test

import (
	"fmt"

	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/widget/graph"
)

func ExampleFromAdjacency() {
	adj, err := graph.ParseAdjacency([]byte(`{"A": [["B", 3]], "B": ["C"], "C": []}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := graph.FromAdjacency(adj, graph.WithDirected())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Len(), g.EdgeCount())
	// Output: 3 2
}

func ExampleGraph_AddEdge() {
	g := graph.New()
	if _, err := g.AddNode("A", geom.Vec{X: -2}); err != nil {
		fmt.Println(err)
		return
	}
	if _, err := g.AddNode("B", geom.Vec{X: 2}); err != nil {
		fmt.Println(err)
		return
	}
	e, err := g.AddEdge("A", "B", graph.WithWeight("7"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e.Weight().Content())
	// Output: 7
}
