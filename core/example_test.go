package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ordgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with string labels and int weights:
	g := core.New[string, int]()

	// 2) Nodes must exist before edges:
	g.InsertNodes("A", "B", "C")
	g.InsertEdge("A", "B", 5)
	g.InsertEdge("A", "B", 2) // parallel edge, different weight
	g.InsertEdge("B", "C", 1)

	// 3) Inspect:
	w, _ := g.Weights("A", "B")
	fmt.Println("A→B weights:", w)
	ok, _ := g.IsConnected("C", "A")
	fmt.Println("C→A connected?", ok)

	// 4) Missing endpoints are reported, not created:
	_, err := g.InsertEdge("A", "Z", 1)
	fmt.Println("endpoint missing?", errors.Is(err, core.ErrEndpointNotFound))

	// Output:
	// A→B weights: [2 5]
	// C→A connected? false
	// endpoint missing? true
}

// ExampleGraph_MergeReplaceNode folds one node into another and prints the result.
func ExampleGraph_MergeReplaceNode() {
	g := core.FromEdges[string, int]([]core.Edge[string, int]{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "A", To: "D", Weight: 3},
	})
	_ = g.MergeReplaceNode("A", "B")
	fmt.Print(g)

	// Output:
	// B (
	//   B | 1
	//   C | 2
	//   D | 3
	// )
	// C (
	// )
	// D (
	// )
}

// ExampleIterator walks the edges in order and erases one by position.
func ExampleIterator() {
	g := core.FromEdges[string, int]([]core.Edge[string, int]{
		{From: "A", To: "D", Weight: 3},
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
	})
	for it := g.Begin(); !it.IsEnd(); it = it.Next() {
		e := it.Value()
		fmt.Println(e.From, e.To, e.Weight)
	}

	next := g.EraseEdgeAt(g.Find("A", "B", 1))
	fmt.Println("after erase:", next.Value().To)

	// Output:
	// A B 1
	// A C 2
	// A D 3
	// after erase: C
}
