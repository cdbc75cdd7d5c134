// SPDX-License-Identifier: MIT
package digraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfind/digraph"
)

// ExampleLoadYAML loads a small road map and asks for the cheapest route.
func ExampleLoadYAML() {
	const doc = `
edges:
  depot: {north: 4, south: 1}
  south: {east: 1}
  north: {east: 1}
  east:  {store: 2}
`
	g, err := digraph.LoadYAML(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := g.ShortestPath("depot", "store")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Join(digraph.IDs(res.Path), " -> "), res.Cost)
	// Output: depot -> south -> east -> store 4
}

// ExampleGraph_AddEdge builds the same graph in code.
func ExampleGraph_AddEdge() {
	g := digraph.NewGraph(digraph.WithHeuristic(digraph.HeuristicZero))
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	res, _ := g.ShortestPath("A", "C")
	fmt.Println(digraph.IDs(res.Path), res.Cost)
	// Output: [A B C] 4
}
