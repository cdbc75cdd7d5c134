// SPDX-License-Identifier: MIT
// Package astar_test contains fixtures shared by the astar tests.
package astar_test

import (
	"errors"
	"fmt"
	"math"
)

// errNotNeighbor is raised by testGraph.Cost on a pair it never offered.
var errNotNeighbor = errors.New("testgraph: cannot compute cost to non-neighbor")

// testNode is compared by pointer, never by name.
type testNode struct{ name string }

func (n *testNode) String() string { return n.name }

type testEdge struct {
	to   string
	cost float64
}

// testGraph is a directed graph with ordered adjacency and call counters.
type testGraph struct {
	nodes     map[string]*testNode
	adj       map[string][]testEdge
	estimate  func(g *testGraph, n, goal *testNode) float64
	expanded  map[string]int
	costPairs map[[2]string]int
}

func newTestGraph() *testGraph {
	return &testGraph{
		nodes:     make(map[string]*testNode),
		adj:       make(map[string][]testEdge),
		expanded:  make(map[string]int),
		costPairs: make(map[[2]string]int),
	}
}

// node returns the unique node for name, creating it on first use.
func (g *testGraph) node(name string) *testNode {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &testNode{name: name}
	g.nodes[name] = n
	return n
}

func (g *testGraph) edge(from, to string, cost float64) *testGraph {
	g.node(from)
	g.node(to)
	g.adj[from] = append(g.adj[from], testEdge{to: to, cost: cost})
	return g
}

func (g *testGraph) Neighbors(n, _ *testNode) ([]*testNode, error) {
	g.expanded[n.name]++
	out := make([]*testNode, 0, len(g.adj[n.name]))
	for _, e := range g.adj[n.name] {
		out = append(out, g.nodes[e.to])
	}
	return out, nil
}

func (g *testGraph) Cost(a, b *testNode) (float64, error) {
	g.costPairs[[2]string{a.name, b.name}]++
	for _, e := range g.adj[a.name] {
		if e.to == b.name {
			return e.cost, nil
		}
	}
	return 0, fmt.Errorf("%w: %s→%s", errNotNeighbor, a.name, b.name)
}

func (g *testGraph) EstimateCost(n, goal *testNode) (float64, error) {
	if g.estimate == nil {
		return minEdgeEstimate(g, n, goal), nil
	}
	return g.estimate(g, n, goal), nil
}

// minEdgeEstimate is the cheapest outgoing edge; zero at the goal and +Inf
// at sinks. Every route to goal starts with some outgoing edge.
func minEdgeEstimate(g *testGraph, n, goal *testNode) float64 {
	if n == goal {
		return 0
	}
	best := math.Inf(1)
	for _, e := range g.adj[n.name] {
		best = math.Min(best, e.cost)
	}
	return best
}

func zeroEstimate(*testGraph, *testNode, *testNode) float64 { return 0 }

// pathCost sums edge costs along path, failing on a non-edge.
func (g *testGraph) pathCost(path []*testNode) (float64, error) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		found := false
		for _, e := range g.adj[path[i-1].name] {
			if e.to == path[i].name {
				total += e.cost
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %s→%s", errNotNeighbor, path[i-1].name, path[i].name)
		}
	}
	return total, nil
}

func names(path []*testNode) []string {
	if path == nil {
		return nil
	}
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = n.name
	}
	return out
}

// referenceGraph is the hill scenario: A's first hop is cheapest, B's route is.
//
//	START→A(1) A→A1(1) A1→END(100)
//	           A→A2(2) A2→END(50)
//	START→B(3) B→B1(3) B1→END(3)
//	START→C(2) (dead end)
func referenceGraph() *testGraph {
	g := newTestGraph()
	g.edge("START", "A", 1).edge("START", "B", 3).edge("START", "C", 2)
	g.edge("A", "A1", 1).edge("A", "A2", 2)
	g.edge("A1", "END", 100)
	g.edge("A2", "END", 50)
	g.edge("B", "B1", 3)
	g.edge("B1", "END", 3)
	g.node("C")
	g.node("END")
	return g
}
