// SPDX-License-Identifier: MIT
// Package digraph defines the Vertex, Edge and Graph types, graph options
// and sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrNilVertex      - vertex pointer is nil.
//	ErrVertexNotFound - requested vertex does not belong to the graph.
//	ErrNegativeWeight - edge weight is negative or NaN.
//	ErrDuplicateEdge  - an edge from→to already exists.
//	ErrNotNeighbor    - Cost was asked for a pair that is not an edge.
//	ErrBadHeuristic   - unknown heuristic name.
//	ErrBadDocument    - malformed YAML graph document.
package digraph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for digraph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("digraph: vertex ID is empty")

	// ErrNilVertex indicates a nil *Vertex was passed.
	ErrNilVertex = errors.New("digraph: vertex is nil")

	// ErrVertexNotFound indicates an operation referenced a vertex of another graph or an unknown ID.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")

	// ErrDuplicateEdge indicates a second edge between the same ordered pair.
	ErrDuplicateEdge = errors.New("digraph: duplicate edge")

	// ErrNotNeighbor indicates Cost was asked for two vertices that are not adjacent.
	ErrNotNeighbor = errors.New("digraph: cannot compute cost to non-neighbor")

	// ErrBadHeuristic indicates an unknown heuristic name.
	ErrBadHeuristic = errors.New("digraph: unknown heuristic")

	// ErrBadDocument indicates a malformed graph document.
	ErrBadDocument = errors.New("digraph: malformed graph document")
)

// Vertex is a node of the graph. Vertices are compared by pointer, so the
// search engine tells them apart by identity, never by ID alone.
type Vertex struct {
	// ID is unique within its Graph.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]any
}

// String returns the vertex ID.
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}
	return v.ID
}

// Edge is a one-way connection with a non-negative weight.
type Edge struct {
	From   *Vertex
	To     *Vertex
	Weight float64
}

// Heuristic selects how EstimateCost bounds the remaining cost.
type Heuristic int

const (
	// HeuristicMinEdge estimates the cheapest outgoing edge: any route to
	// the goal must leave through one of them. Zero at the goal, +Inf at sinks.
	HeuristicMinEdge Heuristic = iota

	// HeuristicZero always estimates 0, turning A* into Dijkstra.
	HeuristicZero
)

// String returns the document name of h.
func (h Heuristic) String() string {
	switch h {
	case HeuristicMinEdge:
		return "min-edge"
	case HeuristicZero:
		return "zero"
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic maps a document name to a Heuristic. The empty name is min-edge.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "min-edge":
		return HeuristicMinEdge, nil
	case "zero", "none":
		return HeuristicZero, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadHeuristic, name)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithHeuristic selects the estimate used by EstimateCost.
func WithHeuristic(h Heuristic) GraphOption {
	return func(g *Graph) { g.heuristic = h }
}

// Graph is a weighted directed graph that implements astar.Policy[*Vertex].
//
// mu guards every field below it; reads take the read lock so the graph may
// be searched from several goroutines while no writer is active.
// Neighbors are returned in edge insertion order.
type Graph struct {
	mu sync.RWMutex

	heuristic Heuristic

	vertices map[string]*Vertex // ID → Vertex
	order    []*Vertex          // insertion order
	adj      map[*Vertex][]Edge // outgoing edges in insertion order
}

// NewGraph creates an empty Graph. By default EstimateCost uses HeuristicMinEdge.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		adj:      make(map[*Vertex][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
