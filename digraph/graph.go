// SPDX-License-Identifier: MIT
package digraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/astar"
)

// AddVertex returns the vertex with id, creating it if needed.
// Re-adding an existing ID is a no-op that returns the existing vertex.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addVertexLocked(id), nil
}

func (g *Graph) addVertexLocked(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id, Metadata: make(map[string]any)}
	g.vertices[id] = v
	g.order = append(g.order, v)
	return v
}

// Vertex returns the vertex with id.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	return v, nil
}

// AddEdge adds the one-way edge from→to, creating missing vertices.
// Returns ErrEmptyVertexID, ErrNegativeWeight or ErrDuplicateEdge.
// Complexity: O(out-degree of from).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)
	for _, e := range g.adj[u] {
		if e.To == v {
			return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
		}
	}
	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: weight})
	return nil
}

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Vertex, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges grouped by source in vertex insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for _, v := range g.order {
		out = append(out, g.adj[v]...)
	}
	return out
}

// Heuristic returns the configured estimate.
func (g *Graph) Heuristic() Heuristic {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.heuristic
}

// SetHeuristic replaces the estimate used by EstimateCost. Do not call it
// while a search over g is running.
func (g *Graph) SetHeuristic(h Heuristic) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.heuristic = h
}

// owns reports whether v is a vertex of g. Callers hold the lock.
func (g *Graph) owns(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}
	if g.vertices[v.ID] != v {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, v.ID)
	}
	return nil
}

// Neighbors implements astar.Policy: the targets of v's outgoing edges.
func (g *Graph) Neighbors(v, _ *Vertex) ([]*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.owns(v); err != nil {
		return nil, err
	}
	out := make([]*Vertex, len(g.adj[v]))
	for i, e := range g.adj[v] {
		out[i] = e.To
	}
	return out, nil
}

// Cost implements astar.Policy: the weight of from→to, or ErrNotNeighbor.
func (g *Graph) Cost(from, to *Vertex) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.owns(from); err != nil {
		return 0, err
	}
	for _, e := range g.adj[from] {
		if e.To == to {
			return e.Weight, nil
		}
	}
	return 0, fmt.Errorf("%w: %s→%s", ErrNotNeighbor, from, to)
}

// EstimateCost implements astar.Policy with the configured Heuristic.
func (g *Graph) EstimateCost(v, goal *Vertex) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.owns(v); err != nil {
		return 0, err
	}
	if v == goal || g.heuristic == HeuristicZero {
		return 0, nil
	}
	best := math.Inf(1)
	for _, e := range g.adj[v] {
		best = math.Min(best, e.Weight)
	}
	return best, nil
}

// ShortestPath resolves the IDs and runs an A* search between them.
// A nil path with a nil error means to is unreachable (or a hook halted).
func (g *Graph) ShortestPath(from, to string, opts ...astar.Option) (*astar.Result[*Vertex], error) {
	start, err := g.Vertex(from)
	if err != nil {
		return nil, err
	}
	goal, err := g.Vertex(to)
	if err != nil {
		return nil, err
	}
	return astar.Search[*Vertex](g, start, goal, opts...)
}

// IDs maps a path of vertices to their IDs.
func IDs(path []*Vertex) []string {
	if path == nil {
		return nil
	}
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = v.ID
	}
	return out
}
