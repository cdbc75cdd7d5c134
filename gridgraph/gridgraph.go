// SPDX-License-Identifier: MIT
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/digraph"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	gg := &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        make([][]int, h),
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		neighborOffsets:   offsets4,
		minPassable:       math.MaxInt,
	}
	if opts.Conn == Conn8 {
		gg.neighborOffsets = offsets8
	}
	for y := 0; y < h; y++ {
		gg.CellValues[y] = make([]int, w)
		copy(gg.CellValues[y], values[y])
		for _, v := range values[y] {
			if v >= opts.PassableThreshold && v < gg.minPassable {
				gg.minPassable = v
			}
		}
	}
	if gg.minPassable == math.MaxInt || gg.minPassable < 0 {
		gg.minPassable = 0
	}
	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the (dx,dy) moves allowed by gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the stored value of c.
func (gg *GridGraph) Value(c Cell) (int, error) {
	if !gg.InBounds(c.X, c.Y) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return gg.CellValues[c.Y][c.X], nil
}

// Passable reports whether c lies in the grid and is not a wall.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.PassableThreshold
}

// Neighbors implements astar.Policy: passable cells one move away.
func (gg *GridGraph) Neighbors(c, _ Cell) ([]Cell, error) {
	if !gg.InBounds(c.X, c.Y) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		if n := (Cell{c.X + d[0], c.Y + d[1]}); gg.Passable(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Cost implements astar.Policy: the value of to times the step length.
func (gg *GridGraph) Cost(from, to Cell) (float64, error) {
	dx, dy := to.X-from.X, to.Y-from.Y
	if (dx == 0 && dy == 0) || abs(dx) > 1 || abs(dy) > 1 || (gg.Conn == Conn4 && dx != 0 && dy != 0) {
		return 0, fmt.Errorf("%w: %v→%v", ErrNotNeighbor, from, to)
	}
	if !gg.InBounds(from.X, from.Y) || !gg.InBounds(to.X, to.Y) {
		return 0, fmt.Errorf("%w: %v→%v", ErrOutOfBounds, from, to)
	}
	if !gg.Passable(to) {
		return 0, fmt.Errorf("%w: %v→%v", ErrBlocked, from, to)
	}
	step := 1.0
	if dx != 0 && dy != 0 {
		step = math.Sqrt2
	}
	return float64(gg.CellValues[to.Y][to.X]) * step, nil
}

// EstimateCost implements astar.Policy: Manhattan distance for Conn4, octile
// distance for Conn8, scaled by the cheapest passable value.
func (gg *GridGraph) EstimateCost(c, goal Cell) (float64, error) {
	dx, dy := abs(goal.X-c.X), abs(goal.Y-c.Y)
	var d float64
	if gg.Conn == Conn8 {
		lo, hi := min(dx, dy), max(dx, dy)
		d = float64(hi-lo) + math.Sqrt2*float64(lo)
	} else {
		d = float64(dx + dy)
	}
	return d * float64(gg.minPassable), nil
}

// ShortestPath runs an A* search from one passable cell to another.
// A nil Result.Path with a nil error means to is unreachable.
func (gg *GridGraph) ShortestPath(from, to Cell, opts ...astar.Option) (*astar.Result[Cell], error) {
	for _, c := range []Cell{from, to} {
		if !gg.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if !gg.Passable(c) {
			return nil, fmt.Errorf("%w: %v", ErrBlocked, c)
		}
	}
	opts = append([]astar.Option{astar.WithCapacityHint(gg.Width * gg.Height)}, opts...)
	return astar.Search[Cell](gg, from, to, opts...)
}

// ToDigraph converts the passable cells into a *digraph.Graph.
// Each cell becomes a vertex with ID "x,y" and metadata {x, y, value};
// each allowed move becomes an edge weighted like Cost.
// The result uses the zero heuristic, since IDs carry no geometry.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToDigraph() (*digraph.Graph, error) {
	g := digraph.NewGraph(digraph.WithHeuristic(digraph.HeuristicZero))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{x, y}
			if !gg.Passable(c) {
				continue
			}
			v, err := g.AddVertex(c.String())
			if err != nil {
				return nil, err
			}
			v.Metadata["x"] = x
			v.Metadata["y"] = y
			v.Metadata["value"] = gg.CellValues[y][x]
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{x, y}
			if !gg.Passable(c) {
				continue
			}
			nbrs, err := gg.Neighbors(c, c)
			if err != nil {
				return nil, err
			}
			for _, n := range nbrs {
				w, err := gg.Cost(c, n)
				if err != nil {
					return nil, err
				}
				if err := g.AddEdge(c.String(), n.String(), w); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to a Cell.
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{idx % gg.Width, idx / gg.Width}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
