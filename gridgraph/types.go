// SPDX-License-Identifier: MIT
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlocked indicates a wall cell where a passable one is required.
	ErrBlocked = errors.New("gridgraph: cell is not passable")
	// ErrNotNeighbor indicates Cost was asked for two cells that are not adjacent.
	ErrNotNeighbor = errors.New("gridgraph: cells are not adjacent")
	// ErrBadCell indicates an unknown character in a text grid.
	ErrBadCell = errors.New("gridgraph: unknown cell character")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate and the search node of a GridGraph.
// Two cells are the same node exactly when their coordinates match.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// PassableThreshold is the minimum cell value that can be entered.
	// Lower values are walls.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1 (0 is a wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// GridGraph treats a 2D integer grid as a weighted graph. It is immutable
// once built and therefore safe for concurrent searches.
//
// CellValues[y][x] holds the input value; entering a passable cell costs its
// value times the step length (1 orthogonal, √2 diagonal).
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int

	neighborOffsets [][2]int
	minPassable     int // smallest passable value, floor for the heuristic
}
