// SPDX-License-Identifier: MIT
// Package gridgraph treats a 2D grid of integer costs as a graph searchable
// by package astar, and adds component analysis and minimal-cost “island”
// expansions on top.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells below
//     PassableThreshold are walls.
//   - GridGraph implements astar.Policy[Cell]: entering a cell costs its
//     value times the step length (1 orthogonal, √2 diagonal).
//   - EstimateCost is Manhattan (Conn4) or octile (Conn8) distance scaled by
//     the cheapest passable value, so it never overestimates.
//   - ConnectedComponents finds islands of passable cells.
//   - ExpandIsland computes the fewest wall conversions joining two islands.
//   - Parse and Render read and draw a text notation ('#', '.', '1'..'9').
//   - ToDigraph converts the passable cells into a *digraph.Graph.
//
// Complexity:
//
//   - ShortestPath:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d),          Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToDigraph:           O(W×H×d),          Memory: O(W×H×d).
//
// Options:
//
//   - GridOptions.PassableThreshold: minimum value that can be entered.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed input grid.
//   - ErrOutOfBounds, ErrBlocked: endpoint outside the grid or on a wall.
//   - ErrNotNeighbor: Cost asked for cells that are not one move apart.
//   - ErrBadCell: unknown character in a text grid.
//   - ErrComponentIndex, ErrNoPath: ExpandIsland input or outcome.
package gridgraph
