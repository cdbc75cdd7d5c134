// SPDX-License-Identifier: MIT
package gridgraph

import (
	"math"

	"github.com/katalvlaran/pathfind/astar"
)

// Virtual endpoints of a conversion search. Both lie outside every grid.
var (
	virtualSource = Cell{X: -1, Y: -1}
	virtualSink   = Cell{X: -2, Y: -2}
)

// conversion is the policy behind ExpandIsland: every in-bounds move is
// allowed, entering a wall costs 1 and entering a passable cell costs 0.
// virtualSource links to every cell of src and every cell of dst links to
// virtualSink, both at cost 0, so one search covers all endpoints.
type conversion struct {
	gg  *GridGraph
	src []Cell
	dst map[Cell]struct{}
}

func (p *conversion) Neighbors(c, _ Cell) ([]Cell, error) {
	if c == virtualSource {
		return p.src, nil
	}
	out := make([]Cell, 0, len(p.gg.neighborOffsets)+1)
	for _, d := range p.gg.neighborOffsets {
		if n := (Cell{c.X + d[0], c.Y + d[1]}); p.gg.InBounds(n.X, n.Y) {
			out = append(out, n)
		}
	}
	if _, ok := p.dst[c]; ok {
		out = append(out, virtualSink)
	}
	return out, nil
}

func (p *conversion) Cost(from, to Cell) (float64, error) {
	if from == virtualSource || to == virtualSink || p.gg.Passable(to) {
		return 0, nil
	}
	return 1, nil
}

func (p *conversion) EstimateCost(_, _ Cell) (float64, error) {
	return 0, nil
}

// ExpandIsland finds a minimum-conversion path of wall cells that connects
// any cell of component srcComp to any cell of component dstComp, as
// numbered by ConnectedComponents. Each converted wall cell costs 1.
// ErrNoPath is returned only when a hook halts the search early.
// Returns the cells of the path, land endpoints included, and the number
// of conversions.
//
// Behavior:
//  1. Validate component indices.
//  2. Run one A* search from a virtual source adjacent to every srcComp
//     cell to a virtual sink adjacent to every dstComp cell, with a zero
//     estimate and 0/1 step costs.
//  3. Strip the virtual endpoints from the path.
//
// Complexity: O(W·H·d·log(W·H)). Memory: O(W·H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int, opts ...astar.Option) (path []Cell, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	p := &conversion{
		gg:  gg,
		src: comps[srcComp],
		dst: make(map[Cell]struct{}, len(comps[dstComp])),
	}
	for _, c := range comps[dstComp] {
		p.dst[c] = struct{}{}
	}

	opts = append([]astar.Option{astar.WithCapacityHint(gg.Width*gg.Height + 2)}, opts...)
	res, err := astar.Search[Cell](p, virtualSource, virtualSink, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !res.Found {
		return nil, 0, ErrNoPath
	}
	return res.Path[1 : len(res.Path)-1], int(math.Round(res.Cost)), nil
}
