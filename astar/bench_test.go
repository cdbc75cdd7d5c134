// SPDX-License-Identifier: MIT
package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/astar"
)

type point struct{ x, y int }

// openGrid is an obstacle-free 4-connected grid with unit costs.
type openGrid struct{ w, h int }

func (g openGrid) Neighbors(p, _ point) ([]point, error) {
	out := make([]point, 0, 4)
	for _, d := range [4]point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		q := point{p.x + d.x, p.y + d.y}
		if q.x >= 0 && q.x < g.w && q.y >= 0 && q.y < g.h {
			out = append(out, q)
		}
	}
	return out, nil
}

func (openGrid) Cost(_, _ point) (float64, error) { return 1, nil }

func (openGrid) EstimateCost(p, goal point) (float64, error) {
	dx, dy := p.x-goal.x, p.y-goal.y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy), nil
}

// zeroGrid drops the estimate, turning the search into Dijkstra.
type zeroGrid struct{ openGrid }

func (zeroGrid) EstimateCost(_, _ point) (float64, error) { return 0, nil }

// BenchmarkFindPath_Grid measures corner-to-corner search on a 200×200 grid.
func BenchmarkFindPath_Grid(b *testing.B) {
	g := openGrid{w: 200, h: 200}
	start, goal := point{0, 0}, point{199, 199}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath[point](g, start, goal)
	}
}

// BenchmarkFindPath_GridNoHeuristic is the same search with a zero estimate.
func BenchmarkFindPath_GridNoHeuristic(b *testing.B) {
	g := zeroGrid{openGrid{w: 200, h: 200}}
	start, goal := point{0, 0}, point{199, 199}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath[point](g, start, goal, astar.WithCapacityHint(200*200))
	}
}
