// SPDX-License-Identifier: MIT
// Package pathfind is a generic A* search engine and a set of ready-made
// search domains.
//
// What is inside:
//
//	astar/     : the engine: Policy[N] capability set, arena-backed state,
//	              (f, discovery order) frontier, progress hooks, batch search
//	progress/  : hooks for iteration limits, deadlines, context cancellation,
//	              slog tracing and Prometheus metrics
//	digraph/   : weighted directed graph with pointer-identity vertices and a
//	              YAML document format
//	gridgraph/ : 2D cost grids with 4/8 connectivity, islands and expansions
//	kinematic/ : position/velocity/acceleration lattice for motion planning
//	cmd/pathfind: command-line front end for all three domains
//
// The engine knows nothing about its nodes beyond ==. A domain supplies
// neighbors, exact step costs and an admissible estimate; the engine owns
// every piece of search bookkeeping, so the same node may take part in any
// number of concurrent searches.
//
//	g, _ := digraph.LoadFile("roads.yaml")
//	res, err := g.ShortestPath("depot", "store",
//		astar.WithHook(progress.Deadline(50*time.Millisecond)))
package pathfind
