// SPDX-License-Identifier: MIT
// Package astar provides a generic A* shortest-path engine over graphs whose
// nodes, edges and heuristics are supplied by the caller.
//
// Overview:
//
//   - A graph is described by a Policy[N]: Neighbors(node, goal), Cost(a, b)
//     and EstimateCost(node, goal). Nothing else is assumed about N beyond
//     being comparable; use pointer types when two structurally equal values
//     must remain distinct nodes.
//   - FindPath returns start→…→goal inclusive, or nil when the goal cannot be
//     reached. "No path" is a normal result, never an error.
//   - The returned path is optimal when EstimateCost never overestimates.
//     With an inadmissible estimate the path is still valid, just possibly
//     more expensive.
//
// Algorithm:
//
//   - The frontier is a binary heap keyed by (f, discovery order), so among
//     equally scored nodes the one discovered first is expanded first.
//   - A strictly cheaper route to an open node updates its predecessor, g and
//     f in place (decrease-key). Ties and worse routes are discarded.
//   - Closed nodes are final and never reopened, even if a cheaper route is
//     found later. With a consistent heuristic this cannot happen.
//   - Cost is only called on pairs obtained from Neighbors, and only for
//     neighbors that are not closed.
//
// Per-run state:
//
//   - Each call allocates a fresh arena: every discovered node gets a dense
//     slot, and g, f, predecessor and membership live in slot-indexed slices.
//     The arena is dropped when the call returns, so an Engine can be shared
//     between goroutines.
//
// Progress and cancellation:
//
//   - WithProgress registers a callback invoked once per iteration with the
//     ordered frontier and a PathTo accessor; returning false halts the
//     search and FindPath returns nil, nil.
//   - WithHook registers node-agnostic hooks (see package progress for
//     iteration limits, deadlines, tracing and metrics).
//   - WithContext aborts with the context's error; unlike a hook halt, this
//     is reported as an error.
//
// Error handling (sentinel errors):
//
//   - ErrNilPolicy:        no Policy was supplied.
//   - ErrUnimplemented:    a PolicyFuncs capability is nil.
//   - ErrNegativeCost:     Cost returned a negative or NaN value.
//   - ErrInvalidEstimate:  EstimateCost returned NaN.
//   - ErrBackpointerCycle: predecessor links loop (an engine invariant broke).
//   - ErrOptionViolation:  an Option was invalid.
//
// Errors returned by the Policy are wrapped with %w and abort the search.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work plus the policy calls.
//   - Space: O(V) for the arena and heap.
//
// Example:
//
//	path, err := astar.FindPath[*digraph.Vertex](g, start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if path == nil {
//	    fmt.Println("unreachable")
//	}
package astar
