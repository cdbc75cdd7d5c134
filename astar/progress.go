// SPDX-License-Identifier: MIT
package astar

import "time"

// The runner is the Progress view handed to hooks; its methods read the
// run's arena and are only valid during the callback.

// Iteration implements Status.
func (r *runner[N]) Iteration() int { return r.res.Iterations }

// FrontierLen implements Status.
func (r *runner[N]) FrontierLen() int { return r.open.Len() }

// Expanded implements Status.
func (r *runner[N]) Expanded() int { return r.res.Expanded }

// Best implements Status.
func (r *runner[N]) Best() (g, f float64, ok bool) {
	s, ok := r.open.head()
	if !ok {
		return 0, 0, false
	}
	return r.a.g[s], r.a.f[s], true
}

// Started implements Status.
func (r *runner[N]) Started() time.Time { return r.began }

// RunID implements Status.
func (r *runner[N]) RunID() string { return r.id }

// Frontier implements Progress.
func (r *runner[N]) Frontier() []N {
	slots := r.open.ordered()
	out := make([]N, len(slots))
	for i, s := range slots {
		out[i] = r.a.nodes[s]
	}
	return out
}

// PathTo implements Progress.
func (r *runner[N]) PathTo(node N) []N {
	s, ok := r.a.lookup(node)
	if !ok {
		return nil
	}
	path, err := r.a.pathTo(s)
	if err != nil {
		return nil
	}
	return path
}

// GScore implements Progress.
func (r *runner[N]) GScore(node N) (float64, bool) {
	s, ok := r.a.lookup(node)
	if !ok {
		return 0, false
	}
	return r.a.g[s], true
}

// FScore implements Progress.
func (r *runner[N]) FScore(node N) (float64, bool) {
	s, ok := r.a.lookup(node)
	if !ok {
		return 0, false
	}
	return r.a.f[s], true
}
