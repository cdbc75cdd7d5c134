// SPDX-License-Identifier: MIT
// Package astar implements the A* shortest-path search over caller-defined graphs.
//
// The engine keeps all per-node state in a run-local arena, ranks the open
// set with a binary heap keyed by (f, discovery order) and never reopens a
// closed node.
package astar

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Engine runs A* searches over the graph described by a Policy.
// An Engine holds no per-run state, so concurrent calls are safe as long as
// the Policy itself is.
type Engine[N comparable] struct {
	policy Policy[N]
	opts   []Option
}

// New returns an Engine over policy. opts apply to every call and are
// extended by per-call options.
func New[N comparable](policy Policy[N], opts ...Option) *Engine[N] {
	return &Engine[N]{policy: policy, opts: opts}
}

// FindPath returns the cheapest path start→…→goal inclusive.
// A nil path with a nil error means the goal is unreachable or a hook halted
// the search. Policy errors abort the search and are returned wrapped.
func (e *Engine[N]) FindPath(start, goal N, opts ...Option) ([]N, error) {
	res, err := e.Search(start, goal, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search is FindPath with run statistics.
func (e *Engine[N]) Search(start, goal N, opts ...Option) (*Result[N], error) {
	if e == nil || e.policy == nil {
		return nil, ErrNilPolicy
	}
	o := DefaultOptions()
	for _, opt := range e.opts {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var progress ProgressFunc[N]
	if o.progress != nil {
		fn, ok := o.progress.(ProgressFunc[N])
		if !ok {
			return nil, fmt.Errorf("%w: progress callback node type %T does not match engine", ErrOptionViolation, o.progress)
		}
		progress = fn
	}

	r := newRunner(e.policy, goal, o, progress)
	res, err := r.run(start)
	o.Logger.Debug("astar: search finished",
		"run_id", r.id,
		"found", res.Found,
		"halted", res.Halted,
		"iterations", res.Iterations,
		"expanded", res.Expanded,
		"opened", r.a.len(),
		"elapsed", time.Since(r.began),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FindPath runs a single search with a throwaway Engine.
func FindPath[N comparable](policy Policy[N], start, goal N, opts ...Option) ([]N, error) {
	return New(policy).FindPath(start, goal, opts...)
}

// Search runs a single search with a throwaway Engine and returns statistics.
func Search[N comparable](policy Policy[N], start, goal N, opts ...Option) (*Result[N], error) {
	return New(policy).Search(start, goal, opts...)
}

// runner holds the mutable state of one search.
type runner[N comparable] struct {
	policy   Policy[N]
	goal     N
	opts     Options
	progress ProgressFunc[N]
	a        *arena[N]
	open     *frontier[N]
	res      *Result[N]
	id       string
	began    time.Time
}

func newRunner[N comparable](policy Policy[N], goal N, o Options, progress ProgressFunc[N]) *runner[N] {
	a := newArena[N](o.CapacityHint)
	return &runner[N]{
		policy:   policy,
		goal:     goal,
		opts:     o,
		progress: progress,
		a:        a,
		open:     newFrontier(a, o.CapacityHint),
		res:      &Result[N]{},
		id:       uuid.NewString(),
		began:    time.Now(),
	}
}

// run seeds the frontier with start and iterates until the goal is popped,
// the frontier empties, a hook halts, or an error occurs.
func (r *runner[N]) run(start N) (*Result[N], error) {
	h, err := r.estimate(start)
	if err != nil {
		return r.res, err
	}
	r.open.push(r.a.open(start, 0, h, noSlot))

	for r.open.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.res, fmt.Errorf("astar: search aborted: %w", r.opts.Ctx.Err())
		default:
		}

		r.res.Iterations++
		if !r.proceed() {
			r.res.Iterations--
			r.res.Halted = true
			return r.res, nil
		}

		cur := r.open.pop()
		if r.a.nodes[cur] == r.goal {
			path, err := r.a.pathTo(cur)
			if err != nil {
				return r.res, err
			}
			r.res.Path = path
			r.res.Cost = r.a.g[cur]
			r.res.Found = true
			return r.res, nil
		}

		r.a.state[cur] = stateClosed
		r.res.Expanded++
		if err := r.expand(cur); err != nil {
			return r.res, err
		}
	}

	return r.res, nil
}

// proceed runs hooks then the progress callback; false halts the search.
func (r *runner[N]) proceed() bool {
	for _, h := range r.opts.Hooks {
		if !h(r) {
			return false
		}
	}
	if r.progress != nil && !r.progress(r) {
		return false
	}
	return true
}

// expand relaxes every neighbor of cur that is not closed.
func (r *runner[N]) expand(cur int32) error {
	node := r.a.nodes[cur]
	neighbors, err := r.policy.Neighbors(node, r.goal)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %v: %w", node, err)
	}
	for _, nbr := range neighbors {
		slot, seen := r.a.lookup(nbr)
		if seen && r.a.state[slot] == stateClosed {
			continue
		}

		c, err := r.policy.Cost(node, nbr)
		if err != nil {
			return fmt.Errorf("astar: cost %v→%v: %w", node, nbr, err)
		}
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, node, nbr, c)
		}
		tentative := r.a.g[cur] + c

		if !seen {
			h, err := r.estimate(nbr)
			if err != nil {
				return err
			}
			r.open.push(r.a.open(nbr, tentative, tentative+h, cur))
			continue
		}
		if tentative >= r.a.g[slot] {
			continue
		}

		h, err := r.estimate(nbr)
		if err != nil {
			return err
		}
		r.a.from[slot] = cur
		r.a.g[slot] = tentative
		r.a.f[slot] = tentative + h
		r.open.fix(slot)
	}
	return nil
}

func (r *runner[N]) estimate(n N) (float64, error) {
	h, err := r.policy.EstimateCost(n, r.goal)
	if err != nil {
		return 0, fmt.Errorf("astar: estimate %v→%v: %w", n, r.goal, err)
	}
	if math.IsNaN(h) {
		return 0, fmt.Errorf("%w: %v→%v", ErrInvalidEstimate, n, r.goal)
	}
	return h, nil
}
