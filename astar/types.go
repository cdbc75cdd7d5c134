// SPDX-License-Identifier: MIT
// Package astar defines the capability set, options, results and sentinel
// errors of the A* search engine.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors for A* execution.
var (
	// ErrNilPolicy is returned when no GraphPolicy is supplied to the engine.
	ErrNilPolicy = errors.New("astar: policy is nil")

	// ErrUnimplemented is returned when a PolicyFuncs capability is not set.
	ErrUnimplemented = errors.New("astar: capability not implemented")

	// ErrNegativeCost is returned when Cost reports a negative or NaN edge cost.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrInvalidEstimate is returned when EstimateCost reports NaN.
	ErrInvalidEstimate = errors.New("astar: estimate is NaN")

	// ErrBackpointerCycle is returned when path reconstruction walks more
	// predecessors than nodes were ever opened.
	ErrBackpointerCycle = errors.New("astar: cycle in predecessor links")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Policy is the capability set a domain implements to be searched.
//
// Neighbors must yield each neighbor at most once per call. Cost is only
// invoked for pairs where b was returned by Neighbors(a, goal). EstimateCost
// must never overestimate the remaining cost for the returned path to be optimal.
type Policy[N comparable] interface {
	Neighbors(node, goal N) ([]N, error)
	Cost(from, to N) (float64, error)
	EstimateCost(node, goal N) (float64, error)
}

// PolicyFuncs adapts plain functions to Policy. A nil field fails with
// ErrUnimplemented the first time the engine needs it.
type PolicyFuncs[N comparable] struct {
	NeighborsFunc    func(node, goal N) ([]N, error)
	CostFunc         func(from, to N) (float64, error)
	EstimateCostFunc func(node, goal N) (float64, error)
}

// Neighbors implements Policy.
func (p PolicyFuncs[N]) Neighbors(node, goal N) ([]N, error) {
	if p.NeighborsFunc == nil {
		return nil, fmt.Errorf("%w: Neighbors", ErrUnimplemented)
	}
	return p.NeighborsFunc(node, goal)
}

// Cost implements Policy.
func (p PolicyFuncs[N]) Cost(from, to N) (float64, error) {
	if p.CostFunc == nil {
		return 0, fmt.Errorf("%w: Cost", ErrUnimplemented)
	}
	return p.CostFunc(from, to)
}

// EstimateCost implements Policy.
func (p PolicyFuncs[N]) EstimateCost(node, goal N) (float64, error) {
	if p.EstimateCostFunc == nil {
		return 0, fmt.Errorf("%w: EstimateCost", ErrUnimplemented)
	}
	return p.EstimateCostFunc(node, goal)
}

// Status is the node-agnostic view of a running search handed to hooks.
type Status interface {
	// Iteration is the 1-based number of the loop iteration about to run.
	Iteration() int
	// FrontierLen is the number of open nodes.
	FrontierLen() int
	// Expanded is the number of nodes closed so far.
	Expanded() int
	// Best reports the g and f scores of the frontier head.
	Best() (g, f float64, ok bool)
	// Started is when the run began.
	Started() time.Time
	// RunID identifies the run; it is unique per search.
	RunID() string
}

// Progress is the full view of a running search handed to a ProgressFunc.
type Progress[N comparable] interface {
	Status
	// Frontier returns the open nodes ordered by ascending f, ties in discovery order.
	Frontier() []N
	// PathTo reconstructs start→…→node along the current predecessor links,
	// or nil if node was never opened.
	PathTo(node N) []N
	// GScore returns the best known cost from start to node.
	GScore(node N) (float64, bool)
	// FScore returns GScore plus the estimate from node to goal.
	FScore(node N) (float64, bool)
}

// ProgressFunc is invoked once per iteration before the frontier head is
// removed. Returning false halts the search with no path.
type ProgressFunc[N comparable] func(p Progress[N]) bool

// Hook is a node-agnostic ProgressFunc. Hooks compose across node types.
// A hook may be shared by concurrent searches, so per-run data belongs on
// Status rather than in the hook's closure.
type Hook func(s Status) bool

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx aborts the search with its error once done.
	Ctx context.Context

	// Logger receives debug records for each run.
	Logger *slog.Logger

	// CapacityHint pre-sizes per-run tables.
	CapacityHint int

	// Hooks run in order each iteration; the first false halts the search.
	Hooks []Hook

	// progress holds a ProgressFunc[N]; its N is checked at run time.
	progress any

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - a logger that discards everything
//   - no capacity hint, no hooks, no progress callback.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a context checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes per-run debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithCapacityHint pre-sizes the per-run tables for n nodes.
//
//	n > 0: pre-size
//	n == 0: no hint
//	n < 0: invalid option → ErrOptionViolation
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: CapacityHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CapacityHint = n
	}
}

// WithHook appends a node-agnostic hook.
func WithHook(h Hook) Option {
	return func(o *Options) {
		if h != nil {
			o.Hooks = append(o.Hooks, h)
		}
	}
}

// WithProgress registers the per-iteration progress callback. Its node type
// must match the engine's, otherwise the search fails with ErrOptionViolation.
func WithProgress[N comparable](fn ProgressFunc[N]) Option {
	return func(o *Options) {
		if fn != nil {
			o.progress = fn
		}
	}
}

// Result holds the outcome of a search.
//   - Path: start→…→goal inclusive, nil when not found.
//   - Cost: g score of goal when found.
//   - Expanded: nodes closed.
//   - Iterations: loop iterations entered.
//   - Found: goal was reached.
//   - Halted: a hook or progress callback stopped the search.
type Result[N comparable] struct {
	Path       []N
	Cost       float64
	Expanded   int
	Iterations int
	Found      bool
	Halted     bool
}

// Query is one start/goal pair for FindPaths.
type Query[N comparable] struct {
	Start N
	Goal  N
}
