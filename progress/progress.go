// SPDX-License-Identifier: MIT
// Package progress provides ready-made astar.Hook values for bounding and
// observing searches: iteration limits, deadlines, context cancellation,
// structured tracing and Prometheus metrics.
//
// A hook that returns false halts the search, which then reports "no path"
// rather than an error. Hooks compose with Chain or by passing several
// astar.WithHook options.
package progress

import (
	"context"
	"time"

	"github.com/katalvlaran/pathfind/astar"
)

// Limit halts the search once more than n iterations would run.
// n <= 0 disables the limit.
func Limit(n int) astar.Hook {
	return func(s astar.Status) bool {
		return n <= 0 || s.Iteration() <= n
	}
}

// Deadline halts the search once d has elapsed since it started. The clock
// is the run's own, so one hook may serve concurrent searches.
func Deadline(d time.Duration) astar.Hook {
	return deadline(d, time.Now)
}

func deadline(d time.Duration, now func() time.Time) astar.Hook {
	return func(s astar.Status) bool {
		return now().Sub(s.Started()) < d
	}
}

// Context halts the search once ctx is done. Unlike astar.WithContext, the
// search then reports no path instead of the context error.
func Context(ctx context.Context) astar.Hook {
	return func(astar.Status) bool {
		return ctx.Err() == nil
	}
}

// Chain runs hooks in order and halts at the first that returns false.
func Chain(hooks ...astar.Hook) astar.Hook {
	return func(s astar.Status) bool {
		for _, h := range hooks {
			if h != nil && !h(s) {
				return false
			}
		}
		return true
	}
}
