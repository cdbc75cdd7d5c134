// SPDX-License-Identifier: MIT
package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FindPaths runs one independent search per query, at most limit at a time
// (limit <= 0 means no limit). paths[i] answers queries[i]. The first error
// cancels the remaining searches and is returned.
//
// policy must be safe for concurrent use.
func FindPaths[N comparable](ctx context.Context, policy Policy[N], queries []Query[N], limit int, opts ...Option) ([][]N, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if ctx == nil {
		ctx = context.Background()
	}
	engine := New(policy, opts...)
	paths := make([][]N, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, q := range queries {
		g.Go(func() error {
			path, err := engine.FindPath(q.Start, q.Goal, WithContext(gctx))
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
