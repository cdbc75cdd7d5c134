// SPDX-License-Identifier: MIT
package progress

import (
	"log/slog"

	"github.com/katalvlaran/pathfind/astar"
)

// Trace logs every iteration at debug level, tagged with the run's run_id.
func Trace(logger *slog.Logger) astar.Hook {
	if logger == nil {
		logger = slog.Default()
	}
	return func(s astar.Status) bool {
		run := logger.With("run_id", s.RunID())
		if s.Iteration() == 1 {
			run.Debug("astar: search started")
		}
		g, f, _ := s.Best()
		run.Debug("astar: iteration",
			"iteration", s.Iteration(),
			"frontier", s.FrontierLen(),
			"expanded", s.Expanded(),
			"head_g", g,
			"head_f", f,
		)
		return true
	}
}
