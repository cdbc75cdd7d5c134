// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/progress"
)

// Exit codes.
const (
	exitFound  = 0 // a path was found
	exitNoPath = 1 // search finished or halted without a path
	exitError  = 2 // bad input or failed search
)

// errNoPath is returned by commands whose search found nothing.
var errNoPath = errors.New("no path")

// cli carries the flags shared by every subcommand.
type cli struct {
	stdout, stderr io.Writer

	verbose       bool
	logFormat     string
	trace         bool
	timeout       time.Duration
	maxIterations int
	jsonOut       bool
	metricsFile   string

	logger *slog.Logger
}

// execute runs the command line and maps its outcome to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}
	cmd := newRootCmd(c)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitFound
	case errors.Is(err, errNoPath):
		return exitNoPath
	}
	fmt.Fprintf(stderr, "pathfind: %v\n", err)
	return exitError
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathfind",
		Short:         "Shortest paths with A* over graphs, grids and motion lattices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if c.timeout < 0 {
				return fmt.Errorf("--timeout must not be negative, got %v", c.timeout)
			}
			if c.logFormat != "text" && c.logFormat != "json" {
				return fmt.Errorf("--log-format must be text or json, got %q", c.logFormat)
			}
			c.logger = newLogger(c.verbose || c.trace, c.logFormat, c.stderr)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "log search summaries to stderr")
	pf.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&c.trace, "trace", false, "log every iteration (implies --verbose)")
	pf.DurationVar(&c.timeout, "timeout", 0, "halt the search after this long (0 = no limit)")
	pf.IntVar(&c.maxIterations, "max-iterations", 0, "halt the search after this many iterations (0 = no limit)")
	pf.BoolVar(&c.jsonOut, "json", false, "print the result as JSON")
	pf.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	root.AddCommand(newRouteCmd(c), newGridCmd(c), newMotionCmd(c))
	return root
}

// newLogger builds the diagnostics logger. Without verbose it only reports
// warnings and errors.
func newLogger(verbose bool, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// run executes search with the hooks selected by the shared flags, records
// metrics when asked, and prints the outcome.
func run[N comparable](cmd *cobra.Command, c *cli, search func(...astar.Option) (*astar.Result[N], error), label func(N) string, extra func(*astar.Result[N]) string) error {
	opts := []astar.Option{
		astar.WithContext(cmd.Context()),
		astar.WithLogger(c.logger),
	}
	if c.maxIterations > 0 {
		opts = append(opts, astar.WithHook(progress.Limit(c.maxIterations)))
	}
	if c.timeout > 0 {
		opts = append(opts, astar.WithHook(progress.Deadline(c.timeout)))
	}
	if c.trace {
		opts = append(opts, astar.WithHook(progress.Trace(c.logger)))
	}

	var (
		reg     *prometheus.Registry
		metrics *progress.Metrics
	)
	if c.metricsFile != "" {
		reg = prometheus.NewRegistry()
		metrics = progress.NewMetrics(reg, "pathfind")
		opts = append(opts, astar.WithHook(metrics.Hook()))
	}

	res, err := search(opts...)
	if metrics != nil {
		outcome := progress.ObserveResult(metrics, res, err)
		c.logger.Debug("pathfind: search outcome", "outcome", outcome)
		if werr := prometheus.WriteToTextfile(c.metricsFile, reg); werr != nil {
			return errors.Join(err, fmt.Errorf("write metrics: %w", werr))
		}
	}
	if err != nil {
		return err
	}

	if perr := printResult(c, res, label, extra); perr != nil {
		return perr
	}
	if !res.Found {
		return errNoPath
	}
	return nil
}

// parseInts reads a comma-separated integer vector such as "3,-1".
func parseInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty vector")
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
