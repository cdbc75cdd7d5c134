// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfind/astar"
)

// report is the JSON form of a search result.
type report struct {
	Found      bool     `json:"found"`
	Halted     bool     `json:"halted,omitempty"`
	Path       []string `json:"path"`
	Cost       float64  `json:"cost"`
	Expanded   int      `json:"expanded"`
	Iterations int      `json:"iterations"`
	Extra      string   `json:"extra,omitempty"`
}

func newReport[N comparable](res *astar.Result[N], label func(N) string) report {
	r := report{
		Found:      res.Found,
		Halted:     res.Halted,
		Path:       make([]string, 0, len(res.Path)),
		Cost:       res.Cost,
		Expanded:   res.Expanded,
		Iterations: res.Iterations,
	}
	for _, n := range res.Path {
		r.Path = append(r.Path, label(n))
	}
	return r
}

// printResult writes res to stdout, as JSON with --json.
func printResult[N comparable](c *cli, res *astar.Result[N], label func(N) string, extra func(*astar.Result[N]) string) error {
	r := newReport(res, label)
	if extra != nil && res.Found {
		r.Extra = extra(res)
	}

	if c.jsonOut {
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	switch {
	case r.Found:
		fmt.Fprintf(c.stdout, "%s\ncost %g, %d expanded, %d iterations\n",
			strings.Join(r.Path, " -> "), r.Cost, r.Expanded, r.Iterations)
	case r.Halted:
		fmt.Fprintf(c.stdout, "search halted after %d iterations\n", r.Iterations)
	default:
		fmt.Fprintf(c.stdout, "no path (%d expanded)\n", r.Expanded)
	}
	if r.Extra != "" {
		fmt.Fprint(c.stdout, r.Extra)
	}
	return nil
}
