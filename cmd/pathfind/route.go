// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/digraph"
)

func newRouteCmd(c *cli) *cobra.Command {
	var graphFile, from, to, heuristic string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Cheapest route between two vertices of a YAML graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := digraph.LoadFile(graphFile)
			if err != nil {
				return err
			}
			if heuristic != "" {
				h, err := digraph.ParseHeuristic(heuristic)
				if err != nil {
					return err
				}
				g.SetHeuristic(h)
			}
			c.logger.Debug("pathfind: graph loaded", "file", graphFile, "vertices", len(g.Vertices()), "heuristic", g.Heuristic().String())

			search := func(o ...astar.Option) (*astar.Result[*digraph.Vertex], error) {
				return g.ShortestPath(from, to, o...)
			}
			return run(cmd, c, search, (*digraph.Vertex).String, nil)
		},
	}
	cmd.Flags().StringVar(&graphFile, "graph", "", "YAML graph document")
	cmd.Flags().StringVar(&from, "from", "", "start vertex ID")
	cmd.Flags().StringVar(&to, "to", "", "goal vertex ID")
	cmd.Flags().StringVar(&heuristic, "heuristic", "", "min-edge or zero (default: the document's)")
	for _, f := range []string{"graph", "from", "to"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
