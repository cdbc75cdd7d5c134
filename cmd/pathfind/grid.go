// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/gridgraph"
)

func newGridCmd(c *cli) *cobra.Command {
	var (
		mapFile, from, to string
		diagonal, render  bool
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Cheapest walk between two cells of a text grid",
		Long: "The grid file has one row per line: '#' is a wall, '.' costs 1\n" +
			"and a digit 1-9 costs that much to enter. Cells are x,y from the top left.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseCell(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			goal, err := parseCell(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			opts := gridgraph.DefaultGridOptions()
			if diagonal {
				opts.Conn = gridgraph.Conn8
			}
			f, err := os.Open(mapFile)
			if err != nil {
				return err
			}
			defer f.Close()
			gg, err := gridgraph.Parse(f, opts)
			if err != nil {
				return err
			}
			c.logger.Debug("pathfind: grid loaded", "file", mapFile, "width", gg.Width, "height", gg.Height)

			search := func(o ...astar.Option) (*astar.Result[gridgraph.Cell], error) {
				return gg.ShortestPath(start, goal, o...)
			}
			var extra func(*astar.Result[gridgraph.Cell]) string
			if render {
				extra = func(res *astar.Result[gridgraph.Cell]) string { return gg.Render(res.Path) }
			}
			return run(cmd, c, search, gridgraph.Cell.String, extra)
		},
	}
	cmd.Flags().StringVar(&mapFile, "map", "", "text grid file")
	cmd.Flags().StringVar(&from, "from", "", "start cell x,y")
	cmd.Flags().StringVar(&to, "to", "", "goal cell x,y")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal moves")
	cmd.Flags().BoolVar(&render, "render", false, "draw the path on the grid")
	for _, f := range []string{"map", "from", "to"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func parseCell(s string) (gridgraph.Cell, error) {
	v, err := parseInts(s)
	if err != nil {
		return gridgraph.Cell{}, err
	}
	if len(v) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want x,y", s)
	}
	return gridgraph.Cell{X: v[0], Y: v[1]}, nil
}
