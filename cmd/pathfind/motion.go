// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/kinematic"
)

func newMotionCmd(c *cli) *cobra.Command {
	var (
		lo, hi, from, to, fromVel, toVel string
		lim                              kinematic.Limits
	)
	cmd := &cobra.Command{
		Use:   "motion",
		Short: "Fewest steps between two lattice states under bounded acceleration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var minV, maxV, startPos, goalPos, startVel, goalVel []int
			for name, in := range map[string]struct {
				text string
				dst  *[]int
			}{
				"min": {lo, &minV}, "max": {hi, &maxV},
				"from": {from, &startPos}, "to": {to, &goalPos},
				"from-velocity": {fromVel, &startVel}, "to-velocity": {toVel, &goalVel},
			} {
				if in.text == "" {
					continue
				}
				v, err := parseInts(in.text)
				if err != nil {
					return fmt.Errorf("--%s: %w", name, err)
				}
				*in.dst = v
			}

			lim.Min, lim.Max = minV, maxV
			p, err := kinematic.NewPlanner(lim)
			if err != nil {
				return err
			}
			start, err := p.State(startPos, startVel)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			goal, err := p.State(goalPos, goalVel)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			search := func(o ...astar.Option) (*astar.Result[*kinematic.State], error) {
				return p.Plan(start, goal, o...)
			}
			label := func(s *kinematic.State) string { return joinInts(s.Position) }
			extra := func(res *astar.Result[*kinematic.State]) string {
				var b strings.Builder
				accel := kinematic.Accelerations(res.Path)
				for i, s := range res.Path {
					fmt.Fprintf(&b, "s=%s v=%s a=%s\n", joinInts(s.Position), joinInts(s.Velocity), joinInts(accel[i]))
				}
				return b.String()
			}
			defer func() { c.logger.Debug("pathfind: lattice states interned", "states", p.Interned()) }()
			return run(cmd, c, search, label, extra)
		},
	}
	cmd.Flags().StringVar(&lo, "min", "", "lower position bound per axis, e.g. 0,0")
	cmd.Flags().StringVar(&hi, "max", "", "upper position bound per axis, e.g. 9,9")
	cmd.Flags().StringVar(&from, "from", "", "start position")
	cmd.Flags().StringVar(&to, "to", "", "goal position")
	cmd.Flags().StringVar(&fromVel, "from-velocity", "", "start velocity (default at rest)")
	cmd.Flags().StringVar(&toVel, "to-velocity", "", "goal velocity (default at rest)")
	cmd.Flags().IntVar(&lim.MaxAccel, "max-accel", 1, "largest acceleration per axis per step")
	cmd.Flags().IntVar(&lim.MaxSpeed, "max-speed", 3, "largest speed per axis")
	for _, f := range []string{"min", "max", "from", "to"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ",")
}
