// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/slotgraph/dijkstra"
	"github.com/katalvlaran/slotgraph/internal/scenario"
)

func newRoutesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Query the weighted route map",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List active cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.open(scenario.KindRoutes)
			if err != nil {
				return err
			}
			a.printer(cmd.OutOrStdout()).Vertices("Cities", n.Vertices())

			return nil
		},
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Show every city with its outgoing routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.open(scenario.KindRoutes)
			if err != nil {
				return err
			}
			a.printer(cmd.OutOrStdout()).Routes(n, n.Vertices(), n.Edges())

			return nil
		},
	}

	tieBreak := tieBreakFlag(dijkstra.TieBreakFirst)
	var replaceTies bool
	path := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find the cheapest route between two cities",
		Long: `Find the cheapest route between two cities.

FROM and TO are city names (case-insensitive) or #id references.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.open(scenario.KindRoutes)
			if err != nil {
				return err
			}
			opts := []dijkstra.Option{dijkstra.WithTieBreak(dijkstra.TieBreak(tieBreak))}
			if replaceTies {
				opts = append(opts, dijkstra.WithReplaceEqualCost())
			}
			p, err := n.ShortestPath(cmd.Context(), args[0], args[1], opts...)
			out := a.printer(cmd.OutOrStdout())
			switch {
			case errors.Is(err, dijkstra.ErrUnreachable):
				src, _ := n.Resolve(args[0])
				dst, _ := n.Resolve(args[1])
				out.Unreachable(n, src, dst)

				return nil
			case err != nil:
				return err
			}
			out.Path(n, p)

			return nil
		},
	}
	path.Flags().Var(&tieBreak, "tie-break", "which city to settle among equal distances: first or last")
	path.Flags().BoolVar(&replaceTies, "replace-ties", false, "let a later equal-cost route take over the predecessor")

	cmd.AddCommand(list, dump, path)

	return cmd
}

// tieBreakFlag parses --tie-break.
type tieBreakFlag dijkstra.TieBreak

var _ pflag.Value = (*tieBreakFlag)(nil)

func (f *tieBreakFlag) String() string {
	if dijkstra.TieBreak(*f) == dijkstra.TieBreakLast {
		return "last"
	}

	return "first"
}

func (f *tieBreakFlag) Set(s string) error {
	switch s {
	case "first":
		*f = tieBreakFlag(dijkstra.TieBreakFirst)
	case "last":
		*f = tieBreakFlag(dijkstra.TieBreakLast)
	default:
		return fmt.Errorf("must be first or last, got %q", s)
	}

	return nil
}

func (f *tieBreakFlag) Type() string { return "first|last" }
