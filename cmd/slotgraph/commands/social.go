// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/slotgraph/bfs"
	"github.com/katalvlaran/slotgraph/internal/scenario"
	"github.com/katalvlaran/slotgraph/internal/service"
)

// socialRun opens the social network and hands it to fn.
func socialRun(a *app, fn func(cmd *cobra.Command, n *service.Network, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		n, err := a.open(scenario.KindSocial)
		if err != nil {
			return err
		}

		return fn(cmd, n, args)
	}
}

func newSocialCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "social",
		Short: "Query the social network",
		Long: `Query the social network.

USER arguments are names (case-insensitive) or #id references.`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List active users",
		Args:  cobra.NoArgs,
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, _ []string) error {
			a.printer(cmd.OutOrStdout()).Vertices("Users", n.Vertices())

			return nil
		}),
	}

	friends := &cobra.Command{
		Use:   "friends USER",
		Short: "Show the direct friends of a user",
		Args:  cobra.ExactArgs(1),
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, args []string) error {
			edges, err := n.Neighbors(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			h, _ := n.Resolve(args[0])
			a.printer(cmd.OutOrStdout()).Friends(n, h, edges)

			return nil
		}),
	}

	var maxDepth int
	levels := &cobra.Command{
		Use:   "bfs USER",
		Short: "List reachable users by distance",
		Args:  cobra.ExactArgs(1),
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, args []string) error {
			var opts []bfs.Option
			if cmd.Flags().Changed("max-depth") {
				opts = append(opts, bfs.WithMaxDepth(maxDepth))
			}
			res, err := n.BFS(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			a.printer(cmd.OutOrStdout()).Levels(n, res)

			return nil
		}),
	}
	levels.Flags().IntVar(&maxDepth, "max-depth", 0, "stop expanding past this level")

	walk := &cobra.Command{
		Use:   "dfs USER",
		Short: "Walk the network depth-first",
		Args:  cobra.ExactArgs(1),
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, args []string) error {
			res, err := n.DFS(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.printer(cmd.OutOrStdout()).Order(n, "Depth-first from "+n.Label(res.Order[0]), res.Order)

			return nil
		}),
	}

	group := &cobra.Command{
		Use:   "group USER",
		Short: "Show the group a user belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, args []string) error {
			members, err := n.Component(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.printer(cmd.OutOrStdout()).Order(n, "Group of "+n.Label(members[0]), members)

			return nil
		}),
	}

	groups := &cobra.Command{
		Use:   "groups",
		Short: "Partition all users into groups",
		Args:  cobra.NoArgs,
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, _ []string) error {
			all, err := n.Components(cmd.Context())
			if err != nil {
				return err
			}
			a.printer(cmd.OutOrStdout()).Groups(n, all)

			return nil
		}),
	}

	suggestions := &cobra.Command{
		Use:   "suggest USER",
		Short: "Suggest friends of friends",
		Args:  cobra.ExactArgs(1),
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, args []string) error {
			s, err := n.Suggest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			h, _ := n.Resolve(args[0])
			a.printer(cmd.OutOrStdout()).Suggestions(n, h, s)

			return nil
		}),
	}

	connected := &cobra.Command{
		Use:   "connected USER USER",
		Short: "Check whether two users are connected",
		Args:  cobra.ExactArgs(2),
		RunE: socialRun(a, func(cmd *cobra.Command, n *service.Network, args []string) error {
			ok, err := n.Connected(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			u, _ := n.Resolve(args[0])
			v, _ := n.Resolve(args[1])
			a.printer(cmd.OutOrStdout()).Connected(n, u, v, ok)

			return nil
		}),
	}

	cmd.AddCommand(list, friends, levels, walk, group, groups, suggestions, connected)

	return cmd
}
