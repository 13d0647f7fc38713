// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/milliams/square-sum/bfs"
	"github.com/milliams/square-sum/builder"
)

func newGraphCmd() *cobra.Command {
	var edges bool
	cmd := &cobra.Command{
		Use:   "graph N",
		Short: "Describe the square-sum graph on 1..N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order: %w", err)
			}
			g, err := builder.BuildGraph(n)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "order: %d\nedges: %d\ncomponents: %d\n", g.Order(), g.Size(), bfs.Components(g))
			if n > 0 {
				res, err := bfs.BFS(g, 0)
				if err != nil {
					return err
				}
				reached, depth := 0, 0
				for v := range res.Depth {
					if res.Reached(v) {
						reached++
						depth = max(depth, res.Depth[v])
					}
				}
				fmt.Fprintf(w, "reached from 1: %d\nmax depth from 1: %d\n", reached, depth)
			}
			if edges {
				for _, e := range g.Edges() {
					fmt.Fprintf(w, "%d-%d\n", e[0]+1, e[1]+1)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&edges, "edges", false, "list every edge as 1-indexed values")

	return cmd
}
