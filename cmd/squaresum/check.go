// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/milliams/square-sum/hamilton"
)

func newCheckCmd() *cobra.Command {
	var loose bool
	cmd := &cobra.Command{
		Use:   "check VALUE...",
		Short: "Verify that a sequence is a square-sum path",
		Long: "Verify that every adjacent pair sums to a perfect square and, unless\n" +
			"--loose is given, that the values are a permutation of 1..n.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseInts(args)
			if err != nil {
				return err
			}
			if loose {
				if !hamilton.CheckSumSquares(seq) {
					return hamilton.ErrNotSquareSum
				}
			} else if err := hamilton.ValidatePath(seq, len(seq)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid (n=%d, magic=%t)\n", len(seq), hamilton.IsMagic(seq))
			return nil
		},
	}
	cmd.Flags().BoolVar(&loose, "loose", false, "only check adjacent sums")

	return cmd
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
