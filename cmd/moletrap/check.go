package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/moletrap/grid"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Report whether a grid already stops every mole, and its score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.threshold()
			if err != nil {
				return err
			}
			g, err := loadGrid(args[0])
			if err != nil {
				return err
			}
			ok, err := grid.Admissible(g, t)
			if err != nil {
				return err
			}
			score, err := grid.Score(g, t)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admissible: %t\nscore: %v\n", ok, score)

			return nil
		},
	}
	cmd.Flags().Int("threshold", 0, "mole size (required, > 0)")

	return cmd
}
