package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/moletrap/dataset"
	"github.com/katalvlaran/moletrap/grid"
	"github.com/katalvlaran/moletrap/optimizer"
	"github.com/katalvlaran/moletrap/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Complete a grid with the fewest additional traps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.threshold()
			if err != nil {
				return err
			}
			opt, err := a.optimizer()
			if err != nil {
				return err
			}
			g, err := loadGrid(args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + "-" + uuid.NewString()

			out, err := solver.Solve(cmd.Context(), g, t, name,
				solver.WithOptimizer(opt), solver.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err = solver.Verify(g, out, t); err != nil {
				return err
			}
			score, err := grid.Score(out, t)
			if err != nil {
				return err
			}
			a.logger.Info("solved", "file", args[0], "added", out.Count()-g.Count(), "score", score)

			return dataset.WriteGrid(cmd.OutOrStdout(), out)
		},
	}
	addSolverFlags(cmd)

	return cmd
}

// addSolverFlags registers the flags read by app.optimizer.
func addSolverFlags(cmd *cobra.Command) {
	cmd.Flags().Int("threshold", 0, "mole size (required, > 0)")
	cmd.Flags().String("backend", "bnb", "optimizer backend: bnb (branch-and-bound) or pb (gophersat pseudo-boolean)")
	cmd.Flags().String("scratch-dir", "", "directory for transient model files of the pb backend")
	cmd.Flags().Int("node-limit", 0, "search node budget of the bnb backend (0 = unlimited)")
}

// optimizer builds the backend selected by --backend.
func (a *app) optimizer() (optimizer.Optimizer, error) {
	switch backend := a.v.GetString("backend"); backend {
	case "bnb", "":
		return optimizer.NewBranchAndBound(
			optimizer.WithLogger(a.logger),
			optimizer.WithNodeLimit(a.v.GetInt("node-limit")),
		), nil
	case "pb":
		return optimizer.NewPseudoBoolean(
			optimizer.WithLogger(a.logger),
			optimizer.WithScratchDir(a.v.GetString("scratch-dir")),
		), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want bnb or pb)", backend)
	}
}
