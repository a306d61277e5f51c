package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/moletrap/grid"
	"github.com/katalvlaran/moletrap/model"
	"github.com/katalvlaran/moletrap/optimizer"
)

// Solve returns a minimum-cardinality completion of g: a copy in which every
// preset trap is kept and the fewest free cells are turned into traps so that
// the result is admissible for threshold. g itself is never modified.
//
// name identifies the solve to the optimizer and must be unique among
// concurrent calls. An admissible g is returned as a clone without consulting
// the optimizer.
func Solve(ctx context.Context, g *grid.Grid, threshold int, name string, opts ...Option) (*grid.Grid, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	if threshold <= 0 {
		return nil, grid.ErrInvalidThreshold
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	cfg := gatherOptions(opts)

	ok, err := grid.Admissible(g, threshold)
	if err != nil {
		return nil, err
	}
	if ok {
		cfg.logger.Debug("solver: already admissible", "name", name)
		return g.Clone(), nil
	}

	m, err := model.Build(g, threshold)
	if err != nil {
		return nil, fmt.Errorf("solver: build %q: %w", name, err)
	}

	start := time.Now()
	res, err := cfg.optimizer.Optimize(ctx, name, m)
	if err != nil {
		return nil, fmt.Errorf("solver: optimize %q: %w", name, err)
	}
	if res.Status != optimizer.Optimal {
		return nil, &NonConvergenceError{Name: name, Status: res.Status}
	}
	if len(res.Assignment) != m.NumVars() {
		return nil, fmt.Errorf("solver: optimize %q: %w", name, optimizer.ErrBadModel)
	}

	out := g.Clone()
	for v, on := range res.Assignment {
		if on {
			out.SetAt(m.Vars.Offset(model.VarID(v)), grid.Occupied)
		}
	}
	cfg.logger.Info("solver: solved",
		"name", name,
		"shape", g.Shape(),
		"threshold", threshold,
		"preset", g.Count(),
		"added", res.Objective,
		"elapsed", time.Since(start),
	)

	return out, nil
}

// Verify checks that solved is an admissible completion of original: same
// shape, every preset trap kept. Any violation yields ErrInconsistentResult.
func Verify(original, solved *grid.Grid, threshold int) error {
	if original == nil || solved == nil {
		return grid.ErrNilGrid
	}
	if !original.SameShape(solved) {
		return fmt.Errorf("%w: shape %v, want %v", ErrInconsistentResult, solved.Shape(), original.Shape())
	}
	for off := 0; off < original.Size(); off++ {
		if original.CellAt(off) == grid.Occupied && solved.CellAt(off) != grid.Occupied {
			return fmt.Errorf("%w: preset trap at %s removed", ErrInconsistentResult, original.IndexOf(off).Key())
		}
	}
	ok, err := grid.Admissible(solved, threshold)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: completion is not admissible", ErrInconsistentResult)
	}

	return nil
}
