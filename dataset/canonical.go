package dataset

import (
	"fmt"

	"github.com/katalvlaran/moletrap/grid"
)

// Canonical is an instance with its axes in canonical order.
type Canonical struct {
	Shape    []int
	Grid     *grid.Grid
	Solution *grid.Grid
}

// Canonicalize permutes the axes of g and solution so that lengths are
// descending, ties keeping their original order. Both grids must have
// p.Shape; the same permutation is applied to both.
func Canonicalize(p InstanceParams, g, solution *grid.Grid) (Canonical, error) {
	if g == nil || solution == nil {
		return Canonical{}, grid.ErrNilGrid
	}
	want, err := grid.New(p.Shape...)
	if err != nil {
		return Canonical{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if !want.SameShape(g) || !want.SameShape(solution) {
		return Canonical{}, fmt.Errorf("%w: params %v, grid %v, solution %v",
			grid.ErrShapeMismatch, p.Shape, g.Shape(), solution.Shape())
	}

	perm, sorted := grid.CanonicalOrder(p.Shape)
	cg, err := g.Transpose(perm)
	if err != nil {
		return Canonical{}, err
	}
	cs, err := solution.Transpose(perm)
	if err != nil {
		return Canonical{}, err
	}

	return Canonical{Shape: sorted, Grid: cg, Solution: cs}, nil
}
