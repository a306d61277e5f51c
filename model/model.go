package model

import (
	"errors"

	"github.com/katalvlaran/moletrap/grid"
)

// ErrDuplicateConstraint is returned when two constraints share a key.
var ErrDuplicateConstraint = errors.New("model: duplicate constraint key")

// ConstraintKey identifies a covering constraint: the free cell that starts
// the window (as a row-major offset) and the axis the window runs along.
type ConstraintKey struct {
	Offset int
	Axis   int
}

// Constraint requires at least one of Vars to be set: Σ Vars ≥ 1.
type Constraint struct {
	Key  ConstraintKey
	Vars []VarID
}

// Model is a complete minimize-Σx covering program for one solve call.
type Model struct {
	// Shape and Threshold describe the instance the model was built from.
	Shape     []int
	Threshold int

	// Vars maps free cells to decision variables.
	Vars *Registry

	// Constraints in emission order: cells row-major, then axes ascending.
	Constraints []Constraint
}

// Build constructs the covering model of g for moles of size threshold.
// Returns grid.ErrNilGrid, grid.ErrInvalidThreshold, or ErrDuplicateConstraint.
func Build(g *grid.Grid, threshold int) (*Model, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	if threshold <= 0 {
		return nil, grid.ErrInvalidThreshold
	}

	free := g.FreeOffsets()
	reg := newRegistry(len(free))
	for _, off := range free {
		reg.add(off, g.IndexOf(off))
	}

	m := &Model{
		Shape:     g.Shape(),
		Threshold: threshold,
		Vars:      reg,
	}
	seen := make(map[ConstraintKey]struct{})
	for _, off := range free {
		for a := 0; a < g.NDim(); a++ {
			window, ok := g.Window(off, a, threshold)
			if !ok {
				continue
			}
			vars, blocked := windowVars(reg, window)
			if blocked {
				continue
			}
			key := ConstraintKey{Offset: off, Axis: a}
			if _, dup := seen[key]; dup {
				return nil, ErrDuplicateConstraint
			}
			seen[key] = struct{}{}
			m.Constraints = append(m.Constraints, Constraint{Key: key, Vars: vars})
		}
	}

	return m, nil
}

// windowVars maps a window to its variables. blocked is true when any cell
// of the window has no variable, i.e. it is already occupied.
func windowVars(reg *Registry, window []int) (vars []VarID, blocked bool) {
	vars = make([]VarID, len(window))
	for i, off := range window {
		id, ok := reg.ID(off)
		if !ok {
			return nil, true
		}
		vars[i] = id
	}

	return vars, false
}

// NumVars returns the number of decision variables.
func (m *Model) NumVars() int { return m.Vars.Len() }

// Objective returns Σ x for an assignment indexed by VarID.
func (m *Model) Objective(assign []bool) int {
	n := 0
	for _, x := range assign {
		if x {
			n++
		}
	}

	return n
}

// Satisfied reports whether assign covers every constraint.
// An assignment of the wrong length never satisfies the model.
func (m *Model) Satisfied(assign []bool) bool {
	if len(assign) != m.NumVars() {
		return false
	}
	for _, c := range m.Constraints {
		covered := false
		for _, v := range c.Vars {
			if assign[v] {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	return true
}
