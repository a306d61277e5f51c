// Package model translates an occupancy grid and a mole size into a 0-1
// integer program: the minimum set of new traps that blocks every window.
//
// What:
//
//   - One binary DecisionVariable per free cell (x = 1 ⇒ place a trap).
//   - Objective: minimize Σ x.
//   - One covering constraint Σ x ≥ 1 per (free cell, axis) whose window of
//     threshold cells, starting at that cell, is entirely free.
//
// Windows that run past the axis bound are rejected outright, and windows
// that already contain an occupied cell are skipped: a preset trap blocks
// that run by itself, so the constraint would be redundant.
//
// Variables are tracked by an explicit Registry (Index ↔ VarID). The OPB
// exchange encoding is derived from VarID only ("x<VarID+1>"); no index is
// ever recovered by string surgery.
//
// Complexity:
//
//   - Build: O(free × ndim × threshold) time, O(constraints × threshold) memory.
//
// Errors:
//
//   - grid.ErrNilGrid, grid.ErrInvalidThreshold: invalid inputs.
//   - ErrDuplicateConstraint: two constraints share a (cell, axis) key.
//   - ErrBadVarName: an OPB variable name that does not decode to a VarID.
//   - ErrBadOPB: ReadOPB met a statement WriteOPB never produces.
package model
