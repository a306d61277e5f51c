// Package solver completes a grid with the fewest additional traps so that
// no mole of the given size can pass along any axis.
//
// What:
//
//   - Solve validates its inputs, returns a clone when the grid is already
//     admissible, and otherwise builds the covering model, hands it to an
//     optimizer and materializes the optimal assignment on a copy.
//   - Verify is the caller-side check of a returned completion.
//
// Why:
//
//   - The optimizer layer knows nothing about grids and the grid layer knows
//     nothing about optimizers; this package is the only place they meet.
//
// Errors:
//
//   - grid.ErrNilGrid, grid.ErrInvalidThreshold: bad inputs.
//   - ErrEmptyName: the solve needs a name unique among concurrent solves.
//   - *NonConvergenceError (matches ErrNonConvergence): the optimizer did not
//     reach a proven optimum.
//   - ErrInconsistentResult: Verify rejected a completion.
//   - Optimizer errors are passed through wrapped.
package solver
