// Package grid models n-dimensional occupancy grids for the "gardener and
// moles" problem and answers the one question everything else depends on:
// can a mole of a given size still get through?
//
// What:
//
//   - Grid stores a fixed shape and a row-major buffer of Free/Occupied cells.
//   - Admissible reports whether no axis holds a run of threshold free cells.
//   - Score counts traps of an admissible grid (+Inf otherwise).
//   - Window, Offset and IndexOf are the shared index utilities used by the
//     model builder.
//   - Transpose and CanonicalOrder reorder axes so that shape-equivalent
//     instances collapse onto one representative.
//   - Generate samples instances with a fixed number of preset traps.
//
// Why:
//
//   - Admissibility is the sole correctness criterion of the whole module: it
//     decides whether solving is needed and validates every returned solution.
//
// Complexity:
//
//   - Admissible: O(threshold × size) per axis, O(size) extra memory.
//   - Transpose:  O(size × ndim).
//   - Generate:   O(size).
//
// Errors:
//
//   - ErrInvalidShape: empty shape or a non-positive axis length.
//   - ErrInvalidThreshold: threshold ≤ 0.
//   - ErrNilGrid: nil *Grid passed where a grid is required.
//   - ErrIndexOutOfRange: index of the wrong arity or outside the shape.
//   - ErrShapeMismatch: value buffer or second grid does not match the shape.
//   - ErrNonRectangular: ragged [][]int input.
//   - ErrTooManyPoints: npoints < 0 or larger than the number of cells.
//   - ErrBadPermutation: Transpose received something that is not an axis permutation.
package grid
