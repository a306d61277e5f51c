// Package grid defines core types and sentinel errors.
package grid

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidShape indicates an empty shape or a non-positive axis length.
	ErrInvalidShape = errors.New("grid: shape must contain positive values only")
	// ErrInvalidThreshold indicates a non-positive mole size.
	ErrInvalidThreshold = errors.New("grid: threshold must be positive")
	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("grid: grid is nil")
	// ErrIndexOutOfRange indicates an index outside the grid shape.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
	// ErrShapeMismatch indicates incompatible shapes or buffer lengths.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTooManyPoints indicates npoints cannot be sampled without replacement.
	ErrTooManyPoints = errors.New("grid: npoints must be within [0, size]")
	// ErrBadPermutation indicates an invalid axis permutation.
	ErrBadPermutation = errors.New("grid: invalid axis permutation")
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Free is an unoccupied cell a mole can cross.
	Free Cell = iota
	// Occupied is a cell holding a trap.
	Occupied
)

// String returns "0" for Free and "1" for Occupied.
func (c Cell) String() string {
	if c == Occupied {
		return "1"
	}

	return "0"
}

// Index is an n-tuple of zero-based coordinates, one per axis.
type Index []int

// keySep joins coordinates in Key. Integer formatting never produces it.
const keySep = "_"

// Key encodes idx as "i_j_k". The encoding is collision-free.
func (idx Index) Key() string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, keySep)
}

// Clone returns an independent copy of idx.
func (idx Index) Clone() Index {
	return append(Index(nil), idx...)
}
