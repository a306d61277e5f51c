// Package grid provides the n-dimensional occupancy grid used throughout
// moletrap. A Grid is a fixed shape plus a row-major cell buffer; every
// constructor deep-copies its input so callers never share storage with it.
package grid

import (
	"strings"
)

// Grid is an n-dimensional array of Free/Occupied cells.
// The shape is immutable; cells are only mutated through Set, which callers
// use on grids they own (typically a Clone).
type Grid struct {
	shape   []int
	strides []int
	cells   []Cell
}

// New returns an all-free grid of the given shape.
// Returns ErrInvalidShape if shape is empty or has a non-positive axis.
// Complexity: O(size) time and memory.
func New(shape ...int) (*Grid, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	return &Grid{
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		cells:   make([]Cell, size),
	}, nil
}

// FromValues builds a grid from a row-major buffer. Any non-zero value is
// Occupied, zero is Free.
// Returns ErrInvalidShape for a bad shape and ErrShapeMismatch when
// len(values) differs from the number of cells.
func FromValues(shape []int, values []int) (*Grid, error) {
	g, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(g.cells) {
		return nil, ErrShapeMismatch
	}
	for i, v := range values {
		if v != 0 {
			g.cells[i] = Occupied
		}
	}

	return g, nil
}

// From1D builds a one-dimensional grid.
func From1D(values []int) (*Grid, error) {
	return FromValues([]int{len(values)}, values)
}

// From2D builds a two-dimensional grid from rows. rows[i][j] addresses
// Index{i, j}.
// Returns ErrInvalidShape if rows is empty or has empty rows,
// ErrNonRectangular if any row length differs.
func From2D(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidShape
	}
	h, w := len(rows), len(rows[0])
	flat := make([]int, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}

	return FromValues([]int{h, w}, flat)
}

// shapeSize validates shape and returns the number of cells.
func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrInvalidShape
	}
	size := 1
	for _, n := range shape {
		if n <= 0 {
			return 0, ErrInvalidShape
		}
		size *= n
	}

	return size, nil
}

// rowMajorStrides computes C-order strides: the last axis is contiguous.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for a := len(shape) - 1; a >= 0; a-- {
		strides[a] = acc
		acc *= shape[a]
	}

	return strides
}

// Shape returns a copy of the axis lengths.
func (g *Grid) Shape() []int { return append([]int(nil), g.shape...) }

// NDim returns the number of axes.
func (g *Grid) NDim() int { return len(g.shape) }

// Dim returns the length of axis a. It panics if a is out of range.
func (g *Grid) Dim(a int) int { return g.shape[a] }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Offset maps idx to its row-major position.
// Returns ErrIndexOutOfRange on arity mismatch or out-of-bounds coordinates.
// Complexity: O(ndim).
func (g *Grid) Offset(idx Index) (int, error) {
	if len(idx) != len(g.shape) {
		return 0, ErrIndexOutOfRange
	}
	off := 0
	for a, v := range idx {
		if v < 0 || v >= g.shape[a] {
			return 0, ErrIndexOutOfRange
		}
		off += v * g.strides[a]
	}

	return off, nil
}

// IndexOf converts a row-major offset back to an Index.
// The offset must lie in [0, Size()); the result is unspecified otherwise.
func (g *Grid) IndexOf(off int) Index {
	idx := make(Index, len(g.shape))
	for a := range g.shape {
		idx[a] = off / g.strides[a]
		off %= g.strides[a]
	}

	return idx
}

// At returns the cell at idx.
func (g *Grid) At(idx Index) (Cell, error) {
	off, err := g.Offset(idx)
	if err != nil {
		return Free, err
	}

	return g.cells[off], nil
}

// Set writes the cell at idx.
func (g *Grid) Set(idx Index, c Cell) error {
	off, err := g.Offset(idx)
	if err != nil {
		return err
	}
	g.cells[off] = c

	return nil
}

// CellAt returns the cell at a row-major offset. It panics if off is out of range.
func (g *Grid) CellAt(off int) Cell { return g.cells[off] }

// SetAt writes the cell at a row-major offset. It panics if off is out of range.
func (g *Grid) SetAt(off int, c Cell) { g.cells[off] = c }

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c == Occupied {
			n++
		}
	}

	return n
}

// Values returns the cells as a row-major 0/1 buffer.
func (g *Grid) Values() []int {
	out := make([]int, len(g.cells))
	for i, c := range g.cells {
		out[i] = int(c)
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		shape:   append([]int(nil), g.shape...),
		strides: append([]int(nil), g.strides...),
		cells:   append([]Cell(nil), g.cells...),
	}
}

// SameShape reports whether g and other have identical shapes.
func (g *Grid) SameShape(other *Grid) bool {
	if other == nil || len(g.shape) != len(other.shape) {
		return false
	}
	for a := range g.shape {
		if g.shape[a] != other.shape[a] {
			return false
		}
	}

	return true
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameShape(other) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// String renders g as nested brackets, e.g. "[[1 0] [0 1]]".
func (g *Grid) String() string {
	var sb strings.Builder
	g.format(&sb, 0, 0)

	return sb.String()
}

func (g *Grid) format(sb *strings.Builder, axis, off int) {
	sb.WriteByte('[')
	for i := 0; i < g.shape[axis]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pos := off + i*g.strides[axis]
		if axis == len(g.shape)-1 {
			sb.WriteString(g.cells[pos].String())
		} else {
			g.format(sb, axis+1, pos)
		}
	}
	sb.WriteByte(']')
}
