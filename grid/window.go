package grid

// Window returns the row-major offsets of the length consecutive cells along
// axis a starting at offset off (off itself is the first element).
//
// ok is false, and no offsets are returned, when the window would run past
// the axis bound: windows are rejected outright, never clipped. Invalid
// arguments (axis or offset out of range, length ≤ 0) also yield ok=false.
//
// Example: on shape (5, 5, 5), the cell (1, 2, 3) with a=0, length=4 yields
// (1,2,3) (2,2,3) (3,2,3) (4,2,3); with length=5 it yields nothing.
//
// Complexity: O(length).
func (g *Grid) Window(off, a, length int) (offsets []int, ok bool) {
	if a < 0 || a >= len(g.shape) || off < 0 || off >= len(g.cells) || length <= 0 {
		return nil, false
	}
	stride := g.strides[a]
	coord := (off / stride) % g.shape[a]
	if coord+length-1 > g.shape[a]-1 {
		return nil, false
	}
	offsets = make([]int, length)
	for j := range offsets {
		offsets[j] = off + j*stride
	}

	return offsets, true
}

// FreeOffsets returns the row-major offsets of every free cell, ascending.
func (g *Grid) FreeOffsets() []int {
	out := make([]int, 0, len(g.cells))
	for off, c := range g.cells {
		if c == Free {
			out = append(out, off)
		}
	}

	return out
}
