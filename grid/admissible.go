// Package grid - admissibility predicate and scoring.
//
// A grid is admissible for a mole of size t when no axis holds t consecutive
// free cells. The check works on the complement of the storage convention
// (free=1, occupied=0) so that "too many free cells in a row" becomes "a
// windowed sum reaches t":
//
//	check[j] = f[j] + f[j+1] + … + f[j+t−1],   j ∈ [0, L−t]
//
// computed as t shifted additions of sub-slices of length L−t+1, once per
// line along the axis under test. Axes shorter than t trivially pass.
//
// Complexity: O(t × size) per axis; the axis loop stops at the first failure.
package grid

import "math"

// Admissible reports whether no axis of g contains threshold consecutive
// free cells.
// Returns ErrNilGrid for a nil grid and ErrInvalidThreshold when threshold ≤ 0.
func Admissible(g *Grid, threshold int) (bool, error) {
	if g == nil {
		return false, ErrNilGrid
	}
	if threshold <= 0 {
		return false, ErrInvalidThreshold
	}
	var buf []int
	for a := range g.shape {
		if !g.axisAdmissible(a, threshold, &buf) {
			return false, nil
		}
	}

	return true, nil
}

// axisAdmissible runs the windowed-sum scan over every line along axis a.
// The whole axis is scanned; buf is reused across lines.
func (g *Grid) axisAdmissible(a, threshold int, buf *[]int) bool {
	length := g.shape[a]
	if threshold > length {
		return true
	}
	var (
		stride = g.strides[a]
		span   = length - threshold + 1
		ok     = true
	)
	if cap(*buf) < span {
		*buf = make([]int, span)
	}
	check := (*buf)[:span]

	for base := 0; base < len(g.cells); base++ {
		// A line starts wherever the coordinate along a is zero.
		if (base/stride)%length != 0 {
			continue
		}
		for j := range check {
			check[j] = 0
		}
		for start := 0; start < threshold; start++ {
			for j := 0; j < span; j++ {
				if g.cells[base+(start+j)*stride] == Free {
					check[j]++
				}
			}
		}
		for _, s := range check {
			if s >= threshold {
				ok = false
			}
		}
	}

	return ok
}

// Score returns the number of occupied cells when g is admissible for
// threshold, +Inf otherwise. Lower is better.
func Score(g *Grid, threshold int) (float64, error) {
	ok, err := Admissible(g, threshold)
	if err != nil {
		return 0, err
	}
	if !ok {
		return math.Inf(1), nil
	}

	return float64(g.Count()), nil
}
