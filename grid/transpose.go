// Package grid - axis permutation.
//
// A grid of shape (5, 3) and one of shape (3, 5) are the same combinatorial
// instance up to relabeling axes. CanonicalOrder picks one representative
// (axes sorted by descending length, ties in original order) and Transpose
// applies it.
package grid

import "sort"

// CanonicalOrder returns the permutation that sorts shape by descending axis
// length, together with the sorted shape. The sort is stable: equal lengths
// keep their original axis order.
//
// Example: (2, 5, 3) → perm (1, 2, 0), sorted (5, 3, 2).
func CanonicalOrder(shape []int) (perm []int, sorted []int) {
	perm = make([]int, len(shape))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return shape[perm[i]] > shape[perm[j]]
	})
	sorted = make([]int, len(shape))
	for k, a := range perm {
		sorted[k] = shape[a]
	}

	return perm, sorted
}

// Transpose returns a new grid whose axis k is axis perm[k] of g, so that
// result.Dim(k) == g.Dim(perm[k]) and result[i₀,…] == g[j₀,…] with
// j[perm[k]] = i[k].
// Returns ErrBadPermutation if perm is not a permutation of 0..NDim()-1.
// Complexity: O(size × ndim).
func (g *Grid) Transpose(perm []int) (*Grid, error) {
	n := len(g.shape)
	if len(perm) != n {
		return nil, ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, a := range perm {
		if a < 0 || a >= n || seen[a] {
			return nil, ErrBadPermutation
		}
		seen[a] = true
	}

	shape := make([]int, n)
	srcStrides := make([]int, n) // stride in g of the k-th output axis
	for k, a := range perm {
		shape[k] = g.shape[a]
		srcStrides[k] = g.strides[a]
	}
	out, err := New(shape...)
	if err != nil {
		return nil, err
	}

	// Odometer over output indices, tracking the matching source offset.
	var (
		idx = make([]int, n)
		src = 0
	)
	for dst := range out.cells {
		out.cells[dst] = g.cells[src]
		for k := n - 1; k >= 0; k-- {
			idx[k]++
			src += srcStrides[k]
			if idx[k] < shape[k] {
				break
			}
			src -= idx[k] * srcStrides[k]
			idx[k] = 0
		}
	}

	return out, nil
}
