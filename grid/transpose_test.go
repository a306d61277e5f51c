package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moletrap/grid"
)

func TestCanonicalOrder(t *testing.T) {
	cases := []struct {
		name   string
		shape  []int
		perm   []int
		sorted []int
	}{
		{"Ascending", []int{2, 1, 3}, []int{2, 0, 1}, []int{3, 2, 1}},
		{"ThreeAxes", []int{2, 5, 3}, []int{1, 2, 0}, []int{5, 3, 2}},
		{"StableTies", []int{3, 5, 3}, []int{1, 0, 2}, []int{5, 3, 3}},
		{"AlreadyCanonical", []int{5, 3}, []int{0, 1}, []int{5, 3}},
		{"Single", []int{4}, []int{0}, []int{4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			perm, sorted := grid.CanonicalOrder(tc.shape)
			require.Equal(t, tc.perm, perm)
			require.Equal(t, tc.sorted, sorted)
		})
	}
}

func TestTranspose_2D(t *testing.T) {
	g := mustGrid2D(t, [][]int{{1, 0, 0}, {0, 1, 1}})
	tr, err := g.Transpose([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, tr.Shape())
	require.Equal(t, "[[1 0] [0 1] [0 1]]", tr.String())

	back, err := tr.Transpose([]int{1, 0})
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

// TestTranspose_3D checks result[i] == g[j] with j[perm[k]] = i[k] for every cell.
func TestTranspose_3D(t *testing.T) {
	g, err := grid.Generate([]int{2, 5, 3}, 11, grid.NewRand(7))
	require.NoError(t, err)
	perm := []int{1, 2, 0}
	tr, err := g.Transpose(perm)
	require.NoError(t, err)
	require.Equal(t, []int{5, 3, 2}, tr.Shape())
	require.Equal(t, g.Count(), tr.Count())

	for off := 0; off < tr.Size(); off++ {
		i := tr.IndexOf(off)
		j := make(grid.Index, len(i))
		for k, a := range perm {
			j[a] = i[k]
		}
		want, err := g.At(j)
		require.NoError(t, err)
		require.Equal(t, want, tr.CellAt(off), "i=%v j=%v", i, j)
	}
}

func TestTranspose_BadPermutation(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	for _, perm := range [][]int{{0}, {0, 0}, {1, 2}, {-1, 0}} {
		_, err = g.Transpose(perm)
		require.ErrorIs(t, err, grid.ErrBadPermutation, "perm=%v", perm)
	}
}
