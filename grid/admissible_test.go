package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moletrap/grid"
)

func mustGrid2D(t *testing.T, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.From2D(rows)
	require.NoError(t, err)

	return g
}

func mustGrid1D(t *testing.T, values []int) *grid.Grid {
	t.Helper()
	g, err := grid.From1D(values)
	require.NoError(t, err)

	return g
}

// ones (4,3,2) with the line [1, :, 1] cleared.
func mustHollow432(t *testing.T) *grid.Grid {
	t.Helper()
	values := make([]int, 24)
	for i := range values {
		values[i] = 1
	}
	g, err := grid.FromValues([]int{4, 3, 2}, values)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		require.NoError(t, g.Set(grid.Index{1, j, 1}, grid.Free))
	}

	return g
}

func TestAdmissible(t *testing.T) {
	full, err := grid.FromValues([]int{4, 3, 2}, []int{
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	})
	require.NoError(t, err)

	cases := []struct {
		name      string
		g         *grid.Grid
		threshold int
		want      bool
	}{
		{"Checkerboard", mustGrid2D(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}), 2, true},
		{"FreeTopRow", mustGrid2D(t, [][]int{{0, 0, 0}, {1, 0, 1}, {0, 1, 0}}), 2, false},
		{"Line_Admissible", mustGrid1D(t, []int{0, 0, 1, 0, 0, 1, 0, 0}), 3, true},
		{"Line_RunOfThree", mustGrid1D(t, []int{0, 1, 0, 0, 0, 1, 0, 1}), 3, false},
		{"ThresholdAboveAllAxes", mustGrid2D(t, [][]int{{0, 0}, {0, 0}}), 4, true},
		{"ThresholdFitsOneAxis", mustGrid2D(t, [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}}), 4, false},
		{"Full3D", full, 1, true},
		{"Hollow3D_MiddleAxis", mustHollow432(t), 3, false},
		{"Hollow3D_Threshold4", mustHollow432(t), 4, true},
		{"FreeColumn", mustGrid2D(t, [][]int{{1, 0}, {1, 0}, {1, 0}}), 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := grid.Admissible(tc.g, tc.threshold)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAdmissible_Errors(t *testing.T) {
	g := mustGrid1D(t, []int{0, 1})
	_, err := grid.Admissible(g, 0)
	require.ErrorIs(t, err, grid.ErrInvalidThreshold)
	_, err = grid.Admissible(g, -1)
	require.ErrorIs(t, err, grid.ErrInvalidThreshold)
	_, err = grid.Admissible(nil, 2)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	_, err = grid.Score(g, -3)
	require.ErrorIs(t, err, grid.ErrInvalidThreshold)
}

func TestScore(t *testing.T) {
	cases := []struct {
		name      string
		g         *grid.Grid
		threshold int
		want      float64
	}{
		{"Checkerboard", mustGrid2D(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}), 2, 4},
		{"FreeTopRow", mustGrid2D(t, [][]int{{0, 0, 0}, {1, 0, 1}, {0, 1, 0}}), 2, math.Inf(1)},
		{"Line", mustGrid1D(t, []int{0, 0, 1, 0, 0, 1, 0, 0}), 3, 2},
		{"LineInadmissible", mustGrid1D(t, []int{0, 1, 0, 0, 0, 1, 0, 1}), 3, math.Inf(1)},
		{"ThresholdAboveAllAxes", mustGrid2D(t, [][]int{{0, 0}, {0, 0}}), 5, 0},
		{"Hollow3D", mustHollow432(t), 3, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := grid.Score(tc.g, tc.threshold)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// longestFreeRun is a naive reference: the longest run of free cells along any axis.
func longestFreeRun(g *grid.Grid) int {
	best := 0
	for a := 0; a < g.NDim(); a++ {
		for off := 0; off < g.Size(); off++ {
			idx := g.IndexOf(off)
			if idx[a] != 0 {
				continue
			}
			run := 0
			for k := 0; k < g.Dim(a); k++ {
				idx[a] = k
				c, _ := g.At(idx)
				if c == grid.Free {
					run++
					if run > best {
						best = run
					}
				} else {
					run = 0
				}
			}
		}
	}

	return best
}

// TestAdmissible_MatchesNaiveRuns: admissible(g, t) is false iff some axis has t free cells in a row,
// and Score is +Inf exactly when Admissible is false.
func TestAdmissible_MatchesNaiveRuns(t *testing.T) {
	rng := grid.NewRand(42)
	shapes := [][]int{{7}, {4, 5}, {3, 4, 3}, {2, 2, 2, 3}}
	for _, shape := range shapes {
		size := 1
		for _, n := range shape {
			size *= n
		}
		for trial := 0; trial < 40; trial++ {
			g, err := grid.Generate(shape, rng.Intn(size+1), rng)
			require.NoError(t, err)
			run := longestFreeRun(g)
			for threshold := 1; threshold <= 8; threshold++ {
				got, err := grid.Admissible(g, threshold)
				require.NoError(t, err)
				assert.Equal(t, run < threshold, got, "shape=%v grid=%s t=%d", shape, g, threshold)

				score, err := grid.Score(g, threshold)
				require.NoError(t, err)
				assert.Equal(t, !got, math.IsInf(score, 1))
			}
		}
	}
}
