package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moletrap/dataset"
	"github.com/katalvlaran/moletrap/grid"
)

// TestCanonicalize_AxisSwapEquivalence: a (3,5) instance and its (5,3) transpose store identically.
func TestCanonicalize_AxisSwapEquivalence(t *testing.T) {
	g35, err := grid.From2D([][]int{
		{1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 1},
	})
	require.NoError(t, err)
	s35, err := grid.From2D([][]int{
		{1, 0, 1, 1, 0},
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 1},
	})
	require.NoError(t, err)
	g53, err := g35.Transpose([]int{1, 0})
	require.NoError(t, err)
	s53, err := s35.Transpose([]int{1, 0})
	require.NoError(t, err)

	a, err := dataset.Canonicalize(dataset.InstanceParams{Shape: []int{3, 5}, Threshold: 2}, g35, s35)
	require.NoError(t, err)
	b, err := dataset.Canonicalize(dataset.InstanceParams{Shape: []int{5, 3}, Threshold: 2}, g53, s53)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 3}, a.Shape)
	assert.Equal(t, a.Shape, b.Shape)
	assert.True(t, a.Grid.Equal(b.Grid))
	assert.True(t, a.Solution.Equal(b.Solution))
}

func TestCanonicalize_ThreeAxes(t *testing.T) {
	rng := grid.NewRand(3)
	g, err := grid.Generate([]int{2, 5, 3}, 6, rng)
	require.NoError(t, err)
	sol := g.Clone()

	c, err := dataset.Canonicalize(dataset.InstanceParams{Shape: []int{2, 5, 3}, Threshold: 2}, g, sol)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 2}, c.Shape)
	assert.Equal(t, []int{5, 3, 2}, c.Grid.Shape())

	// Cell (i, j, k) of the input lands on (j, k, i).
	for i := 0; i < 2; i++ {
		for j := 0; j < 5; j++ {
			for k := 0; k < 3; k++ {
				want, err := g.At(grid.Index{i, j, k})
				require.NoError(t, err)
				got, err := c.Grid.At(grid.Index{j, k, i})
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}
	}
}

func TestCanonicalize_Errors(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	other, err := grid.New(3, 2)
	require.NoError(t, err)
	p := dataset.InstanceParams{Shape: []int{2, 3}, Threshold: 2}

	_, err = dataset.Canonicalize(p, nil, g)
	assert.ErrorIs(t, err, grid.ErrNilGrid)
	_, err = dataset.Canonicalize(p, g, other)
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)
	_, err = dataset.Canonicalize(dataset.InstanceParams{Shape: []int{0}}, g, g)
	assert.ErrorIs(t, err, dataset.ErrInvalidParams)
}
