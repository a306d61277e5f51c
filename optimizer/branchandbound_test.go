package optimizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moletrap/optimizer"
)

// TestBranchAndBound_NodeLimit: an exhausted budget reports NotSolved, never a partial answer.
func TestBranchAndBound_NodeLimit(t *testing.T) {
	m := mustModel(t, []int{5, 5}, make([]int, 25), 3)
	opt := optimizer.NewBranchAndBound(optimizer.WithNodeLimit(1))
	res, err := opt.Optimize(context.Background(), "tight", m)
	require.NoError(t, err)
	require.Equal(t, optimizer.NotSolved, res.Status)
	require.Nil(t, res.Assignment)

	// Negative limits mean unlimited.
	opt = optimizer.NewBranchAndBound(optimizer.WithNodeLimit(-5))
	res, err = opt.Optimize(context.Background(), "unlimited", m)
	require.NoError(t, err)
	require.Equal(t, optimizer.Optimal, res.Status)
	require.Equal(t, 8, res.Objective)
}

// TestBranchAndBound_Deterministic: identical inputs yield identical assignments.
func TestBranchAndBound_Deterministic(t *testing.T) {
	m := mustModel(t, []int{4, 4}, []int{
		1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 0,
	}, 2)
	opt := optimizer.NewBranchAndBound()
	first, err := opt.Optimize(context.Background(), "a", m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := opt.Optimize(context.Background(), "a", m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
