package optimizer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moletrap/model"
	"github.com/katalvlaran/moletrap/optimizer"
)

// TestPseudoBoolean_ScratchReleased: the transient model file is gone after a successful solve.
func TestPseudoBoolean_ScratchReleased(t *testing.T) {
	dir := t.TempDir()
	opt := optimizer.NewPseudoBoolean(optimizer.WithScratchDir(dir))
	m := mustModel(t, []int{5, 5}, make([]int, 25), 3)

	res, err := opt.Optimize(context.Background(), "released", m)
	require.NoError(t, err)
	require.Equal(t, optimizer.Optimal, res.Status)

	require.Equal(t, filepath.Join(dir, "released.opb"), opt.ScratchPath("released"))
	_, err = os.Stat(opt.ScratchPath("released"))
	require.ErrorIs(t, err, os.ErrNotExist)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// TestPseudoBoolean_NameInUse: a second solve cannot take over a name whose artifact exists,
// and the failed call must not delete the other owner's file.
func TestPseudoBoolean_NameInUse(t *testing.T) {
	dir := t.TempDir()
	opt := optimizer.NewPseudoBoolean(optimizer.WithScratchDir(dir))
	m := mustModel(t, []int{4}, []int{1, 0, 0, 0}, 2)

	owned := opt.ScratchPath("busy")
	require.NoError(t, os.WriteFile(owned, []byte("* held by another solve\n"), 0o600))

	_, err := opt.Optimize(context.Background(), "busy", m)
	require.ErrorIs(t, err, optimizer.ErrNameInUse)
	_, err = os.Stat(owned)
	require.NoError(t, err)

	// A distinct name works alongside it.
	res, err := opt.Optimize(context.Background(), "free", m)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, res.Assignment)
}

// TestPseudoBoolean_MissingScratchDir: acquisition failures leave nothing behind.
func TestPseudoBoolean_MissingScratchDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")
	opt := optimizer.NewPseudoBoolean(optimizer.WithScratchDir(dir))
	m := mustModel(t, []int{4}, []int{1, 0, 0, 0}, 2)

	_, err := opt.Optimize(context.Background(), "nowhere", m)
	require.Error(t, err)
	_, err = os.Stat(dir)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestPseudoBoolean_ScratchReleasedOnFailure: a solve failing after the file was written leaves nothing behind.
func TestPseudoBoolean_ScratchReleasedOnFailure(t *testing.T) {
	dir := t.TempDir()
	opt := optimizer.NewPseudoBoolean(optimizer.WithScratchDir(dir))
	m := mustModel(t, []int{4}, []int{1, 0, 0, 0}, 2)
	// A row without terms is written as " >= 1 ;", which the reader rejects.
	m.Constraints = append(m.Constraints, model.Constraint{Key: model.ConstraintKey{Offset: 1, Axis: 0}})

	_, err := opt.Optimize(context.Background(), "broken", m)
	require.ErrorIs(t, err, model.ErrBadOPB)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// TestPseudoBoolean_LargeModel: objective lines longer than 64 KiB still solve.
func TestPseudoBoolean_LargeModel(t *testing.T) {
	dir := t.TempDir()
	opt := optimizer.NewPseudoBoolean(optimizer.WithScratchDir(dir))
	m := mustModel(t, []int{1, 12000}, make([]int, 12000), 12000)
	require.Equal(t, 12000, m.NumVars())

	res, err := opt.Optimize(context.Background(), "wide", m)
	require.NoError(t, err)
	require.Equal(t, optimizer.Optimal, res.Status)
	require.Equal(t, 1, res.Objective)
	require.True(t, m.Satisfied(res.Assignment))

	bb, err := optimizer.NewBranchAndBound().Optimize(context.Background(), "wide", m)
	require.NoError(t, err)
	require.Equal(t, res.Objective, bb.Objective)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// TestPseudoBoolean_UnconstrainedVariables: free cells in no window stay false.
func TestPseudoBoolean_UnconstrainedVariables(t *testing.T) {
	// Cell 1 is boxed in by traps; only the run 3..5 needs covering.
	m := mustModel(t, []int{6}, []int{1, 0, 1, 0, 0, 0}, 2)
	require.Equal(t, 4, m.NumVars())

	res, err := optimizer.NewPseudoBoolean(optimizer.WithScratchDir(t.TempDir())).
		Optimize(context.Background(), "boxed", m)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, true, false}, res.Assignment)
}
