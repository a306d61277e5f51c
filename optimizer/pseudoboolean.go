// Package optimizer - gophersat pseudo-boolean backend.
//
// Lifecycle of one solve:
//  1. acquire: create <scratchDir>/<name>.opb with O_EXCL and write the model;
//  2. read the file back with model.ReadOPB, build the gophersat problem
//     (solver.ParsePBConstrs + SetCostFunc) and minimize;
//  3. release: remove the file (deferred, runs on success, failure and panic).
//
// Variable i of the parsed problem is OPB variable x<i+1>, i.e. model.VarID(i).
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/moletrap/model"
)

// scratchExt is the extension of transient model files.
const scratchExt = ".opb"

// PseudoBoolean solves models with the gophersat optimizer via an OPB file.
type PseudoBoolean struct {
	cfg config
}

var _ Optimizer = (*PseudoBoolean)(nil)

// NewPseudoBoolean returns a gophersat-backed optimizer.
// Recognized options: WithLogger, WithScratchDir.
func NewPseudoBoolean(opts ...Option) *PseudoBoolean {
	return &PseudoBoolean{cfg: gatherOptions(opts)}
}

// ScratchPath returns the transient file used by the solve called name.
func (p *PseudoBoolean) ScratchPath(name string) string {
	dir := p.cfg.scratchDir
	if dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, name+scratchExt)
}

// Optimize writes m to the scratch file for name, minimizes it and removes
// the file before returning.
// Errors: ErrEmptyName, ErrBadName, ErrNilModel, ErrNameInUse, ErrBadModel,
// ctx.Err() when ctx is already done, and I/O or parse failures.
func (p *PseudoBoolean) Optimize(ctx context.Context, name string, m *model.Model) (res Result, err error) {
	if err = validateCall(name, m); err != nil {
		return Result{}, err
	}
	if err = ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(m.Constraints) == 0 {
		return trivialResult(m), nil
	}

	path := p.ScratchPath(name)
	if err = writeScratch(path, m); err != nil {
		return Result{}, err
	}
	defer func() {
		if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
			p.cfg.logger.Warn("optimizer: scratch file not removed", "name", name, "path", path, "err", rerr)
			if err == nil {
				err = fmt.Errorf("optimizer: release %s: %w", path, rerr)
			}
		}
	}()

	start := time.Now()
	res, err = p.minimize(path, m)
	if err != nil {
		return Result{}, err
	}
	p.cfg.logger.Debug("optimizer: solve finished",
		"backend", "pseudo-boolean",
		"name", name,
		"status", res.Status.String(),
		"vars", m.NumVars(),
		"constraints", len(m.Constraints),
		"objective", res.Objective,
		"elapsed", time.Since(start),
	)

	return res, nil
}

// writeScratch creates path exclusively and serializes m into it. On a
// write failure the partial file is removed before returning.
func writeScratch(path string, m *model.Model) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrNameInUse, path)
		}
		return fmt.Errorf("optimizer: acquire %s: %w", path, err)
	}
	werr := m.WriteOPB(f)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(path)
		return fmt.Errorf("optimizer: write %s: %w", path, werr)
	}

	return nil
}

// minimize reads the scratch file back and runs gophersat to optimality.
func (p *PseudoBoolean) minimize(path string, m *model.Model) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("optimizer: open %s: %w", path, err)
	}
	defer f.Close()

	prob, err := model.ReadOPB(f)
	if err != nil {
		return Result{}, fmt.Errorf("optimizer: parse %s: %w", path, err)
	}
	s := solver.New(pbProblem(prob))
	cost := s.Minimize()
	if cost < 0 {
		return Result{Status: Infeasible}, nil
	}

	// gophersat variable i is OPB variable x<i+1>, i.e. VarID(i).
	bindings := s.Model()
	if len(bindings) > m.NumVars() {
		return Result{}, ErrBadModel
	}
	assign := make([]bool, m.NumVars())
	copy(assign, bindings)
	if got := m.Objective(assign); got != cost {
		p.cfg.logger.Warn("optimizer: reported cost differs from bindings",
			"path", path, "cost", cost, "bindings", got)
		return Result{}, ErrBadModel
	}

	return Result{Status: Optimal, Assignment: assign, Objective: cost}, nil
}

// pbProblem converts a decoded covering program into a gophersat problem.
// Objective variables that occur in no constraint are left out: they are
// false in every optimum.
func pbProblem(prob *model.OPBProblem) *solver.Problem {
	constrs := make([]solver.PBConstr, len(prob.Constraints))
	for i, vars := range prob.Constraints {
		lits := make([]int, len(vars))
		for j, v := range vars {
			lits[j] = int(v) + 1
		}
		constrs[i] = solver.AtLeast(lits, 1)
	}
	pb := solver.ParsePBConstrs(constrs)

	var (
		costLits []solver.Lit
		weights  []int
	)
	for _, v := range prob.Objective {
		if int(v) < pb.NbVars {
			costLits = append(costLits, solver.IntToLit(int32(v)+1))
			weights = append(weights, 1)
		}
	}
	pb.SetCostFunc(costLits, weights)

	return pb
}
