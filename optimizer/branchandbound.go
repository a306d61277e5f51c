// Package optimizer — Branch-and-Bound (exact set-cover search).
//
// The covering model is a set-cover instance: every constraint is a set of
// variables and a solution must pick at least one variable from each set.
// BranchAndBound enumerates covers with a depth-first search:
//
//  1. Upper bound (UB): a greedy cover (most uncovered constraints first,
//     lowest VarID on ties) seeds the incumbent before the search starts.
//  2. Branching: take the uncovered constraint with the fewest selectable
//     variables; for its variables v₁…vₖ, branch "v₁=1", then "v₁=0, v₂=1",
//     and so on. Branches are disjoint and exhaustive.
//  3. Lower bound (LB): a greedy packing of pairwise-disjoint uncovered
//     constraints. Each of them needs its own variable, so
//     LB = costSoFar + |packing| is admissible. Prune when LB ≥ UB.
//  4. Budget: an optional node limit and rare context checks (every 4096
//     nodes) end the search with NotSolved; an incumbent is never reported
//     unless the search completed.
//
// Complexity:
//   - Worst case exponential in the number of variables.
//   - Per node: O(C·t) for the bound and the branching choice (C constraints,
//     t = threshold variables per constraint).
//   - Memory: O(V + C·t).
package optimizer

import (
	"context"
	"time"

	"github.com/katalvlaran/moletrap/model"
)

// checkEvery is the node interval between context checks.
const checkEvery = 4096

// BranchAndBound is an in-process exact optimizer.
type BranchAndBound struct {
	cfg config
}

var _ Optimizer = (*BranchAndBound)(nil)

// NewBranchAndBound returns an exact in-process optimizer.
// Recognized options: WithLogger, WithNodeLimit.
func NewBranchAndBound(opts ...Option) *BranchAndBound {
	return &BranchAndBound{cfg: gatherOptions(opts)}
}

// bbEngine holds the search data and the current state.
type bbEngine struct {
	ctx       context.Context
	nodeLimit int
	nodes     int
	aborted   bool

	cons    [][]model.VarID // constraint → variables
	varCons [][]int         // variable → constraints containing it

	cover     []int  // per constraint: number of selected variables in it
	selected  []bool // current partial assignment
	forbidden []bool // variables fixed to 0 on the current branch

	stamp   []int // scratch marks for the packing bound
	stampID int

	best     []bool
	bestCost int
}

// Optimize searches m to proven optimality.
// Errors: ErrEmptyName, ErrBadName, ErrNilModel, and ctx.Err() when the
// context ends before or during the search.
func (b *BranchAndBound) Optimize(ctx context.Context, name string, m *model.Model) (Result, error) {
	if err := validateCall(name, m); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(m.Constraints) == 0 {
		return trivialResult(m), nil
	}

	start := time.Now()
	e := newEngine(ctx, m, b.cfg.nodeLimit)
	if !e.seedUB() {
		return Result{Status: Infeasible}, nil
	}
	e.dfs(0)

	res := Result{Status: NotSolved}
	if !e.aborted {
		res = Result{Status: Optimal, Assignment: e.best, Objective: e.bestCost}
	}
	b.cfg.logger.Debug("optimizer: solve finished",
		"backend", "branch-and-bound",
		"name", name,
		"status", res.Status.String(),
		"vars", m.NumVars(),
		"constraints", len(m.Constraints),
		"nodes", e.nodes,
		"objective", res.Objective,
		"elapsed", time.Since(start),
	)
	if e.aborted {
		if err := ctx.Err(); err != nil {
			return res, err
		}
	}

	return res, nil
}

func newEngine(ctx context.Context, m *model.Model, nodeLimit int) *bbEngine {
	n := m.NumVars()
	e := &bbEngine{
		ctx:       ctx,
		nodeLimit: nodeLimit,
		cons:      make([][]model.VarID, len(m.Constraints)),
		varCons:   make([][]int, n),
		cover:     make([]int, len(m.Constraints)),
		selected:  make([]bool, n),
		forbidden: make([]bool, n),
		stamp:     make([]int, n),
	}
	for ci, c := range m.Constraints {
		e.cons[ci] = c.Vars
		for _, v := range c.Vars {
			e.varCons[v] = append(e.varCons[v], ci)
		}
	}

	return e
}

// seedUB records a greedy cover as the incumbent. It returns false when some
// constraint has no variable at all (the model is infeasible).
func (e *bbEngine) seedUB() bool {
	for _, vars := range e.cons {
		if len(vars) == 0 {
			return false
		}
	}
	var (
		n       = len(e.selected)
		covered = make([]bool, len(e.cons))
		pick    = make([]bool, n)
		left    = len(e.cons)
		cost    = 0
	)
	for left > 0 {
		bestV, bestGain := -1, 0
		for v := 0; v < n; v++ {
			if pick[v] {
				continue
			}
			gain := 0
			for _, ci := range e.varCons[v] {
				if !covered[ci] {
					gain++
				}
			}
			if gain > bestGain {
				bestV, bestGain = v, gain
			}
		}
		pick[bestV] = true
		cost++
		for _, ci := range e.varCons[bestV] {
			if !covered[ci] {
				covered[ci] = true
				left--
			}
		}
	}
	e.best = pick
	e.bestCost = cost

	return true
}

// budgetExceeded counts a node and reports whether the search must stop.
func (e *bbEngine) budgetExceeded() bool {
	if e.aborted {
		return true
	}
	e.nodes++
	if e.nodeLimit > 0 && e.nodes > e.nodeLimit {
		e.aborted = true
		return true
	}
	if e.nodes%checkEvery == 0 && e.ctx.Err() != nil {
		e.aborted = true
		return true
	}

	return false
}

// branchConstraint returns the uncovered constraint with the fewest
// selectable variables, its count, and whether any constraint is uncovered.
func (e *bbEngine) branchConstraint() (ci int, free int, found bool) {
	ci, free = -1, 0
	for i, vars := range e.cons {
		if e.cover[i] > 0 {
			continue
		}
		k := 0
		for _, v := range vars {
			if !e.forbidden[v] {
				k++
			}
		}
		if ci < 0 || k < free {
			ci, free = i, k
			if k == 0 {
				break
			}
		}
	}

	return ci, free, ci >= 0
}

// packingBound counts pairwise-disjoint uncovered constraints using only
// selectable variables.
func (e *bbEngine) packingBound() int {
	e.stampID++
	count := 0
	for i, vars := range e.cons {
		if e.cover[i] > 0 {
			continue
		}
		clash := false
		for _, v := range vars {
			if !e.forbidden[v] && e.stamp[v] == e.stampID {
				clash = true
				break
			}
		}
		if clash {
			continue
		}
		for _, v := range vars {
			if !e.forbidden[v] {
				e.stamp[v] = e.stampID
			}
		}
		count++
	}

	return count
}

func (e *bbEngine) choose(v model.VarID, on bool) {
	e.selected[v] = on
	d := 1
	if !on {
		d = -1
	}
	for _, ci := range e.varCons[v] {
		e.cover[ci] += d
	}
}

// dfs explores completions of the current partial cover.
func (e *bbEngine) dfs(cost int) {
	if e.budgetExceeded() {
		return
	}
	ci, free, found := e.branchConstraint()
	if !found {
		if cost < e.bestCost {
			copy(e.best, e.selected)
			e.bestCost = cost
		}
		return
	}
	if free == 0 {
		return // every variable of ci is fixed to 0
	}
	if cost+e.packingBound() >= e.bestCost {
		return
	}

	var fixed []model.VarID
	for _, v := range e.cons[ci] {
		if e.forbidden[v] {
			continue
		}
		e.choose(v, true)
		e.dfs(cost + 1)
		e.choose(v, false)
		if e.aborted {
			break
		}
		e.forbidden[v] = true
		fixed = append(fixed, v)
	}
	for _, v := range fixed {
		e.forbidden[v] = false
	}
}
