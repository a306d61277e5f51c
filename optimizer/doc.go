// Package optimizer is the boundary to the integer-programming backends that
// solve a model.Model to proven optimality.
//
// Every backend implements Optimizer:
//
//	Optimize(ctx, name, m) → Result{Status, Assignment, Objective}
//
// Status is one of Optimal, Infeasible, Unbounded or NotSolved; Assignment
// (indexed by model.VarID) is only populated when Status is Optimal. A
// backend never reports Optimal for an assignment it has not proven minimal.
//
// Backends:
//
//   - PseudoBoolean: serializes the model to an OPB scratch file named after
//     the solve, hands it to the gophersat pseudo-boolean optimizer and maps
//     the model back through the variable registry. The scratch file is
//     created exclusively (a concurrent solve reusing the name fails with
//     ErrNameInUse) and removed on every exit path.
//   - BranchAndBound: in-process exact set-cover search with a greedy upper
//     bound and a disjoint-constraint lower bound. A node budget turns an
//     unfinished search into NotSolved, never into an approximate answer.
//
// Neither backend exposes a timeout on an in-flight solve: callers that need
// time-bounded behaviour stop scheduling new solves instead.
package optimizer
