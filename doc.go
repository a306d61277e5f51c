// Package moletrap computes minimum trap placements on n-dimensional grids:
// given a partially trapped garden and a mole length t, add the fewest traps
// so that no axis-aligned run of t free cells remains.
//
// What is inside?
//
//	grid/      — Grid storage, Admissible/Score, windows, axis permutation, sampling
//	model/     — 0-1 covering model (one variable per free cell, one constraint per window), OPB export
//	optimizer/ — exact backends: in-process branch-and-bound and gophersat pseudo-boolean
//	solver/    — Solve (build → optimize → materialize) and Verify
//	dataset/   — canonical artifacts, SQLite catalog, Prometheus metrics, budgeted batch generation
//	cmd/       — moletrap CLI (check, solve, generate)
//	examples/  — runnable scenarios
//
// Quick example (threshold 2):
//
//	X . . .    →    X . T .
//
// One trap at index 2 is enough: no two consecutive cells stay free.
//
//	go get github.com/katalvlaran/moletrap
package moletrap
