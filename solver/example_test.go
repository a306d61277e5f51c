package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/moletrap/grid"
	"github.com/katalvlaran/moletrap/solver"
)

// ExampleSolve completes a 4-cell line against moles of length 2.
func ExampleSolve() {
	g, _ := grid.From1D([]int{1, 0, 0, 0})
	out, err := solver.Solve(context.Background(), g, 2, "example")
	if err != nil {
		fmt.Println(err)
		return
	}
	score, _ := grid.Score(out, 2)
	fmt.Println(out, score)
	// Output: [1 0 1 0] 2
}
