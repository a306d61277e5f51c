package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moletrap/optimizer"
)

var (
	// ErrEmptyName indicates a missing solve name.
	ErrEmptyName = errors.New("solver: solve name must not be empty")
	// ErrNonConvergence indicates that the optimizer stopped without an optimal solution.
	ErrNonConvergence = errors.New("solver: optimizer did not converge")
	// ErrInconsistentResult indicates a completion that is inadmissible or drops preset traps.
	ErrInconsistentResult = errors.New("solver: inconsistent result")
)

// NonConvergenceError reports which solve failed and the status it ended in.
type NonConvergenceError struct {
	Name   string
	Status optimizer.Status
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("solver: %q did not converge (status %s)", e.Name, e.Status)
}

// Unwrap returns ErrNonConvergence.
func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }
