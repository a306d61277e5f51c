// Package optimizer defines the backend contract, statuses and options.
package optimizer

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/moletrap/model"
)

// Sentinel errors for optimizer invocations.
var (
	// ErrEmptyName indicates a missing solve name.
	ErrEmptyName = errors.New("optimizer: solve name must not be empty")
	// ErrBadName indicates a solve name that is not a plain file name.
	ErrBadName = errors.New("optimizer: solve name must not contain path elements")
	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("optimizer: model is nil")
	// ErrNameInUse indicates that another solve currently owns the name.
	ErrNameInUse = errors.New("optimizer: solve name already in use")
	// ErrBadModel indicates that the backend returned bindings that do not
	// match the submitted variables.
	ErrBadModel = errors.New("optimizer: backend returned a malformed model")
)

// Status is the outcome of an optimization.
type Status int

const (
	// NotSolved means the backend stopped before proving anything.
	NotSolved Status = iota
	// Optimal means Assignment is a proven minimum.
	Optimal
	// Infeasible means no assignment satisfies the constraints.
	Infeasible
	// Unbounded means the objective has no finite optimum.
	Unbounded
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "not solved"
	}
}

// Result holds the outcome of one Optimize call.
type Result struct {
	Status Status

	// Assignment[v] is the value of variable v; nil unless Status is Optimal.
	Assignment []bool

	// Objective is Σ Assignment when Status is Optimal.
	Objective int
}

// Optimizer solves a covering model to optimality.
// name identifies the solve; it must be unique among concurrent invocations.
type Optimizer interface {
	Optimize(ctx context.Context, name string, m *model.Model) (Result, error)
}

// Option configures a backend. Options a backend does not use are ignored.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	scratchDir string
	nodeLimit  int
}

func defaultConfig() config {
	return config{
		logger:     slog.New(slog.DiscardHandler),
		scratchDir: "",
		nodeLimit:  0,
	}
}

func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithScratchDir sets the directory holding transient model files
// (PseudoBoolean only). Empty means os.TempDir().
func WithScratchDir(dir string) Option {
	return func(c *config) { c.scratchDir = dir }
}

// WithNodeLimit caps the number of search nodes (BranchAndBound only).
// Zero means unlimited; negative values are treated as zero.
func WithNodeLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.nodeLimit = n
	}
}

// validateCall applies the checks shared by every backend.
func validateCall(name string, m *model.Model) error {
	if name == "" {
		return ErrEmptyName
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return ErrBadName
	}
	if m == nil {
		return ErrNilModel
	}

	return nil
}

// trivialResult answers models without constraints: setting nothing is optimal.
func trivialResult(m *model.Model) Result {
	return Result{Status: Optimal, Assignment: make([]bool, m.NumVars()), Objective: 0}
}
