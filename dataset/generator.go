package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/moletrap/grid"
	"github.com/katalvlaran/moletrap/solver"
)

// Budget bounds a MakeSeveral run. Zero Samples and zero MaxTime together
// mean "until the context is cancelled".
type Budget struct {
	// Samples caps the number of scheduled instances (0 = unlimited).
	Samples int
	// MaxTime stops scheduling once elapsed (0 = unlimited). In-flight
	// instances still complete.
	MaxTime time.Duration
	// Workers is the number of concurrent solves (≤0 = GOMAXPROCS).
	Workers int
}

// Generator samples, solves, verifies and persists instances under a root
// directory. Safe for concurrent use.
type Generator struct {
	root      string
	catalog   *Catalog
	metrics   *Metrics
	logger    *slog.Logger
	solveOpts []solver.Option
	discards  int

	mu     sync.Mutex
	base   *rand.Rand
	stream uint64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCatalog records every saved artifact in c.
func WithCatalog(c *Catalog) GeneratorOption {
	return func(g *Generator) { g.catalog = c }
}

// WithMetrics reports progress to m.
func WithMetrics(m *Metrics) GeneratorOption {
	return func(g *Generator) { g.metrics = m }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSolverOptions forwards opts to every solver.Solve call.
func WithSolverOptions(opts ...solver.Option) GeneratorOption {
	return func(g *Generator) { g.solveOpts = append(g.solveOpts, opts...) }
}

// DefaultMaxDiscards is the number of non-converging samples MakeOne
// discards before giving up.
const DefaultMaxDiscards = 16

// WithMaxDiscards sets how many non-converging samples MakeOne discards and
// resamples before it returns the last solver.ErrNonConvergence.
// Negative values are treated as zero.
func WithMaxDiscards(n int) GeneratorOption {
	return func(g *Generator) {
		if n < 0 {
			n = 0
		}
		g.discards = n
	}
}

// WithSeed fixes the base seed of instance sampling (0 = default seed).
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) { g.base = grid.NewRand(seed) }
}

// NewGenerator returns a Generator writing artifacts under root.
func NewGenerator(root string, opts ...GeneratorOption) *Generator {
	g := &Generator{
		root:   root,
		logger:   slog.New(slog.DiscardHandler),
		base:     grid.NewRand(0),
		discards: DefaultMaxDiscards,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// nextRand hands out an independent RNG stream per instance.
func (g *Generator) nextRand() *rand.Rand {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stream++

	return grid.DeriveRand(g.base, g.stream)
}

// MakeOne produces one persisted instance for p and returns its path.
// Instances whose solve does not converge are discarded and resampled, at
// most WithMaxDiscards times; the next non-convergence is returned. A
// completion that fails verification is returned as
// solver.ErrInconsistentResult.
func (g *Generator) MakeOne(ctx context.Context, p InstanceParams) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	for discarded := 0; ; discarded++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		path, err := g.attempt(ctx, p)
		if !errors.Is(err, solver.ErrNonConvergence) {
			return path, err
		}
		g.metrics.count(OutcomeFailed)
		if discarded >= g.discards {
			return "", fmt.Errorf("dataset: %d samples discarded: %w", discarded, err)
		}
		g.logger.Warn("dataset: discarding instance", "err", err, "shape", p.Shape, "threshold", p.Threshold)
	}
}

// attempt runs one sample → solve → verify → save → record cycle.
func (g *Generator) attempt(ctx context.Context, p InstanceParams) (string, error) {
	name := uuid.NewString()
	inst, err := grid.Generate(p.Shape, p.NPoints, g.nextRand())
	if err != nil {
		return "", err
	}
	g.metrics.count(OutcomeGenerated)

	admissible, err := grid.Admissible(inst, p.Threshold)
	if err != nil {
		return "", err
	}
	start := time.Now()
	solved, err := solver.Solve(ctx, inst, p.Threshold, name, g.solveOpts...)
	if err != nil {
		return "", err
	}
	if admissible {
		g.metrics.count(OutcomeAdmissible)
	} else {
		g.metrics.observeSolve(time.Since(start))
		g.metrics.count(OutcomeSolved)
	}
	if err = solver.Verify(inst, solved, p.Threshold); err != nil {
		g.logger.Error("dataset: verification failed", "name", name, "grid", inst.String(), "solution", solved.String())
		return "", err
	}

	path, err := Save(g.root, name, p, inst, solved)
	if err != nil {
		return "", err
	}
	if g.catalog != nil {
		err = g.catalog.Record(ctx, Entry{
			Name:      name,
			Threshold: p.Threshold,
			Shape:     p.Canonical().Shape,
			NPoints:   p.NPoints,
			Traps:     solved.Count(),
			Path:      path,
		})
		if err != nil {
			return "", err
		}
	}
	g.logger.Debug("dataset: instance saved", "name", name, "path", path, "traps", solved.Count())

	return path, nil
}

// MakeSeveral produces instances cycling through params within budget and
// returns the paths written, in completion order.
//
// Scheduling stops once budget.Samples instances were scheduled or
// budget.MaxTime has elapsed; already running instances complete. The first
// failing instance (e.g. solver.ErrInconsistentResult) cancels the rest and
// its error is returned together with the paths written so far. With neither
// limit set the run lasts until ctx is cancelled, and ctx.Err() is returned.
func (g *Generator) MakeSeveral(ctx context.Context, params []InstanceParams, budget Budget) ([]string, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: no parameter sets", ErrInvalidParams)
	}
	for _, p := range params {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	workers := budget.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu    sync.Mutex
		paths []string
		start = time.Now()
	)
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	scheduled := 0
	for {
		if budget.Samples > 0 && scheduled >= budget.Samples {
			break
		}
		if budget.MaxTime > 0 && time.Since(start) >= budget.MaxTime {
			break
		}
		if ectx.Err() != nil {
			break
		}
		p := params[scheduled%len(params)]
		scheduled++
		eg.Go(func() error {
			path, err := g.MakeOne(ectx, p)
			if err != nil {
				return err
			}
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()

			return nil
		})
	}
	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	g.logger.Info("dataset: batch finished",
		"scheduled", scheduled,
		"written", len(paths),
		"elapsed", time.Since(start),
		"err", err,
	)

	return paths, err
}
