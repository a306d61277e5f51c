package solver

import (
	"log/slog"

	"github.com/katalvlaran/moletrap/optimizer"
)

// Option customizes Solve.
type Option func(*config)

type config struct {
	optimizer optimizer.Optimizer
	logger    *slog.Logger
}

func gatherOptions(opts []Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.optimizer == nil {
		cfg.optimizer = optimizer.NewBranchAndBound(optimizer.WithLogger(cfg.logger))
	}

	return cfg
}

// WithOptimizer selects the backend. Default: optimizer.NewBranchAndBound().
func WithOptimizer(o optimizer.Optimizer) Option {
	return func(c *config) { c.optimizer = o }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
