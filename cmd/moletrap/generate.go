package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/moletrap/dataset"
	"github.com/katalvlaran/moletrap/solver"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample, solve and persist random instances",
		Long: `Samples random grids with a fixed number of preset traps, solves each one
exactly and stores the canonicalized (grid, solution) pairs under
<output>/threshold<t>/<AxB...>/<uuid>.yaml.

Examples:
  moletrap generate --shape 5x5 --npoints 3 --threshold 3 --samples 100
  moletrap generate --shape 4x4x4 --threshold 2 --max-time 10m --workers 8 --catalog data/catalog.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd)
		},
	}
	addSolverFlags(cmd)
	f := cmd.Flags()
	f.String("shape", "", "grid shape, e.g. 5x5 or 4x4x4 (required)")
	f.Int("npoints", 0, "preset traps per instance")
	f.Int("samples", 0, "number of instances (0 = unlimited)")
	f.Duration("max-time", 0, "stop scheduling after this long (0 = unlimited)")
	f.Int("workers", 0, "concurrent solves (0 = GOMAXPROCS)")
	f.String("output", "data", "dataset root directory")
	f.String("catalog", "", "SQLite catalog file (empty = no catalog)")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	f.Int64("seed", 0, "sampling seed (0 = default seed)")
	f.Int("max-discards", dataset.DefaultMaxDiscards, "non-converging samples discarded per instance before failing")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	t, err := a.threshold()
	if err != nil {
		return err
	}
	shape, err := dataset.ParseShape(a.v.GetString("shape"))
	if err != nil {
		return err
	}
	params := dataset.InstanceParams{Shape: shape, NPoints: a.v.GetInt("npoints"), Threshold: t}
	if err = params.Validate(); err != nil {
		return err
	}
	opt, err := a.optimizer()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []dataset.GeneratorOption{
		dataset.WithLogger(a.logger),
		dataset.WithMetrics(dataset.NewMetrics(reg)),
		dataset.WithSeed(a.v.GetInt64("seed")),
		dataset.WithMaxDiscards(a.v.GetInt("max-discards")),
		dataset.WithSolverOptions(solver.WithOptimizer(opt), solver.WithLogger(a.logger)),
	}
	if path := a.v.GetString("catalog"); path != "" {
		cat, err := dataset.OpenCatalog(path)
		if err != nil {
			return err
		}
		defer cat.Close()
		opts = append(opts, dataset.WithCatalog(cat))
	}
	if addr := a.v.GetString("metrics-addr"); addr != "" {
		stop, err := a.serveMetrics(addr, reg)
		if err != nil {
			return err
		}
		defer stop()
	}

	budget := dataset.Budget{
		Samples: a.v.GetInt("samples"),
		MaxTime: a.v.GetDuration("max-time"),
		Workers: a.v.GetInt("workers"),
	}
	gen := dataset.NewGenerator(a.v.GetString("output"), opts...)
	paths, err := gen.MakeSeveral(cmd.Context(), []dataset.InstanceParams{params}, budget)
	fmt.Fprintf(cmd.OutOrStdout(), "generated %d instances under %s\n", len(paths), params.Dir(a.v.GetString("output")))
	if errors.Is(err, context.Canceled) && budget.Samples == 0 && budget.MaxTime == 0 {
		// Unbounded runs end by interruption.
		return nil
	}

	return err
}

// serveMetrics exposes reg on addr until the returned stop function is called.
func (a *app) serveMetrics(addr string, reg *prometheus.Registry) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", "err", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
