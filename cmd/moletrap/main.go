// Command moletrap checks, solves and generates trap-placement instances.
//
// Usage:
//
//	moletrap check    --threshold 3 grid.yaml
//	moletrap solve    --threshold 3 [--backend bnb|pb] grid.yaml
//	moletrap generate --shape 5x5 --npoints 3 --threshold 3 --samples 100 --output data
//
// Every flag can also be set through a MOLETRAP_<FLAG> environment variable
// (dashes become underscores) or a YAML file passed with --config.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/moletrap/dataset"
	"github.com/katalvlaran/moletrap/grid"
)

const envPrefix = "MOLETRAP"

// app carries the state shared by all sub-commands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "moletrap:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.New(slog.DiscardHandler)}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "moletrap",
		Short:         "Place the fewest traps so that no mole can cross a grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "YAML config file")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newCheckCmd(a), newSolveCmd(a), newGenerateCmd(a))

	return root
}

// setup binds the flags of the running command, reads the optional config
// file and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// threshold returns the validated --threshold value.
func (a *app) threshold() (int, error) {
	t := a.v.GetInt("threshold")
	if t <= 0 {
		return 0, fmt.Errorf("--threshold must be positive, got %d", t)
	}

	return t, nil
}

// loadGrid reads a grid file in the dataset YAML format.
func loadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := dataset.ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
