package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet/airline"
	"github.com/katalvlaran/airnet/builder"
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/internal/config"
	"github.com/katalvlaran/airnet/internal/logging"
)

// app is the state shared by every subcommand once setup has run.
type app struct {
	configFile string

	cfg     config.Config
	logger  *slog.Logger
	metrics *prometheus.Registry
	reg     *airline.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "airnet",
		Short: "Route search and seat booking over an airline network",
		Long: `airnet loads a city network (built-in or from YAML), finds the fastest
itineraries between cities and books seats on the flights that serve them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.routeCmd(),
		a.traverseCmd(),
		a.bookCmd(),
		a.statsCmd(),
		a.shellCmd(),
	)

	return root
}

// setup resolves configuration and builds the logger, network and registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	g, err := loadGraph(cfg.NetworkFile)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	a.metrics = prometheus.NewRegistry()
	a.reg, err = airline.NewRegistry(g,
		airline.WithLogger(a.logger),
		airline.WithMetrics(a.metrics),
		airline.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	a.logger.Debug("network loaded",
		slog.Int("cities", g.CityCount()),
		slog.Int("legs", g.LegCount()),
		slog.Uint64("seed", seed),
	)

	return nil
}

func loadGraph(path string) (*core.Graph, error) {
	if path == "" {
		return builder.DefaultNetwork(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network: %w", err)
	}
	defer f.Close()

	return builder.LoadNetwork(f)
}
