// SPDX-License-Identifier: MIT

// Package commands implements the slotgraph command tree.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/slotgraph/internal/config"
	"github.com/katalvlaran/slotgraph/internal/metrics"
	"github.com/katalvlaran/slotgraph/internal/render"
	"github.com/katalvlaran/slotgraph/internal/scenario"
	"github.com/katalvlaran/slotgraph/internal/service"
	"github.com/katalvlaran/slotgraph/internal/telemetry"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// ErrKindMismatch indicates a scenario file built for the other command group.
var ErrKindMismatch = errors.New("slotgraph: scenario kind mismatch")

// app carries state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	noColor  bool
	cfg      config.Config
	logger   *slog.Logger
	tp       trace.TracerProvider
	shutdown telemetry.Shutdown
	metrics  *metrics.Collector
}

// Execute runs the command tree against os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "slotgraph",
		Short: "Route planning and social graph queries over a bounded slot table",
		Long: `slotgraph answers shortest-route questions on a weighted route map and
reachability questions on a social network.

Without --scenario the builtin demo data is used.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+config.DefaultFile+")")
	flags.String("scenario", "", "YAML scenario file to load instead of the builtin data")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("trace", false, "write spans to stderr")
	flags.String("metrics-out", "", "write Prometheus metrics to this file on exit")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colors and text styles")

	for key, name := range map[string]string{
		config.KeyScenario:   "scenario",
		config.KeyLogLevel:   "log-level",
		config.KeyLogFormat:  "log-format",
		config.KeyTrace:      "trace",
		config.KeyMetricsOut: "metrics-out",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(newRoutesCmd(a), newSocialCmd(a))

	return root
}

// setup resolves configuration and wires logging, tracing and metrics.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())

	a.tp, a.shutdown, err = telemetry.Init(cmd.ErrOrStderr(), cfg.Trace, Version)
	if err != nil {
		return err
	}
	a.metrics = metrics.New(cfg.Metrics.Out != "")

	a.logger.Debug("configured",
		slog.String("command", cmd.CommandPath()),
		slog.String("scenario", cfg.Scenario),
		slog.Bool("trace", cfg.Trace),
	)

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			return fmt.Errorf("slotgraph: flush traces: %w", err)
		}
	}
	if a.cfg.Metrics.Out != "" {
		return a.metrics.WriteFile(a.cfg.Metrics.Out)
	}

	return nil
}

// open loads the scenario for kind and wraps it in a service.Network.
func (a *app) open(kind scenario.Kind) (*service.Network, error) {
	var def *scenario.Definition
	var err error
	if a.cfg.Scenario != "" {
		if def, err = scenario.Load(a.cfg.Scenario); err != nil {
			return nil, err
		}
		if def.Kind != kind {
			return nil, fmt.Errorf("%w: %s holds %q, want %q", ErrKindMismatch, a.cfg.Scenario, def.Kind, kind)
		}
	} else if def, err = scenario.Builtin(kind); err != nil {
		return nil, err
	}

	storeOpts := a.cfg.SocialOptions()
	if kind == scenario.KindRoutes {
		storeOpts = a.cfg.RouteOptions()
	}

	return service.Open(def, storeOpts,
		service.WithLogger(a.logger),
		service.WithTracerProvider(a.tp),
		service.WithMetrics(a.metrics),
	)
}

func (a *app) printer(w io.Writer) *render.Printer {
	if a.noColor {
		return render.New(w, render.Plain())
	}

	return render.New(w)
}
