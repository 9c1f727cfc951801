package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairfold/internal/telemetry"
)

// app carries state shared by all subcommands once flags are resolved.
type app struct {
	configPath string
	flags      Config

	cfg      Config
	logger   *slog.Logger
	recorder *telemetry.Recorder
	engine   engine
}

func newRootCmd() *cobra.Command {
	a := &app{flags: DefaultConfig()}

	root := &cobra.Command{
		Use:   "pairfold",
		Short: "Fold and reduce nested-pair compound numbers",
		Long: `pairfold reads compound numbers written in bracket notation, one per
line, adds them together with explode/split reduction and reports the
magnitude of the result.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.Engine, "engine", a.flags.Engine, "representation: tree or flat")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "debug, info, warn or error")
	pf.StringVar(&a.flags.LogFormat, "log-format", a.flags.LogFormat, "text or json")
	pf.IntVar(&a.flags.MaxSteps, "max-steps", a.flags.MaxSteps, "abort a reduction after this many rewrites (0 = unlimited)")
	pf.StringVar(&a.flags.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		a.sumCmd(),
		a.maxPairCmd(),
		a.reduceCmd(),
		a.magnitudeCmd(),
	)

	return root
}

// setup merges the config file with explicitly set flags and builds the
// logger, recorder and engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("engine") {
		cfg.Engine = a.flags.Engine
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if pf.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if pf.Changed("max-steps") {
		cfg.MaxSteps = a.flags.MaxSteps
	}
	if pf.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.MetricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = telemetry.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	a.recorder = telemetry.NewRecorder()
	a.engine, err = newEngine(cfg.Engine, runtime{
		logger:   a.logger,
		recorder: a.recorder,
		maxSteps: cfg.MaxSteps,
	})

	return err
}

// finish flushes metrics when a metrics file is configured.
func (a *app) finish() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.recorder.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return err
	}
	a.logger.Debug("metrics written", "path", a.cfg.MetricsFile)

	return nil
}

func (a *app) sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum FILE",
		Short: "Add every number in FILE (or - for stdin) and print the total and its magnitude",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			total, mag, err := a.engine.Sum(lines)
			if err != nil {
				a.logger.Error("sum failed", "file", args[0], "error", err)
				return err
			}
			a.logger.Info("sum complete", "engine", a.engine.Name(), "numbers", len(lines), "magnitude", mag)
			fmt.Fprintln(cmd.OutOrStdout(), total)
			fmt.Fprintln(cmd.OutOrStdout(), mag)

			return a.finish()
		},
	}
}

func (a *app) maxPairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "max-pair FILE",
		Short: "Print the largest magnitude of any two distinct numbers in FILE added together",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			best, err := a.engine.MaxPair(lines)
			if err != nil {
				a.logger.Error("max-pair failed", "file", args[0], "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), best)

			return a.finish()
		},
	}
}

func (a *app) reduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce NUMBER",
		Short: "Reduce a single number and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, res, err := a.engine.Reduce(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("reduced", "engine", a.engine.Name(), "explodes", res.Explodes, "splits", res.Splits)
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return a.finish()
		},
	}
}

func (a *app) magnitudeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "magnitude NUMBER",
		Short: "Print the magnitude of a number as written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mag, err := a.engine.Magnitude(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mag)

			return a.finish()
		},
	}
}
