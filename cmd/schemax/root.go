package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gauthamchettiar/schemax/pkg/cli"
	"github.com/gauthamchettiar/schemax/pkg/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "schemax",
	Short: "schemax - dataset schema validator",
	Long: `Schemax validates dataset schema files written in JSON or YAML.

Each schema document describes one dataset: its fully qualified name,
its columns with typed constraints, and its dependencies on other
schema files. Schemax checks:
  - Structural conformance (PSX_VAL1)
  - Batch-wide FQN uniqueness (PSX_VAL2)
  - Upstream dependency files exist and form no cycles (PSX_VAL3)
  - Downstream dependent files exist and form no cycles (PSX_VAL4)

For more information, visit: https://github.com/gauthamchettiar/schemax`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the mapped code:
// 0 success, 1 validation failure, 2 configuration or usage error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: schemax.yaml, .schemax.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.NewConfigError("", err.Error())
	})
}

// setupLogging installs the process-wide slog handler. Diagnostics go
// to stderr so result output on stdout stays clean.
func setupLogging(cfg *config.Config) {
	level := slog.LevelWarn
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadConfig resolves configuration for a command invocation, mapping
// failures to usage errors so they exit 2.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("config", err.Error())
	}
	return cfg, nil
}
