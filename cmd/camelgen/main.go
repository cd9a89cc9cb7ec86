// Package main provides the camelgen CLI entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit code 1 and a user-friendly message on failure
//   - Performance Notes: Fast startup, minimal memory footprint
//
// Usage:
//
//	camelgen [command] [flags]
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/core/log"
	"go.eggybyte.com/camelgen/internal/logx"
	"go.eggybyte.com/camelgen/internal/settings"
	"go.eggybyte.com/camelgen/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "camelgen",
	Short: "Apache Camel project generator",
	Long: `Apache Camel project generator.

This tool provides commands for:
- Scaffolding Camel projects for the spring, spring-boot, blueprint and java DSLs
- Generating a REST facade from a SOAP WSDL with the wsdl2rest converter
- Inspecting the built-in project templates
- Checking the local Java and converter installation

Answers are stored in .camelgen.yaml and offered as defaults on the next run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetNonInteractive(nonInteractive)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute runs the root command and exits with status 1 on failure. Ctrl+C
// cancels the command context, which stops a running converter.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		ui.Error("Command failed: %s", errors.Message(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts and use defaults")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// loadEnvironment reads the CAMELGEN_* settings and builds the diagnostics
// logger that goes with them.
func loadEnvironment() (*settings.Settings, log.Logger, error) {
	env, err := settings.Load()
	if err != nil {
		return nil, nil, err
	}
	return env, newLogger(env), nil
}

func newLogger(env *settings.Settings) log.Logger {
	level, err := logx.ParseLevel(env.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	if ui.IsVerbose() {
		level = slog.LevelDebug
	}

	format := logx.Format(env.LogFormat)
	return logx.New(
		logx.WithFormat(format),
		logx.WithLevel(level),
		logx.WithColor(format == logx.FormatLogfmt && !color.NoColor),
		logx.WithWriter(os.Stderr),
	)
}

func main() {
	Execute()
}
