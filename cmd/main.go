// Package main provides the CLI entrypoint for the triangle classifier.
// It wires subcommands (run, classify, serve), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"triangle/internal/config"
	"triangle/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "triangle",
		Short:         "Classifies triangles and runs the basis path test harness",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(nopWriter{})
	configPath := flags.String("config", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		runCommand(cfg),
		classifyCommand(),
		serveCommand(cfg),
	)

	err = rootCmd.ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
		_ = logger.Get(ctx).Sync()
		os.Exit(1) //nolint: gocritic
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// configArgs extracts the -c/--config flag from args so the standard flag
// package can read it without tripping over subcommands and their flags.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config" || arg == "-config":
			if i+1 < len(args) {
				return []string{"-config", args[i+1]}
			}
		case strings.HasPrefix(arg, "-c="):
			return []string{"-config", strings.TrimPrefix(arg, "-c=")}
		case strings.HasPrefix(arg, "--config="):
			return []string{"-config", strings.TrimPrefix(arg, "--config=")}
		case arg == "--":
			return nil
		}
	}

	return nil
}
