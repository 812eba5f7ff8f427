package main

import (
	"fmt"
	"io"
	"triangle"
	"triangle/internal/classifier"
	"triangle/internal/config"
	"triangle/internal/harness"

	"github.com/spf13/cobra"
)

// printSummary writes the console summary of a harness run.
func printSummary(out io.Writer, s harness.Summary) {
	_, _ = fmt.Fprintf(out, "Ran %d test cases; failures: %d\n", s.Total, s.Failures)
	if s.Passed() {
		_, _ = fmt.Fprintln(out, "All basis paths passed.")

		return
	}

	_, _ = fmt.Fprintln(out, "Mismatches:")
	for _, m := range s.Mismatches {
		_, _ = fmt.Fprintf(out, "  %s\n", m)
	}
}

// runCommand constructs the 'run' subcommand that classifies the input
// records, compares them with the expected labels and writes the actual
// labels and the report.
func runCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs the basis path test harness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := harness.NewOptions(cfg)

			builtin, _ := cmd.Flags().GetBool("builtin")
			if builtin {
				opts.Source = triangle.BasisPaths
				opts.InputPath = "data/input.csv"
				opts.ExpectedPath = "data/expected.csv"
			}

			summary, err := harness.Run(cmd.Context(), classifier.New(), opts)
			if err != nil {
				return fmt.Errorf("could not run harness: %w", err)
			}

			printSummary(cmd.OutOrStdout(), summary)
			if !summary.Passed() {
				return fmt.Errorf("%d of %d cases failed", summary.Failures, summary.Total)
			}

			return nil
		},
	}

	cmd.Flags().Bool("builtin", false, "Use the embedded basis path vectors instead of the configured input files")

	return cmd
}
