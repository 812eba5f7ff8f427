package main

import (
	"fmt"
	"strconv"
	"strings"
	"triangle/internal/classifier"
	"triangle/pkg/serrors"

	"github.com/spf13/cobra"
)

// classifyCommand constructs the 'classify' subcommand that prints the label
// of a single triangle.
func classifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify A B C",
		Short: "Prints the label of the triangle with sides A, B and C",
		Long: "Prints the label of the triangle with sides A, B and C.\n" +
			"Separate negative sides from flags with --, e.g. `triangle classify -- -1 2 3`.",
		Args: cobra.ExactArgs(3), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			var sides [3]float64
			for i, arg := range args {
				v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
				if err != nil {
					return serrors.Wrap(serrors.ErrBadRequest, err, "side %d", i+1)
				}
				sides[i] = v
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), classifier.Classify(sides[0], sides[1], sides[2]))

			return nil
		},
	}

	return cmd
}
