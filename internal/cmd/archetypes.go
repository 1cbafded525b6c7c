package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/ccwrapped/internal/display"
)

func newArchetypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List the twelve archetypes in evaluation order",
		Long: `List every archetype ccwrapped can assign. Scorers run in this order and
the first archetype wins a tie.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			display.PrintArchetypes(out, display.ColorEnabled(out))
			return nil
		},
	}
}
