package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/ccwrapped/internal/display"
	"github.com/harrison/ccwrapped/internal/wrapped"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print your wrapped summary and archetype",
		Long: `Read the data directory and print the wrapped card: totals, top tools,
time patterns, streaks, highlights and the archetype you were assigned.

Examples:
  ccwrapped summary
  ccwrapped summary --explain          # show all twelve archetype scores
  ccwrapped summary --timezone UTC`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts, explain)
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Print every archetype score")

	return cmd
}

func runSummary(cmd *cobra.Command, opts *rootOptions, explain bool) error {
	rt, err := loadRuntime(cmd, opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	report, err := generate(cmd, rt)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colored := display.ColorEnabled(out)
	display.PrintSummary(out, report, colored)
	if explain {
		fmt.Fprintln(out)
		display.PrintScores(out, report.Scores, report.Summary.Archetype, colored)
	}
	return nil
}

// generate runs the pipeline and prints the no-data warning when the data
// directory holds nothing.
func generate(cmd *cobra.Command, rt *runtime) (*wrapped.Report, error) {
	report, err := rt.gen.Generate(cmd.Context())
	if errors.Is(err, wrapped.ErrNoData) {
		display.NoDataWarning(rt.claudeDir).Display(cmd.ErrOrStderr())
	}
	if err != nil {
		return nil, err
	}

	ps := report.ParseStats
	rt.log.LogDebug("parsed %d transcript file(s), skipped %d line(s)", ps.Transcripts.Files, ps.Transcripts.Skipped)
	return report, nil
}
