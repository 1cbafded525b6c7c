package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/ccwrapped/internal/display"
)

func newProjectsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "Show sessions and messages per project",
		Long: `Show how many transcripts and user/assistant messages each project
directory contributed, in the order the projects were first seen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			display.PrintProjects(out, report.Features.Projects, display.ColorEnabled(out))
			return nil
		},
	}
}
