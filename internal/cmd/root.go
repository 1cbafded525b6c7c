package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	claudeDir  string
	configPath string
	logLevel   string
	timezone   string
	workers    int
}

// NewRootCommand creates and returns the root cobra command for ccwrapped
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ccwrapped",
		Short: "A year-in-review summary of your Claude Code sessions",
		Long: `ccwrapped reads the local Claude Code data directory (history.jsonl,
per-project session transcripts and session facets), aggregates usage
statistics, time patterns, goals, streaks and highlights, and assigns
one of twelve developer archetypes.

Everything runs locally; nothing is uploaded.

Running ccwrapped without a subcommand prints the summary.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts, false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.claudeDir, "claude-dir", "", "Claude data directory (default: $CLAUDE_CONFIG_DIR or ~/.claude)")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: ~/.ccwrapped/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.timezone, "timezone", "", `IANA timezone for calendar days and hours ("Local" for the system zone)`)
	flags.IntVar(&opts.workers, "workers", 0, "Number of transcripts parsed concurrently")

	cmd.AddCommand(newSummaryCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newArchetypesCommand())
	cmd.AddCommand(newProjectsCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))

	return cmd
}
