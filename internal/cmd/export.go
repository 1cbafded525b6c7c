package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/ccwrapped/internal/config"
	"github.com/harrison/ccwrapped/internal/filelock"
	"github.com/harrison/ccwrapped/internal/wrapped"
)

// exportOptions are the output settings shared by export and watch.
type exportOptions struct {
	format string
	output string
	pretty bool
}

func (eo *exportOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&eo.format, "format", "f", "", "Report format: json, markdown (or md), html (default from config, json)")
	cmd.Flags().StringVarP(&eo.output, "output", "o", "", "Output file path (empty for stdout)")
	cmd.Flags().BoolVar(&eo.pretty, "pretty", false, "Indent JSON output")
}

// resolve fills unset flags from the export section of the config.
func (eo exportOptions) resolve(cmd *cobra.Command, cfg *config.Config) exportOptions {
	out := eo
	if !cmd.Flags().Changed("format") {
		out.format = cfg.Export.Format
	}
	if !cmd.Flags().Changed("output") {
		out.output = cfg.Export.Output
	}
	if !cmd.Flags().Changed("pretty") {
		out.pretty = cfg.Export.Pretty
	}
	return out
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	eo := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the wrapped summary to JSON, Markdown or HTML",
		Long: `Export the wrapped summary for sharing or further processing.

JSON output is the summary payload (version, stats, tools, timePatterns,
projectCount, goals, archetype, highlights, streaks). Markdown and HTML
render a readable report. Files are written atomically under a lock.

Examples:
  ccwrapped export --format json --output wrapped.json --pretty
  ccwrapped export --format md               # Outputs to stdout
  ccwrapped export --format html -o ~/wrapped.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			settings := eo.resolve(cmd, rt.cfg)
			exporter, err := wrapped.NewExporter(settings.format, settings.pretty)
			if err != nil {
				return err
			}

			report, err := generate(cmd, rt)
			if err != nil {
				return err
			}

			path, err := writeReport(cmd.Context(), cmd.OutOrStdout(), exporter, report, settings.output)
			if err != nil {
				return err
			}
			if path != "" {
				rt.log.LogInfo("Exported %s report to %s", settings.format, path)
			}
			return nil
		},
	}

	eo.bind(cmd)

	return cmd
}

// writeReport renders report and writes it to output, or to stdout when
// output is empty. It returns the resolved file path.
func writeReport(ctx context.Context, stdout io.Writer, exporter wrapped.Exporter, report *wrapped.Report, output string) (string, error) {
	data, err := exporter.Export(report)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	if output == "" {
		if _, err := stdout.Write(data); err != nil {
			return "", fmt.Errorf("failed to write report: %w", err)
		}
		return "", nil
	}

	path, err := config.ExpandHome(output)
	if err != nil {
		return "", err
	}
	if err := filelock.LockAndWrite(ctx, path, data); err != nil {
		return "", fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return path, nil
}
