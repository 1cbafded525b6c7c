package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/ccwrapped/internal/behavioral"
	"github.com/harrison/ccwrapped/internal/wrapped"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	eo := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the exported summary whenever session data changes",
		Long: `Watch history.jsonl, the projects tree and the facets directory, and
re-export the summary after each burst of changes. Bursts are coalesced
using watch.debounce from the config (default 2s).

Press Ctrl+C to stop watching.

Examples:
  ccwrapped watch --output ~/wrapped.json --pretty
  ccwrapped watch --format md -o wrapped.md`,
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

			watcher, err := behavioral.NewFileWatcher(rt.claudeDir, rt.cfg.Watch.Debounce)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", rt.claudeDir, err)
			}
			defer watcher.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt.log.LogInfo("Watching %s (Ctrl+C to stop)", rt.claudeDir)
			return watchLoop(ctx, rt, watcher, exporter, cmd.OutOrStdout(), settings.output)
		},
	}

	eo.bind(cmd)

	return cmd
}

// changeSource is the part of behavioral.FileWatcher the loop consumes.
type changeSource interface {
	Changes() <-chan behavioral.ChangeSet
	Errors() <-chan error
}

// watchLoop exports once, then again after every change set, until ctx is
// done. Regeneration failures are logged and the loop keeps going.
func watchLoop(ctx context.Context, rt *runtime, src changeSource, exporter wrapped.Exporter, stdout io.Writer, output string) error {
	regenerate := func(reason string) {
		id := uuid.NewString()[:8]
		rt.log.LogDebug("regeneration %s: %s", id, reason)

		report, err := rt.gen.Generate(ctx)
		switch {
		case errors.Is(err, wrapped.ErrNoData):
			rt.log.LogWarn("regeneration %s: no session data in %s yet", id, rt.claudeDir)
			return
		case ctx.Err() != nil:
			return
		case err != nil:
			rt.log.LogError("regeneration %s failed: %v", id, err)
			return
		}

		path, err := writeReport(ctx, stdout, exporter, report, output)
		if err != nil {
			rt.log.LogError("regeneration %s failed: %v", id, err)
			return
		}
		if path != "" {
			rt.log.LogInfo("Updated %s (%d sessions, %s)", path, report.Summary.Stats.Sessions, report.Summary.Archetype)
		}
	}

	regenerate("initial export")

	for {
		select {
		case <-ctx.Done():
			return nil
		case cs, ok := <-src.Changes():
			if !ok {
				return nil
			}
			regenerate(fmt.Sprintf("%d file(s) changed", len(cs.Paths)))
		case err, ok := <-src.Errors():
			if !ok {
				return nil
			}
			rt.log.LogWarn("watcher error: %v", err)
		}
	}
}
