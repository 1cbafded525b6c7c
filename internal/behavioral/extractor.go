package behavioral

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the transcript parsing concurrency used when none is set.
const DefaultWorkers = 8

// Logger is the logging surface the extractor reports through.
type Logger interface {
	LogDebug(format string, args ...interface{})
	LogWarn(format string, args ...interface{})
	LogProgress(label string, done, total int)
}

type nopLogger struct{}

func (nopLogger) LogDebug(string, ...interface{}) {}
func (nopLogger) LogWarn(string, ...interface{})  {}
func (nopLogger) LogProgress(string, int, int)    {}

// ExtractStats reports parse statistics per data source.
type ExtractStats struct {
	History     ParseStats
	Transcripts ParseStats
	Facets      ParseStats
}

// Dataset is everything read from one Claude data directory.
type Dataset struct {
	History  []HistoryEntry
	Sessions []*Session
	Facets   []Facet
	Stats    ExtractStats
}

// Empty reports whether there is nothing to summarize.
func (d *Dataset) Empty() bool {
	return d == nil || (len(d.Sessions) == 0 && len(d.History) == 0)
}

// Extractor reads the history log, transcripts and facets under ClaudeDir.
// Location applies to transcript timestamps written without a zone.
type Extractor struct {
	ClaudeDir string
	Workers   int
	Location  *time.Location
	Logger    Logger
}

// NewExtractor creates an Extractor with default concurrency.
func NewExtractor(claudeDir string, logger Logger) *Extractor {
	return &Extractor{ClaudeDir: claudeDir, Workers: DefaultWorkers, Logger: logger}
}

func (e *Extractor) logger() Logger {
	if e.Logger == nil {
		return nopLogger{}
	}
	return e.Logger
}

// Extract reads all three sources concurrently. Sessions are returned in
// discovery order regardless of which worker finished first. Missing
// directories and files yield empty results; malformed content is counted
// and skipped. A file that exists but cannot be read fails the extraction.
func (e *Extractor) Extract(ctx context.Context) (*Dataset, error) {
	layout := DataLayout{Root: e.ClaudeDir}
	ds := &Dataset{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, stats, err := ParseHistoryFile(layout.HistoryPath())
		if err != nil {
			return err
		}
		ds.History = entries
		ds.Stats.History = stats
		return nil
	})

	g.Go(func() error {
		sessions, stats, err := e.extractSessions(gctx, layout.ProjectsDir())
		if err != nil {
			return err
		}
		ds.Sessions = sessions
		ds.Stats.Transcripts = stats
		return nil
	})

	g.Go(func() error {
		facets, stats, err := ParseFacetDir(layout.FacetsDir())
		if err != nil {
			return err
		}
		ds.Facets = facets
		ds.Stats.Facets = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := e.logger()
	log.LogDebug("history: %d entries kept, %d skipped", ds.Stats.History.Records, ds.Stats.History.Skipped)
	log.LogDebug("transcripts: %d files, %d records, %d skipped, %d truncated",
		ds.Stats.Transcripts.Files, ds.Stats.Transcripts.Records,
		ds.Stats.Transcripts.Skipped, ds.Stats.Transcripts.Truncated)
	log.LogDebug("facets: %d kept, %d skipped", ds.Stats.Facets.Records, ds.Stats.Facets.Skipped)
	if ds.Stats.Transcripts.Truncated > 0 {
		log.LogWarn("%d transcript(s) cut short by an oversized line", ds.Stats.Transcripts.Truncated)
	}

	return ds, nil
}

func (e *Extractor) extractSessions(ctx context.Context, projectsDir string) ([]*Session, ParseStats, error) {
	var stats ParseStats

	files, err := DiscoverTranscripts(projectsDir)
	if err != nil {
		return nil, stats, err
	}

	log := e.logger()
	nonUUID := 0
	for _, tf := range files {
		if !tf.IsUUID() {
			nonUUID++
		}
	}
	if nonUUID > 0 {
		log.LogDebug("%d transcript(s) with non-UUID names (sidechains or agents)", nonUUID)
	}

	workers := e.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}

	results := make([]*Session, len(files))
	perFile := make([]ParseStats, len(files))
	var done atomic.Int64
	var progressMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, tf := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			session, fileStats, err := ParseTranscriptFile(tf, e.Location)
			if err != nil {
				return err
			}
			results[i] = session
			perFile[i] = fileStats

			n := int(done.Add(1))
			progressMu.Lock()
			log.LogProgress("transcripts", n, len(files))
			progressMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, stats, fmt.Errorf("failed to extract transcripts: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to extract transcripts: %w", err)
	}

	sessions := make([]*Session, 0, len(files))
	for i, s := range results {
		stats.Add(perFile[i])
		if s != nil {
			sessions = append(sessions, s)
		}
	}
	return sessions, stats, nil
}
