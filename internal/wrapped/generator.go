package wrapped

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harrison/ccwrapped/internal/archetype"
	"github.com/harrison/ccwrapped/internal/behavioral"
)

// ErrNoData is returned when the data directory has neither transcripts nor
// history entries.
var ErrNoData = errors.New("no session data found")

// Report is one pipeline run: the summary plus what was read to build it.
type Report struct {
	Summary        Summary
	Features       *behavioral.Features
	Scores         []archetype.Score
	SessionCount   int // reconstructed transcripts
	HistoryEntries int
	ParseStats     behavioral.ExtractStats
	GeneratedAt    time.Time
}

// Info returns the catalog entry of the report's archetype.
func (r *Report) Info() archetype.Info {
	info, _ := archetype.Lookup(r.Summary.Archetype)
	return info
}

// Generator runs extraction, aggregation, classification and assembly.
type Generator struct {
	Extractor *behavioral.Extractor
	Clock     behavioral.Clock
	Location  *time.Location
	Logger    behavioral.Logger
}

// NewGenerator creates a Generator reading claudeDir.
func NewGenerator(claudeDir string, workers int, loc *time.Location, logger behavioral.Logger) *Generator {
	ex := behavioral.NewExtractor(claudeDir, logger)
	ex.Location = loc
	if workers > 0 {
		ex.Workers = workers
	}
	return &Generator{
		Extractor: ex,
		Clock:     behavioral.SystemClock{},
		Location:  loc,
		Logger:    logger,
	}
}

// Generate reads the data directory and builds a Report.
// It returns ErrNoData when there is nothing to summarize.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	ds, err := g.Extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract session data: %w", err)
	}
	return g.Build(ds)
}

// Build turns an extracted Dataset into a Report without further I/O.
func (g *Generator) Build(ds *behavioral.Dataset) (*Report, error) {
	if ds.Empty() {
		return nil, ErrNoData
	}

	clock := g.Clock
	if clock == nil {
		clock = behavioral.SystemClock{}
	}
	loc := g.Location
	if loc == nil {
		loc = time.Local
	}

	features := behavioral.Aggregate(ds, clock, loc)
	scores := archetype.ScoreAll(archetype.Input{Features: features, Sessions: ds.Sessions})
	label := archetype.Best(scores)

	summary := Assemble(features, label)
	if err := summary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summary: %w", err)
	}

	if g.Logger != nil {
		g.Logger.LogDebug("classified as %s from %d sessions", label, summary.Stats.Sessions)
	}

	return &Report{
		Summary:        summary,
		Features:       features,
		Scores:         scores,
		SessionCount:   len(ds.Sessions),
		HistoryEntries: len(ds.History),
		ParseStats:     ds.Stats,
		GeneratedAt:    clock.Now().In(loc),
	}, nil
}
