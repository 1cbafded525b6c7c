package wrapped

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/harrison/ccwrapped/internal/archetype"
	"github.com/harrison/ccwrapped/internal/behavioral"
)

// SummaryVersion is the schema version of Summary.
const SummaryVersion = 1

// Distribution is a histogram encoded as a JSON object keyed by bucket
// number ("0", "1", ...) in ascending order.
type Distribution []int

// MarshalJSON encodes buckets in numeric key order.
func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%d", strconv.Itoa(i), n)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TimePatterns is the JSON form of behavioral.TimePatterns.
type TimePatterns struct {
	HourDistribution      Distribution `json:"hourDistribution"`
	DayOfWeekDistribution Distribution `json:"dayOfWeekDistribution"`
	PeakHour              int          `json:"peakHour"`
	PeakDay               int          `json:"peakDay"`
}

// Summary is the wrapped summary handed to renderers and exporters.
// Build it with Assemble; it shares no mutable state with its inputs.
type Summary struct {
	Version      int                    `json:"version"`
	Stats        behavioral.Stats       `json:"stats"`
	Tools        *behavioral.ToolCounts `json:"tools"`
	TimePatterns TimePatterns           `json:"timePatterns"`
	ProjectCount int                    `json:"projectCount"`
	Goals        behavioral.GoalCounts  `json:"goals"`
	Archetype    archetype.Label        `json:"archetype"`
	Highlights   behavioral.Highlights  `json:"highlights"`
	Streaks      behavioral.Streaks     `json:"streaks"`
}

// Assemble builds a Summary from aggregated features and the chosen label.
func Assemble(f *behavioral.Features, label archetype.Label) Summary {
	tools := behavioral.NewToolCounts()
	for _, name := range f.Tools.Names() {
		tools.Add(name, f.Tools.Get(name))
	}

	goals := behavioral.NewGoalCounts()
	for c, n := range f.Goals {
		goals[c] = n
	}

	hours := make(Distribution, len(f.TimePatterns.HourDistribution))
	copy(hours, f.TimePatterns.HourDistribution[:])
	days := make(Distribution, len(f.TimePatterns.DayOfWeekDistribution))
	copy(days, f.TimePatterns.DayOfWeekDistribution[:])

	return Summary{
		Version: SummaryVersion,
		Stats:   f.Stats,
		Tools:   tools,
		TimePatterns: TimePatterns{
			HourDistribution:      hours,
			DayOfWeekDistribution: days,
			PeakHour:              f.TimePatterns.PeakHour,
			PeakDay:               f.TimePatterns.PeakDay,
		},
		ProjectCount: f.ProjectCount,
		Goals:        goals,
		Archetype:    label,
		Highlights:   f.Highlights,
		Streaks:      f.Streaks,
	}
}

// Validate checks the summary against its published schema.
func (s Summary) Validate() error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			fail("%s must be non-negative, got %d", name, v)
		}
	}

	if s.Version != SummaryVersion {
		fail("unsupported version %d", s.Version)
	}

	nonNegative("stats.sessions", s.Stats.Sessions)
	nonNegative("stats.messages", s.Stats.Messages)
	nonNegative("stats.days", s.Stats.Days)
	nonNegative("stats.commits", s.Stats.Commits)
	nonNegative("stats.linesChanged", s.Stats.LinesChanged)
	if s.Stats.Hours < 0 {
		fail("stats.hours must be non-negative, got %v", s.Stats.Hours)
	}

	for _, name := range s.Tools.Names() {
		nonNegative("tools."+name, s.Tools.Get(name))
	}

	if len(s.TimePatterns.HourDistribution) != 24 {
		fail("hourDistribution must have 24 buckets, got %d", len(s.TimePatterns.HourDistribution))
	}
	if len(s.TimePatterns.DayOfWeekDistribution) != 7 {
		fail("dayOfWeekDistribution must have 7 buckets, got %d", len(s.TimePatterns.DayOfWeekDistribution))
	}
	for i, n := range s.TimePatterns.HourDistribution {
		nonNegative(fmt.Sprintf("hourDistribution[%d]", i), n)
	}
	for i, n := range s.TimePatterns.DayOfWeekDistribution {
		nonNegative(fmt.Sprintf("dayOfWeekDistribution[%d]", i), n)
	}
	if s.TimePatterns.PeakHour < 0 || s.TimePatterns.PeakHour > 23 {
		fail("peakHour out of range: %d", s.TimePatterns.PeakHour)
	}
	if s.TimePatterns.PeakDay < 0 || s.TimePatterns.PeakDay > 6 {
		fail("peakDay out of range: %d", s.TimePatterns.PeakDay)
	}

	nonNegative("projectCount", s.ProjectCount)

	for c, n := range s.Goals {
		if !c.IsValid() {
			fail("unknown goal category %q", c)
		}
		nonNegative("goals."+string(c), n)
	}

	if _, err := archetype.ParseLabel(string(s.Archetype)); err != nil {
		errs = append(errs, err)
	}

	nonNegative("highlights.busiestDayMessages", s.Highlights.BusiestDayMessages)
	nonNegative("highlights.longestStreak", s.Highlights.LongestStreak)
	nonNegative("highlights.longestSessionMinutes", s.Highlights.LongestSessionMinutes)
	nonNegative("highlights.topToolCount", s.Highlights.TopToolCount)

	nonNegative("streaks.current", s.Streaks.Current)
	nonNegative("streaks.longest", s.Streaks.Longest)
	nonNegative("streaks.totalActiveDays", s.Streaks.TotalActiveDays)

	return errors.Join(errs...)
}
