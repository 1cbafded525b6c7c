package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/ccwrapped/internal/archetype"
	"github.com/harrison/ccwrapped/internal/behavioral"
	"github.com/harrison/ccwrapped/internal/wrapped"
)

func testReport() *wrapped.Report {
	tools := behavioral.NewToolCounts()
	tools.Add("Read", 12)
	tools.Add("Bash", 40)
	tools.Add("Edit", 12)
	tools.Add("Task", 1)

	goals := behavioral.NewGoalCounts()
	goals[behavioral.GoalFeature] = 2
	goals[behavioral.GoalBugFix] = 5

	return &wrapped.Report{
		SessionCount:   7,
		HistoryEntries: 1234,
		Summary: wrapped.Summary{
			Version: wrapped.SummaryVersion,
			Stats: behavioral.Stats{
				Sessions:     7,
				Messages:     1520,
				Hours:        12.5,
				Days:         4,
				Commits:      3,
				LinesChanged: 210,
			},
			Tools: tools,
			TimePatterns: wrapped.TimePatterns{
				HourDistribution:      make(wrapped.Distribution, 24),
				DayOfWeekDistribution: make(wrapped.Distribution, 7),
				PeakHour:              23,
				PeakDay:               2,
			},
			ProjectCount: 2,
			Goals:        goals,
			Archetype:    archetype.LabelBugHunter,
			Highlights: behavioral.Highlights{
				BusiestDay:            "2025-03-08",
				BusiestDayMessages:    41,
				LongestStreak:         3,
				LongestSessionMinutes: 95,
				RarestTool:            "Task",
				FirstSessionDate:      "2025-01-02",
				TopToolName:           "Bash",
				TopToolCount:          40,
			},
			Streaks: behavioral.Streaks{Current: 1, Longest: 3, TotalActiveDays: 4},
		},
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, testReport(), false)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Found 7 sessions and 1234 history entries.\n"))
	assert.Contains(t, out, "🐛 The Bug Hunter")
	assert.Contains(t, out, "Messages         1,520")
	assert.Contains(t, out, "Hours            12.5h")
	assert.Contains(t, out, "Peak hour        11pm")
	assert.Contains(t, out, "Peak day         Tue")
	assert.Contains(t, out, "Current streak   1 day\n")
	assert.Contains(t, out, "Longest streak   3 days")
	assert.Contains(t, out, "Busiest day      Mar 8, 2025 (41 prompts)")
	assert.Contains(t, out, "Favorite tool    Bash (40)")
	assert.Contains(t, out, "First session    Jan 2, 2025")
	assert.NotContains(t, out, "\x1b[")

	// Ranked by count, first-seen order on ties.
	bash := strings.Index(out, "  Bash ")
	read := strings.Index(out, "  Read ")
	edit := strings.Index(out, "  Edit ")
	require.True(t, bash > 0 && read > 0 && edit > 0)
	assert.Less(t, bash, read)
	assert.Less(t, read, edit)

	bug := strings.Index(out, "bug_fix")
	feature := strings.Index(out, "feature")
	require.True(t, bug > 0 && feature > 0)
	assert.Less(t, bug, feature)
	assert.NotContains(t, out, "refactor")
}

func TestPrintSummary_NoTools(t *testing.T) {
	r := testReport()
	r.Summary.Tools = behavioral.NewToolCounts()
	r.Summary.Goals = behavioral.NewGoalCounts()
	r.Summary.Highlights.TopToolName = behavioral.NoTool
	r.Summary.Highlights.TopToolCount = 0

	var buf bytes.Buffer
	PrintSummary(&buf, r, false)
	out := buf.String()

	assert.NotContains(t, out, "TOP TOOLS")
	assert.NotContains(t, out, "GOALS")
	assert.Contains(t, out, "Favorite tool    None\n")
}

func TestPrintSummary_Colored(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, testReport(), true)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrintProjects(t *testing.T) {
	var buf bytes.Buffer
	PrintProjects(&buf, []behavioral.ProjectActivity{
		{Name: "-work-api", Sessions: 3, Messages: 1200},
		{Name: "-w", Sessions: 1, Messages: 4},
	}, false)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Project    Sessions  Messages", lines[0])
	assert.Equal(t, "-work-api         3     1,200", lines[1])
	assert.Equal(t, "-w                1         4", lines[2])
}

func TestPrintProjects_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintProjects(&buf, nil, false)
	assert.Equal(t, "No projects found.\n", buf.String())
}
