package wrapped

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/ccwrapped/internal/archetype"
	"github.com/harrison/ccwrapped/internal/behavioral"
)

func TestDistributionMarshalJSON(t *testing.T) {
	d := make(Distribution, 12)
	d[10] = 3
	d[2] = 1

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"0":0,"1":0,"2":1,"3":0,"4":0,"5":0,"6":0,"7":0,"8":0,"9":0,"10":3,"11":0}`, string(data))
}

func TestAssemble(t *testing.T) {
	f := behavioral.Aggregate(testDataset(), behavioral.FixedClock{T: testNow}, nil)
	s := Assemble(f, archetype.LabelBugHunter)

	require.NoError(t, s.Validate())
	assert.Equal(t, SummaryVersion, s.Version)
	assert.Equal(t, archetype.LabelBugHunter, s.Archetype)
	assert.Len(t, s.TimePatterns.HourDistribution, 24)
	assert.Len(t, s.TimePatterns.DayOfWeekDistribution, 7)
	assert.Len(t, s.Goals, 8)

	// the summary does not alias the features
	f.Tools.Add("Read", 100)
	f.Goals[behavioral.GoalDocs] = 42
	f.TimePatterns.HourDistribution[0] = 99
	assert.Equal(t, 1, s.Tools.Get("Read"))
	assert.Equal(t, 0, s.Goals[behavioral.GoalDocs])
	assert.NotEqual(t, 99, s.TimePatterns.HourDistribution[0])
}

func TestSummaryJSONShape(t *testing.T) {
	f := behavioral.Aggregate(testDataset(), behavioral.FixedClock{T: testNow}, nil)
	data, err := json.Marshal(Assemble(f, archetype.LabelNightOwl))
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"version", "stats", "tools", "timePatterns", "projectCount", "goals", "archetype", "highlights", "streaks"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, `"night_owl"`, string(decoded["archetype"]))
	assert.True(t, strings.HasPrefix(string(decoded["tools"]), `{"Read":1,"Edit":1,"Bash":1,"Write":1}`))

	var stats map[string]any
	require.NoError(t, json.Unmarshal(decoded["stats"], &stats))
	for _, key := range []string{"sessions", "messages", "hours", "days", "commits", "linesChanged"} {
		assert.Contains(t, stats, key)
	}

	var hl map[string]any
	require.NoError(t, json.Unmarshal(decoded["highlights"], &hl))
	for _, key := range []string{"busiestDay", "busiestDayMessages", "longestStreak", "longestSessionMinutes", "rarestTool", "firstSessionDate", "topToolName", "topToolCount"} {
		assert.Contains(t, hl, key)
	}
}

func TestSummaryValidate(t *testing.T) {
	valid := func() Summary {
		f := behavioral.Aggregate(testDataset(), behavioral.FixedClock{T: testNow}, nil)
		return Assemble(f, archetype.LabelBuilder)
	}

	tests := []struct {
		name   string
		mutate func(s *Summary)
	}{
		{"wrong version", func(s *Summary) { s.Version = 2 }},
		{"negative sessions", func(s *Summary) { s.Stats.Sessions = -1 }},
		{"negative hours", func(s *Summary) { s.Stats.Hours = -0.5 }},
		{"peak hour out of range", func(s *Summary) { s.TimePatterns.PeakHour = 24 }},
		{"peak day out of range", func(s *Summary) { s.TimePatterns.PeakDay = 7 }},
		{"short hour distribution", func(s *Summary) { s.TimePatterns.HourDistribution = s.TimePatterns.HourDistribution[:23] }},
		{"unknown goal", func(s *Summary) { s.Goals["cooking"] = 1 }},
		{"unknown archetype", func(s *Summary) { s.Archetype = "wizard" }},
		{"negative streak", func(s *Summary) { s.Streaks.Current = -1 }},
		{"negative tool count", func(s *Summary) { s.Tools.Add("Read", -5) }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}
