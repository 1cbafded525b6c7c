package behavioral

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeakIndex(t *testing.T) {
	tests := []struct {
		name    string
		buckets []int
		want    int
	}{
		{"all zero", []int{0, 0, 0}, 0},
		{"single max", []int{1, 5, 2}, 1},
		{"tie goes to lowest index", []int{0, 4, 1, 4}, 1},
		{"last bucket", []int{0, 0, 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, peakIndex(tt.buckets))
		})
	}
}

func TestComputeTimePatterns(t *testing.T) {
	at := func(s string) HistoryEntry {
		ts, _ := time.Parse(time.RFC3339, s)
		return HistoryEntry{Timestamp: ts.UnixMilli(), SessionID: "s"}
	}

	history := []HistoryEntry{
		at("2025-01-06T03:00:00Z"), // Monday
		at("2025-01-06T15:00:00Z"),
		at("2025-01-07T03:30:00Z"), // Tuesday
		at("2025-01-07T15:10:00Z"),
	}

	tp := computeTimePatterns(history, time.UTC)
	assert.Equal(t, 2, tp.HourDistribution[3])
	assert.Equal(t, 2, tp.HourDistribution[15])
	assert.Equal(t, 3, tp.PeakHour)
	assert.Equal(t, 2, tp.DayOfWeekDistribution[1])
	assert.Equal(t, 2, tp.DayOfWeekDistribution[2])
	assert.Equal(t, 1, tp.PeakDay)

	sum := 0
	for _, n := range tp.HourDistribution {
		sum += n
	}
	assert.Equal(t, len(history), sum)
}

func TestActiveDaySet(t *testing.T) {
	history := []HistoryEntry{
		{Timestamp: time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC).UnixMilli(), SessionID: "s"},
	}
	sessions := []*Session{
		{ID: "a", First: time.Date(2025, 1, 6, 11, 0, 0, 0, time.UTC).UnixMilli()},
		{ID: "b", First: time.Date(2025, 1, 8, 11, 0, 0, 0, time.UTC).UnixMilli()},
		{ID: "c"},
	}

	days := activeDaySet(history, sessions, time.UTC)
	assert.Equal(t, daySet("2025-01-06", "2025-01-08"), days)
}
