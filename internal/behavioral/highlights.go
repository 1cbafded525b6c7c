package behavioral

import (
	"math"
	"sort"
	"time"
)

// NoTool names the top and rarest tool when no tool was used.
const NoTool = "None"

// Highlights are the standout facts of a dataset.
type Highlights struct {
	BusiestDay            string `json:"busiestDay"`
	BusiestDayMessages    int    `json:"busiestDayMessages"`
	LongestStreak         int    `json:"longestStreak"`
	LongestSessionMinutes int    `json:"longestSessionMinutes"`
	RarestTool            string `json:"rarestTool"`
	FirstSessionDate      string `json:"firstSessionDate"`
	TopToolName           string `json:"topToolName"`
	TopToolCount          int    `json:"topToolCount"`
}

func computeHighlights(ds *Dataset, tools *ToolCounts, streaks Streaks, now time.Time, loc *time.Location) Highlights {
	today := dayKey(now, loc)
	hl := Highlights{
		BusiestDay:    today,
		LongestStreak: streaks.Longest,
		TopToolName:   NoTool,
		RarestTool:    NoTool,
	}

	perDay := make(map[string]int)
	for _, h := range ds.History {
		perDay[dayKey(h.Time(loc), loc)]++
	}
	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if perDay[day] > hl.BusiestDayMessages {
			hl.BusiestDay = day
			hl.BusiestDayMessages = perDay[day]
		}
	}

	for _, s := range ds.Sessions {
		d, ok := s.Duration()
		if !ok {
			continue
		}
		if mins := d.Minutes(); mins > float64(hl.LongestSessionMinutes) {
			hl.LongestSessionMinutes = int(math.Round(mins))
		}
	}

	if name, count, ok := tools.Top(); ok {
		hl.TopToolName, hl.TopToolCount = name, count
	}
	if name, _, ok := tools.Rarest(); ok {
		hl.RarestTool = name
	}

	hl.FirstSessionDate = today
	var first int64
	for _, s := range ds.Sessions {
		if s.First > 0 && (first == 0 || s.First < first) {
			first = s.First
		}
	}
	if first > 0 {
		hl.FirstSessionDate = dayKey(time.UnixMilli(first), loc)
	}

	return hl
}
