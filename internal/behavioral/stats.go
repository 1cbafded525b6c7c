package behavioral

import (
	"math"
	"regexp"
	"strings"
)

// Stats are the headline totals of a dataset.
type Stats struct {
	Sessions     int     `json:"sessions"`
	Messages     int     `json:"messages"`
	Hours        float64 `json:"hours"`
	Days         int     `json:"days"`
	Commits      int     `json:"commits"`
	LinesChanged int     `json:"linesChanged"`
}

var gitCommitPattern = regexp.MustCompile(`git\s+commit`)

// computeStats derives headline totals. activeDays is the active-day set
// shared with the streak computation.
func computeStats(sessions []*Session, tools *ToolCounts, activeDays map[string]struct{}) Stats {
	ids := make(map[string]struct{}, len(sessions))
	messages := 0
	var hours float64

	for _, s := range sessions {
		ids[s.ID] = struct{}{}
		messages += s.MessageCount()
		if d, ok := s.Duration(); ok {
			hours += d.Hours()
		}
	}

	commits := 0
	if tools.Get("Bash") > 0 {
		commits = countCommits(sessions)
	}

	return Stats{
		Sessions:     len(ids),
		Messages:     messages,
		Hours:        math.Round(hours*10) / 10,
		Days:         len(activeDays),
		Commits:      commits,
		LinesChanged: countLinesChanged(sessions),
	}
}

// countTools tallies named tool invocations in assistant records across
// all sessions, in first-encounter order.
func countTools(sessions []*Session) *ToolCounts {
	tools := NewToolCounts()
	forEachAssistantTool(sessions, func(t ToolInvocation) {
		tools.Add(t.Name, 1)
	})
	return tools
}

// forEachAssistantTool calls fn for every tool invocation in assistant records.
func forEachAssistantTool(sessions []*Session, fn func(ToolInvocation)) {
	for _, s := range sessions {
		for _, r := range s.Records {
			if r.Kind != RecordAssistant {
				continue
			}
			for _, t := range r.Tools() {
				fn(t)
			}
		}
	}
}

// countCommits counts Bash invocations whose command runs git commit.
func countCommits(sessions []*Session) int {
	commits := 0
	forEachAssistantTool(sessions, func(t ToolInvocation) {
		if t.Name == "Bash" && gitCommitPattern.MatchString(t.InputString("command")) {
			commits++
		}
	})
	return commits
}

// countLinesChanged sums the line counts of Edit new_string and Write
// content payloads.
func countLinesChanged(sessions []*Session) int {
	lines := 0
	forEachAssistantTool(sessions, func(t ToolInvocation) {
		if t.Name != "Edit" && t.Name != "Write" {
			return
		}
		text := t.InputString("new_string")
		if _, ok := t.Input["new_string"]; !ok || t.Input["new_string"] == nil {
			text = t.InputString("content")
		}
		if text != "" {
			lines += strings.Count(text, "\n") + 1
		}
	})
	return lines
}
