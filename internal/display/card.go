package display

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harrison/ccwrapped/internal/behavioral"
	"github.com/harrison/ccwrapped/internal/wrapped"
)

const cardTopTools = 5

// PrintSummary prints the wrapped card for a report.
func PrintSummary(w io.Writer, r *wrapped.Report, colored bool) {
	p := newPalette(colored)
	s := r.Summary
	info := r.Info()

	fmt.Fprintf(w, "Found %d sessions and %d history entries.\n\n", r.SessionCount, r.HistoryEntries)

	fmt.Fprintf(w, "%s %s\n", info.Emoji, p.title.Sprint(info.Name))
	fmt.Fprintf(w, "   %s\n\n", info.Description)

	section(w, p, "Numbers")
	row(w, p, "Sessions", wrapped.FormatCount(s.Stats.Sessions))
	row(w, p, "Messages", wrapped.FormatCount(s.Stats.Messages))
	row(w, p, "Hours", wrapped.FormatHours(s.Stats.Hours))
	row(w, p, "Active days", wrapped.FormatCount(s.Stats.Days))
	row(w, p, "Commits", wrapped.FormatCount(s.Stats.Commits))
	row(w, p, "Lines changed", wrapped.FormatCount(s.Stats.LinesChanged))
	row(w, p, "Projects", wrapped.FormatCount(s.ProjectCount))
	fmt.Fprintln(w)

	if tools := wrapped.RankedTools(s.Tools); len(tools) > 0 {
		section(w, p, "Top tools")
		for i, name := range tools {
			if i == cardTopTools {
				break
			}
			row(w, p, name, wrapped.FormatCount(s.Tools.Get(name)))
		}
		fmt.Fprintln(w)
	}

	section(w, p, "Rhythm")
	row(w, p, "Peak hour", wrapped.HourLabel(s.TimePatterns.PeakHour))
	row(w, p, "Peak day", wrapped.DayName(s.TimePatterns.PeakDay))
	row(w, p, "Current streak", plural(s.Streaks.Current, "day"))
	row(w, p, "Longest streak", plural(s.Streaks.Longest, "day"))
	fmt.Fprintln(w)

	section(w, p, "Highlights")
	hl := s.Highlights
	row(w, p, "Busiest day", fmt.Sprintf("%s (%s)", wrapped.FormatDate(hl.BusiestDay), plural(hl.BusiestDayMessages, "prompt")))
	row(w, p, "Longest session", fmt.Sprintf("%d min", hl.LongestSessionMinutes))
	row(w, p, "Favorite tool", toolWithCount(hl.TopToolName, hl.TopToolCount))
	row(w, p, "Rarest tool", hl.RarestTool)
	row(w, p, "First session", wrapped.FormatDate(hl.FirstSessionDate))

	if goals := topGoals(s.Goals); len(goals) > 0 {
		fmt.Fprintln(w)
		section(w, p, "Goals")
		for _, g := range goals {
			row(w, p, string(g), wrapped.FormatCount(s.Goals[g]))
		}
	}
}

// PrintProjects prints per-project activity in first-seen order.
func PrintProjects(w io.Writer, projects []behavioral.ProjectActivity, colored bool) {
	p := newPalette(colored)
	if len(projects) == 0 {
		fmt.Fprintln(w, p.dim.Sprint("No projects found."))
		return
	}

	width := len("Project")
	for _, pr := range projects {
		width = max(width, len(pr.Name))
	}

	fmt.Fprintf(w, "%s  %8s  %8s\n", p.label.Sprint(pad("Project", width)), "Sessions", "Messages")
	for _, pr := range projects {
		fmt.Fprintf(w, "%s  %8s  %8s\n", pad(pr.Name, width), wrapped.FormatCount(pr.Sessions), wrapped.FormatCount(pr.Messages))
	}
}

func section(w io.Writer, p palette, title string) {
	fmt.Fprintln(w, p.label.Sprint(strings.ToUpper(title)))
}

func row(w io.Writer, p palette, label, value string) {
	fmt.Fprintf(w, "  %-16s %s\n", label, p.value.Sprint(value))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%s %ss", wrapped.FormatCount(n), unit)
}

func toolWithCount(name string, count int) string {
	if name == behavioral.NoTool {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, wrapped.FormatCount(count))
}

// topGoals lists non-zero goal categories by count, in category order on ties.
func topGoals(goals behavioral.GoalCounts) []behavioral.GoalCategory {
	var out []behavioral.GoalCategory
	for _, c := range behavioral.GoalCategories {
		if goals[c] > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return goals[out[i]] > goals[out[j]]
	})
	return out
}
