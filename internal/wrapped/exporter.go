package wrapped

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/ccwrapped/internal/behavioral"
)

// Exporter renders a Report in one output format.
type Exporter interface {
	Export(r *Report) ([]byte, error)
}

// Supported export formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// NewExporter returns the exporter for format.
func NewExporter(format string, pretty bool) (Exporter, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return &JSONExporter{Pretty: pretty}, nil
	case FormatMarkdown, "md":
		return &MarkdownExporter{}, nil
	case FormatHTML:
		return &HTMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// JSONExporter writes the summary as JSON.
type JSONExporter struct {
	Pretty bool // Enable pretty printing with indentation
}

// Export marshals the report summary.
func (je *JSONExporter) Export(r *Report) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}
	if err := r.Summary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summary: %w", err)
	}

	var data []byte
	var err error
	if je.Pretty {
		data, err = json.MarshalIndent(r.Summary, "", "  ")
	} else {
		data, err = json.Marshal(r.Summary)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// MarkdownExporter writes a human-readable report.
type MarkdownExporter struct {
	IncludeTimestamp bool // Include generation time in header
}

// maxTableRows bounds the tool and project tables.
const maxTableRows = 10

// Export renders the report as Markdown.
func (me *MarkdownExporter) Export(r *Report) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}
	if err := r.Summary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summary: %w", err)
	}

	s := r.Summary
	info := r.Info()
	var sb strings.Builder

	sb.WriteString("# Claude Wrapped\n\n")
	if me.IncludeTimestamp && !r.GeneratedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("**Generated**: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	}

	sb.WriteString(fmt.Sprintf("## %s %s\n\n", info.Emoji, info.Name))
	sb.WriteString(fmt.Sprintf("> %s\n\n", info.ShortDescription))
	sb.WriteString(info.Description + "\n\n")

	sb.WriteString("## Numbers\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Sessions | %s |\n", FormatCount(s.Stats.Sessions)))
	sb.WriteString(fmt.Sprintf("| Messages | %s |\n", FormatCount(s.Stats.Messages)))
	sb.WriteString(fmt.Sprintf("| Hours | %s |\n", FormatHours(s.Stats.Hours)))
	sb.WriteString(fmt.Sprintf("| Active Days | %s |\n", FormatCount(s.Stats.Days)))
	sb.WriteString(fmt.Sprintf("| Commits | %s |\n", FormatCount(s.Stats.Commits)))
	sb.WriteString(fmt.Sprintf("| Lines Changed | %s |\n", FormatCount(s.Stats.LinesChanged)))
	sb.WriteString(fmt.Sprintf("| Projects | %s |\n", FormatCount(s.ProjectCount)))
	sb.WriteString("\n")

	if tools := RankedTools(s.Tools); len(tools) > 0 {
		sb.WriteString("## Top Tools\n\n")
		sb.WriteString("| Tool | Uses |\n")
		sb.WriteString("|------|------|\n")
		for i, name := range tools {
			if i == maxTableRows {
				break
			}
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", cell(name), FormatCount(s.Tools.Get(name))))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Time Patterns\n\n")
	sb.WriteString(fmt.Sprintf("- **Peak Hour**: %s\n", HourLabel(s.TimePatterns.PeakHour)))
	sb.WriteString(fmt.Sprintf("- **Peak Day**: %s\n", DayName(s.TimePatterns.PeakDay)))
	sb.WriteString("\n")
	sb.WriteString("| Day | Messages |\n")
	sb.WriteString("|-----|----------|\n")
	for day, n := range s.TimePatterns.DayOfWeekDistribution {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", DayName(day), FormatCount(n)))
	}
	sb.WriteString("\n")

	if s.Goals.Total() > 0 {
		sb.WriteString("## Goals\n\n")
		sb.WriteString("| Goal | Count |\n")
		sb.WriteString("|------|-------|\n")
		for _, c := range behavioral.GoalCategories {
			if n := s.Goals[c]; n > 0 {
				sb.WriteString(fmt.Sprintf("| %s | %s |\n", cell(string(c)), FormatCount(n)))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Streaks\n\n")
	sb.WriteString(fmt.Sprintf("- **Current Streak**: %d days\n", s.Streaks.Current))
	sb.WriteString(fmt.Sprintf("- **Longest Streak**: %d days\n", s.Streaks.Longest))
	sb.WriteString(fmt.Sprintf("- **Total Active Days**: %d\n", s.Streaks.TotalActiveDays))
	sb.WriteString("\n")

	hl := s.Highlights
	sb.WriteString("## Highlights\n\n")
	sb.WriteString(fmt.Sprintf("- **Busiest Day**: %s (%s messages)\n", FormatDate(hl.BusiestDay), FormatCount(hl.BusiestDayMessages)))
	sb.WriteString(fmt.Sprintf("- **Longest Session**: %d minutes\n", hl.LongestSessionMinutes))
	sb.WriteString(fmt.Sprintf("- **Top Tool**: %s (%s uses)\n", cell(hl.TopToolName), FormatCount(hl.TopToolCount)))
	sb.WriteString(fmt.Sprintf("- **Rarest Tool**: %s\n", cell(hl.RarestTool)))
	sb.WriteString(fmt.Sprintf("- **First Session**: %s\n", FormatDate(hl.FirstSessionDate)))
	sb.WriteString("\n")

	if r.Features != nil && len(r.Features.Projects) > 0 {
		projects := make([]behavioral.ProjectActivity, len(r.Features.Projects))
		copy(projects, r.Features.Projects)
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Messages > projects[j].Messages
		})

		sb.WriteString("## Projects\n\n")
		sb.WriteString("| Project | Sessions | Messages |\n")
		sb.WriteString("|---------|----------|----------|\n")
		for i, p := range projects {
			if i == maxTableRows {
				break
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", cell(p.Name), FormatCount(p.Sessions), FormatCount(p.Messages)))
		}
		sb.WriteString("\n")
	}

	if r.Features != nil {
		writeCountSection(&sb, "Outcomes", "Outcome", r.Features.Outcomes)
		writeCountSection(&sb, "Friction", "Kind", r.Features.Friction)
	}

	return []byte(sb.String()), nil
}

// writeCountSection writes a name/count table sorted by name.
func writeCountSection(sb *strings.Builder, title, column string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	sb.WriteString(fmt.Sprintf("| %s | Count |\n", column))
	sb.WriteString(fmt.Sprintf("|%s|-------|\n", strings.Repeat("-", len(column)+2)))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", cell(name), FormatCount(counts[name])))
	}
	sb.WriteString("\n")
}

// RankedTools orders tool names by count, keeping first-seen order on ties.
func RankedTools(tools *behavioral.ToolCounts) []string {
	names := tools.Names()
	sort.SliceStable(names, func(i, j int) bool {
		return tools.Get(names[i]) > tools.Get(names[j])
	})
	return names
}

// cell renders free text as an inline code span safe inside a table.
func cell(s string) string {
	s = strings.ReplaceAll(s, "`", "'")
	s = strings.ReplaceAll(s, "|", "\\|")
	return "`" + s + "`"
}

// HTMLExporter renders the Markdown report as a standalone HTML page.
type HTMLExporter struct {
	Title string // page title; defaults to "Claude Wrapped"
}

// Export renders the report as HTML.
func (he *HTMLExporter) Export(r *Report) ([]byte, error) {
	md, err := (&MarkdownExporter{}).Export(r)
	if err != nil {
		return nil, err
	}

	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := converter.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	title := he.Title
	if title == "" {
		title = "Claude Wrapped"
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	out.WriteString("<meta charset=\"utf-8\">\n")
	out.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	out.WriteString("<style>body{font-family:system-ui,sans-serif;max-width:760px;margin:2rem auto;padding:0 1rem}" +
		"table{border-collapse:collapse}th,td{border:1px solid #ddd;padding:4px 10px;text-align:left}</style>\n")
	out.WriteString("</head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}
