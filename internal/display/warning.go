package display

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows the warning, in yellow when out is a terminal
func (w Warning) Display(out io.Writer) {
	w.DisplayColor(out, ColorEnabled(out))
}

// DisplayColor shows the warning with color forced on or off
func (w Warning) DisplayColor(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Expected file:\n")
		} else {
			b.WriteString("    Expected files:\n")
		}
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, newPalette(colored).warn.Sprint(b.String()))
}

// NoDataWarning explains where session data was looked for.
func NoDataWarning(claudeDir string) Warning {
	return Warning{
		Title:   "No session data found",
		Message: fmt.Sprintf("Nothing to summarize in %s", claudeDir),
		Files: []string{
			filepath.Join(claudeDir, "history.jsonl"),
			filepath.Join(claudeDir, "projects", "<project>", "<session>.jsonl"),
		},
		Suggestion: "Pass --claude-dir or set CLAUDE_CONFIG_DIR if your data lives elsewhere",
	}
}
