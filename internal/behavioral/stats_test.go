package behavioral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCommits(t *testing.T) {
	tests := []struct {
		name  string
		tools []ToolInvocation
		want  int
	}{
		{"plain commit", []ToolInvocation{tool("Bash", map[string]any{"command": "git commit -m x"})}, 1},
		{"extra whitespace", []ToolInvocation{tool("Bash", map[string]any{"command": "git   commit --amend"})}, 1},
		{"chained", []ToolInvocation{tool("Bash", map[string]any{"command": "git add . && git commit -m y"})}, 1},
		{"not a commit", []ToolInvocation{tool("Bash", map[string]any{"command": "git status"})}, 0},
		{"other tool", []ToolInvocation{tool("Write", map[string]any{"command": "git commit"})}, 0},
		{"missing command", []ToolInvocation{tool("Bash", nil)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession("s", "p", assistantTools(1, tt.tools...))
			assert.Equal(t, tt.want, countCommits([]*Session{s}))
		})
	}
}

func TestCountLinesChanged(t *testing.T) {
	tests := []struct {
		name  string
		tools []ToolInvocation
		want  int
	}{
		{"edit new_string", []ToolInvocation{tool("Edit", map[string]any{"new_string": "a\nb"})}, 2},
		{"write content", []ToolInvocation{tool("Write", map[string]any{"content": "one line"})}, 1},
		{"trailing newline counts", []ToolInvocation{tool("Write", map[string]any{"content": "a\n"})}, 2},
		{"new_string wins over content", []ToolInvocation{tool("Edit", map[string]any{"new_string": "x", "content": "1\n2\n3"})}, 1},
		{"null new_string falls back", []ToolInvocation{tool("Edit", map[string]any{"new_string": nil, "content": "1\n2"})}, 2},
		{"empty string", []ToolInvocation{tool("Edit", map[string]any{"new_string": ""})}, 0},
		{"read ignored", []ToolInvocation{tool("Read", map[string]any{"content": "a\nb"})}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession("s", "p", assistantTools(1, tt.tools...))
			assert.Equal(t, tt.want, countLinesChanged([]*Session{s}))
		})
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("commits need bash usage", func(t *testing.T) {
		// a commit command on a user record is never counted
		s := newSession("s", "p", TranscriptRecord{
			Kind:   RecordUser,
			Blocks: []Block{tool("Bash", map[string]any{"command": "git commit"})},
		})
		sessions := []*Session{s}
		stats := computeStats(sessions, countTools(sessions), daySet())
		assert.Equal(t, 0, stats.Commits)
	})

	t.Run("overlong sessions count but add no hours", func(t *testing.T) {
		long := newSession("long", "p",
			userText(1_000_000, "start"),
			userText(1_000_000+25*60*60*1000, "end"),
		)
		short := newSession("short", "p",
			userText(1_000_000, "start"),
			userText(1_000_000+6*60*1000, "end"),
		)
		sessions := []*Session{long, short}
		stats := computeStats(sessions, countTools(sessions), daySet("1970-01-01"))
		assert.Equal(t, 2, stats.Sessions)
		assert.Equal(t, 4, stats.Messages)
		assert.Equal(t, 0.1, stats.Hours)
		assert.Equal(t, 1, stats.Days)
	})
}
