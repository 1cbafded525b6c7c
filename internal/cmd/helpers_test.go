package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testHistory = `{"display":"fix the login bug","timestamp":1741600800000,"project":"/work/api","sessionId":"s1"}
{"display":"add an export feature","timestamp":1741604400000,"project":"/work/api","sessionId":"s1"}
`
	testTranscript = `{"type":"user","timestamp":"2025-03-10T10:00:00Z","message":{"role":"user","content":"fix the login bug"}}
{"type":"assistant","timestamp":"2025-03-10T10:05:00Z","message":{"role":"assistant","content":[{"type":"tool_use","name":"Bash","input":{"command":"git commit -m fix"}}]}}
{"type":"user","timestamp":"2025-03-10T10:30:00Z","message":{"role":"user","content":"thanks"}}
`
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newClaudeDir builds a data directory with one transcript and two prompts.
func newClaudeDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "claude")
	writeFile(t, filepath.Join(dir, "history.jsonl"), testHistory)
	writeFile(t, filepath.Join(dir, "projects", "-work-api", "s1.jsonl"), testTranscript)
	return dir
}

// runCLI executes the root command with an isolated home and config file.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CCWRAPPED_HOME", t.TempDir())

	root := NewRootCommand()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
