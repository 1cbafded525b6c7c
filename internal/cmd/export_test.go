package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSONToFile(t *testing.T) {
	dir := newClaudeDir(t)
	out := filepath.Join(t.TempDir(), "reports", "wrapped.json")

	stdout, stderr, err := runCLI(t, "export", "--claude-dir", dir, "--timezone", "UTC", "--format", "json", "--output", out, "--pretty")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Exported json report to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"version\": 1,"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	for _, key := range []string{"version", "stats", "tools", "timePatterns", "projectCount", "goals", "archetype", "highlights", "streaks"} {
		assert.Contains(t, payload, key)
	}
	stats := payload["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["sessions"])
	assert.Equal(t, float64(1), stats["commits"])
}

func TestExportIsDeterministic(t *testing.T) {
	dir := newClaudeDir(t)

	first, _, err := runCLI(t, "export", "--claude-dir", dir, "--timezone", "UTC")
	require.NoError(t, err)
	second, _, err := runCLI(t, "export", "--claude-dir", dir, "--timezone", "UTC")
	require.NoError(t, err)

	// The current streak depends on today's date, so compare everything else.
	assert.Equal(t, stripStreaks(t, first), stripStreaks(t, second))
}

func stripStreaks(t *testing.T, s string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &payload))
	delete(payload, "streaks")
	return payload
}

func TestExportMarkdownToStdout(t *testing.T) {
	dir := newClaudeDir(t)

	stdout, _, err := runCLI(t, "export", "--claude-dir", dir, "--timezone", "UTC", "--format", "md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# Claude Wrapped"))
	assert.Contains(t, stdout, "## Top Tools")
}

func TestExportHTML(t *testing.T) {
	dir := newClaudeDir(t)
	out := filepath.Join(t.TempDir(), "wrapped.html")

	_, _, err := runCLI(t, "export", "--claude-dir", dir, "--format", "html", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<table>")
}

func TestExportFormatFromConfig(t *testing.T) {
	dir := newClaudeDir(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, cfgPath, "export:\n  format: markdown\n")

	stdout, _, err := runCLI(t, "export", "--config", cfgPath, "--claude-dir", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# Claude Wrapped"))

	// An explicit flag beats the config file.
	stdout, _, err = runCLI(t, "export", "--config", cfgPath, "--claude-dir", dir, "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "{"))
}

func TestExportInvalidFormat(t *testing.T) {
	dir := newClaudeDir(t)

	_, _, err := runCLI(t, "export", "--claude-dir", dir, "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
