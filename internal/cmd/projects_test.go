package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsCommand(t *testing.T) {
	dir := newClaudeDir(t)
	writeFile(t, filepath.Join(dir, "projects", "-work-web", "s2.jsonl"),
		`{"type":"user","timestamp":"2025-03-11T10:00:00Z","message":{"role":"user","content":"write docs"}}`+"\n")

	stdout, _, err := runCLI(t, "projects", "--claude-dir", dir)
	require.NoError(t, err)

	out := lines(stdout)
	require.Len(t, out, 3)
	assert.Equal(t, "Project    Sessions  Messages", out[0])
	assert.Equal(t, "-work-api         1         3", out[1])
	assert.Equal(t, "-work-web         1         1", out[2])
}
