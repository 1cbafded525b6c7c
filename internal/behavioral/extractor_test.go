package behavioral

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu       sync.Mutex
	debug    []string
	warn     []string
	progress []int
}

func (l *recordingLogger) LogDebug(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) LogWarn(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) LogProgress(label string, done, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.progress = append(l.progress, done)
}

// buildClaudeDir lays out a small data directory with every source present.
func buildClaudeDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "history.jsonl"),
		`{"display":"fix tests","timestamp":1736935200000,"project":"/w/api","sessionId":"s1"}
garbage
{"display":"more","timestamp":1736938800000,"project":"/w/api","sessionId":"s1"}
`)

	projects := filepath.Join(root, "projects")
	for i := 0; i < 12; i++ {
		writeFile(t, filepath.Join(projects, "-w-api", fmt.Sprintf("session-%02d.jsonl", i)),
			fmt.Sprintf(`{"type":"user","timestamp":%d,"message":{"content":"hello"}}
{"type":"assistant","timestamp":%d,"message":{"content":[{"type":"tool_use","name":"Read","input":{}}]}}
`, 1736935200000+i*1000, 1736935260000+i*1000))
	}
	writeFile(t, filepath.Join(projects, "-w-web", "0b6f3c2e-8f4a-4c1d-9e2b-7a5d6c4b3a21.jsonl"),
		`{"type":"user","timestamp":"2025-01-15T12:00:00Z","message":{"content":"build a page"}}
`)
	// an all-garbage transcript yields no session
	writeFile(t, filepath.Join(projects, "-w-web", "empty.jsonl"), "not json\n")

	facets := filepath.Join(root, "usage-data", "facets")
	writeFile(t, filepath.Join(facets, "s1.json"), `{"session_id":"s1","goal_categories":{"testing":1}}`)
	writeFile(t, filepath.Join(facets, "broken.json"), `{`)

	return root
}

func TestExtractor_Extract(t *testing.T) {
	root := buildClaudeDir(t)
	log := &recordingLogger{}

	ex := &Extractor{ClaudeDir: root, Workers: 3, Logger: log}
	ds, err := ex.Extract(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.History, 2)
	assert.Equal(t, 1, ds.Stats.History.Skipped)

	require.Len(t, ds.Sessions, 13)
	for i := 0; i < 12; i++ {
		assert.Equal(t, fmt.Sprintf("session-%02d", i), ds.Sessions[i].ID, "discovery order is kept")
		assert.Equal(t, "-w-api", ds.Sessions[i].Project)
	}
	assert.Equal(t, "0b6f3c2e-8f4a-4c1d-9e2b-7a5d6c4b3a21", ds.Sessions[12].ID)
	assert.Equal(t, 14, ds.Stats.Transcripts.Files)
	assert.Equal(t, 1, ds.Stats.Transcripts.Skipped)

	require.Len(t, ds.Facets, 1)
	assert.Equal(t, 1, ds.Stats.Facets.Skipped)

	assert.False(t, ds.Empty())
	assert.Len(t, log.progress, 14)
	assert.Contains(t, log.debug, "13 transcript(s) with non-UUID names (sidechains or agents)")
}

func TestExtractor_MissingSources(t *testing.T) {
	ex := NewExtractor(t.TempDir(), nil)
	ds, err := ex.Extract(context.Background())
	require.NoError(t, err)
	assert.True(t, ds.Empty())
	assert.Empty(t, ds.Sessions)
	assert.Empty(t, ds.History)
	assert.Empty(t, ds.Facets)
}

func TestExtractor_Cancelled(t *testing.T) {
	root := buildClaudeDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor(root, nil).Extract(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractor_UnreadableTranscript(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "projects", "p1", "a.jsonl"), `{"type":"user","timestamp":1000}`+"\n")
	locked := filepath.Join(root, "projects", "p1", "b.jsonl")
	writeFile(t, locked, `{"type":"user","timestamp":2000}`+"\n")
	require.NoError(t, os.Chmod(locked, 0000))

	ds, err := NewExtractor(root, nil).Extract(context.Background())
	require.Error(t, err)
	assert.Nil(t, ds)
	assert.Contains(t, err.Error(), "failed to extract transcripts")
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestExtractor_Location(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "projects", "p1", "a.jsonl"),
		`{"type":"user","timestamp":"2025-01-15T10:00:00","message":{"content":"hello"}}`+"\n")

	ex := NewExtractor(root, nil)
	ex.Location = time.FixedZone("EST", -5*60*60)
	ds, err := ex.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Sessions, 1)
	assert.Equal(t, time.Date(2025, 1, 15, 15, 0, 0, 0, time.UTC).UnixMilli(), ds.Sessions[0].First)
}

func TestExtractor_WorkerCounts(t *testing.T) {
	root := buildClaudeDir(t)

	var baseline []string
	for _, workers := range []int{0, 1, 4, 64} {
		ds, err := (&Extractor{ClaudeDir: root, Workers: workers}).Extract(context.Background())
		require.NoError(t, err)

		ids := make([]string, 0, len(ds.Sessions))
		for _, s := range ds.Sessions {
			ids = append(ids, s.ID)
		}
		if baseline == nil {
			baseline = ids
			continue
		}
		assert.Equal(t, baseline, ids, "workers=%d", workers)
	}
}

func TestDatasetEmpty(t *testing.T) {
	var nilDS *Dataset
	assert.True(t, nilDS.Empty())
	assert.True(t, (&Dataset{}).Empty())
	assert.False(t, (&Dataset{History: []HistoryEntry{{Timestamp: 1, SessionID: "s"}}}).Empty())
	assert.False(t, (&Dataset{Sessions: []*Session{{ID: "s"}}}).Empty())
}
