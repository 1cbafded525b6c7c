package behavioral

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	initialBufferSize = 64 * 1024
	maxLineSize       = 10 * 1024 * 1024
)

// ParseStats counts what a reader kept and dropped.
type ParseStats struct {
	Files     int // files opened
	Records   int // lines or files decoded and kept
	Skipped   int // lines or files dropped as malformed or incomplete
	Truncated int // files cut short by a line over the size limit
}

// Add accumulates other into s.
func (s *ParseStats) Add(other ParseStats) {
	s.Files += other.Files
	s.Records += other.Records
	s.Skipped += other.Skipped
	s.Truncated += other.Truncated
}

// scanLines calls fn for every non-blank line of r. A line longer than
// maxLineSize ends the scan early and is reported through truncated.
func scanLines(r io.Reader, fn func(line []byte)) (truncated bool, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		fn(line)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// ParseHistory reads history log lines from r. Lines that are not JSON
// objects, or that lack a timestamp or session ID, are skipped.
func ParseHistory(r io.Reader) ([]HistoryEntry, ParseStats, error) {
	var stats ParseStats
	entries := make([]HistoryEntry, 0)

	truncated, err := scanLines(r, func(line []byte) {
		var raw struct {
			Display   json.RawMessage `json:"display"`
			Timestamp float64         `json:"timestamp"`
			Project   string          `json:"project"`
			SessionID string          `json:"sessionId"`
		}
		if err := json.Unmarshal(line, &raw); err != nil {
			stats.Skipped++
			return
		}

		// display is optional and kept only in its string form
		var display string
		json.Unmarshal(raw.Display, &display)

		entry := HistoryEntry{
			Display:   display,
			Timestamp: int64(raw.Timestamp),
			Project:   raw.Project,
			SessionID: raw.SessionID,
		}
		if err := entry.Validate(); err != nil {
			stats.Skipped++
			return
		}

		entries = append(entries, entry)
		stats.Records++
	})
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read history: %w", err)
	}
	if truncated {
		stats.Truncated++
	}
	return entries, stats, nil
}

// ParseHistoryFile reads the history log at path.
// A missing file is an empty history, not an error.
func ParseHistoryFile(path string) ([]HistoryEntry, ParseStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []HistoryEntry{}, ParseStats{}, nil
		}
		return nil, ParseStats{}, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	entries, stats, err := ParseHistory(file)
	if err != nil {
		return nil, stats, err
	}
	stats.Files = 1
	return entries, stats, nil
}

// ReconstructSession parses one transcript into a Session. Every line that
// decodes as a JSON object becomes a record regardless of its type tag.
// Returns a nil Session when no line decoded. Timestamp strings without a
// zone are read in loc; a nil loc means UTC.
func ReconstructSession(r io.Reader, sessionID, project string, loc *time.Location) (*Session, ParseStats, error) {
	if loc == nil {
		loc = time.UTC
	}
	var stats ParseStats
	session := &Session{
		ID:      sessionID,
		Project: project,
		Records: make([]TranscriptRecord, 0),
	}

	var first, last int64
	seen := false

	truncated, err := scanLines(r, func(line []byte) {
		record, err := decodeRecord(line, loc)
		if err != nil {
			stats.Skipped++
			return
		}
		stats.Records++
		session.Records = append(session.Records, record)

		if !record.HasTimestamp {
			return
		}
		if !seen || record.Timestamp < first {
			first = record.Timestamp
		}
		if !seen || record.Timestamp > last {
			last = record.Timestamp
		}
		seen = true
	})
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read transcript %s: %w", sessionID, err)
	}
	if truncated {
		stats.Truncated++
	}

	if len(session.Records) == 0 {
		return nil, stats, nil
	}
	if seen {
		session.First = first
		session.Last = last
	}
	return session, stats, nil
}

// ParseTranscriptFile reconstructs the session stored in a discovered file.
func ParseTranscriptFile(tf TranscriptFile, loc *time.Location) (*Session, ParseStats, error) {
	file, err := os.Open(tf.Path)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("failed to open transcript file: %w", err)
	}
	defer file.Close()

	session, stats, err := ReconstructSession(file, tf.SessionID, tf.Project, loc)
	stats.Files = 1
	if err != nil {
		return nil, stats, err
	}
	if session != nil {
		session.Path = tf.Path
	}
	return session, stats, nil
}

// decodeRecord decodes one transcript line. Only a non-object line is an
// error; fields with unexpected shapes are dropped individually.
func decodeRecord(line []byte, loc *time.Location) (TranscriptRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return TranscriptRecord{}, fmt.Errorf("failed to parse record: %w", err)
	}
	if fields == nil {
		return TranscriptRecord{}, errors.New("record is null")
	}

	var record TranscriptRecord
	if raw, ok := fields["type"]; ok {
		var tag string
		if json.Unmarshal(raw, &tag) == nil {
			record.Tag = tag
			record.Kind = kindFromTag(tag)
		}
	}

	if raw, ok := fields["timestamp"]; ok {
		record.Timestamp, record.HasTimestamp = decodeTimestamp(raw, loc)
	}

	if raw, ok := fields["message"]; ok {
		var msg struct {
			Content json.RawMessage `json:"content"`
		}
		if json.Unmarshal(raw, &msg) == nil {
			record.Blocks = decodeContent(msg.Content)
		}
	}

	return record, nil
}

// decodeContent turns message content into blocks. A JSON string becomes a
// single plain TextMessage; an array becomes one block per element.
func decodeContent(raw json.RawMessage) []Block {
	if len(raw) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return []Block{TextMessage{Text: text, Plain: true}}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	blocks := make([]Block, 0, len(elems))
	for _, elem := range elems {
		blocks = append(blocks, decodeBlock(elem))
	}
	return blocks
}

func decodeBlock(raw json.RawMessage) Block {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return OtherBlock{}
	}

	var blockType, name, text string
	json.Unmarshal(fields["type"], &blockType)

	switch blockType {
	case "tool_use":
		json.Unmarshal(fields["name"], &name)
		if name == "" {
			return OtherBlock{Type: blockType}
		}
		var input map[string]any
		json.Unmarshal(fields["input"], &input)
		return ToolInvocation{Name: name, Input: input}
	case "text":
		json.Unmarshal(fields["text"], &text)
		return TextMessage{Text: text}
	default:
		return OtherBlock{Type: blockType}
	}
}

// timestampLayouts are the date string forms accepted for record timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// maxTimestampMillis bounds numeric timestamps to what a float64 holds exactly.
const maxTimestampMillis = 1 << 53

// decodeTimestamp accepts an epoch-millisecond number or a date string.
// Zero, empty, out-of-range and unparseable values report false.
func decodeTimestamp(raw json.RawMessage, loc *time.Location) (int64, bool) {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		if num == 0 || math.IsNaN(num) || math.IsInf(num, 0) || math.Abs(num) > maxTimestampMillis {
			return 0, false
		}
		return int64(num), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return 0, false
	}
	return parseTimestampString(s, loc)
}

// parseTimestampString reads zone-less forms in loc. Date-only forms are
// UTC midnight.
func parseTimestampString(s string, loc *time.Location) (int64, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		in := loc
		if layout == "2006-01-02" {
			in = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, in); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

// ParseFacet decodes one facet annotation. A facet without a session ID is
// rejected.
func ParseFacet(data []byte) (*Facet, error) {
	var facet Facet
	if err := json.Unmarshal(data, &facet); err != nil {
		return nil, fmt.Errorf("failed to parse facet: %w", err)
	}
	if facet.SessionID == "" {
		return nil, errors.New("facet session_id is required")
	}
	return &facet, nil
}

// ParseFacetFiles reads the given facet files in order, skipping any that
// do not decode. A file that cannot be read is an error.
func ParseFacetFiles(paths []string) ([]Facet, ParseStats, error) {
	var stats ParseStats
	facets := make([]Facet, 0, len(paths))

	for _, path := range paths {
		stats.Files++
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read facet file: %w", err)
		}
		facet, err := ParseFacet(data)
		if err != nil {
			stats.Skipped++
			continue
		}
		facets = append(facets, *facet)
		stats.Records++
	}

	return facets, stats, nil
}

// sessionIDFromFilename strips the transcript extension.
func sessionIDFromFilename(name string) string {
	return strings.TrimSuffix(filepath.Base(name), transcriptExt)
}

// ParseFacetDir reads every facet file in dir. A missing directory yields
// no facets.
func ParseFacetDir(dir string) ([]Facet, ParseStats, error) {
	paths, err := DiscoverFacets(dir)
	if err != nil {
		return nil, ParseStats{}, err
	}
	return ParseFacetFiles(paths)
}
