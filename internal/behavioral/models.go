package behavioral

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// HistoryEntry is one line of the flat history log (history.jsonl).
type HistoryEntry struct {
	Display   string `json:"display"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Project   string `json:"project"`
	SessionID string `json:"sessionId"`
}

// Time returns the entry timestamp as a time.Time in loc.
func (h HistoryEntry) Time(loc *time.Location) time.Time {
	return time.UnixMilli(h.Timestamp).In(loc)
}

// Validate checks the fields required for an entry to be kept
func (h HistoryEntry) Validate() error {
	if h.Timestamp == 0 {
		return errors.New("timestamp is required")
	}
	if h.SessionID == "" {
		return errors.New("session ID is required")
	}
	return nil
}

// RecordKind classifies a transcript record by its type tag.
type RecordKind int

const (
	// RecordOther covers summaries, snapshots and any unknown tag
	RecordOther RecordKind = iota
	// RecordUser is a user-authored record
	RecordUser
	// RecordAssistant is an assistant-authored record
	RecordAssistant
)

// String returns the type tag for the kind
func (k RecordKind) String() string {
	switch k {
	case RecordUser:
		return "user"
	case RecordAssistant:
		return "assistant"
	default:
		return "other"
	}
}

func kindFromTag(tag string) RecordKind {
	switch tag {
	case "user":
		return RecordUser
	case "assistant":
		return RecordAssistant
	default:
		return RecordOther
	}
}

// Block is one element of a record's message content.
// It is one of TextMessage, ToolInvocation or OtherBlock.
type Block interface {
	isBlock()
}

// TextMessage is textual content. Plain is set when the message content was
// a bare string rather than a list of typed blocks.
type TextMessage struct {
	Text  string
	Plain bool
}

// ToolInvocation is a named tool call with its structured input.
type ToolInvocation struct {
	Name  string
	Input map[string]any
}

// OtherBlock is any content block that is neither text nor a named tool call
// (tool results, images, thinking, unnamed tool_use).
type OtherBlock struct {
	Type string
}

func (TextMessage) isBlock()    {}
func (ToolInvocation) isBlock() {}
func (OtherBlock) isBlock()     {}

// InputString returns the input value for key rendered as a string.
// Missing or null values give "".
func (t ToolInvocation) InputString(key string) string {
	v, ok := t.Input[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// TranscriptRecord is one parsed line of a session transcript.
type TranscriptRecord struct {
	Kind         RecordKind
	Tag          string // raw type tag, "" when absent
	Timestamp    int64  // epoch milliseconds, valid when HasTimestamp
	HasTimestamp bool
	Blocks       []Block
}

// Tools returns the tool invocations carried by the record.
func (r TranscriptRecord) Tools() []ToolInvocation {
	var tools []ToolInvocation
	for _, b := range r.Blocks {
		if t, ok := b.(ToolInvocation); ok {
			tools = append(tools, t)
		}
	}
	return tools
}

// PlainText returns the record text when its content was a bare string.
func (r TranscriptRecord) PlainText() (string, bool) {
	for _, b := range r.Blocks {
		if t, ok := b.(TextMessage); ok && t.Plain {
			return t.Text, true
		}
	}
	return "", false
}

// Session is one reconstructed transcript file.
type Session struct {
	ID      string
	Project string
	Path    string
	Records []TranscriptRecord
	First   int64 // earliest record timestamp (ms), 0 when none
	Last    int64 // latest record timestamp (ms), 0 when none
}

// maxSessionDuration bounds the durations treated as one continuous sitting.
const maxSessionDuration = 24 * time.Hour

// Duration returns the session span and whether it qualifies for duration
// statistics: both bounds present and 0 < span < 24h.
func (s *Session) Duration() (time.Duration, bool) {
	if s.First == 0 || s.Last == 0 {
		return 0, false
	}
	d := time.Duration(s.Last-s.First) * time.Millisecond
	if d <= 0 || d >= maxSessionDuration {
		return 0, false
	}
	return d, true
}

// CountKind returns how many records have the given kind.
func (s *Session) CountKind(kind RecordKind) int {
	n := 0
	for _, r := range s.Records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// MessageCount returns user plus assistant records.
func (s *Session) MessageCount() int {
	return s.CountKind(RecordUser) + s.CountKind(RecordAssistant)
}

// ToolCounts counts named tool invocations in assistant records.
func (s *Session) ToolCounts() *ToolCounts {
	tc := NewToolCounts()
	for _, r := range s.Records {
		if r.Kind != RecordAssistant {
			continue
		}
		for _, t := range r.Tools() {
			tc.Add(t.Name, 1)
		}
	}
	return tc
}

// Validate checks session invariants
func (s *Session) Validate() error {
	if s.ID == "" {
		return errors.New("session ID is required")
	}
	if len(s.Records) == 0 {
		return errors.New("session has no records")
	}
	if s.First > s.Last {
		return fmt.Errorf("first timestamp %d after last %d", s.First, s.Last)
	}
	return nil
}

// Facet is an optional per-session annotation file.
type Facet struct {
	SessionID      string         `json:"session_id"`
	GoalCategories map[string]int `json:"goal_categories,omitempty"`
	Outcome        string         `json:"outcome,omitempty"`
	FrictionCounts map[string]int `json:"friction_counts,omitempty"`
	SessionType    string         `json:"session_type,omitempty"`
}

// ToolCounts is a tool-name to count mapping that remembers the order in
// which names were first seen.
type ToolCounts struct {
	names  []string
	counts map[string]int
}

// NewToolCounts creates an empty ToolCounts
func NewToolCounts() *ToolCounts {
	return &ToolCounts{counts: make(map[string]int)}
}

// Add increments name by n, registering it on first sight.
func (tc *ToolCounts) Add(name string, n int) {
	if _, ok := tc.counts[name]; !ok {
		tc.names = append(tc.names, name)
	}
	tc.counts[name] += n
}

// Get returns the count for name (0 when unseen).
func (tc *ToolCounts) Get(name string) int {
	if tc == nil {
		return 0
	}
	return tc.counts[name]
}

// Len returns the number of distinct tools.
func (tc *ToolCounts) Len() int {
	if tc == nil {
		return 0
	}
	return len(tc.names)
}

// Total returns the sum of all counts.
func (tc *ToolCounts) Total() int {
	total := 0
	if tc == nil {
		return total
	}
	for _, n := range tc.counts {
		total += n
	}
	return total
}

// Names returns tool names in first-seen order.
func (tc *ToolCounts) Names() []string {
	if tc == nil {
		return nil
	}
	out := make([]string, len(tc.names))
	copy(out, tc.names)
	return out
}

// Top returns the most used tool. Ties go to the first-seen name.
// ok is false when no tool was used.
func (tc *ToolCounts) Top() (name string, count int, ok bool) {
	for _, n := range tc.Names() {
		if c := tc.counts[n]; !ok || c > count {
			name, count, ok = n, c, true
		}
	}
	return name, count, ok
}

// Rarest returns the least used tool. Ties go to the first-seen name.
func (tc *ToolCounts) Rarest() (name string, count int, ok bool) {
	for _, n := range tc.Names() {
		if c := tc.counts[n]; !ok || c < count {
			name, count, ok = n, c, true
		}
	}
	return name, count, ok
}

// MarshalJSON encodes the counts as a JSON object in first-seen order.
func (tc *ToolCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range tc.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", tc.counts[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
