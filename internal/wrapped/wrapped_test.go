package wrapped

import (
	"time"

	"github.com/harrison/ccwrapped/internal/behavioral"
)

var testNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func msAt(s string) int64 {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UnixMilli()
}

func record(kind behavioral.RecordKind, ts string, blocks ...behavioral.Block) behavioral.TranscriptRecord {
	return behavioral.TranscriptRecord{
		Kind:         kind,
		Timestamp:    msAt(ts),
		HasTimestamp: true,
		Blocks:       blocks,
	}
}

// testDataset is a small two-project dataset spanning two days.
func testDataset() *behavioral.Dataset {
	s1 := &behavioral.Session{
		ID:      "s1",
		Project: "-work-api",
		First:   msAt("2025-03-08T09:00:00Z"),
		Last:    msAt("2025-03-08T09:40:00Z"),
		Records: []behavioral.TranscriptRecord{
			record(behavioral.RecordUser, "2025-03-08T09:00:00Z", behavioral.TextMessage{Text: "fix the flaky test", Plain: true}),
			record(behavioral.RecordAssistant, "2025-03-08T09:20:00Z",
				behavioral.ToolInvocation{Name: "Read", Input: map[string]any{"file_path": "a_test.go"}},
				behavioral.ToolInvocation{Name: "Edit", Input: map[string]any{"new_string": "x\ny"}},
			),
			record(behavioral.RecordAssistant, "2025-03-08T09:40:00Z",
				behavioral.ToolInvocation{Name: "Bash", Input: map[string]any{"command": "git commit -am fix"}},
			),
		},
	}
	s2 := &behavioral.Session{
		ID:      "s2",
		Project: "-work-web|beta",
		First:   msAt("2025-03-09T22:00:00Z"),
		Last:    msAt("2025-03-09T22:20:00Z"),
		Records: []behavioral.TranscriptRecord{
			record(behavioral.RecordUser, "2025-03-09T22:00:00Z", behavioral.TextMessage{Text: "add a login page", Plain: true}),
			record(behavioral.RecordAssistant, "2025-03-09T22:20:00Z",
				behavioral.ToolInvocation{Name: "Write", Input: map[string]any{"content": "<form>"}},
			),
		},
	}

	return &behavioral.Dataset{
		History: []behavioral.HistoryEntry{
			{Display: "fix the flaky test", Timestamp: msAt("2025-03-08T09:00:00Z"), SessionID: "s1"},
			{Display: "add a login page", Timestamp: msAt("2025-03-09T22:00:00Z"), SessionID: "s2"},
			{Display: "thanks", Timestamp: msAt("2025-03-09T22:04:00Z"), SessionID: "s2"},
		},
		Sessions: []*behavioral.Session{s1, s2},
		Facets: []behavioral.Facet{
			{SessionID: "s1", Outcome: "success", FrictionCounts: map[string]int{"wrong_approach": 1}},
		},
	}
}

func testGenerator() *Generator {
	return &Generator{
		Clock:    behavioral.FixedClock{T: testNow},
		Location: time.UTC,
	}
}
