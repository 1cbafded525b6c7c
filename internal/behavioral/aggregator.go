package behavioral

import "time"

// Features is everything derived from a Dataset that the summary and the
// archetype classifier consume.
type Features struct {
	Stats        Stats
	Tools        *ToolCounts
	TimePatterns TimePatterns
	Goals        GoalCounts
	Streaks      Streaks
	Highlights   Highlights
	ProjectCount int
	Projects     []ProjectActivity

	// Totals over facet annotations; informational only.
	Outcomes map[string]int
	Friction map[string]int
}

// Aggregate computes Features from ds. All calendar derivations use loc and
// "today" comes from clock. It does no I/O.
func Aggregate(ds *Dataset, clock Clock, loc *time.Location) *Features {
	if ds == nil {
		ds = &Dataset{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	now := clock.Now()

	tools := countTools(ds.Sessions)
	activeDays := activeDaySet(ds.History, ds.Sessions, loc)
	streaks := computeStreaks(activeDays, now, loc)
	projects := computeProjects(ds.Sessions)

	f := &Features{
		Stats:        computeStats(ds.Sessions, tools, activeDays),
		Tools:        tools,
		TimePatterns: computeTimePatterns(ds.History, loc),
		Goals:        computeGoals(ds.Sessions, ds.Facets),
		Streaks:      streaks,
		Highlights:   computeHighlights(ds, tools, streaks, now, loc),
		ProjectCount: len(projects),
		Projects:     projects,
		Outcomes:     make(map[string]int),
		Friction:     make(map[string]int),
	}

	for _, facet := range ds.Facets {
		if facet.Outcome != "" {
			f.Outcomes[facet.Outcome]++
		}
		for name, n := range facet.FrictionCounts {
			f.Friction[name] += n
		}
	}

	return f
}
