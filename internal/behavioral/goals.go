package behavioral

import (
	"regexp"
	"strings"
)

// GoalCategory is the fixed set of session goal labels.
type GoalCategory string

const (
	GoalBugFix   GoalCategory = "bug_fix"
	GoalFeature  GoalCategory = "feature"
	GoalRefactor GoalCategory = "refactor"
	GoalDevops   GoalCategory = "devops"
	GoalDocs     GoalCategory = "docs"
	GoalExplore  GoalCategory = "explore"
	GoalTest     GoalCategory = "test"
	GoalOther    GoalCategory = "other"
)

// GoalCategories lists every category in a stable order.
var GoalCategories = []GoalCategory{
	GoalBugFix,
	GoalFeature,
	GoalRefactor,
	GoalDevops,
	GoalDocs,
	GoalExplore,
	GoalTest,
	GoalOther,
}

// IsValid reports whether g is one of the eight categories.
func (g GoalCategory) IsValid() bool {
	for _, c := range GoalCategories {
		if c == g {
			return true
		}
	}
	return false
}

// keywordRules are checked in order; the first match wins.
var keywordRules = []struct {
	category GoalCategory
	pattern  *regexp.Regexp
}{
	{GoalBugFix, regexp.MustCompile(`\b(fix|bug|broken|error|crash|issue|debug)\b`)},
	{GoalFeature, regexp.MustCompile(`\b(add|create|implement|build|new|feature)\b`)},
	{GoalRefactor, regexp.MustCompile(`\b(refactor|clean|reorganize|rename|move)\b`)},
	{GoalDevops, regexp.MustCompile(`\b(deploy|ci|cd|docker|pipeline|infra)\b`)},
	{GoalDocs, regexp.MustCompile(`\b(doc|readme|comment|explain)\b`)},
	{GoalTest, regexp.MustCompile(`\b(test|spec|assert|expect)\b`)},
}

// facetCategoryMap translates facet goal names; unknown names map to other.
var facetCategoryMap = map[string]GoalCategory{
	"code_fix":            GoalBugFix,
	"bug_fix":             GoalBugFix,
	"debugging":           GoalBugFix,
	"feature_development": GoalFeature,
	"new_feature":         GoalFeature,
	"implementation":      GoalFeature,
	"refactoring":         GoalRefactor,
	"code_cleanup":        GoalRefactor,
	"infrastructure":      GoalDevops,
	"deployment":          GoalDevops,
	"ci_cd":               GoalDevops,
	"documentation":       GoalDocs,
	"testing":             GoalTest,
	"file_management":     GoalOther,
	"exploration":         GoalExplore,
	"code_review":         GoalOther,
}

// MapFacetCategory translates a facet goal category name.
func MapFacetCategory(name string) GoalCategory {
	if c, ok := facetCategoryMap[name]; ok {
		return c
	}
	return GoalOther
}

// sessionText joins the lowercased plain-text user messages of a session.
func sessionText(s *Session) string {
	var parts []string
	for _, r := range s.Records {
		if r.Kind != RecordUser {
			continue
		}
		if text, ok := r.PlainText(); ok {
			parts = append(parts, strings.ToLower(text))
		}
	}
	return strings.Join(parts, " ")
}

// ClassifySessionGoal assigns exactly one category to a session: keyword
// rules over user text first, then a tool-usage heuristic.
func ClassifySessionGoal(s *Session) GoalCategory {
	text := sessionText(s)
	for _, rule := range keywordRules {
		if rule.pattern.MatchString(text) {
			return rule.category
		}
	}

	tools := s.ToolCounts()
	readOps := tools.Get("Read") + tools.Get("Grep") + tools.Get("Glob")
	writeOps := tools.Get("Edit") + tools.Get("Write")
	bash := tools.Get("Bash")

	switch {
	case readOps > writeOps*3 && writeOps < 3:
		return GoalExplore
	case bash > readOps && bash > writeOps:
		return GoalDevops
	case writeOps > readOps:
		return GoalFeature
	default:
		return GoalOther
	}
}

// GoalCounts maps each category to a count. All eight keys are present.
type GoalCounts map[GoalCategory]int

// NewGoalCounts returns counts with every category at zero.
func NewGoalCounts() GoalCounts {
	g := make(GoalCounts, len(GoalCategories))
	for _, c := range GoalCategories {
		g[c] = 0
	}
	return g
}

// Total sums all categories.
func (g GoalCounts) Total() int {
	total := 0
	for _, n := range g {
		total += n
	}
	return total
}

// computeGoals sums per-session classifications and facet categories.
// The two sources are added, not deduplicated by session.
func computeGoals(sessions []*Session, facets []Facet) GoalCounts {
	goals := NewGoalCounts()
	for _, s := range sessions {
		goals[ClassifySessionGoal(s)]++
	}
	for _, f := range facets {
		for name, n := range f.GoalCategories {
			goals[MapFacetCategory(name)] += n
		}
	}
	return goals
}
