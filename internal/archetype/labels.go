package archetype

import "fmt"

// Label identifies an archetype.
type Label string

const (
	LabelNightOwl       Label = "night_owl"
	LabelMarathoner     Label = "marathoner"
	LabelSprinter       Label = "sprinter"
	LabelBugHunter      Label = "bug_hunter"
	LabelBuilder        Label = "builder"
	LabelToolMaster     Label = "tool_master"
	LabelDelegator      Label = "delegator"
	LabelStreakMaster   Label = "streak_master"
	LabelPolyglot       Label = "polyglot"
	LabelDeepDiver      Label = "deep_diver"
	LabelExplorer       Label = "explorer"
	LabelPairProgrammer Label = "pair_programmer"
)

// Labels lists every archetype in evaluation order.
var Labels = []Label{
	LabelNightOwl,
	LabelMarathoner,
	LabelSprinter,
	LabelBugHunter,
	LabelBuilder,
	LabelToolMaster,
	LabelDelegator,
	LabelStreakMaster,
	LabelPolyglot,
	LabelDeepDiver,
	LabelExplorer,
	LabelPairProgrammer,
}

// ParseLabel validates s as an archetype label.
func ParseLabel(s string) (Label, error) {
	for _, l := range Labels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown archetype: %q", s)
}

// Info is the display metadata for an archetype.
type Info struct {
	Name             string `json:"name"`
	Emoji            string `json:"emoji"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
}

// Catalog holds display metadata for every label.
var Catalog = map[Label]Info{
	LabelNightOwl: {
		Name:             "The Night Owl",
		Emoji:            "🦉",
		Description:      "While the world sleeps, you code. Over 40% of your sessions happen between 10pm and 4am.",
		ShortDescription: "Codes when the world sleeps",
	},
	LabelMarathoner: {
		Name:             "The Marathoner",
		Emoji:            "🏃",
		Description:      "You don't do short sessions. Your average session is 45+ minutes, with deep dives lasting hours.",
		ShortDescription: "Long sessions, deep focus",
	},
	LabelSprinter: {
		Name:             "The Sprinter",
		Emoji:            "⚡",
		Description:      "Quick in, quick out. 100+ sessions averaging under 10 minutes each. Efficiency is your superpower.",
		ShortDescription: "Fast, focused, frequent",
	},
	LabelBugHunter: {
		Name:             "The Bug Hunter",
		Emoji:            "🐛",
		Description:      "You have a nose for bugs. Over 40% of your sessions are dedicated to fixing and debugging.",
		ShortDescription: "Born to debug",
	},
	LabelBuilder: {
		Name:             "The Builder",
		Emoji:            "🏗️",
		Description:      "You ship features. Over 40% of your sessions are about creating something new.",
		ShortDescription: "Always building something new",
	},
	LabelToolMaster: {
		Name:             "The Tool Master",
		Emoji:            "🛠️",
		Description:      "You've used 15+ distinct tools. From Bash to LSP to Task agents, full toolkit mastery.",
		ShortDescription: "Masters every tool available",
	},
	LabelDelegator: {
		Name:             "The Delegator",
		Emoji:            "👔",
		Description:      "You know how to delegate. Heavy Task and subagent usage shows you think in orchestration.",
		ShortDescription: "Orchestrates, doesn't just execute",
	},
	LabelStreakMaster: {
		Name:             "The Streak Master",
		Emoji:            "🔥",
		Description:      "Consistency is your game. A 14+ day usage streak makes Claude part of your daily routine.",
		ShortDescription: "Unstoppable daily consistency",
	},
	LabelPolyglot: {
		Name:             "The Polyglot",
		Emoji:            "🌐",
		Description:      "You work across 5+ projects with substantial usage in each. Variety keeps things interesting.",
		ShortDescription: "Works across many projects",
	},
	LabelDeepDiver: {
		Name:             "The Deep Diver",
		Emoji:            "🤿",
		Description:      "80%+ of your messages are in a single project. Total commitment to one codebase.",
		ShortDescription: "Goes deep, not wide",
	},
	LabelExplorer: {
		Name:             "The Explorer",
		Emoji:            "🔍",
		Description:      "Heavy grep, glob, and read usage with many short sessions. Constantly navigating codebases.",
		ShortDescription: "Always exploring and understanding",
	},
	LabelPairProgrammer: {
		Name:             "The Pair Programmer",
		Emoji:            "👥",
		Description:      "High messages per session with lots of back-and-forth. Claude is your true collaborator.",
		ShortDescription: "Claude is your coding partner",
	},
}

// Lookup returns the display metadata for l.
func Lookup(l Label) (Info, bool) {
	info, ok := Catalog[l]
	return info, ok
}
