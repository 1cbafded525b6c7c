package archetype

import (
	"math"

	"github.com/harrison/ccwrapped/internal/behavioral"
)

// Input is what the scorers see. Sessions are needed for per-session ratios
// the aggregate does not carry.
type Input struct {
	Features *behavioral.Features
	Sessions []*behavioral.Session
}

// Scorer computes one archetype's score.
type Scorer struct {
	Label Label
	Score func(Input) float64
}

// Score is a computed scorer result.
type Score struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Scorers is evaluated in order; earlier entries win ties.
var Scorers = []Scorer{
	{LabelNightOwl, scoreNightOwl},
	{LabelMarathoner, scoreMarathoner},
	{LabelSprinter, scoreSprinter},
	{LabelBugHunter, scoreBugHunter},
	{LabelBuilder, scoreBuilder},
	{LabelToolMaster, scoreToolMaster},
	{LabelDelegator, scoreDelegator},
	{LabelStreakMaster, scoreStreakMaster},
	{LabelPolyglot, scorePolyglot},
	{LabelDeepDiver, scoreDeepDiver},
	{LabelExplorer, scoreExplorer},
	{LabelPairProgrammer, scorePairProgrammer},
}

// ScoreAll runs every scorer in evaluation order.
func ScoreAll(in Input) []Score {
	if in.Features == nil {
		in.Features = behavioral.Aggregate(nil, nil, nil)
	}
	scores := make([]Score, 0, len(Scorers))
	for _, s := range Scorers {
		v := s.Score(in)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		scores = append(scores, Score{Label: s.Label, Score: v})
	}
	return scores
}

// Classify returns the label with the strictly highest score.
func Classify(in Input) Label {
	return Best(ScoreAll(in))
}

// Best returns the label with the highest score. The earliest entry wins
// ties and an empty list gives LabelNightOwl.
func Best(scores []Score) Label {
	best := LabelNightOwl
	bestScore := math.Inf(-1)
	for _, s := range scores {
		if s.Score > bestScore {
			best, bestScore = s.Label, s.Score
		}
	}
	return best
}

// sessionMinutes returns the qualifying session durations in minutes.
func sessionMinutes(sessions []*behavioral.Session) []float64 {
	mins := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		if d, ok := s.Duration(); ok {
			mins = append(mins, d.Minutes())
		}
	}
	return mins
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// goalRatio is the share of all goals taken by category.
func goalRatio(f *behavioral.Features, category behavioral.GoalCategory) (float64, bool) {
	total := f.Goals.Total()
	if total == 0 {
		return 0, false
	}
	return float64(f.Goals[category]) / float64(total), true
}

// Night-activity share of history entries, hours 22-23 and 0-4.
func scoreNightOwl(in Input) float64 {
	night, total := 0, 0
	for h, n := range in.Features.TimePatterns.HourDistribution {
		total += n
		if h >= 22 || h <= 4 {
			night += n
		}
	}
	if total == 0 {
		return 0
	}
	ratio := float64(night) / float64(total)
	if ratio > 0.4 {
		return 90 + ratio*10
	}
	return ratio * 200
}

// Average session of 45+ minutes and a longest session of 3+ hours.
func scoreMarathoner(in Input) float64 {
	mins := sessionMinutes(in.Sessions)
	if len(mins) == 0 {
		return 0
	}
	avg := mean(mins)
	longest := 0.0
	for _, m := range mins {
		longest = math.Max(longest, m)
	}

	score := 0.0
	if avg > 45 {
		score += 60
	} else {
		score += avg / 45 * 60
	}
	if longest > 180 {
		score += 40
	} else {
		score += longest / 180 * 40
	}
	return score
}

// Many sessions that are short on average.
func scoreSprinter(in Input) float64 {
	mins := sessionMinutes(in.Sessions)
	if len(mins) == 0 {
		return 0
	}
	avg := mean(mins)
	sessions := float64(in.Features.Stats.Sessions)

	score := 0.0
	if sessions > 100 {
		score += 50
	} else {
		score += sessions / 100 * 50
	}
	switch {
	case avg < 10:
		score += 50
	case avg < 20:
		score += 30
	default:
		score += math.Max(0, 20-avg) * 2
	}
	return score
}

func scoreBugHunter(in Input) float64 {
	ratio, ok := goalRatio(in.Features, behavioral.GoalBugFix)
	if !ok {
		return 0
	}
	if ratio > 0.4 {
		return 80 + ratio*20
	}
	return ratio * 200
}

func scoreBuilder(in Input) float64 {
	ratio, ok := goalRatio(in.Features, behavioral.GoalFeature)
	if !ok {
		return 0
	}
	if ratio > 0.4 {
		return 80 + ratio*20
	}
	return ratio * 200
}

// Number of distinct tools used, 15 or more saturates.
func scoreToolMaster(in Input) float64 {
	distinct := in.Features.Tools.Len()
	if distinct >= 15 {
		return 90 + math.Min(float64(distinct-15), 10)
	}
	return float64(distinct) / 15 * 90
}

// Task tool volume and share of all tool calls, capped at 100.
func scoreDelegator(in Input) float64 {
	total := in.Features.Tools.Total()
	if total == 0 {
		return 0
	}
	task := float64(in.Features.Tools.Get("Task"))
	ratio := task / float64(total)

	score := 0.0
	if task > 50 {
		score += 50
	} else {
		score += task / 50 * 50
	}
	score += ratio * 200
	return math.Min(score, 100)
}

func scoreStreakMaster(in Input) float64 {
	longest := in.Features.Streaks.Longest
	if longest >= 14 {
		return 80 + math.Min(float64(longest-14)*2, 20)
	}
	return float64(longest) / 14 * 80
}

func scorePolyglot(in Input) float64 {
	projects := in.Features.ProjectCount
	if projects >= 5 {
		return 80 + math.Min(float64(projects-5)*4, 20)
	}
	return float64(projects) / 5 * 80
}

// Share of messages that landed in the busiest project.
func scoreDeepDiver(in Input) float64 {
	perProject := make(map[string]int)
	for _, s := range in.Sessions {
		if s.Project == "" {
			continue
		}
		perProject[s.Project] += s.MessageCount()
	}
	if len(perProject) == 0 {
		return 0
	}

	total, most := 0, 0
	for _, n := range perProject {
		total += n
		if n > most {
			most = n
		}
	}
	if total == 0 {
		return 0
	}
	ratio := float64(most) / float64(total)
	if ratio > 0.8 {
		return 80 + ratio*20
	}
	return ratio * 100
}

// Read-side tool share, plus a bonus for many short sessions.
func scoreExplorer(in Input) float64 {
	tools := in.Features.Tools
	readOps := tools.Get("Read") + tools.Get("Grep") + tools.Get("Glob")
	writeOps := tools.Get("Edit") + tools.Get("Write")
	if readOps+writeOps == 0 {
		return 0
	}
	score := float64(readOps) / float64(readOps+writeOps) * 80

	mins := sessionMinutes(in.Sessions)
	if len(mins) > 50 && mean(mins) < 15 {
		score += 20
	}
	return score
}

// Messages per session and how balanced user and assistant turns are.
func scorePairProgrammer(in Input) float64 {
	if len(in.Sessions) == 0 {
		return 0
	}
	users, assistants := 0, 0
	for _, s := range in.Sessions {
		users += s.CountKind(behavioral.RecordUser)
		assistants += s.CountKind(behavioral.RecordAssistant)
	}

	perSession := float64(users+assistants) / float64(len(in.Sessions))
	score := 0.0
	if perSession > 20 {
		score += 60
	} else {
		score += perSession / 20 * 60
	}
	if users > 0 && assistants > 0 {
		lo, hi := math.Min(float64(users), float64(assistants)), math.Max(float64(users), float64(assistants))
		score += lo / hi * 40
	}
	return score
}
