package behavioral

import (
	"sort"
	"time"
)

// Streaks summarize runs of consecutive active days.
type Streaks struct {
	Current         int `json:"current"`
	Longest         int `json:"longest"`
	TotalActiveDays int `json:"totalActiveDays"`
}

// computeStreaks finds the longest run of consecutive active dates and the
// run ending today. If today is inactive the current run may end yesterday.
func computeStreaks(activeDays map[string]struct{}, now time.Time, loc *time.Location) Streaks {
	if len(activeDays) == 0 {
		return Streaks{}
	}

	numbers := make([]int, 0, len(activeDays))
	for key := range activeDays {
		if n, ok := dayNumber(key); ok {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	longest, running := 1, 1
	for i := 1; i < len(numbers); i++ {
		if numbers[i]-numbers[i-1] == 1 {
			running++
		} else {
			running = 1
		}
		if running > longest {
			longest = running
		}
	}

	today, _ := dayNumber(dayKey(now, loc))
	current := 0
	check := today
	for i := 0; i < len(activeDays)+1; i++ {
		if _, ok := activeDays[dayFromNumber(check)]; ok {
			current++
			check--
		} else if i == 0 {
			check--
		} else {
			break
		}
	}

	return Streaks{
		Current:         current,
		Longest:         longest,
		TotalActiveDays: len(activeDays),
	}
}
