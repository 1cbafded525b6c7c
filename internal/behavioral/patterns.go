package behavioral

import "time"

// TimePatterns are hour-of-day and day-of-week histograms of history entries.
type TimePatterns struct {
	HourDistribution      [24]int
	DayOfWeekDistribution [7]int // 0 = Sunday
	PeakHour              int
	PeakDay               int
}

// computeTimePatterns buckets history entries by local hour and weekday.
func computeTimePatterns(history []HistoryEntry, loc *time.Location) TimePatterns {
	var tp TimePatterns
	for _, h := range history {
		t := h.Time(loc)
		tp.HourDistribution[t.Hour()]++
		tp.DayOfWeekDistribution[int(t.Weekday())]++
	}
	tp.PeakHour = peakIndex(tp.HourDistribution[:])
	tp.PeakDay = peakIndex(tp.DayOfWeekDistribution[:])
	return tp
}

// peakIndex returns the index of the strictly largest bucket, scanning in
// ascending order, so ties go to the lowest index. All-zero gives 0.
func peakIndex(buckets []int) int {
	peak, best := 0, 0
	for i, n := range buckets {
		if n > best {
			peak, best = i, n
		}
	}
	return peak
}

// activeDaySet collects the local dates of history entries and of each
// session's first timestamp.
func activeDaySet(history []HistoryEntry, sessions []*Session, loc *time.Location) map[string]struct{} {
	days := make(map[string]struct{})
	for _, h := range history {
		days[dayKey(h.Time(loc), loc)] = struct{}{}
	}
	for _, s := range sessions {
		if s.First > 0 {
			days[dayKey(time.UnixMilli(s.First), loc)] = struct{}{}
		}
	}
	return days
}
