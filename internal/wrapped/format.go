package wrapped

import (
	"fmt"
	"math"
	"time"
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatHours renders a duration in hours: minutes below one hour, one
// decimal below 100 hours, whole hours above.
func FormatHours(hours float64) string {
	switch {
	case hours < 1:
		return fmt.Sprintf("%dm", int(math.Round(hours*60)))
	case hours < 100:
		return fmt.Sprintf("%.1fh", hours)
	default:
		return FormatCount(int(math.Round(hours))) + "h"
	}
}

// DayName returns the short weekday name for 0 (Sunday) through 6.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return "Unknown"
	}
	return dayNames[day]
}

// HourLabel renders an hour of the day on a 12-hour clock, e.g. 12am, 3pm.
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour == 12:
		return "12pm"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

// FormatCount renders a count with thousands separators.
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatDate renders a 2006-01-02 date key as "Jan 2, 2006". Keys that do
// not parse are returned unchanged.
func FormatDate(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2, 2006")
}
