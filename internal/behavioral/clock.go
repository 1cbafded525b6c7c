package behavioral

import "time"

// Clock supplies "now" for streaks and date defaults.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.T
}

// dateLayout is the calendar-day key format.
const dateLayout = "2006-01-02"

// dayKey returns the calendar date of t in loc.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// dayNumber converts a date key to days since the Unix epoch. Working on
// civil dates keeps daylight-saving shifts out of day arithmetic.
func dayNumber(key string) (int, bool) {
	t, err := time.ParseInLocation(dateLayout, key, time.UTC)
	if err != nil {
		return 0, false
	}
	return int(t.Unix() / 86400), true
}

// dayFromNumber is the inverse of dayNumber.
func dayFromNumber(n int) string {
	return time.Unix(int64(n)*86400, 0).UTC().Format(dateLayout)
}
