package schedule

import "time"

const dayKeyLayout = "2006-01-02"

// displayLayout is the dd/MM/yyyy format the admin console shows to staff.
const displayLayout = "02/01/2006"

// DayKey normalizes a timestamp to its local calendar day, formatted
// YYYY-MM-DD. All keying and date comparison in this package goes through
// DayKey so that an entry stored at 23:00 and one stored at 01:00 on the
// same local day land on the same key regardless of the UTC offset.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD string into a local-midnight time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}

// DisplayDate formats a timestamp as dd/MM/yyyy for user-facing messages.
func DisplayDate(t time.Time) string {
	return t.Format(displayLayout)
}

// Midnight truncates a timestamp to local midnight of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Days returns every calendar day from start to end inclusive, each at
// local midnight. The slice is freshly allocated on every call so callers
// can never share a mutated time.Time. An inverted range yields nil.
func Days(start, end time.Time) []time.Time {
	s := Midnight(start)
	e := Midnight(end)
	if s.After(e) {
		return nil
	}
	var days []time.Time
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DaySpan counts inclusive calendar days between start and end.
// Same-day spans count as 1; an inverted range counts as 0.
func DaySpan(start, end time.Time) int {
	return len(Days(start, end))
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
