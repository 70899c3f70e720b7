package schedule

import (
	"sort"
	"time"
)

// Decision is the duplicate guard's verdict on a creation request.
type Decision int

const (
	// Proceed means no collisions were found.
	Proceed Decision = iota
	// Block means submission must stop; single-day collisions are hard
	// errors because the backend would reject the duplicate anyway.
	Block
	// Confirm means the caller must get an explicit yes from the user
	// before submitting; the backend skips already-existing pairs and
	// reports how many it skipped, so week collisions only inform.
	Confirm
)

// FindCollisions returns the display-formatted dates (dd/MM/yyyy) of
// entries whose local calendar day falls within [from, to] inclusive.
// Dates are de-duplicated and sorted chronologically.
func FindCollisions(entries []Entry, from, to time.Time) []string {
	start := Midnight(from)
	end := Midnight(to)

	seen := make(map[string]time.Time)
	for _, e := range entries {
		d := Midnight(e.WorkDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		seen[DayKey(d)] = d
	}
	if len(seen) == 0 {
		return nil
	}

	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]string, len(days))
	for i, d := range days {
		out[i] = DisplayDate(d)
	}
	return out
}

// Check runs the duplicate guard for a creation request against the
// entries already loaded for the technician. The caller is responsible
// for having fetched a superset covering [from, to]. This is a
// best-effort client-of-the-database check; the unique index on
// (technician, date, slot) remains the source of truth.
func Check(mode Mode, entries []Entry, from, to time.Time) (Decision, []string) {
	collisions := FindCollisions(entries, from, to)
	if len(collisions) == 0 {
		return Proceed, nil
	}
	if mode == ModeSingleDay {
		return Block, collisions
	}
	return Confirm, collisions
}
