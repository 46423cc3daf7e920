// Package dateutil provides calendar-day comparisons for habit tracking.
//
// All day arithmetic uses the UTC calendar: a "day" is the date of the
// instant converted to UTC. This keeps day boundaries stable across DST
// transitions and host timezone changes between sessions.
package dateutil

import "time"

// DateFormat is the canonical day-key layout.
const DateFormat = "2006-01-02"

// DayKey returns the UTC calendar-day key (YYYY-MM-DD) for t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// StartOfDay returns UTC midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the whole-day difference between the calendar day of
// earlier and the calendar day of now. Negative when earlier is after now.
func DaysBetween(earlier, now time.Time) int {
	return int(StartOfDay(now).Sub(StartOfDay(earlier)) / (24 * time.Hour))
}
