package review

import (
	"math"
	"time"
)

// DateLayout is the calendar-date key format used throughout the
// persisted document.
const DateLayout = "2006-01-02"

// DateKey formats a time as its calendar-date key, e.g. "2026-08-29".
// The time's own location decides which calendar day it falls on; the
// caller picks one location policy and sticks to it.
func DateKey(t time.Time) string { return t.Format(DateLayout) }

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MostRecentOccurrence returns midnight of the latest date at or
// before now whose weekday matches w.
func MostRecentOccurrence(w Weekday, now time.Time) time.Time {
	today := Midnight(now)
	diff := (int(FromStd(today.Weekday())) - int(w) + 7) % 7
	return today.AddDate(0, 0, -diff)
}

// CycleStart resolves the start date of the active cycle. A pinned
// start date (set when a cycle is explicitly restarted) wins;
// otherwise the start is derived as the most recent occurrence of the
// configured start day.
func CycleStart(startDay Weekday, pinned string, now time.Time) string {
	if pinned != "" {
		return pinned
	}
	return DateKey(MostRecentOccurrence(startDay, now))
}

// dayOffset counts whole calendar days from the cycle start to now.
// Rounding absorbs the odd-length days around DST transitions.
func dayOffset(cycleStart string, now time.Time) (int, bool) {
	start, err := time.ParseInLocation(DateLayout, cycleStart, now.Location())
	if err != nil {
		return 0, false
	}
	diff := Midnight(now).Sub(start)
	return int(math.Round(diff.Hours() / 24)), true
}

// CurrentDayIndex maps now onto an index into the generated schedule.
// It returns -1 when today falls outside the active cycle window
// [start, start+days) or when the start date does not parse.
func CurrentDayIndex(days int, cycleStart string, now time.Time) int {
	offset, ok := dayOffset(cycleStart, now)
	if !ok || offset < 0 || offset >= days {
		return -1
	}
	return offset
}

// IsCycleEnded reports whether now is on or after the day following
// the cycle's last day.
func IsCycleEnded(cycleStart string, days int, now time.Time) bool {
	offset, ok := dayOffset(cycleStart, now)
	return ok && offset >= days
}
