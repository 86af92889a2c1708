package review

import (
	"fmt"
	"strings"
	"time"
)

// Weekday identifies a day of the week with Saturday as day zero,
// matching the traditional start of the review week.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

var dayKeys = [7]string{
	"saturday", "sunday", "monday", "tuesday",
	"wednesday", "thursday", "friday",
}

// Arabic day names, indexed by Weekday.
var dayNames = [7]string{
	"السبت", "الأحد", "الاثنين", "الثلاثاء",
	"الأربعاء", "الخميس", "الجمعة",
}

// Key returns the lowercase identifier used in the persisted document,
// e.g. "saturday".
func (w Weekday) Key() string {
	if w < Saturday || w > Friday {
		return ""
	}
	return dayKeys[w]
}

// Name returns the Arabic display name for the day.
func (w Weekday) Name() string {
	if w < Saturday || w > Friday {
		return ""
	}
	return dayNames[w]
}

func (w Weekday) String() string { return w.Key() }

// Std converts to the standard library convention (Sunday = 0).
func (w Weekday) Std() time.Weekday {
	return time.Weekday((int(w) + 6) % 7)
}

// FromStd converts from the standard library convention.
func FromStd(d time.Weekday) Weekday {
	return Weekday((int(d) + 1) % 7)
}

// ParseWeekday resolves a day key such as "saturday". It accepts any
// case and the common three-letter abbreviation.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, k := range dayKeys {
		if s == k || (len(s) == 3 && strings.HasPrefix(k, s)) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// Next returns the weekday n days after w.
func (w Weekday) Next(n int) Weekday {
	return Weekday((int(w) + n) % 7)
}
