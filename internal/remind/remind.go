package remind

import (
	"context"
	"time"
)

// NextAt computes the next occurrence of the reminder time "HH:MM" in
// the given location. A malformed time falls back to 08:00.
func NextAt(now time.Time, hhmm string, loc *time.Location) time.Time {
	now = now.In(loc)

	hour, min := 8, 0
	if t, err := time.ParseInLocation("15:04", hhmm, loc); err == nil {
		hour = t.Hour()
		min = t.Minute()
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// Run fires f every day at the configured time until ctx is canceled.
func Run(ctx context.Context, hhmm string, loc *time.Location, f func()) {
	next := NextAt(time.Now(), hhmm, loc)
	t := time.NewTimer(time.Until(next))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), hhmm, loc)
			t.Reset(time.Until(next))
		}
	}
}
