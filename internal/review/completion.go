package review

// CompletionRecord is the outcome recorded for one calendar date.
// Absence of a record means no decision has been made for that date;
// an explicit {false, false} record means the user chose to skip.
type CompletionRecord struct {
	Completed   bool `json:"completed"`
	CarriedOver bool `json:"carriedOver"`
}

// History holds completion records keyed by calendar-date string.
// Records are never deleted.
type History map[string]CompletionRecord

// MarkComplete records the date as done. Full overwrite; repeating it
// is a no-op.
func (h History) MarkComplete(date string) {
	h[date] = CompletionRecord{Completed: true}
}

// MarkCarriedOver flags the date's assignment as deferred to the next
// day. The completed flag, if already set, is kept: this merges rather
// than overwrites.
func (h History) MarkCarriedOver(date string) {
	rec := h[date]
	rec.CarriedOver = true
	h[date] = rec
}

// IgnoreMissed records an explicit decision to skip the date's
// assignment. Full overwrite, clearing any carryover flag.
func (h History) IgnoreMissed(date string) {
	h[date] = CompletionRecord{}
}

// Carryover returns the schedule entry that must be surfaced alongside
// today's assignment: yesterday's entry, when yesterday was marked
// carried over and never completed. Lookback is exactly one day; a
// longer missed streak does not accumulate.
func Carryover(h History, schedule []Entry, todayIndex int, yesterdayKey string) (Entry, bool) {
	rec, ok := h[yesterdayKey]
	if !ok || !rec.CarriedOver || rec.Completed {
		return Entry{}, false
	}
	idx := todayIndex - 1
	if idx < 0 || idx >= len(schedule) {
		return Entry{}, false
	}
	return schedule[idx], true
}
