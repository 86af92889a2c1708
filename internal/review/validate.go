package review

import (
	"fmt"
	"strconv"
	"strings"
)

// Day count limits for one review cycle.
const (
	MinDays = 1
	MaxDays = 30
)

// Result reports the outcome of a validation. Failures carry a
// human-readable reason; validation never panics and never returns a
// Go error.
type Result struct {
	OK     bool
	Reason string
}

func valid() Result             { return Result{OK: true} }
func invalid(msg string) Result { return Result{Reason: msg} }

// ValidateRange checks a candidate page interval against the domain
// rules: bounds within [MinPage, MaxPage], start not after end, and no
// inclusive-interval overlap with any existing range. The range being
// edited, identified by editingID, is excluded from the overlap scan.
// Only the first conflicting range is reported.
func ValidateRange(start, end int, existing []Range, editingID string) Result {
	if start < MinPage || start > MaxPage {
		return invalid(fmt.Sprintf("start page must be between %d and %d", MinPage, MaxPage))
	}
	if end < MinPage || end > MaxPage {
		return invalid(fmt.Sprintf("end page must be between %d and %d", MinPage, MaxPage))
	}
	if start > end {
		return invalid("start page must not be after end page")
	}
	for _, r := range existing {
		if editingID != "" && r.ID == editingID {
			continue
		}
		// Closed intervals overlap iff start1 <= end2 && start2 <= end1.
		if start <= r.End && r.Start <= end {
			return invalid(fmt.Sprintf("range overlaps existing range %d-%d", r.Start, r.End))
		}
	}
	return valid()
}

// ValidateRangeInput parses raw user input before delegating to
// ValidateRange. Fractional or non-numeric text is rejected with a
// reason instead of being truncated.
func ValidateRangeInput(start, end string, existing []Range, editingID string) (int, int, Result) {
	s, res := parsePage(start)
	if !res.OK {
		return 0, 0, res
	}
	e, res := parsePage(end)
	if !res.OK {
		return 0, 0, res
	}
	return s, e, ValidateRange(s, e, existing, editingID)
}

func parsePage(raw string) (int, Result) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		if _, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			return 0, invalid("page numbers must be whole numbers")
		}
		return 0, invalid("page numbers must be numeric")
	}
	return n, valid()
}

// ValidateDays checks a review cycle length.
func ValidateDays(n int) Result {
	if n < MinDays {
		return invalid(fmt.Sprintf("review days must be at least %d", MinDays))
	}
	if n > MaxDays {
		return invalid(fmt.Sprintf("review days must not exceed %d", MaxDays))
	}
	return valid()
}
