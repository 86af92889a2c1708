package review

import (
	"fmt"
	"sort"
)

// Page bounds of the mushaf.
const (
	MinPage = 1
	MaxPage = 604
)

// Range is a contiguous inclusive interval of memorized pages.
type Range struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Order int    `json:"order"`
}

// Pages returns the inclusive page count of the range.
func (r Range) Pages() int { return r.End - r.Start + 1 }

// TotalPages sums the inclusive page counts of all ranges.
func TotalPages(ranges []Range) int {
	total := 0
	for _, r := range ranges {
		total += r.Pages()
	}
	return total
}

// SortByPage returns a copy of ranges ordered by ascending start page.
// User-defined display order is left untouched in the input.
func SortByPage(ranges []Range) []Range {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return sorted
}

// PageSequence flattens the range set into one ordered list of page
// numbers, processing ranges in numerical order regardless of the
// user's display order. Two ranges sharing a start page can only
// happen if overlap validation was bypassed, so that is an error
// rather than a silent reordering.
func PageSequence(ranges []Range) ([]int, error) {
	sorted := SortByPage(ranges)
	total := TotalPages(sorted)
	if total < 0 {
		total = 0
	}
	pages := make([]int, 0, total)
	for i, r := range sorted {
		if i > 0 && r.Start == sorted[i-1].Start {
			return nil, fmt.Errorf("ranges %s and %s share start page %d", sorted[i-1].ID, r.ID, r.Start)
		}
		for p := r.Start; p <= r.End; p++ {
			pages = append(pages, p)
		}
	}
	return pages, nil
}
