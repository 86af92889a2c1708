package review

import (
	"reflect"
	"testing"
)

func TestPageSequenceSortsAndFlattens(t *testing.T) {
	ranges := []Range{
		{ID: "b", Start: 21, End: 23, Order: 0},
		{ID: "a", Start: 1, End: 3, Order: 1},
	}
	pages, err := PageSequence(ranges)
	if err != nil {
		t.Fatalf("PageSequence: %v", err)
	}
	want := []int{1, 2, 3, 21, 22, 23}
	if !reflect.DeepEqual(pages, want) {
		t.Errorf("pages = %v, want %v", pages, want)
	}
}

func TestPageSequenceLengthMatchesTotal(t *testing.T) {
	ranges := []Range{
		{ID: "a", Start: 5, End: 5},
		{ID: "b", Start: 10, End: 40},
		{ID: "c", Start: 100, End: 604},
	}
	pages, err := PageSequence(ranges)
	if err != nil {
		t.Fatalf("PageSequence: %v", err)
	}
	if len(pages) != TotalPages(ranges) {
		t.Errorf("len = %d, want %d", len(pages), TotalPages(ranges))
	}
	seen := make(map[int]bool, len(pages))
	for _, p := range pages {
		if seen[p] {
			t.Fatalf("duplicate page %d", p)
		}
		seen[p] = true
	}
}

func TestPageSequenceFailsFastOnEqualStarts(t *testing.T) {
	ranges := []Range{
		{ID: "a", Start: 10, End: 20},
		{ID: "b", Start: 10, End: 12},
	}
	if _, err := PageSequence(ranges); err == nil {
		t.Error("expected error for equal start pages")
	}
}

func TestPageSequenceEmpty(t *testing.T) {
	pages, err := PageSequence(nil)
	if err != nil {
		t.Fatalf("PageSequence: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("len = %d, want 0", len(pages))
	}
}

func TestTotalPages(t *testing.T) {
	if got := TotalPages(nil); got != 0 {
		t.Errorf("TotalPages(nil) = %d, want 0", got)
	}
	ranges := []Range{{ID: "a", Start: 1, End: 200}}
	if got := TotalPages(ranges); got != 200 {
		t.Errorf("TotalPages = %d, want 200", got)
	}
}

func TestSortByPageLeavesInputAlone(t *testing.T) {
	ranges := []Range{
		{ID: "b", Start: 50, End: 60},
		{ID: "a", Start: 1, End: 10},
	}
	sorted := SortByPage(ranges)
	if sorted[0].ID != "a" || sorted[1].ID != "b" {
		t.Errorf("sorted order = %s, %s", sorted[0].ID, sorted[1].ID)
	}
	if ranges[0].ID != "b" {
		t.Error("input slice was reordered")
	}
}
