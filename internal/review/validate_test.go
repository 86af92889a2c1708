package review

import (
	"strings"
	"testing"
)

func TestValidateRangeBounds(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		ok         bool
	}{
		{"valid full mushaf", 1, 604, true},
		{"single page", 300, 300, true},
		{"start below min", 0, 10, false},
		{"start above max", 605, 605, false},
		{"end above max", 600, 605, false},
		{"end below min", 1, 0, false},
		{"inverted", 50, 40, false},
		{"negative", -5, 10, false},
	}
	for _, tc := range cases {
		res := ValidateRange(tc.start, tc.end, nil, "")
		if res.OK != tc.ok {
			t.Errorf("%s: OK = %v, want %v (reason %q)", tc.name, res.OK, tc.ok, res.Reason)
		}
		if !res.OK && res.Reason == "" {
			t.Errorf("%s: rejection without a reason", tc.name)
		}
	}
}

func TestValidateRangeOverlap(t *testing.T) {
	existing := []Range{
		{ID: "a", Start: 1, End: 50},
		{ID: "b", Start: 100, End: 120},
	}
	cases := []struct {
		name       string
		start, end int
		ok         bool
	}{
		{"touching end boundary", 50, 60, false},
		{"touching start boundary", 90, 100, false},
		{"contained", 10, 20, false},
		{"containing", 1, 200, false},
		{"between", 51, 99, true},
		{"after", 121, 604, true},
	}
	for _, tc := range cases {
		res := ValidateRange(tc.start, tc.end, existing, "")
		if res.OK != tc.ok {
			t.Errorf("%s: OK = %v, want %v (reason %q)", tc.name, res.OK, tc.ok, res.Reason)
		}
	}
}

func TestValidateRangeReportsFirstConflict(t *testing.T) {
	existing := []Range{
		{ID: "a", Start: 10, End: 20},
		{ID: "b", Start: 30, End: 40},
	}
	res := ValidateRange(1, 604, existing, "")
	if res.OK {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(res.Reason, "10-20") {
		t.Errorf("reason %q should name the first conflicting range", res.Reason)
	}
}

func TestValidateRangeExcludesEditedRange(t *testing.T) {
	existing := []Range{{ID: "a", Start: 10, End: 20}}

	if res := ValidateRange(15, 25, existing, "a"); !res.OK {
		t.Errorf("editing range a should not conflict with itself: %q", res.Reason)
	}
	if res := ValidateRange(15, 25, existing, "other"); res.OK {
		t.Error("editing a different range must still conflict")
	}
}

func TestValidateRangeInput(t *testing.T) {
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"1", "10", true},
		{" 7 ", "9", true},
		{"abc", "10", false},
		{"1", "", false},
		{"1.5", "10", false},
		{"1", "10.0", false},
	}
	for _, tc := range cases {
		_, _, res := ValidateRangeInput(tc.start, tc.end, nil, "")
		if res.OK != tc.ok {
			t.Errorf("(%q, %q): OK = %v, want %v (reason %q)", tc.start, tc.end, res.OK, tc.ok, res.Reason)
		}
	}
}

func TestValidateDays(t *testing.T) {
	cases := []struct {
		n  int
		ok bool
	}{
		{1, true}, {7, true}, {30, true},
		{0, false}, {-1, false}, {31, false},
	}
	for _, tc := range cases {
		if res := ValidateDays(tc.n); res.OK != tc.ok {
			t.Errorf("ValidateDays(%d) OK = %v, want %v", tc.n, res.OK, tc.ok)
		}
	}
}
