package review

import "testing"

const day = "2026-08-28"

func TestMarkCompleteOverwrites(t *testing.T) {
	h := History{}
	h.MarkCarriedOver(day)
	h.MarkComplete(day)

	want := CompletionRecord{Completed: true}
	if h[day] != want {
		t.Errorf("record = %+v, want %+v", h[day], want)
	}

	// Idempotent.
	h.MarkComplete(day)
	if h[day] != want {
		t.Errorf("after repeat, record = %+v, want %+v", h[day], want)
	}
}

func TestMarkCarriedOverMerges(t *testing.T) {
	h := History{}
	h.MarkComplete(day)
	h.MarkCarriedOver(day)

	want := CompletionRecord{Completed: true, CarriedOver: true}
	if h[day] != want {
		t.Errorf("record = %+v, want %+v", h[day], want)
	}
}

func TestIgnoreMissedAfterCarryWins(t *testing.T) {
	// The last full-overwrite call decides the record.
	h := History{}
	h.MarkCarriedOver(day)
	h.IgnoreMissed(day)

	if h[day] != (CompletionRecord{}) {
		t.Errorf("record = %+v, want zero record", h[day])
	}
}

func TestIgnoreMissedDistinctFromAbsent(t *testing.T) {
	h := History{}
	h.IgnoreMissed(day)

	if _, ok := h[day]; !ok {
		t.Error("ignoring a day must leave an explicit record")
	}
	if _, ok := h["2026-08-27"]; ok {
		t.Error("untouched day should have no record")
	}
}

func TestCarryoverSurfacesYesterday(t *testing.T) {
	schedule := []Entry{
		{DayKey: "saturday", PageCount: 10},
		{DayKey: "sunday", PageCount: 10},
		{DayKey: "monday", PageCount: 10},
	}

	h := History{}
	h.MarkCarriedOver(day)

	e, ok := Carryover(h, schedule, 2, day)
	if !ok {
		t.Fatal("expected a carryover entry")
	}
	if e.DayKey != "sunday" {
		t.Errorf("carryover entry = %s, want sunday", e.DayKey)
	}
}

func TestCarryoverSuppressed(t *testing.T) {
	schedule := []Entry{{DayKey: "saturday"}, {DayKey: "sunday"}}

	completed := History{}
	completed.MarkComplete(day)
	completed.MarkCarriedOver(day)
	if _, ok := Carryover(completed, schedule, 1, day); ok {
		t.Error("completed day must not surface as carryover")
	}

	if _, ok := Carryover(History{}, schedule, 1, day); ok {
		t.Error("day without a record must not surface as carryover")
	}

	carried := History{}
	carried.MarkCarriedOver(day)
	if _, ok := Carryover(carried, schedule, 0, day); ok {
		t.Error("no carryover on the first day of a cycle")
	}
	if _, ok := Carryover(carried, schedule, 5, day); ok {
		t.Error("index past the schedule must not surface an entry")
	}
}
