package data

import (
	"testing"

	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

func TestParseDocumentRoundTrip(t *testing.T) {
	raw := []byte(`{
		"ranges": [{"id":"1","start":1,"end":50,"order":0}],
		"settings": {"reviewDays":5,"startDay":"monday","notificationsEnabled":true,"notificationTime":"21:30"},
		"theme": "light",
		"completionHistory": {"2026-08-28": {"completed":true,"carriedOver":false}},
		"currentCycle": {"startDate":"2026-08-24","cycleNumber":3}
	}`)
	doc, ok := ParseDocument(raw)
	if !ok {
		t.Fatal("well-formed document reported as corrupted")
	}
	if len(doc.Ranges) != 1 || doc.Ranges[0].End != 50 {
		t.Errorf("ranges = %+v", doc.Ranges)
	}
	if doc.Settings.ReviewDays != 5 || doc.Settings.StartDay != "monday" {
		t.Errorf("settings = %+v", doc.Settings)
	}
	if !doc.Settings.NotificationsEnabled || doc.Settings.NotificationTime != "21:30" {
		t.Errorf("notification settings = %+v", doc.Settings)
	}
	if doc.Theme != "light" {
		t.Errorf("theme = %q", doc.Theme)
	}
	if rec := doc.CompletionHistory["2026-08-28"]; !rec.Completed {
		t.Errorf("history = %+v", doc.CompletionHistory)
	}
	if doc.CurrentCycle.StartDate != "2026-08-24" || doc.CurrentCycle.CycleNumber != 3 {
		t.Errorf("cycle = %+v", doc.CurrentCycle)
	}
}

func TestParseDocumentDefaultsFieldByField(t *testing.T) {
	// ranges is the wrong type, settings is valid: only ranges should
	// fall back.
	raw := []byte(`{
		"ranges": "surprise",
		"settings": {"reviewDays":10,"startDay":"friday","notificationsEnabled":false,"notificationTime":"06:00"}
	}`)
	doc, ok := ParseDocument(raw)
	if !ok {
		t.Fatal("object blob should not count as corrupted")
	}
	if len(doc.Ranges) != 0 {
		t.Errorf("ranges = %+v, want empty", doc.Ranges)
	}
	if doc.Settings.ReviewDays != 10 || doc.Settings.StartDay != "friday" {
		t.Errorf("valid settings were not preserved: %+v", doc.Settings)
	}
	if doc.Theme != "dark" {
		t.Errorf("theme = %q, want dark default", doc.Theme)
	}
	if doc.CurrentCycle.CycleNumber != 1 {
		t.Errorf("cycleNumber = %d, want 1", doc.CurrentCycle.CycleNumber)
	}
}

func TestParseDocumentCorruptBlob(t *testing.T) {
	for _, raw := range []string{`not json at all`, `[1,2,3]`, `null`} {
		doc, ok := ParseDocument([]byte(raw))
		if ok {
			t.Errorf("%q: expected corruption flag", raw)
		}
		def := DefaultDocument()
		if doc.Settings != def.Settings || doc.Theme != def.Theme {
			t.Errorf("%q: doc = %+v, want defaults", raw, doc)
		}
	}
}

func TestNormalizeRepairsOutOfDomainValues(t *testing.T) {
	doc := Document{
		Settings: Settings{
			ReviewDays:       99,
			StartDay:         "blursday",
			NotificationTime: "25:99",
		},
		Theme:        "sepia",
		CurrentCycle: Cycle{CycleNumber: 0},
	}.Normalize()

	if doc.Settings.ReviewDays != 7 {
		t.Errorf("reviewDays = %d", doc.Settings.ReviewDays)
	}
	if doc.Settings.StartDay != "saturday" {
		t.Errorf("startDay = %q", doc.Settings.StartDay)
	}
	if doc.Settings.NotificationTime != "08:00" {
		t.Errorf("notificationTime = %q", doc.Settings.NotificationTime)
	}
	if doc.Theme != "dark" {
		t.Errorf("theme = %q", doc.Theme)
	}
	if doc.CurrentCycle.CycleNumber != 1 {
		t.Errorf("cycleNumber = %d", doc.CurrentCycle.CycleNumber)
	}
	if doc.Ranges == nil || doc.CompletionHistory == nil {
		t.Error("nil collections were not defaulted")
	}
}

func TestStartWeekdayFallsBack(t *testing.T) {
	if (Settings{StartDay: "wednesday"}).StartWeekday() != review.Wednesday {
		t.Error("valid start day mis-parsed")
	}
	if (Settings{StartDay: "nope"}).StartWeekday() != review.Saturday {
		t.Error("bad start day should fall back to Saturday")
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := DefaultDocument()
	doc.Ranges = append(doc.Ranges, review.Range{ID: "1", Start: 1, End: 10})
	doc.CompletionHistory.MarkComplete("2026-08-29")

	cp := doc.Clone()
	cp.Ranges[0].End = 99
	cp.CompletionHistory.IgnoreMissed("2026-08-29")

	if doc.Ranges[0].End != 10 {
		t.Error("clone shares the ranges slice")
	}
	if !doc.CompletionHistory["2026-08-29"].Completed {
		t.Error("clone shares the history map")
	}
}
