package data

import (
	"encoding/json"
	"regexp"

	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

// DocumentKey is the fixed key the whole document lives under.
const DocumentKey = "taahud_data"

// Settings holds the user's review preferences. They live inside the
// persisted document, not in the app config file.
type Settings struct {
	ReviewDays           int    `json:"reviewDays"`
	StartDay             string `json:"startDay"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	NotificationTime     string `json:"notificationTime"` // "HH:MM"
}

// Cycle pins the active review cycle. An empty StartDate means the
// start is derived from Settings.StartDay on every read.
type Cycle struct {
	StartDate   string `json:"startDate"`
	CycleNumber int    `json:"cycleNumber"`
}

// Document is the single persisted record: everything the app knows.
type Document struct {
	Ranges            []review.Range `json:"ranges"`
	Settings          Settings       `json:"settings"`
	Theme             string         `json:"theme"`
	CompletionHistory review.History `json:"completionHistory"`
	CurrentCycle      Cycle          `json:"currentCycle"`
}

// StartWeekday resolves the configured start day, falling back to
// Saturday when the stored key is unrecognizable.
func (s Settings) StartWeekday() review.Weekday {
	w, err := review.ParseWeekday(s.StartDay)
	if err != nil {
		return review.Saturday
	}
	return w
}

func DefaultSettings() Settings {
	return Settings{
		ReviewDays:       7,
		StartDay:         review.Saturday.Key(),
		NotificationTime: "08:00",
	}
}

func DefaultDocument() Document {
	return Document{
		Ranges:            []review.Range{},
		Settings:          DefaultSettings(),
		Theme:             "dark",
		CompletionHistory: review.History{},
		CurrentCycle:      Cycle{CycleNumber: 1},
	}
}

var timeOfDay = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Normalize repairs a decoded document field by field. Anything
// missing or out of domain falls back to its default independently;
// valid neighbors are kept.
func (d Document) Normalize() Document {
	def := DefaultDocument()

	if d.Ranges == nil {
		d.Ranges = def.Ranges
	}
	if d.CompletionHistory == nil {
		d.CompletionHistory = def.CompletionHistory
	}
	if !review.ValidateDays(d.Settings.ReviewDays).OK {
		d.Settings.ReviewDays = def.Settings.ReviewDays
	}
	if _, err := review.ParseWeekday(d.Settings.StartDay); err != nil {
		d.Settings.StartDay = def.Settings.StartDay
	}
	if !timeOfDay.MatchString(d.Settings.NotificationTime) {
		d.Settings.NotificationTime = def.Settings.NotificationTime
	}
	if d.Theme != "light" {
		d.Theme = "dark"
	}
	if d.CurrentCycle.CycleNumber < 1 {
		d.CurrentCycle.CycleNumber = def.CurrentCycle.CycleNumber
	}
	return d
}

// ParseDocument decodes a stored blob. Each top-level field is decoded
// independently so one malformed field does not poison the rest; a
// blob that is not a JSON object at all yields the defaults and a
// false flag so the caller can log the reset.
func ParseDocument(raw []byte) (Document, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return DefaultDocument(), false
	}

	doc := DefaultDocument()
	if b, ok := fields["ranges"]; ok {
		var ranges []review.Range
		if json.Unmarshal(b, &ranges) == nil && ranges != nil {
			doc.Ranges = ranges
		}
	}
	if b, ok := fields["settings"]; ok {
		s := doc.Settings
		if json.Unmarshal(b, &s) == nil {
			doc.Settings = s
		}
	}
	if b, ok := fields["theme"]; ok {
		var theme string
		if json.Unmarshal(b, &theme) == nil {
			doc.Theme = theme
		}
	}
	if b, ok := fields["completionHistory"]; ok {
		var hist review.History
		if json.Unmarshal(b, &hist) == nil && hist != nil {
			doc.CompletionHistory = hist
		}
	}
	if b, ok := fields["currentCycle"]; ok {
		c := doc.CurrentCycle
		if json.Unmarshal(b, &c) == nil {
			doc.CurrentCycle = c
		}
	}
	return doc.Normalize(), true
}

// Clone returns a deep copy so callers can hold a snapshot without
// seeing later mutations.
func (d Document) Clone() Document {
	out := d
	out.Ranges = make([]review.Range, len(d.Ranges))
	copy(out.Ranges, d.Ranges)
	out.CompletionHistory = make(review.History, len(d.CompletionHistory))
	for k, v := range d.CompletionHistory {
		out.CompletionHistory[k] = v
	}
	return out
}
