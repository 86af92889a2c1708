package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

// ParseDateKey resolves user date input to a calendar-date key in the
// given location. It accepts natural words and a few explicit formats.
func ParseDateKey(input string, now time.Time, loc *time.Location) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return "", fmt.Errorf("empty date input")
	}

	now = now.In(loc)

	switch input {
	case "today":
		return review.DateKey(now), nil
	case "yesterday":
		return review.DateKey(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return review.DateKey(now.AddDate(0, 0, 1)), nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"02/01/2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return review.DateKey(t), nil
		}
	}

	return "", fmt.Errorf("unable to parse date: %s", input)
}
