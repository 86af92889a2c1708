package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("تعاهد", message, "")
}

// FormatReviewPrompt builds the daily reminder for today's assignment.
func FormatReviewPrompt(dayName string, pageCount int) (string, string) {
	title := "ورد المراجعة"
	msg := fmt.Sprintf("ورد %s: %s. هل راجعت اليوم؟", dayName, review.CountPages(pageCount))
	return title, msg
}
