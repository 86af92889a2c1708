package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/data"
	"github.com/omr-muhammad/quran-tracker-app/internal/notify"
	"github.com/omr-muhammad/quran-tracker-app/internal/remind"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

var rootCmd = &cobra.Command{
	Use:   "taahud",
	Short: "Quran memorization review tracker",
	Long:  "تعاهد — tracks memorized page ranges and schedules their review across a recurring cycle.",
}

func Execute() error { return rootCmd.Execute() }

// openStore opens the document store, honoring the config data path
// override.
func openStore(cfg config.Config) (*data.Store, error) {
	if cfg.DataPath != "" {
		return data.OpenAt(cfg.DataPath)
	}
	return data.Open()
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder && os.Getenv("TAAHUD_NO_REMINDER") != "1" {
			startReminder(cfg)
		}
		return nil
	}

	rootCmd.AddCommand(
		todayCmd, scheduleCmd,
		rangesCmd, addCmd, editCmd, removeCmd, moveCmd,
		settingsCmd, doneCmd, carryCmd, skipCmd,
		cycleCmd, themeCmd, tuiCmd, versionCmd,
	)
}

// startReminder fires a desktop notification at the configured time
// while the process is alive. The document is re-read at fire time so
// the prompt reflects the current schedule.
func startReminder(cfg config.Config) {
	s, err := openStore(cfg)
	if err != nil {
		return
	}
	settings := s.Document().Settings
	_ = s.Close()

	if !settings.NotificationsEnabled {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		remind.Run(ctx, settings.NotificationTime, cfg.Location(), func() {
			if entry, ok := todayEntry(cfg); ok {
				title, msg := notify.FormatReviewPrompt(entry.DayName, entry.PageCount)
				_ = notify.Info(title, msg)
			}
		})
	}()
	// Process exit triggers the signal context; no global cancel kept.
	_ = cancel
}

func todayEntry(cfg config.Config) (review.Entry, bool) {
	s, err := openStore(cfg)
	if err != nil {
		return review.Entry{}, false
	}
	defer s.Close()

	doc := s.Document()
	now := time.Now().In(cfg.Location())
	schedule, err := review.Generate(doc.Ranges, doc.Settings.ReviewDays, doc.Settings.StartWeekday())
	if err != nil || len(schedule) == 0 {
		return review.Entry{}, false
	}
	start := review.CycleStart(doc.Settings.StartWeekday(), doc.CurrentCycle.StartDate, now)
	idx := review.CurrentDayIndex(doc.Settings.ReviewDays, start, now)
	if idx < 0 || idx >= len(schedule) {
		return review.Entry{}, false
	}
	return schedule[idx], true
}
