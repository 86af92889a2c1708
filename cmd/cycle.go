package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

var cycleRestart bool

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Show the current review cycle, or restart it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()
		now := time.Now().In(loc)

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		if cycleRestart {
			if err := s.RestartCycle(review.DateKey(now)); err != nil {
				return fmt.Errorf("warning: could not save: %w", err)
			}
		}

		doc := s.Document()
		start := review.CycleStart(doc.Settings.StartWeekday(), doc.CurrentCycle.StartDate, now)
		idx := review.CurrentDayIndex(doc.Settings.ReviewDays, start, now)

		fmt.Printf("cycle:      #%d\n", doc.CurrentCycle.CycleNumber)
		fmt.Printf("start date: %s", start)
		if doc.CurrentCycle.StartDate == "" {
			fmt.Print(" (derived from start day)")
		}
		fmt.Println()
		fmt.Printf("length:     %d days\n", doc.Settings.ReviewDays)

		switch {
		case idx >= 0:
			fmt.Printf("today:      day %d of %d\n", idx+1, doc.Settings.ReviewDays)
		case review.IsCycleEnded(start, doc.Settings.ReviewDays, now):
			fmt.Println("today:      cycle ended, restart with --restart")
		default:
			fmt.Println("today:      before the cycle window")
		}
		return nil
	},
}

func init() {
	cycleCmd.Flags().BoolVar(&cycleRestart, "restart", false, "Pin a new cycle starting today")
}
