package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/notify"
	"github.com/omr-muhammad/quran-tracker-app/internal/utils"
)

// resolveDate turns an optional positional date argument into a
// calendar-date key, defaulting to the given fallback word.
func resolveDate(args []string, fallback string, cfg config.Config) (string, error) {
	input := fallback
	if len(args) > 0 {
		input = args[0]
	}
	return utils.ParseDateKey(input, time.Now(), cfg.Location())
}

var doneCmd = &cobra.Command{
	Use:   "done [date]",
	Short: "Mark a day's review as completed (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		date, err := resolveDate(args, "today", cfg)
		if err != nil {
			return err
		}

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.MarkComplete(date); err != nil {
			return fmt.Errorf("warning: could not save: %w", err)
		}
		msg := fmt.Sprintf("تم ورد %s الحمد لله", date)
		fmt.Println(msg)
		_ = notify.Done(msg)
		return nil
	},
}
