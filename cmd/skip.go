package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
)

var skipCmd = &cobra.Command{
	Use:   "skip [date]",
	Short: "Record a missed day as intentionally skipped (default yesterday)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		date, err := resolveDate(args, "yesterday", cfg)
		if err != nil {
			return err
		}

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.IgnoreMissed(date); err != nil {
			return fmt.Errorf("warning: could not save: %w", err)
		}
		fmt.Printf("تم تجاهل ورد %s\n", date)
		return nil
	},
}
