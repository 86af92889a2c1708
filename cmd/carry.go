package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
)

var carryCmd = &cobra.Command{
	Use:   "carry [date]",
	Short: "Carry a missed day's review over to the next day (default yesterday)",
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

		if err := s.MarkCarriedOver(date); err != nil {
			return fmt.Errorf("warning: could not save: %w", err)
		}
		fmt.Printf("تم ترحيل ورد %s\n", date)
		return nil
	},
}
