package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

var addCmd = &cobra.Command{
	Use:   "add [start] [end]",
	Short: "Add a memorized page range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		start, end, res := review.ValidateRangeInput(args[0], args[1], s.Document().Ranges, "")
		if !res.OK {
			return fmt.Errorf("%s", res.Reason)
		}

		r, err := s.AddRange(start, end)
		if err != nil {
			return fmt.Errorf("warning: could not save: %w", err)
		}
		fmt.Printf("Added range %d-%d (%d pages) [%s]\n", r.Start, r.End, r.Pages(), r.ID)
		return nil
	},
}
