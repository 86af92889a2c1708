package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

var editCmd = &cobra.Command{
	Use:   "edit [range-id] [start] [end]",
	Short: "Change the bounds of an existing range",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		id := args[0]
		// The edited range is excluded from the overlap scan.
		start, end, res := review.ValidateRangeInput(args[1], args[2], s.Document().Ranges, id)
		if !res.OK {
			return fmt.Errorf("%s", res.Reason)
		}

		if err := s.UpdateRange(id, start, end); err != nil {
			return err
		}
		fmt.Printf("Range %s is now %d-%d\n", id, start, end)
		return nil
	},
}
