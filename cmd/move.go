package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
)

var moveCmd = &cobra.Command{
	Use:   "move [range-id] [position]",
	Short: "Move a range to a new position in the display order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position: %v", err)
		}

		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		// Positions are 1-based on the command line.
		if err := s.MoveRange(args[0], pos-1); err != nil {
			return err
		}
		fmt.Printf("Range %s moved to position %d\n", args[0], pos)
		return nil
	},
}
