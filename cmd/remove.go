package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
)

var removeCmd = &cobra.Command{
	Use:   "remove [range-id]",
	Short: "Delete a memorized range",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteRange(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed range %s\n", args[0])
		return nil
	},
}
