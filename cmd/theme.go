package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light|toggle]",
	Short: "Show, set or toggle the color theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		current := s.Document().Theme
		if len(args) == 0 {
			fmt.Println(current)
			return nil
		}

		next := args[0]
		if next == "toggle" {
			next = "light"
			if current == "light" {
				next = "dark"
			}
		}
		if next != "dark" && next != "light" {
			return fmt.Errorf("unknown theme %q (dark, light or toggle)", args[0])
		}
		if err := s.SetTheme(next); err != nil {
			return fmt.Errorf("warning: could not save: %w", err)
		}
		fmt.Println(next)
		return nil
	},
}
