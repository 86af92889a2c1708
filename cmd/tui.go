package cmd

import (
	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/ui"
)

// tuiCmd launches the Bubble Tea view.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive view",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		return ui.Run(s, cfg.Location())
	},
}
