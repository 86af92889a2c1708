package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/utils"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "List memorized page ranges",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		r := utils.NewRenderer(utils.DefaultRenderConfig())
		fmt.Print(r.RenderRanges(s.Document().Ranges))
		return nil
	},
}
