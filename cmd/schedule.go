package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
	"github.com/omr-muhammad/quran-tracker-app/internal/utils"
)

var (
	scheduleFormat  string
	scheduleNoColor bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the full review schedule for the current cycle",
	Long: `Examples:
	taahud schedule                     # styled schedule with today marked
	taahud schedule --format table      # tab-separated table
	taahud schedule --format json       # machine-readable
	taahud schedule --format quiet      # one segment list per line`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()
		now := time.Now().In(loc)

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()
		doc := s.Document()

		schedule, err := review.Generate(doc.Ranges, doc.Settings.ReviewDays, doc.Settings.StartWeekday())
		if err != nil {
			return err
		}

		start := review.CycleStart(doc.Settings.StartWeekday(), doc.CurrentCycle.StartDate, now)
		idx := review.CurrentDayIndex(doc.Settings.ReviewDays, start, now)

		startDate, _ := time.ParseInLocation(review.DateLayout, start, loc)
		rows := make([]utils.ScheduleRow, len(schedule))
		for i, e := range schedule {
			key := review.DateKey(startDate.AddDate(0, 0, i))
			rows[i] = utils.ScheduleRow{
				Index:     i,
				Entry:     e,
				IsToday:   i == idx,
				Completed: doc.CompletionHistory[key].Completed,
			}
		}

		renderConfig := utils.DefaultRenderConfig()
		if scheduleNoColor {
			renderConfig.Color = false
		}
		if scheduleFormat != "" {
			renderConfig.Format = utils.OutputFormat(scheduleFormat)
		}

		out, err := utils.NewRenderer(renderConfig).RenderSchedule(rows)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleFormat, "format", "default", "Output format: default, table, json, csv, quiet")
	scheduleCmd.Flags().BoolVar(&scheduleNoColor, "no-color", false, "Disable colored output")
}
