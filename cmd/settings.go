package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/data"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

var (
	settingsDays       int
	settingsStartDay   string
	settingsNotify     bool
	settingsNoNotify   bool
	settingsNotifyTime string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change review settings",
	Long: `Examples:
	taahud settings                          # show current settings
	taahud settings --days 10                # review the whole set over 10 days
	taahud settings --start-day sunday       # cycle starts on Sunday
	taahud settings --notify --time 21:00    # daily reminder at 21:00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		changed := false
		var startDay review.Weekday

		if cmd.Flags().Changed("days") {
			if res := review.ValidateDays(settingsDays); !res.OK {
				return fmt.Errorf("%s", res.Reason)
			}
			changed = true
		}
		if cmd.Flags().Changed("start-day") {
			startDay, err = review.ParseWeekday(settingsStartDay)
			if err != nil {
				return err
			}
			changed = true
		}
		if settingsNotify && settingsNoNotify {
			return fmt.Errorf("--notify and --no-notify are mutually exclusive")
		}
		if cmd.Flags().Changed("time") {
			if _, err := time.Parse("15:04", settingsNotifyTime); err != nil {
				return fmt.Errorf("invalid time %q, want HH:MM", settingsNotifyTime)
			}
		}
		if settingsNotify || settingsNoNotify || cmd.Flags().Changed("time") {
			changed = true
		}

		if changed {
			err := s.UpdateSettings(func(set *data.Settings) {
				if cmd.Flags().Changed("days") {
					set.ReviewDays = settingsDays
				}
				if cmd.Flags().Changed("start-day") {
					set.StartDay = startDay.Key()
				}
				if settingsNotify {
					set.NotificationsEnabled = true
				}
				if settingsNoNotify {
					set.NotificationsEnabled = false
				}
				if cmd.Flags().Changed("time") {
					set.NotificationTime = settingsNotifyTime
				}
			})
			if err != nil {
				return fmt.Errorf("warning: could not save: %w", err)
			}
		}

		set := s.Document().Settings
		fmt.Printf("review days:    %d\n", set.ReviewDays)
		fmt.Printf("start day:      %s (%s)\n", set.StartDay, set.StartWeekday().Name())
		fmt.Printf("notifications:  %v", set.NotificationsEnabled)
		if set.NotificationsEnabled {
			fmt.Printf(" at %s", set.NotificationTime)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	settingsCmd.Flags().IntVar(&settingsDays, "days", 0, "Days per review cycle (1-30)")
	settingsCmd.Flags().StringVar(&settingsStartDay, "start-day", "", "Weekday the cycle starts on")
	settingsCmd.Flags().BoolVar(&settingsNotify, "notify", false, "Enable daily reminder notifications")
	settingsCmd.Flags().BoolVar(&settingsNoNotify, "no-notify", false, "Disable reminder notifications")
	settingsCmd.Flags().StringVar(&settingsNotifyTime, "time", "", "Reminder time, HH:MM")
}
