package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/omr-muhammad/quran-tracker-app/internal/config"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
	"github.com/omr-muhammad/quran-tracker-app/internal/utils"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's review assignment",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		now := time.Now().In(loc)
		if todayDate != "" {
			key, err := utils.ParseDateKey(todayDate, now, loc)
			if err != nil {
				return err
			}
			now, _ = time.ParseInLocation(review.DateLayout, key, loc)
		}

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()
		doc := s.Document()

		styles := utils.NewRenderer(utils.DefaultRenderConfig()).Styles()

		if len(doc.Ranges) == 0 {
			fmt.Println(styles.Meta.Render("لم يتم إضافة محفوظ بعد — استخدم taahud add"))
			return nil
		}

		schedule, err := review.Generate(doc.Ranges, doc.Settings.ReviewDays, doc.Settings.StartWeekday())
		if err != nil {
			return err
		}
		start := review.CycleStart(doc.Settings.StartWeekday(), doc.CurrentCycle.StartDate, now)
		idx := review.CurrentDayIndex(doc.Settings.ReviewDays, start, now)

		if idx < 0 || idx >= len(schedule) {
			fmt.Println(styles.Meta.Render("لا يوجد ورد اليوم — الدورة خارج نطاقها الحالي"))
			if review.IsCycleEnded(start, doc.Settings.ReviewDays, now) {
				fmt.Println(styles.Warning.Render("انتهت الدورة الحالية — استخدم taahud cycle --restart"))
			}
			return nil
		}

		entry := schedule[idx]
		todayKey := review.DateKey(now)
		record := doc.CompletionHistory[todayKey]

		fmt.Printf("%s %s\n",
			styles.Title.Render(fmt.Sprintf("ورد %s", entry.DayName)),
			styles.Meta.Render("("+review.CountPages(entry.PageCount)+")"),
		)
		fmt.Println(styles.Pages.Render(review.FormatSegments(entry.Segments)))

		if record.Completed {
			fmt.Println(styles.Done.Render("✓ تم الحمد لله"))
		}

		yesterdayKey := review.DateKey(now.AddDate(0, 0, -1))
		if carry, ok := review.Carryover(doc.CompletionHistory, schedule, idx, yesterdayKey); ok {
			fmt.Printf("%s %s %s\n",
				styles.Warning.Render("ورد مُرحَّل:"),
				styles.Pages.Render(review.FormatSegments(carry.Segments)),
				styles.Meta.Render("("+review.CountPages(carry.PageCount)+")"),
			)
		}

		_, yesterdayActed := doc.CompletionHistory[yesterdayKey]
		_, todayActed := doc.CompletionHistory[todayKey]
		if !yesterdayActed && !todayActed && idx > 0 {
			fmt.Println(styles.Meta.Render("لم يُسجَّل ورد الأمس — taahud carry لترحيله أو taahud skip لتجاهله"))
		}

		return nil
	},
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Evaluate as if today were this date (today, yesterday, YYYY-MM-DD)")
}
