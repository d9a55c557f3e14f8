package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/time-budget/internal/stats"
	"github.com/nhle/time-budget/internal/theme"
	"github.com/nhle/time-budget/internal/timecalc"
)

var showDays int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's free time and the trailing week",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&showDays, "days", 0, "Trailing window length (default from config)")
}

func runShow(cmd *cobra.Command, args []string) error {
	gw, cfg, closeStore, err := openGateway()
	if err != nil {
		return err
	}
	defer closeStore()

	if gw.LoadTemplate() == nil {
		fmt.Println("No template saved yet. Run \"timebudget template set\" first.")
		return nil
	}

	calc := stats.NewCalculator(gw, nil)
	today := timecalc.FormatDate(time.Now())
	result := calc.ForDate(today)

	title := fmt.Sprintf("Free time today (%s)", today)
	var body string
	if result.Err != "" {
		body = fmt.Sprintf("%s\n%s", title, theme.ErrorStyle.Render(result.Err))
	} else {
		detail := fmt.Sprintf("required %s (%d min) | %s",
			timecalc.FormatMinutes(result.Total), result.Total, result.Source)
		body = fmt.Sprintf("%s\n%s\n%s",
			title,
			theme.FreeStyle(result.Free).Render(timecalc.FormatMinutes(result.Free)),
			theme.FaintStyle.Render(detail),
		)
	}
	fmt.Println(theme.CardStyle.Render(body))

	week := calc.WeeklySummary()
	fmt.Println("Last 7 days:")
	for _, day := range week.Days {
		mark := ""
		if day.IsToday {
			mark = theme.TodayMarkStyle.Render("  <- today")
		}
		fmt.Printf("  %s  %8s  %s%s\n",
			day.Date,
			timecalc.FormatMinutes(day.Free),
			theme.SourceStyle(day.Source).Render("["+day.Source+"]"),
			mark)
	}
	fmt.Printf("  total %s", timecalc.FormatMinutes(week.Total))
	if week.OverrideCount > 0 {
		fmt.Printf("  (%d day(s) overridden)", week.OverrideCount)
	}
	fmt.Println()

	days := showDays
	if days <= 0 {
		days = cfg.WindowDays
	}
	if days != 7 {
		window := calc.LastNDays(days)
		fmt.Printf("Last %d days total: %s\n", days, timecalc.FormatMinutes(window.Total))
	}

	return nil
}
