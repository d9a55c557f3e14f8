package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/time-budget/internal/input"
	"github.com/nhle/time-budget/internal/model"
	"github.com/nhle/time-budget/internal/timecalc"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the weekly template",
}

var (
	tplMode      string
	tplWeekday   string
	tplWeekend   string
	tplExtras    []string
	tplDays      []string
	tplDayExtras []string
)

var templateSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Validate and save the weekly template",
	Long: `Set the weekly template. In weekdayWeekend mode, give --weekday and
--weekend base specs plus shared --extra items. In byDay mode, give one
--day spec per weekday plus optional --day-extra items.

A base spec lists activities as "sleep=7:00,work=8:30". Saving is
all-or-nothing: any invalid field or over-budget day aborts the save.`,
	Example: `  timebudget template set --weekday "sleep=7:00,work=8:00,commute=1:00" --weekend "sleep=9:00" --extra "Study=1:00"
  timebudget template set --mode byDay --day "mon:sleep=7:00,work=8:00" --day-extra "mon:Gym=0:30"`,
	Args: cobra.NoArgs,
	RunE: runTemplateSet,
}

var templateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored template",
	Args:  cobra.NoArgs,
	RunE:  runTemplateShow,
}

var templateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Compute totals for template input without saving",
	Long: `Check runs the lenient calculation over the given flags: malformed or
negative values read as zero instead of failing, mirroring the live
dashboard recalculation. Nothing is persisted.`,
	Args: cobra.NoArgs,
	RunE: runTemplateCheck,
}

func init() {
	for _, c := range []*cobra.Command{templateSetCmd, templateCheckCmd} {
		c.Flags().StringVar(&tplMode, "mode", model.ModeWeekdayWeekend, "Template mode: weekdayWeekend or byDay")
		c.Flags().StringVar(&tplWeekday, "weekday", "", "Weekday base spec, e.g. \"sleep=7:00,work=8:00\"")
		c.Flags().StringVar(&tplWeekend, "weekend", "", "Weekend base spec")
		c.Flags().StringArrayVar(&tplExtras, "extra", nil, "Shared extra item \"Name=H:M\" (max 3)")
		c.Flags().StringArrayVar(&tplDays, "day", nil, "Per-day base spec \"mon:sleep=7:00,...\"")
		c.Flags().StringArrayVar(&tplDayExtras, "day-extra", nil, "Per-day extra \"mon:Name=H:M\"")
	}
	templateCmd.AddCommand(templateSetCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateCheckCmd)
}

// buildTemplateForm assembles the raw form from the CLI flags.
func buildTemplateForm() (input.TemplateForm, error) {
	form := input.TemplateForm{
		Mode:  tplMode,
		ByDay: map[string]input.DayForm{},
	}

	var err error
	if form.Weekday, err = parseBaseSpec(tplWeekday); err != nil {
		return form, err
	}
	if form.Weekend, err = parseBaseSpec(tplWeekend); err != nil {
		return form, err
	}
	if form.Extras, err = parseExtraSpecs(tplExtras); err != nil {
		return form, err
	}

	for _, spec := range tplDays {
		key, rest, ok := strings.Cut(spec, ":")
		key = strings.TrimSpace(key)
		if !ok || !validDayKey(key) {
			return form, fmt.Errorf("invalid day spec %q (want \"mon:sleep=7:00,...\")", spec)
		}
		df := form.ByDay[key]
		if df.Base, err = parseBaseSpec(rest); err != nil {
			return form, err
		}
		form.ByDay[key] = df
	}

	extraCount := map[string]int{}
	for _, spec := range tplDayExtras {
		key, rest, ok := strings.Cut(spec, ":")
		key = strings.TrimSpace(key)
		if !ok || !validDayKey(key) {
			return form, fmt.Errorf("invalid day extra %q (want \"mon:Name=H:M\")", spec)
		}
		idx := extraCount[key]
		if idx >= model.MaxExtras {
			return form, fmt.Errorf("at most %d extras are allowed for %s", model.MaxExtras, key)
		}
		rows, err := parseExtraSpecs([]string{rest})
		if err != nil {
			return form, err
		}
		df := form.ByDay[key]
		df.Extras[idx] = rows[0]
		form.ByDay[key] = df
		extraCount[key]++
	}

	return form, nil
}

func validDayKey(key string) bool {
	for _, k := range model.DayKeys {
		if k == key {
			return true
		}
	}
	return false
}

func runTemplateSet(cmd *cobra.Command, args []string) error {
	form, err := buildTemplateForm()
	if err != nil {
		return err
	}

	tpl, errs := input.CollectTemplate(form)
	if len(errs) > 0 {
		printErrors(errs)
		return fmt.Errorf("template not saved")
	}

	gw, _, closeStore, err := openGateway()
	if err != nil {
		return err
	}
	defer closeStore()

	if !gw.SaveTemplate(tpl) {
		return fmt.Errorf("saving failed, check the data directory")
	}
	fmt.Println("Template saved.")
	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	gw, _, closeStore, err := openGateway()
	if err != nil {
		return err
	}
	defer closeStore()

	tpl := gw.LoadTemplate()
	if tpl == nil {
		fmt.Println("No template saved.")
		return nil
	}

	fmt.Printf("mode: %s\n", tpl.Mode)
	if tpl.Mode == model.ModeByDay {
		for _, key := range model.DayKeys {
			printDayEntry(input.DayLabel(key), tpl.ByDay[key])
		}
		return nil
	}
	printDayEntry("weekday", tpl.WeekdayWeekend.Weekday)
	printDayEntry("weekend", tpl.WeekdayWeekend.Weekend)
	return nil
}

func printDayEntry(label string, entry model.DayEntry) {
	total := entry.TotalMinutes()
	fmt.Printf("%-10s required %s (%d min)", label, timecalc.FormatMinutes(total), total)
	if msg := timecalc.ValidateTotal(total); msg == "" {
		fmt.Printf(", free %s", timecalc.FormatMinutes(timecalc.FreeMinutes(total)))
	}
	fmt.Println()
	for _, ex := range entry.Extras {
		fmt.Printf("           + %s %s\n", ex.Name, timecalc.FormatMinutes(ex.Minutes))
	}
}

func runTemplateCheck(cmd *cobra.Command, args []string) error {
	form, err := buildTemplateForm()
	if err != nil {
		return err
	}

	if form.Mode == model.ModeByDay {
		result := input.CalcByDay(form)
		for _, key := range model.DayKeys {
			day := result.Days[key]
			fmt.Printf("%-10s required %s, free %s\n",
				input.DayLabel(key), timecalc.FormatMinutes(day.Total), timecalc.FormatMinutes(day.Free))
		}
		if result.Err != "" {
			fmt.Println(result.Err)
		}
		return nil
	}

	result := input.CalcWeekdayWeekend(form)
	fmt.Printf("%-10s required %s, free %s\n",
		"weekday", timecalc.FormatMinutes(result.Weekday.Total), timecalc.FormatMinutes(result.Weekday.Free))
	fmt.Printf("%-10s required %s, free %s\n",
		"weekend", timecalc.FormatMinutes(result.Weekend.Total), timecalc.FormatMinutes(result.Weekend.Free))
	if result.Err != "" {
		fmt.Println(result.Err)
	}
	return nil
}
