package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/time-budget/internal/input"
	"github.com/nhle/time-budget/internal/stats"
	"github.com/nhle/time-budget/internal/timecalc"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage per-date overrides",
}

var (
	ovBase   string
	ovExtras []string
	ovMemo   string
)

var overrideSetCmd = &cobra.Command{
	Use:   "set <date>",
	Short: "Replace one date's profile entirely",
	Long: `Set an override for a calendar date. While the override exists it
fully governs that date; the template is not consulted.`,
	Example: `  timebudget override set 2026-09-01 --base "sleep=8:00,work=4:00" --extra "Trip=3:00" --memo "half day"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runOverrideSet,
}

var overrideShowCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show what governs a date",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrideShow,
}

var overrideDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a date's override, reverting it to the template",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrideDelete,
}

func init() {
	overrideSetCmd.Flags().StringVar(&ovBase, "base", "", "Base spec, e.g. \"sleep=8:00,work=4:00\"")
	overrideSetCmd.Flags().StringArrayVar(&ovExtras, "extra", nil, "Extra item \"Name=H:M\" (max 3)")
	overrideSetCmd.Flags().StringVar(&ovMemo, "memo", "", "Free-form note for the date")

	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideShowCmd)
	overrideCmd.AddCommand(overrideDeleteCmd)
}

// parseDateArg rejects anything that is not a "YYYY-MM-DD" date.
func parseDateArg(arg string) (string, error) {
	if _, err := time.Parse(timecalc.DateLayout, arg); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return arg, nil
}

func runOverrideSet(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	form := input.OverrideForm{Memo: ovMemo}
	if form.Day.Base, err = parseBaseSpec(ovBase); err != nil {
		return err
	}
	if form.Day.Extras, err = parseExtraSpecs(ovExtras); err != nil {
		return err
	}

	entry, errs := input.CollectOverride(form)
	if len(errs) > 0 {
		printErrors(errs)
		return fmt.Errorf("override not saved")
	}

	gw, _, closeStore, err := openGateway()
	if err != nil {
		return err
	}
	defer closeStore()

	if !gw.SaveOverride(date, entry) {
		return fmt.Errorf("saving failed, check the data directory")
	}
	fmt.Printf("Override saved for %s.\n", date)
	return nil
}

func runOverrideShow(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	gw, _, closeStore, err := openGateway()
	if err != nil {
		return err
	}
	defer closeStore()

	if entry := gw.GetOverride(date); entry != nil {
		fmt.Printf("%s is overridden", date)
		if entry.Memo != "" {
			fmt.Printf(" (%s)", entry.Memo)
		}
		fmt.Println()
		printDayEntry(date, entry.DayEntry())
		return nil
	}

	result := stats.NewCalculator(gw, nil).ForDate(date)
	fmt.Printf("%s has no override; the template governs it.\n", date)
	if result.Err != "" {
		fmt.Println(result.Err)
		return nil
	}
	fmt.Printf("required %s (%d min), free %s\n",
		timecalc.FormatMinutes(result.Total), result.Total, timecalc.FormatMinutes(result.Free))
	return nil
}

func runOverrideDelete(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	gw, _, closeStore, err := openGateway()
	if err != nil {
		return err
	}
	defer closeStore()

	if !gw.DeleteOverride(date) {
		return fmt.Errorf("delete failed, check the data directory")
	}
	fmt.Printf("Override deleted for %s; the date reverts to the template.\n", date)
	return nil
}
