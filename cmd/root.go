package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timebudget",
	Short: "timebudget is a personal daily time-budget planner",
	Long: `timebudget tracks how much of each day is already spoken for.
Set a weekly template (weekday/weekend or per day), override specific
dates, and see the free minutes left per day and over the last week.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(overrideCmd)
	rootCmd.AddCommand(clearCmd)
}
