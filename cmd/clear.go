package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored template and all overrides",
	Long: `Clear removes both stored documents entirely. This cannot be undone;
a subsequent show reports no template, not an empty one.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deletion")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to delete all data without --yes")
	}

	gw, _, closeStore, err := openGateway()
	if err != nil {
		return err
	}
	defer closeStore()

	if !gw.ClearAll() {
		return fmt.Errorf("clearing failed, check the data directory")
	}
	fmt.Println("All data deleted.")
	return nil
}
