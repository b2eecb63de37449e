package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all expenses and reset categories and budget",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if !flagClearYes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Clear all data?").
			Description("Every expense is deleted and categories and budget return to defaults.").
			Affirmative("Clear").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("confirm prompt: %w", err)
		}
		if !confirmed {
			infof("  Nothing changed.\n")
			return nil
		}
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	s.ledger.ClearAllData()
	infof("  All data cleared.\n")
	return nil
}
