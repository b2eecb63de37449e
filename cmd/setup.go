package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/cyros/internal/config"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	symbol := cfg.General.CurrencySymbol
	months := strconv.Itoa(cfg.General.TrendMonths)
	themeName := cfg.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Label, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cyros").
				Description("A local expense tracker. These settings live in\n"+config.Path()),
			huh.NewSelect[string]().
				Title("Currency symbol").
				Options(
					huh.NewOption("$ (dollar)", "$"),
					huh.NewOption("€ (euro)", "€"),
					huh.NewOption("£ (pound)", "£"),
					huh.NewOption("¥ (yen)", "¥"),
					huh.NewOption("₹ (rupee)", "₹"),
				).
				Value(&symbol),
			huh.NewInput().
				Title("Months in the trend view").
				Description("1 to 12").
				Value(&months).
				Validate(validateTrendMonths),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg.General.CurrencySymbol = symbol
	cfg.General.TrendMonths, _ = strconv.Atoi(months)
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `cyros setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateTrendMonths(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return errors.New("enter a number from 1 to 12")
	}
	return nil
}
