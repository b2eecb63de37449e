package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [AMOUNT]",
	Short: "Show or set the monthly budget",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	var amount float64
	if len(args) == 1 {
		var err error
		if amount, err = model.ParseBudget(args[0]); err != nil {
			return err
		}
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if len(args) == 1 {
		s.ledger.UpdateBudget(amount)
		infof("  Monthly budget set to %s\n", s.money(amount))
		return nil
	}

	b := pipeline.Budget(s.ledger.Snapshot(), time.Now())
	fmt.Printf("  Budget:  %s\n", s.money(b.Budget))
	fmt.Printf("  Spent:   %s (%s)\n", s.money(b.Spent), cli.FormatRatio(b.UsedPercent))
	fmt.Printf("  %s\n", cli.RenderStatus(cli.FormatRemaining(b.Remaining, s.cfg.General.CurrencySymbol), b.UsedPercent))
	fmt.Printf("  %s\n", cli.RenderBudgetBar(b.UsedPercent, 32))
	return nil
}
