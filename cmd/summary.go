package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "This month's spending against the budget",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	now := time.Now()
	sum := pipeline.Summarize(s.ledger.Snapshot(), now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CYROS  " + cli.FormatMonth(now)))
	fmt.Println()
	fmt.Print(renderBudgetTable(s, sum))

	if len(sum.TopCategories) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted("  No expenses yet. Add one with `cyros add 12.50 -c Food`."))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Print(renderTopCategories(s, sum.TopCategories))

	if len(sum.Breakdown) > 0 {
		fmt.Println()
		fmt.Print(renderBreakdown(s, sum.Breakdown))
	}
	fmt.Println()
	return nil
}

func renderBudgetTable(s *session, sum model.MonthSummary) string {
	b := sum.Budget
	return cli.RenderTable(cli.Table{
		Title: "Budget",
		Rows: [][]string{
			{"Spent", s.money(b.Spent)},
			{"Budget", s.money(b.Budget)},
			{"Remaining", cli.RenderStatus(cli.FormatRemaining(b.Remaining, s.cfg.General.CurrencySymbol), b.UsedPercent)},
			cli.SeparatorRow,
			{"Used", cli.FormatRatio(b.UsedPercent)},
			{"", cli.RenderBudgetBar(b.UsedPercent, 24)},
			{"Expenses", cli.FormatNumber(int64(sum.ExpenseCount))},
		},
	})
}

func renderTopCategories(s *session, stats []model.CategoryStat) string {
	rows := make([][]string, 0, len(stats))
	for i, c := range stats {
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, c.Category),
			s.money(c.Amount),
			cli.FormatNumber(int64(c.Count)),
		})
	}
	return cli.RenderTable(cli.Table{
		Title:   "Top Categories (all time)",
		Headers: []string{"Category", "Spent", "Count"},
		Rows:    rows,
	})
}

func renderBreakdown(s *session, stats []model.CategoryStat) string {
	peak := stats[0].Amount
	rows := make([][]string, 0, len(stats))
	for _, c := range stats {
		rows = append(rows, []string{
			c.Category,
			s.money(c.Amount),
			cli.FormatPercent(c.Percent),
			cli.RenderBar(c.Amount, peak, 16),
		})
	}
	return cli.RenderTable(cli.Table{
		Title:   "This Month by Category",
		Headers: []string{"Category", "Spent", "Share", ""},
		Rows:    rows,
	})
}
