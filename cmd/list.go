package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagListMonth    int
	flagListCategory string
	flagListSearch   string
	flagListLimit    int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"log", "ls"},
	Short:   "Transaction log, newest first",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListMonth, "month", "m", 0, "Only this month number (1-12)")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only this category")
	listCmd.Flags().StringVarP(&flagListSearch, "search", "s", "", "Match category or notes")
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "l", 0, "Show at most N expenses (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if flagListMonth < 0 || flagListMonth > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", flagListMonth)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	expenses := s.ledger.Snapshot().Expenses
	if flagListMonth != 0 {
		expenses = pipeline.FilterByMonth(expenses, time.Month(flagListMonth))
	}
	expenses = pipeline.FilterByCategory(expenses, flagListCategory)
	expenses = pipeline.FilterBySearch(expenses, flagListSearch)
	expenses = pipeline.SortByDate(expenses)

	if len(expenses) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted("  No expenses found."))
		fmt.Println()
		return nil
	}

	total := len(expenses)
	if flagListLimit > 0 && len(expenses) > flagListLimit {
		expenses = expenses[:flagListLimit]
	}

	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{e.Date.String(), e.Category, s.money(e.Amount), e.Notes, e.ID})
	}
	rows = append(rows, cli.SeparatorRow)
	rows = append(rows, []string{"Total", "", s.money(pipeline.Sum(expenses)), "", ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Transactions (%d of %d)", len(expenses), total),
		Headers: []string{"Date", "Category", "Amount", "Notes", "ID"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
