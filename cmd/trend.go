package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagTrendMonths int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Monthly spending trend against the budget",
	Args:  cobra.NoArgs,
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().IntVar(&flagTrendMonths, "months", 0, "Number of months (default from config)")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	n := s.cfg.General.TrendMonths
	if flagTrendMonths > 0 {
		n = flagTrendMonths
	}
	if n > 12 {
		// Months are matched by number only, so a longer window would count the same month twice.
		return fmt.Errorf("at most 12 months can be shown, got %d", n)
	}

	data := s.ledger.Snapshot()
	buckets := pipeline.Trend(data.Expenses, time.Now(), n)

	values := make([]float64, len(buckets))
	peak := 0.0
	for i, b := range buckets {
		values[i] = b.Total
		peak = max(peak, b.Total)
	}

	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		used := 0.0
		if data.MonthlyBudget > 0 {
			used = b.Total / data.MonthlyBudget
		}
		rows = append(rows, []string{
			b.Label,
			s.money(b.Total),
			cli.FormatNumber(int64(b.Count)),
			cli.RenderStatus(cli.FormatRatio(used), used),
			cli.RenderBar(b.Total, peak, 20),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TREND  Last %d months", n)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget " + s.money(data.MonthlyBudget) + "/month",
		Headers: []string{"Month", "Spent", "Count", "Of Budget", ""},
		Rows:    rows,
	}))
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))
	return nil
}
