package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/cyros/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddDate     string
	flagAddNotes    string
)

var addCmd = &cobra.Command{
	Use:   "add AMOUNT",
	Short: "Record an expense",
	Example: `  cyros add 12.50 -c Food
  cyros add 40,00 -c Transport -d 2024-06-10 -n "train tickets"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category (required)")
	addCmd.Flags().StringVarP(&flagAddDate, "date", "d", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&flagAddNotes, "notes", "n", "", "Optional notes")
	_ = addCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(addCmd)
}

// parseExpense validates raw user input into a NewExpense.
func parseExpense(amount, category, date, notes string, now time.Time) (model.NewExpense, error) {
	a, err := model.ParseAmount(amount)
	if err != nil {
		return model.NewExpense{}, err
	}
	c, err := model.ParseCategory(category)
	if err != nil {
		return model.NewExpense{}, err
	}
	d := model.DateOf(now)
	if date != "" {
		if d, err = model.ParseDate(date); err != nil {
			return model.NewExpense{}, err
		}
	}
	return model.NewExpense{Amount: a, Category: c, Date: d, Notes: notes}, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	in, err := parseExpense(args[0], flagAddCategory, flagAddDate, flagAddNotes, time.Now())
	if err != nil {
		return err
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !s.ledger.Snapshot().HasCategory(in.Category) {
		infof("  Note: %q is not a known category; run `cyros category add %s` to track it.\n", in.Category, in.Category)
	}

	e := s.ledger.AddExpense(in)
	infof("  Added %s %s on %s\n", s.money(e.Amount), e.Category, e.Date)
	fmt.Println(e.ID)
	return nil
}
