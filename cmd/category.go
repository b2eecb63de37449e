package cmd

import (
	"fmt"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/pipeline"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories", "cat"},
	Short:   "List or add expense categories",
	Args:    cobra.NoArgs,
	RunE:    runCategoryList,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with all-time spend",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

func init() {
	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := s.ledger.Snapshot()
	spent := make(map[string]float64)
	for _, c := range pipeline.CategoryTotals(data) {
		spent[c.Category] = c.Amount
	}

	rows := make([][]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		rows = append(rows, []string{c, s.money(spent[c])})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"Name", "Spent"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	name, err := model.ParseCategory(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !s.ledger.AddCategory(name) {
		infof("  Category %q already exists\n", name)
		return nil
	}
	infof("  Added category %q\n", name)
	return nil
}
