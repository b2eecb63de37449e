package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an expense by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id := args[0]
	e, found := s.ledger.Snapshot().FindExpense(id)
	if !found {
		return fmt.Errorf("no expense with id %q", id)
	}
	s.ledger.DeleteExpense(id)
	infof("  Deleted %s %s on %s\n", s.money(e.Amount), e.Category, e.Date)
	return nil
}
