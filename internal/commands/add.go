package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/model"
)

func newAddCommand() *cobra.Command {
	var category string
	var kind string
	var dateStr string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := openSession(dataDir)
			if err != nil {
				return err
			}

			var date time.Time
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateStr)
				}
			}

			txn, ok := sess.AddTransactionAt(date, args[0], args[1], model.Category(category), model.Kind(kind))
			if !ok {
				fmt.Println("rejected: description must be non-empty, amount a non-negative number, and category/kind known")
				return nil
			}

			fmt.Printf("Added %s %s %q (id %d)\n", txn.Kind, txn.Amount, txn.Description, txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", string(model.CategoryOther), "transaction category")
	cmd.Flags().StringVar(&kind, "kind", string(model.KindExpense), "income or expense")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
