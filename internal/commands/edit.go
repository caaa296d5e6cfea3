package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/ledger"
	"github.com/budgetbook-dev/budgetbook/internal/model"
)

func newEditCommand() *cobra.Command {
	var description string
	var amount string
	var category string
	var kind string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txnID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			sess, _, err := openSession(dataDir)
			if err != nil {
				return err
			}

			// Only flags the user set are merged; the rest stay unchanged.
			var fields ledger.UpdateFields
			if cmd.Flags().Changed("description") {
				fields.Description = &description
			}
			if cmd.Flags().Changed("amount") {
				fields.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				c := model.Category(category)
				fields.Category = &c
			}
			if cmd.Flags().Changed("kind") {
				k := model.Kind(kind)
				fields.Kind = &k
			}

			if !sess.UpdateTransaction(txnID, fields) {
				fmt.Printf("no update applied to transaction %d\n", txnID)
				return nil
			}

			fmt.Printf("Updated transaction %d\n", txnID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&kind, "kind", "", "new kind (income or expense)")
	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
