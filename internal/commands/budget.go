package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/model"
)

func newBudgetCommand() *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category monthly limits",
	}
	budgetCmd.AddCommand(newBudgetSetCommand())
	budgetCmd.AddCommand(newBudgetListCommand())
	return budgetCmd
}

func newBudgetSetCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set the monthly limit for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := openSession(dataDir)
			if err != nil {
				return err
			}

			category := model.Category(args[0])
			if !sess.SetBudget(category, args[1]) {
				fmt.Println("rejected: category must be known and limit a non-negative number")
				return nil
			}

			fmt.Printf("Set %s limit to %s\n", category, sess.Budgets()[category])
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}

func newBudgetListCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the budget table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := openSession(dataDir)
			if err != nil {
				return err
			}

			limits := sess.Budgets()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tLIMIT")
			for _, c := range model.Categories() {
				fmt.Fprintf(w, "%s\t%s\n", c, limits[c].StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
