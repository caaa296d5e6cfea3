package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/model"
)

func newListCommand() *cobra.Command {
	var monthStr string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := openSession(dataDir)
			if err != nil {
				return err
			}

			txns := sess.Transactions()
			if monthStr != "" {
				p, err := parsePeriod(monthStr)
				if err != nil {
					return err
				}
				var filtered []model.Transaction
				for _, t := range txns {
					if p.Contains(t.Date) {
						filtered = append(filtered, t)
					}
				}
				txns = filtered
			}

			if len(txns) == 0 {
				fmt.Println("no transactions")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tKIND\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, t := range txns {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Date.Format("2006-01-02"), t.Kind, t.Category, t.Amount.StringFixed(2), t.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "show one month only (YYYY-MM)")
	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
