package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	var monthStr string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the month's totals and per-category budget status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := openSession(dataDir)
			if err != nil {
				return err
			}

			if monthStr != "" {
				p, err := parsePeriod(monthStr)
				if err != nil {
					return err
				}
				sess.SelectMonth(p.Month, p.Year)
			}

			m := sess.Summary()

			fmt.Printf("Summary for %s\n\n", m.Period)
			fmt.Printf("  Income:  %s\n", m.TotalIncome.StringFixed(2))
			fmt.Printf("  Expense: %s\n", m.TotalExpense.StringFixed(2))
			fmt.Printf("  Balance: %s\n\n", m.Balance.StringFixed(2))

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSPENT\tLIMIT\tPCT\tSTATUS")
			for _, l := range m.Categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\n",
					l.Category, l.Spent.StringFixed(2), l.Limit.StringFixed(2), l.Percentage.StringFixed(1), l.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "month to summarize (YYYY-MM), default current")
	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
