package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/audit"
)

func newLogCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the audit trail of applied intents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			entries, err := audit.Read(absDir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no audit entries")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIMESTAMP\tACTION\tTXN\tDETAILS")
			for _, e := range entries {
				txn := ""
				if e.TransactionID != 0 {
					txn = fmt.Sprintf("%d", e.TransactionID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp.Format(time.RFC3339), e.Action, txn, e.Details)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
