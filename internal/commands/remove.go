package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
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

			if !sess.DeleteTransaction(txnID) {
				fmt.Printf("no transaction with id %d\n", txnID)
				return nil
			}

			fmt.Printf("Removed transaction %d\n", txnID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
