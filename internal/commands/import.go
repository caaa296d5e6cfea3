package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/importer"
)

func newImportCommand() *cobra.Command {
	var format string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			sess, _, err := openSession(dataDir)
			if err != nil {
				return err
			}

			added, skipped, err := importer.Import(sess, parser, f)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			fmt.Printf("Imported %d transactions (%d skipped)\n", added, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "simple", "CSV format")
	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
