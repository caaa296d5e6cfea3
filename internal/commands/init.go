package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/config"
	"github.com/budgetbook-dev/budgetbook/internal/storage"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new budgetbook data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	for _, d := range []string{"data", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default()
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the budget table so first run starts from the documented defaults.
	store := storage.NewFileStore(filepath.Join(dir, "data"))
	limits, err := json.MarshalIndent(cfg.BudgetDefaults(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling default budgets: %w", err)
	}
	if err := store.Put(storage.KeyBudgets, limits); err != nil {
		return fmt.Errorf("seeding budgets: %w", err)
	}

	fmt.Printf("Initialized budgetbook data directory at %s\n", dir)
	return nil
}
