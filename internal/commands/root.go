package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetbook-dev/budgetbook/internal/applog"
	"github.com/budgetbook-dev/budgetbook/internal/buildinfo"
	"github.com/budgetbook-dev/budgetbook/internal/config"
	"github.com/budgetbook-dev/budgetbook/internal/period"
	"github.com/budgetbook-dev/budgetbook/internal/session"
	"github.com/budgetbook-dev/budgetbook/internal/storage"
)

// configFile is the optional per-directory configuration file.
const configFile = "budgetbook.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "budgetbook",
		Short:   "Local-first monthly budgeting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newEditCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newBudgetCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}

// openSession loads config and persisted state for a data directory.
func openSession(dataDir string) (*session.Session, string, error) {
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadOrDefault(filepath.Join(absDir, configFile))
	if err != nil {
		return nil, "", err
	}

	store := storage.NewFileStore(filepath.Join(absDir, "data"))
	sess := session.New(absDir, store, cfg, applog.Default())
	sess.Load()
	return sess, absDir, nil
}

// parsePeriod parses a "YYYY-MM" month flag.
func parsePeriod(s string) (period.Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return period.Period{}, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return period.Period{Month: t.Month(), Year: t.Year()}, nil
}
