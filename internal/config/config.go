package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/budgetbook-dev/budgetbook/internal/budget"
	"github.com/budgetbook-dev/budgetbook/internal/model"
	"github.com/budgetbook-dev/budgetbook/internal/summary"
)

// Config represents the top-level budgetbook.yaml configuration. The file
// is optional; the application runs entirely on defaults without it.
type Config struct {
	Thresholds ThresholdsConfig   `yaml:"thresholds"`
	Limits     map[string]float64 `yaml:"limits,omitempty"`
}

// ThresholdsConfig overrides the budget status percentage bounds.
type ThresholdsConfig struct {
	Warning float64 `yaml:"warning"`
	Over    float64 `yaml:"over"`
}

// Load reads a budgetbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads budgetbook.yaml, falling back to defaults when the
// file is absent. Parse errors are still reported.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard thresholds and no limit
// overrides.
func Default() *Config {
	return &Config{
		Thresholds: ThresholdsConfig{
			Warning: 75,
			Over:    100,
		},
	}
}

// SummaryThresholds converts the configured bounds for the aggregation
// engine. Non-positive values fall back to the defaults.
func (c *Config) SummaryThresholds() summary.Thresholds {
	th := summary.DefaultThresholds()
	if c.Thresholds.Warning > 0 {
		th.Warning = decimal.NewFromFloat(c.Thresholds.Warning)
	}
	if c.Thresholds.Over > 0 {
		th.Over = decimal.NewFromFloat(c.Thresholds.Over)
	}
	return th
}

// BudgetDefaults returns the seed budget table with any configured limit
// overrides applied. Unknown categories and negative values are ignored.
func (c *Config) BudgetDefaults() model.Budgets {
	limits := budget.DefaultLimits()
	for name, value := range c.Limits {
		category := model.Category(name)
		if !model.ValidCategory(category) || value < 0 {
			continue
		}
		limits[category] = decimal.NewFromFloat(value)
	}
	return limits
}
