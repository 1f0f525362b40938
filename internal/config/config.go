// Package config loads aiswe settings from an optional .aiswe.yaml file
// using Viper. A missing file falls back to built-in defaults; invalid
// values are reported together, one per line.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

// validFormats is the set of allowed output.format values.
var validFormats = map[string]bool{
	"summary": true,
	"table":   true,
	"json":    true,
}

// Manager defines the interface for loading and validating aiswe
// configuration.
type Manager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
}

// viperManager implements Manager using Viper for reading YAML files.
type viperManager struct {
	// explicitPath, when non-empty, names the exact config file to read
	// instead of searching the standard locations.
	explicitPath string
}

// NewManager creates a Manager. When explicitPath is empty the manager
// searches the working directory and $HOME for a .aiswe.yaml file.
func NewManager(explicitPath string) Manager {
	return &viperManager{explicitPath: explicitPath}
}

// Default returns a Config populated with the built-in defaults.
func Default() *models.Config {
	return &models.Config{
		Output: models.OutputConfig{
			Format: "summary",
			Color:  true,
		},
		Report: models.ReportConfig{
			TopPriorities:  5,
			QuickWinMonths: 12,
		},
	}
}

// Load reads the configuration file, applying defaults for missing keys.
// No file found is not an error: defaults are returned. An explicitly
// requested file that cannot be read is an error. The result is validated
// before being returned.
func (m *viperManager) Load() (*models.Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	if m.explicitPath != "" {
		v.SetConfigFile(m.explicitPath)
	} else {
		v.SetConfigName(".aiswe")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("report.top_priorities", cfg.Report.TopPriorities)
	v.SetDefault("report.quick_win_months", cfg.Report.QuickWinMonths)
	v.SetDefault("catalog.overlays", cfg.Catalog.Overlays)
	v.SetDefault("log.verbose", cfg.Log.Verbose)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.Output.Format = v.GetString("output.format")
	cfg.Output.Color = v.GetBool("output.color")
	cfg.Report.TopPriorities = v.GetInt("report.top_priorities")
	cfg.Report.QuickWinMonths = v.GetFloat64("report.quick_win_months")
	cfg.Catalog.Overlays = v.GetStringSlice("catalog.overlays")
	cfg.Log.Verbose = v.GetBool("log.verbose")

	if err := m.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid field values and reports
// every problem found.
func (m *viperManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if !validFormats[cfg.Output.Format] {
		errs = append(errs, fmt.Sprintf(
			"output.format %q is invalid, must be one of: summary, table, json",
			cfg.Output.Format,
		))
	}

	if cfg.Report.TopPriorities <= 0 {
		errs = append(errs, fmt.Sprintf(
			"report.top_priorities must be positive, got %d",
			cfg.Report.TopPriorities,
		))
	}

	if cfg.Report.QuickWinMonths <= 0 {
		errs = append(errs, fmt.Sprintf(
			"report.quick_win_months must be positive, got %g",
			cfg.Report.QuickWinMonths,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
