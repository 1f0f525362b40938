package models

// OutputConfig holds presentation defaults for report rendering.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // summary, table, or json
	Color  bool   `yaml:"color" mapstructure:"color"`
}

// ReportConfig holds query defaults the CLI applies when flags are omitted.
// Scoring weights are part of the catalog contract and are deliberately not
// configurable.
type ReportConfig struct {
	TopPriorities  int     `yaml:"top_priorities" mapstructure:"top_priorities"`
	QuickWinMonths float64 `yaml:"quick_win_months" mapstructure:"quick_win_months"`
}

// CatalogConfig holds optional catalog overlay files applied at startup.
// Overlays register additional or replacement entries; the built-in seed
// catalog never depends on them.
type CatalogConfig struct {
	Overlays []string `yaml:"overlays,omitempty" mapstructure:"overlays"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// Config holds system-wide settings read from .aiswe.yaml via Viper.
type Config struct {
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}
