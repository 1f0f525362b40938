package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Helper ---

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// --- Load tests ---

func TestLoad_Defaults_WhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := NewManager("").Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output.Format != "summary" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "summary")
	}
	if !cfg.Output.Color {
		t.Errorf("Output.Color = false, want true")
	}
	if cfg.Report.TopPriorities != 5 {
		t.Errorf("Report.TopPriorities = %d, want 5", cfg.Report.TopPriorities)
	}
	if cfg.Report.QuickWinMonths != 12 {
		t.Errorf("Report.QuickWinMonths = %g, want 12", cfg.Report.QuickWinMonths)
	}
	if len(cfg.Catalog.Overlays) != 0 {
		t.Errorf("Catalog.Overlays = %v, want empty", cfg.Catalog.Overlays)
	}
	if cfg.Log.Verbose {
		t.Errorf("Log.Verbose = true, want false")
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".aiswe.yaml", `
output:
  format: table
  color: false
report:
  top_priorities: 3
  quick_win_months: 6
catalog:
  overlays:
    - extra.yaml
log:
  verbose: true
`)

	cfg, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "table")
	}
	if cfg.Output.Color {
		t.Errorf("Output.Color = true, want false")
	}
	if cfg.Report.TopPriorities != 3 {
		t.Errorf("Report.TopPriorities = %d, want 3", cfg.Report.TopPriorities)
	}
	if cfg.Report.QuickWinMonths != 6 {
		t.Errorf("Report.QuickWinMonths = %g, want 6", cfg.Report.QuickWinMonths)
	}
	if len(cfg.Catalog.Overlays) != 1 || cfg.Catalog.Overlays[0] != "extra.yaml" {
		t.Errorf("Catalog.Overlays = %v, want [extra.yaml]", cfg.Catalog.Overlays)
	}
	if !cfg.Log.Verbose {
		t.Errorf("Log.Verbose = false, want true")
	}
}

func TestLoad_PartialConfig_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".aiswe.yaml", `
output:
  format: json
`)

	cfg, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	// Remaining fields should have defaults.
	if !cfg.Output.Color {
		t.Errorf("Output.Color = false, want default true")
	}
	if cfg.Report.TopPriorities != 5 {
		t.Errorf("Report.TopPriorities = %d, want default 5", cfg.Report.TopPriorities)
	}
	if cfg.Report.QuickWinMonths != 12 {
		t.Errorf("Report.QuickWinMonths = %g, want default 12", cfg.Report.QuickWinMonths)
	}
}

func TestLoad_FindsFileInHome(t *testing.T) {
	t.Chdir(t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, ".aiswe.yaml", `
report:
  top_priorities: 7
`)

	cfg, err := NewManager("").Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Report.TopPriorities != 7 {
		t.Errorf("Report.TopPriorities = %d, want 7", cfg.Report.TopPriorities)
	}
}

func TestLoad_ExplicitPathMissing_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	if _, err := NewManager(path).Load(); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidValues_Error(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".aiswe.yaml", `
output:
  format: csv
report:
  top_priorities: 0
  quick_win_months: -1
`)

	_, err := NewManager(path).Load()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"output.format", "report.top_priorities", "report.quick_win_months"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err.Error(), want)
		}
	}
}

// --- Validate tests ---

func TestValidate_NilConfig(t *testing.T) {
	if err := NewManager("").Validate(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestValidate_Defaults(t *testing.T) {
	if err := NewManager("").Validate(Default()); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}
