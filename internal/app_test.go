package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aiswe-dev/aiswe/internal/assistant"
	"github.com/aiswe-dev/aiswe/internal/evaluator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".aiswe.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestNewApp_WiresEverything(t *testing.T) {
	path := writeConfig(t, "output:\n  format: table\nreport:\n  quick_win_months: 6\n")

	app, err := NewApp(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if app.Config.Output.Format != "table" {
		t.Errorf("expected config format table, got %q", app.Config.Output.Format)
	}
	if app.Config.Report.QuickWinMonths != 6 {
		t.Errorf("expected quick win months 6, got %g", app.Config.Report.QuickWinMonths)
	}
	if app.Tasks.Len() != 9 || app.Challenges.Len() != 9 || app.Solutions.Len() != 9 {
		t.Errorf("expected 9/9/9 seeded entries, got %d/%d/%d",
			app.Tasks.Len(), app.Challenges.Len(), app.Solutions.Len())
	}
	if app.Eval == nil {
		t.Error("evaluator not constructed")
	}
	if app.Assistant == nil || app.Assistant.CommandCount() == 0 {
		t.Error("assistant surface not populated")
	}
	if len(app.Relationships) == 0 {
		t.Error("relationship table not retained")
	}
}

func TestNewApp_DefaultsWithoutConfigFile(t *testing.T) {
	// An explicit path that exists but is empty yields pure defaults.
	path := writeConfig(t, "")

	app, err := NewApp(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Config.Output.Format != "summary" {
		t.Errorf("expected default format summary, got %q", app.Config.Output.Format)
	}
	if app.Config.Report.TopPriorities != 5 {
		t.Errorf("expected default top priorities 5, got %d", app.Config.Report.TopPriorities)
	}
}

func TestNewApp_InvalidConfigFails(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\n")

	_, err := NewApp(Options{ConfigPath: path})
	if err == nil {
		t.Fatal("expected error for invalid output format")
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewApp_OverlayApplied(t *testing.T) {
	dir := t.TempDir()
	overlayPath := filepath.Join(dir, "overlay.yaml")
	overlay := `tasks:
  - name: Overlay Task
    category: code_generation
    description: Added by overlay.
    metrics:
      scope: function
      complexity: low
      intervention: low
`
	if err := os.WriteFile(overlayPath, []byte(overlay), 0644); err != nil {
		t.Fatalf("writing overlay fixture: %v", err)
	}
	configPath := filepath.Join(dir, ".aiswe.yaml")
	cfg := "catalog:\n  overlays:\n    - " + overlayPath + "\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	app, err := NewApp(Options{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Tasks.Len() != 10 {
		t.Errorf("expected overlay task to be registered, got %d tasks", app.Tasks.Len())
	}
	if _, ok := app.Tasks.Get("Overlay Task"); !ok {
		t.Error("overlay task not found in registry")
	}
}

func TestNewApp_MissingOverlayFails(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".aiswe.yaml")
	cfg := "catalog:\n  overlays:\n    - " + filepath.Join(dir, "missing.yaml") + "\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	_, err := NewApp(Options{ConfigPath: configPath})
	if err == nil {
		t.Fatal("expected error for missing overlay file")
	}
	if !strings.Contains(err.Error(), "loading overlay") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewApp_AssessChallengesExecutor(t *testing.T) {
	path := writeConfig(t, "")
	app, err := NewApp(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	result := app.Assistant.Execute(context.Background(), "assess_challenges", map[string]any{
		"task_name": "Code Migration",
	})
	if result.Status != assistant.StatusExecuted {
		t.Fatalf("expected executed status, got %s (%s)", result.Status, result.Message)
	}
	assessments, ok := result.Data.([]challengeAssessment)
	if !ok {
		t.Fatalf("unexpected data type %T", result.Data)
	}
	if len(assessments) != 8 {
		t.Errorf("expected 8 challenges affecting Code Migration, got %d", len(assessments))
	}
	for _, assessment := range assessments {
		if len(assessment.Solutions) == 0 {
			t.Errorf("challenge %s should list solutions by default", assessment.Name)
		}
	}
}

func TestNewApp_AssessChallengesWithoutSolutions(t *testing.T) {
	path := writeConfig(t, "")
	app, err := NewApp(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	result := app.Assistant.Execute(context.Background(), "assess_challenges", map[string]any{
		"include_solutions": "false",
	})
	if result.Status != assistant.StatusExecuted {
		t.Fatalf("expected executed status, got %s", result.Status)
	}
	assessments, ok := result.Data.([]challengeAssessment)
	if !ok {
		t.Fatalf("unexpected data type %T", result.Data)
	}
	if len(assessments) != 9 {
		t.Errorf("expected full impact ranking without task_name, got %d", len(assessments))
	}
	for _, assessment := range assessments {
		if len(assessment.Solutions) != 0 {
			t.Errorf("challenge %s should not list solutions", assessment.Name)
		}
	}
}

func TestNewApp_BenchmarkPerformanceExecutor(t *testing.T) {
	path := writeConfig(t, "")
	app, err := NewApp(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	result := app.Assistant.Execute(context.Background(), "benchmark_performance", nil)
	if result.Status != assistant.StatusExecuted {
		t.Fatalf("expected executed status, got %s", result.Status)
	}
	report, ok := result.Data.(*evaluator.BenchmarkReport)
	if !ok {
		t.Fatalf("unexpected data type %T", result.Data)
	}
	if report.ReadinessGrade != "F (Critical)" {
		t.Errorf("unexpected grade %q", report.ReadinessGrade)
	}
}
