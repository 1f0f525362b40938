package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCoverage_Summary(t *testing.T) {
	withSeededCatalog(t)

	rendered, err := renderCoverage(Eval.ChallengeCoverage(), Challenges.Names(), formatSummary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "Total challenges: 9") {
		t.Errorf("missing challenge total:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Covered:          9 (100.0%)") {
		t.Errorf("missing coverage line:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Library and API Version Updates") {
		t.Errorf("missing under-addressed challenge:\n%s", rendered)
	}
	if strings.Contains(rendered, "Uncovered:") {
		t.Errorf("seed catalog has no uncovered challenges:\n%s", rendered)
	}
}

func TestRenderCoverage_TableListsEveryChallenge(t *testing.T) {
	withSeededCatalog(t)

	rendered, err := renderCoverage(Eval.ChallengeCoverage(), Challenges.Names(), formatTable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range Challenges.Names() {
		if !strings.Contains(rendered, string(name)) {
			t.Errorf("table missing challenge %q", name)
		}
	}
}

func TestRenderRoadmap_Summary(t *testing.T) {
	withSeededCatalog(t)

	rendered, err := renderRoadmap(Eval.ImplementationRoadmap(), formatSummary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "Short-term goals (0):") {
		t.Errorf("expected empty short-term bucket:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Medium-term objectives (3):") {
		t.Errorf("expected 3 medium-term solutions:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Long-term research (6):") {
		t.Errorf("expected 6 long-term solutions:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Challenge priorities (5):") {
		t.Errorf("expected 5 challenge priorities:\n%s", rendered)
	}
	// No seed solution clears both the 6-month horizon and high effectiveness.
	if !strings.Contains(rendered, "Quick wins (high effectiveness, short horizon):\n  none") {
		t.Errorf("expected empty quick wins:\n%s", rendered)
	}
}

func TestRenderBenchmark_Summary(t *testing.T) {
	withSeededCatalog(t)

	rendered, err := renderBenchmark(Eval.BenchmarkState(), formatSummary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "Challenges: 9 (4 critical") {
		t.Errorf("missing challenge counts:\n%s", rendered)
	}
	if !strings.Contains(rendered, "F (Critical)") {
		t.Errorf("missing readiness grade:\n%s", rendered)
	}
	if !strings.Contains(rendered, "URGENT") {
		t.Errorf("missing urgency recommendation:\n%s", rendered)
	}
}

func TestRenderOverview_Summary(t *testing.T) {
	withSeededCatalog(t)

	rendered, err := renderOverview(Eval.Overview(), formatSummary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "Tasks:              9") {
		t.Errorf("missing task total:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Assistant commands: 15") {
		t.Errorf("missing command total:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Critical challenges: 4") {
		t.Errorf("missing critical count:\n%s", rendered)
	}
}

func TestReportCmds_NilEvaluator(t *testing.T) {
	orig := Eval
	defer func() { Eval = orig }()
	Eval = nil

	cmds := []struct {
		name string
		run  func() error
	}{
		{"coverage", func() error { return reportCoverageCmd.RunE(reportCoverageCmd, nil) }},
		{"roadmap", func() error { return reportRoadmapCmd.RunE(reportRoadmapCmd, nil) }},
		{"benchmark", func() error { return reportBenchmarkCmd.RunE(reportBenchmarkCmd, nil) }},
		{"overview", func() error { return reportOverviewCmd.RunE(reportOverviewCmd, nil) }},
	}
	for _, tt := range cmds {
		if err := tt.run(); err == nil {
			t.Errorf("report %s: expected error when Eval is nil", tt.name)
		}
	}
}

func TestReportBenchmarkCmd_JSONSave(t *testing.T) {
	withSeededCatalog(t)
	origFormat, origSave := reportFormat, reportSave
	defer func() {
		reportFormat = origFormat
		reportSave = origSave
	}()

	path := filepath.Join(t.TempDir(), "benchmark.json")
	reportFormat = "json"
	reportSave = path

	if err := reportBenchmarkCmd.RunE(reportBenchmarkCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved report: %v", err)
	}
	if !strings.Contains(string(data), `"readiness_grade": "F (Critical)"`) {
		t.Errorf("saved report missing grade: %s", string(data))
	}
}

func TestReportRoadmapCmd_TableFormat(t *testing.T) {
	withSeededCatalog(t)
	origFormat := reportFormat
	defer func() { reportFormat = origFormat }()
	reportFormat = "table"

	if err := reportRoadmapCmd.RunE(reportRoadmapCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
