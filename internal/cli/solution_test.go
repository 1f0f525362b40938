package cli

import (
	"strings"
	"testing"
)

func TestSolutionListCmd_InvalidStatus(t *testing.T) {
	withSeededCatalog(t)
	origStatus := solutionListStatus
	defer func() { solutionListStatus = origStatus }()
	solutionListStatus = "imaginary"

	err := solutionListCmd.RunE(solutionListCmd, []string{})
	if err == nil {
		t.Fatal("expected error for invalid status")
	}
	if !strings.Contains(err.Error(), "research, prototype, production, deployed") {
		t.Errorf("error should list valid statuses: %v", err)
	}
}

func TestSolutionListCmd_CategoryFilter(t *testing.T) {
	withSeededCatalog(t)
	origCategory := solutionListCategory
	defer func() { solutionListCategory = origCategory }()
	solutionListCategory = "data_collection"

	if err := solutionListCmd.RunE(solutionListCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSolutionShowCmd_NotFound(t *testing.T) {
	withSeededCatalog(t)

	err := solutionShowCmd.RunE(solutionShowCmd, []string{"nonexistent"})
	if err == nil {
		t.Fatal("expected error for unknown solution")
	}
}

func TestSolutionShowCmd_Success(t *testing.T) {
	withSeededCatalog(t)

	if err := solutionShowCmd.RunE(solutionShowCmd, []string{"Automatic Data Curation"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSolutionRankingCmd_Success(t *testing.T) {
	withSeededCatalog(t)

	if err := solutionRankingCmd.RunE(solutionRankingCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSolutionQuickWinsCmd_ExplicitMonths(t *testing.T) {
	withSeededCatalog(t)
	origMonths := solutionQuickWinsMonths
	defer func() { solutionQuickWinsMonths = origMonths }()
	solutionQuickWinsMonths = 8

	if err := solutionQuickWinsCmd.RunE(solutionQuickWinsCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSolutionQuickWinsCmd_ConfigDefault(t *testing.T) {
	withSeededCatalog(t)
	origMonths := solutionQuickWinsMonths
	defer func() { solutionQuickWinsMonths = origMonths }()
	solutionQuickWinsMonths = 0
	Cfg.Report.QuickWinMonths = 10

	if err := solutionQuickWinsCmd.RunE(solutionQuickWinsCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSolutionQuickWinsCmd_NilConfigFallsBack(t *testing.T) {
	withSeededCatalog(t)
	origMonths := solutionQuickWinsMonths
	defer func() { solutionQuickWinsMonths = origMonths }()
	solutionQuickWinsMonths = 0
	Cfg = nil

	if err := solutionQuickWinsCmd.RunE(solutionQuickWinsCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
