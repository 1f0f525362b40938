package models

import (
	"math"
	"testing"
)

func TestSeverityWeights(t *testing.T) {
	cases := []struct {
		severity SeverityLevel
		want     float64
	}{
		{SeverityCritical, 1.0},
		{SeverityHigh, 0.8},
		{SeverityMedium, 0.6},
		{SeverityLow, 0.4},
	}

	for _, tc := range cases {
		if got := tc.severity.Weight(); got != tc.want {
			t.Errorf("Weight(%s) = %v, want %v", tc.severity, got, tc.want)
		}
	}
}

func TestSeverityWeightCoversAllLevels(t *testing.T) {
	for _, s := range SeverityLevels() {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Weight(%s) panicked: %v", s, r)
				}
			}()
			_ = s.Weight()
		}()
	}
}

func TestSeverityWeightUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown severity")
		}
	}()
	_ = SeverityLevel("catastrophic").Weight()
}

func TestImpactScore(t *testing.T) {
	m := ChallengeMetrics{
		Severity:          SeverityCritical,
		Frequency:         0.9,
		TaskCoverage:      0.8,
		SolutionReadiness: 0.3,
	}

	want := 1.0 * 0.9 * 0.8 * 0.7
	if got := m.ImpactScore(); math.Abs(got-want) > 1e-9 {
		t.Errorf("ImpactScore() = %v, want %v", got, want)
	}
}

func TestImpactScoreFullReadinessIsZero(t *testing.T) {
	m := ChallengeMetrics{
		Severity:          SeverityHigh,
		Frequency:         0.7,
		TaskCoverage:      0.6,
		SolutionReadiness: 1.0,
	}

	if got := m.ImpactScore(); got != 0 {
		t.Errorf("ImpactScore() with full readiness = %v, want 0", got)
	}
}

func TestChallengeAffects(t *testing.T) {
	c := &Challenge{
		Name:          "Large Scope and Long Contexts",
		AffectedTasks: []TaskName{"Code Migration", "Code Refactoring"},
	}

	if !c.Affects("Code Migration") {
		t.Error("Affects(Code Migration) = false, want true")
	}
	if c.Affects("Function Completion") {
		t.Error("Affects(Function Completion) = true, want false")
	}
}

func TestChallengeCategoryValid(t *testing.T) {
	for _, cat := range ChallengeCategories() {
		if !cat.Valid() {
			t.Errorf("category %s reported invalid", cat)
		}
	}
	if ChallengeCategory("quantum_debugging").Valid() {
		t.Error("unknown category reported valid")
	}
}

func TestSeverityLevelValid(t *testing.T) {
	for _, s := range SeverityLevels() {
		if !s.Valid() {
			t.Errorf("severity %s reported invalid", s)
		}
	}
	if SeverityLevel("").Valid() {
		t.Error("empty severity reported valid")
	}
}
