package models

import (
	"math"
	"testing"
)

func TestEffectivenessWeights(t *testing.T) {
	cases := []struct {
		level EffectivenessLevel
		want  float64
	}{
		{EffectivenessHigh, 1.0},
		{EffectivenessMedium, 0.7},
		{EffectivenessLow, 0.4},
		{EffectivenessUnknown, 0.5},
	}

	for _, tc := range cases {
		if got := tc.level.Weight(); got != tc.want {
			t.Errorf("Weight(%s) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestEffectivenessWeightUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown effectiveness")
		}
	}()
	_ = EffectivenessLevel("stellar").Weight()
}

func TestFeasibilityScore(t *testing.T) {
	m := SolutionMetrics{
		Effectiveness:            EffectivenessHigh,
		ImplementationDifficulty: 0.6,
		ResourceRequirements:     0.7,
		TimeToDeployment:         12,
	}

	want := 1.0 * 0.4 * 0.3 * 0.5
	if got := m.FeasibilityScore(); math.Abs(got-want) > 1e-9 {
		t.Errorf("FeasibilityScore() = %v, want %v", got, want)
	}
}

func TestFeasibilityScoreHorizonFloor(t *testing.T) {
	// 30 months is past the 24-month horizon; the time factor floors at 0.1
	// instead of going negative.
	m := SolutionMetrics{
		Effectiveness:            EffectivenessMedium,
		ImplementationDifficulty: 0.5,
		ResourceRequirements:     0.5,
		TimeToDeployment:         30,
	}

	want := 0.7 * 0.5 * 0.5 * 0.1
	if got := m.FeasibilityScore(); math.Abs(got-want) > 1e-9 {
		t.Errorf("FeasibilityScore() = %v, want %v", got, want)
	}
}

func TestFeasibilityScoreZeroAtMaxDifficulty(t *testing.T) {
	m := SolutionMetrics{
		Effectiveness:            EffectivenessHigh,
		ImplementationDifficulty: 1.0,
		ResourceRequirements:     0.2,
		TimeToDeployment:         6,
	}

	if got := m.FeasibilityScore(); got != 0 {
		t.Errorf("FeasibilityScore() at max difficulty = %v, want 0", got)
	}
}

func TestSolutionAddresses(t *testing.T) {
	s := &Solution{
		Name:                "SWE Tool Integration",
		AddressedChallenges: []ChallengeName{"Effective Tool Usage", "Human-AI Collaboration"},
	}

	if !s.Addresses("Effective Tool Usage") {
		t.Error("Addresses(Effective Tool Usage) = false, want true")
	}
	if s.Addresses("Evaluation and Benchmarks") {
		t.Error("Addresses(Evaluation and Benchmarks) = true, want false")
	}
}
