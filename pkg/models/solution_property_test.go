package models

import (
	"testing"

	"pgregory.net/rapid"
)

// =============================================================================
// Property 03: Feasibility Score Bounds
// =============================================================================

// Feature: scoring, Property 03: Feasibility Score Bounds
// *For any* solution metrics with difficulty and resources in [0,1] and a
// non-negative time to deployment, FeasibilityScore SHALL be >= 0, and SHALL
// be exactly 0 whenever difficulty or resources is 1.
//
// **Validates: score non-negativity and the zero annihilators**
func TestProperty03_FeasibilityScoreBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := SolutionMetrics{
			Effectiveness:            rapid.SampledFrom(EffectivenessLevels()).Draw(rt, "effectiveness"),
			ImplementationDifficulty: rapid.Float64Range(0, 1).Draw(rt, "difficulty"),
			ResourceRequirements:     rapid.Float64Range(0, 1).Draw(rt, "resources"),
			TimeToDeployment:         rapid.Float64Range(0, 60).Draw(rt, "ttd"),
		}

		score := m.FeasibilityScore()
		if score < 0 {
			rt.Errorf("feasibility score %v is negative for metrics %+v", score, m)
		}

		m.ImplementationDifficulty = 1.0
		if got := m.FeasibilityScore(); got != 0 {
			rt.Errorf("feasibility score %v at difficulty=1, want 0", got)
		}

		m.ImplementationDifficulty = rapid.Float64Range(0, 1).Draw(rt, "difficulty2")
		m.ResourceRequirements = 1.0
		if got := m.FeasibilityScore(); got != 0 {
			rt.Errorf("feasibility score %v at resources=1, want 0", got)
		}
	})
}
