package models

// ChallengeName is a loose reference to a challenge by its unique name.
type ChallengeName string

// ChallengeCategory identifies one of the nine key challenges that limit
// current AI-SWE approaches. Categories map one-to-one onto the named
// challenges in the seed catalog.
type ChallengeCategory string

const (
	ChallengeEvaluationBenchmarks  ChallengeCategory = "evaluation_benchmarks"
	ChallengeEffectiveToolUsage    ChallengeCategory = "effective_tool_usage"
	ChallengeHumanAICollaboration  ChallengeCategory = "human_ai_collaboration"
	ChallengeLongHorizonPlanning   ChallengeCategory = "long_horizon_planning"
	ChallengeLargeScopeContexts    ChallengeCategory = "large_scope_contexts"
	ChallengeSemanticUnderstanding ChallengeCategory = "semantic_understanding"
	ChallengeLowResourceAdaptation ChallengeCategory = "low_resource_adaptation"
	ChallengeVersionManagement     ChallengeCategory = "version_management"
	ChallengeHighComplexityOOD     ChallengeCategory = "high_complexity_ood"
)

// ChallengeCategories returns all challenge categories in canonical order.
func ChallengeCategories() []ChallengeCategory {
	return []ChallengeCategory{
		ChallengeEvaluationBenchmarks,
		ChallengeEffectiveToolUsage,
		ChallengeHumanAICollaboration,
		ChallengeLongHorizonPlanning,
		ChallengeLargeScopeContexts,
		ChallengeSemanticUnderstanding,
		ChallengeLowResourceAdaptation,
		ChallengeVersionManagement,
		ChallengeHighComplexityOOD,
	}
}

// Valid reports whether c is a known challenge category.
func (c ChallengeCategory) Valid() bool {
	for _, known := range ChallengeCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// SeverityLevel is the impact severity of a challenge on AI-SWE systems.
type SeverityLevel string

const (
	SeverityCritical SeverityLevel = "critical" // prevents successful completion
	SeverityHigh     SeverityLevel = "high"     // significantly degrades performance
	SeverityMedium   SeverityLevel = "medium"   // noticeable performance impact
	SeverityLow      SeverityLevel = "low"      // minor impact on edge cases
)

// SeverityLevels returns all severity levels in canonical order.
func SeverityLevels() []SeverityLevel {
	return []SeverityLevel{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// Valid reports whether s is a known severity level.
func (s SeverityLevel) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Weight returns the numeric weight used in impact scoring. The switch is
// exhaustive over the declared levels; an unknown level panics so that a
// catalog entry carrying an unvalidated severity fails loudly at seed time
// rather than scoring silently wrong.
func (s SeverityLevel) Weight() float64 {
	switch s {
	case SeverityCritical:
		return 1.0
	case SeverityHigh:
		return 0.8
	case SeverityMedium:
		return 0.6
	case SeverityLow:
		return 0.4
	}
	panic("models: unknown severity level " + string(s))
}

// ChallengeMetrics is the quantitative assessment of a challenge's impact.
// Frequency, TaskCoverage, and SolutionReadiness are fractions in [0,1].
type ChallengeMetrics struct {
	Severity          SeverityLevel `yaml:"severity" json:"severity"`
	Frequency         float64       `yaml:"frequency" json:"frequency"`
	TaskCoverage      float64       `yaml:"task_coverage" json:"task_coverage"`
	SolutionReadiness float64       `yaml:"solution_readiness" json:"solution_readiness"`
}

// ImpactScore computes the overall impact of the challenge:
// severity weight x frequency x task coverage x (1 - solution readiness).
// The result stays in [0,1] for metrics within their declared ranges.
func (m ChallengeMetrics) ImpactScore() float64 {
	return m.Severity.Weight() * m.Frequency * m.TaskCoverage * (1 - m.SolutionReadiness)
}

// Challenge represents a specific challenge limiting AI-SWE systems.
// RelatedChallenges is the only field mutated after registration; the
// relationship-wiring pass assigns it exactly once.
type Challenge struct {
	Name              ChallengeName     `yaml:"name" json:"name"`
	Category          ChallengeCategory `yaml:"category" json:"category"`
	Description       string            `yaml:"description" json:"description"`
	Symptoms          []string          `yaml:"symptoms,omitempty" json:"symptoms,omitempty"`
	AffectedTasks     []TaskName        `yaml:"affected_tasks,omitempty" json:"affected_tasks,omitempty"`
	RootCauses        []string          `yaml:"root_causes,omitempty" json:"root_causes,omitempty"`
	Examples          []string          `yaml:"examples,omitempty" json:"examples,omitempty"`
	Metrics           ChallengeMetrics  `yaml:"metrics" json:"metrics"`
	RelatedChallenges []ChallengeName   `yaml:"related_challenges,omitempty" json:"related_challenges,omitempty"`
}

// Affects reports whether the challenge lists the given task in its
// affected-task set.
func (c *Challenge) Affects(task TaskName) bool {
	for _, t := range c.AffectedTasks {
		if t == task {
			return true
		}
	}
	return false
}
