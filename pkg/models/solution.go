package models

// SolutionName is a loose reference to a solution by its unique name.
type SolutionName string

// SolutionCategory is one of the four main pathways a solution follows.
type SolutionCategory string

const (
	SolutionDataCollection       SolutionCategory = "data_collection"
	SolutionTrainingMethods      SolutionCategory = "training_methods"
	SolutionInferenceApproaches  SolutionCategory = "inference_approaches"
	SolutionFrameworkIntegration SolutionCategory = "framework_integration"
)

// SolutionCategories returns all solution categories in canonical order.
func SolutionCategories() []SolutionCategory {
	return []SolutionCategory{
		SolutionDataCollection,
		SolutionTrainingMethods,
		SolutionInferenceApproaches,
		SolutionFrameworkIntegration,
	}
}

// Valid reports whether c is a known solution category.
func (c SolutionCategory) Valid() bool {
	switch c {
	case SolutionDataCollection, SolutionTrainingMethods,
		SolutionInferenceApproaches, SolutionFrameworkIntegration:
		return true
	}
	return false
}

// ImplementationStatus is the current maturity of a solution.
type ImplementationStatus string

const (
	StatusResearch   ImplementationStatus = "research"   // theoretical or early research
	StatusPrototype  ImplementationStatus = "prototype"  // working prototype exists
	StatusProduction ImplementationStatus = "production" // production-ready implementation
	StatusDeployed   ImplementationStatus = "deployed"   // widely deployed in practice
)

// ImplementationStatuses returns all statuses in canonical order.
func ImplementationStatuses() []ImplementationStatus {
	return []ImplementationStatus{StatusResearch, StatusPrototype, StatusProduction, StatusDeployed}
}

// Valid reports whether s is a known implementation status.
func (s ImplementationStatus) Valid() bool {
	switch s {
	case StatusResearch, StatusPrototype, StatusProduction, StatusDeployed:
		return true
	}
	return false
}

// EffectivenessLevel is the expected payoff of a solution approach.
type EffectivenessLevel string

const (
	EffectivenessHigh    EffectivenessLevel = "high"
	EffectivenessMedium  EffectivenessLevel = "medium"
	EffectivenessLow     EffectivenessLevel = "low"
	EffectivenessUnknown EffectivenessLevel = "unknown"
)

// EffectivenessLevels returns all effectiveness levels in canonical order.
func EffectivenessLevels() []EffectivenessLevel {
	return []EffectivenessLevel{EffectivenessHigh, EffectivenessMedium, EffectivenessLow, EffectivenessUnknown}
}

// Valid reports whether e is a known effectiveness level.
func (e EffectivenessLevel) Valid() bool {
	switch e {
	case EffectivenessHigh, EffectivenessMedium, EffectivenessLow, EffectivenessUnknown:
		return true
	}
	return false
}

// Weight returns the numeric weight used in feasibility scoring. Exhaustive
// over the declared levels; unknown levels panic at seed time.
func (e EffectivenessLevel) Weight() float64 {
	switch e {
	case EffectivenessHigh:
		return 1.0
	case EffectivenessMedium:
		return 0.7
	case EffectivenessLow:
		return 0.4
	case EffectivenessUnknown:
		return 0.5
	}
	panic("models: unknown effectiveness level " + string(e))
}

// SolutionMetrics is the quantitative assessment of a solution's potential.
// ImplementationDifficulty and ResourceRequirements are fractions in [0,1]
// (0 = easy/cheap, 1 = very hard/expensive); TimeToDeployment is estimated
// months to production, >= 0.
type SolutionMetrics struct {
	Effectiveness            EffectivenessLevel `yaml:"effectiveness" json:"effectiveness"`
	ImplementationDifficulty float64            `yaml:"implementation_difficulty" json:"implementation_difficulty"`
	ResourceRequirements     float64            `yaml:"resource_requirements" json:"resource_requirements"`
	TimeToDeployment         float64            `yaml:"time_to_deployment" json:"time_to_deployment"`
}

// FeasibilityScore computes the overall feasibility of the solution:
// effectiveness weight x (1 - difficulty) x (1 - resources) x a deployment
// horizon factor floored at 0.1 so distant-horizon solutions never score
// negative on the time axis.
func (m SolutionMetrics) FeasibilityScore() float64 {
	horizon := 1 - m.TimeToDeployment/24
	if horizon < 0.1 {
		horizon = 0.1
	}
	return m.Effectiveness.Weight() *
		(1 - m.ImplementationDifficulty) *
		(1 - m.ResourceRequirements) *
		horizon
}

// Solution represents a candidate approach addressing one or more challenges.
type Solution struct {
	Name                SolutionName         `yaml:"name" json:"name"`
	Category            SolutionCategory     `yaml:"category" json:"category"`
	Description         string               `yaml:"description" json:"description"`
	AddressedChallenges []ChallengeName      `yaml:"addressed_challenges,omitempty" json:"addressed_challenges,omitempty"`
	TechnicalApproach   string               `yaml:"technical_approach" json:"technical_approach"`
	ImplementationSteps []string             `yaml:"implementation_steps,omitempty" json:"implementation_steps,omitempty"`
	SuccessCriteria     []string             `yaml:"success_criteria,omitempty" json:"success_criteria,omitempty"`
	RisksLimitations    []string             `yaml:"risks_limitations,omitempty" json:"risks_limitations,omitempty"`
	Metrics             SolutionMetrics      `yaml:"metrics" json:"metrics"`
	Status              ImplementationStatus `yaml:"status" json:"status"`
	RelatedSolutions    []SolutionName       `yaml:"related_solutions,omitempty" json:"related_solutions,omitempty"`
}

// Addresses reports whether the solution lists the given challenge in its
// addressed-challenge set.
func (s *Solution) Addresses(challenge ChallengeName) bool {
	for _, c := range s.AddressedChallenges {
		if c == challenge {
			return true
		}
	}
	return false
}
