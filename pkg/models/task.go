package models

// TaskName is a loose reference to a task by its unique name. Cross-registry
// references resolve by string equality and tolerate dangling names.
type TaskName string

// ScopeMeasure is the extent of codebase changes an AI-SWE task makes.
type ScopeMeasure string

const (
	ScopeFunction ScopeMeasure = "function" // single, self-contained functions
	ScopeUnit     ScopeMeasure = "unit"     // larger chunks, files, classes
	ScopeProject  ScopeMeasure = "project"  // entire repositories
)

// ScopeMeasures returns all scope values in canonical order.
func ScopeMeasures() []ScopeMeasure {
	return []ScopeMeasure{ScopeFunction, ScopeUnit, ScopeProject}
}

// Valid reports whether s is a known scope measure.
func (s ScopeMeasure) Valid() bool {
	switch s {
	case ScopeFunction, ScopeUnit, ScopeProject:
		return true
	}
	return false
}

// LogicalComplexity is the reasoning ability a task requires.
type LogicalComplexity string

const (
	ComplexityLow    LogicalComplexity = "low"
	ComplexityMedium LogicalComplexity = "medium"
	ComplexityHigh   LogicalComplexity = "high"
)

// LogicalComplexities returns all complexity values in canonical order.
func LogicalComplexities() []LogicalComplexity {
	return []LogicalComplexity{ComplexityLow, ComplexityMedium, ComplexityHigh}
}

// Valid reports whether c is a known complexity level.
func (c LogicalComplexity) Valid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// HumanIntervention is the degree of human oversight a task assumes.
type HumanIntervention string

const (
	InterventionLow    HumanIntervention = "low"    // human-controlled, AI as tool
	InterventionMedium HumanIntervention = "medium" // collaborative coordination
	InterventionHigh   HumanIntervention = "high"   // AI-driven with oversight
)

// HumanInterventions returns all intervention values in canonical order.
func HumanInterventions() []HumanIntervention {
	return []HumanIntervention{InterventionLow, InterventionMedium, InterventionHigh}
}

// Valid reports whether h is a known intervention level.
func (h HumanIntervention) Valid() bool {
	switch h {
	case InterventionLow, InterventionMedium, InterventionHigh:
		return true
	}
	return false
}

// TaskCategory is one of the six main categories of AI-SWE tasks.
type TaskCategory string

const (
	CategoryCodeGeneration      TaskCategory = "code_generation"
	CategoryCodeTransformation  TaskCategory = "code_transformation"
	CategoryTestingAnalysis     TaskCategory = "testing_analysis"
	CategorySoftwareMaintenance TaskCategory = "software_maintenance"
	CategoryScaffoldingMetacode TaskCategory = "scaffolding_metacode"
	CategoryFormalVerification  TaskCategory = "formal_verification"
)

// TaskCategories returns all task categories in canonical order.
func TaskCategories() []TaskCategory {
	return []TaskCategory{
		CategoryCodeGeneration,
		CategoryCodeTransformation,
		CategoryTestingAnalysis,
		CategorySoftwareMaintenance,
		CategoryScaffoldingMetacode,
		CategoryFormalVerification,
	}
}

// Valid reports whether c is a known task category.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryCodeGeneration, CategoryCodeTransformation, CategoryTestingAnalysis,
		CategorySoftwareMaintenance, CategoryScaffoldingMetacode, CategoryFormalVerification:
		return true
	}
	return false
}

// TaskMetrics is the three-dimensional measurement of an AI-SWE task.
type TaskMetrics struct {
	Scope        ScopeMeasure      `yaml:"scope" json:"scope"`
	Complexity   LogicalComplexity `yaml:"complexity" json:"complexity"`
	Intervention HumanIntervention `yaml:"intervention" json:"intervention"`
}

// Task represents a specific AI software engineering task in the catalog.
// Tasks are immutable after registration and owned by the task registry.
type Task struct {
	Name        TaskName        `yaml:"name" json:"name"`
	Category    TaskCategory    `yaml:"category" json:"category"`
	Metrics     TaskMetrics     `yaml:"metrics" json:"metrics"`
	Description string          `yaml:"description" json:"description"`
	Examples    []string        `yaml:"examples,omitempty" json:"examples,omitempty"`
	Challenges  []ChallengeName `yaml:"challenges,omitempty" json:"challenges,omitempty"`
	Benchmarks  []string        `yaml:"benchmarks,omitempty" json:"benchmarks,omitempty"`
}
