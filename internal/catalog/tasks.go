package catalog

import (
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Tasks returns the nine core tasks of the AI-SWE taxonomy. Each call
// builds fresh values so callers may mutate their copies freely.
func Tasks() []*models.Task {
	return []*models.Task{
		{
			Name:        "Function Completion",
			Category:    models.CategoryCodeGeneration,
			Metrics:     models.TaskMetrics{Scope: models.ScopeFunction, Complexity: models.ComplexityLow, Intervention: models.InterventionLow},
			Description: "Complete code snippets at function level with tab completion",
			Examples:    []string{"GitHub Copilot tab completion", "Function signature completion"},
			Challenges:  []models.ChallengeName{"Context understanding", "Code quality"},
			Benchmarks:  []string{"HumanEval", "MBPP"},
		},
		{
			Name:        "Natural Language to Code",
			Category:    models.CategoryCodeGeneration,
			Metrics:     models.TaskMetrics{Scope: models.ScopeUnit, Complexity: models.ComplexityMedium, Intervention: models.InterventionMedium},
			Description: "Generate code from natural language specifications",
			Examples:    []string{"Cursor Composer", "Detailed function implementation"},
			Challenges:  []models.ChallengeName{"Specification ambiguity", "Complex requirements"},
			Benchmarks:  []string{"APPS", "CodeContests", "LiveCodeBench"},
		},
		{
			Name:        "Code Refactoring",
			Category:    models.CategoryCodeTransformation,
			Metrics:     models.TaskMetrics{Scope: models.ScopeProject, Complexity: models.ComplexityLow, Intervention: models.InterventionHigh},
			Description: "Restructure code while maintaining functionality",
			Examples:    []string{"React Fiber architecture refactor", "Extract helper methods"},
			Challenges:  []models.ChallengeName{"Maintainability trade-offs", "Scope propagation"},
			Benchmarks:  []string{"RefactorBench"},
		},
		{
			Name:        "Code Migration",
			Category:    models.CategoryCodeTransformation,
			Metrics:     models.TaskMetrics{Scope: models.ScopeProject, Complexity: models.ComplexityHigh, Intervention: models.InterventionHigh},
			Description: "Migrate code between languages or versions",
			Examples:    []string{"C to Rust translation", "Python 2 to 3 migration"},
			Challenges:  []models.ChallengeName{"Semantic preservation", "Cross-system dependencies"},
			Benchmarks:  []string{"Syzygy", "C2SaferRust"},
		},
		{
			Name:        "Unit Test Generation",
			Category:    models.CategoryTestingAnalysis,
			Metrics:     models.TaskMetrics{Scope: models.ScopeFunction, Complexity: models.ComplexityMedium, Intervention: models.InterventionLow},
			Description: "Generate comprehensive unit tests for code coverage",
			Examples:    []string{"Meta's ACH system", "Property-based testing"},
			Challenges:  []models.ChallengeName{"Edge case coverage", "Test quality"},
			Benchmarks:  []string{"TestGenEval", "CodeT"},
		},
		{
			Name:        "Vulnerability Detection",
			Category:    models.CategoryTestingAnalysis,
			Metrics:     models.TaskMetrics{Scope: models.ScopeProject, Complexity: models.ComplexityHigh, Intervention: models.InterventionMedium},
			Description: "Identify security vulnerabilities and zero-day exploits",
			Examples:    []string{"BigSleep SQLite vulnerability", "Project Zero variant analysis"},
			Challenges:  []models.ChallengeName{"Complex attack vectors", "False positives"},
			Benchmarks:  []string{"SecurityEval", "CyberSecEval"},
		},
		{
			Name:        "Code Documentation",
			Category:    models.CategorySoftwareMaintenance,
			Metrics:     models.TaskMetrics{Scope: models.ScopeUnit, Complexity: models.ComplexityLow, Intervention: models.InterventionLow},
			Description: "Generate and maintain code documentation",
			Examples:    []string{"Function docstrings", "API documentation"},
			Challenges:  []models.ChallengeName{"Synchronization with code", "Quality assessment"},
			Benchmarks:  []string{"CodeXGLUE", "RepoAgent"},
		},
		{
			Name:        "CI/CD Configuration",
			Category:    models.CategoryScaffoldingMetacode,
			Metrics:     models.TaskMetrics{Scope: models.ScopeProject, Complexity: models.ComplexityMedium, Intervention: models.InterventionHigh},
			Description: "Generate and manage CI/CD pipelines and infrastructure",
			Examples:    []string{"GitHub Actions", "Terraform generation"},
			Challenges:  []models.ChallengeName{"Security configurations", "Complex dependencies"},
			Benchmarks:  []string{"Ciri", "Terrateam"},
		},
		{
			Name:        "Property Verification",
			Category:    models.CategoryFormalVerification,
			Metrics:     models.TaskMetrics{Scope: models.ScopeUnit, Complexity: models.ComplexityHigh, Intervention: models.InterventionHigh},
			Description: "Prove specific properties of code correctness",
			Examples:    []string{"Memory safety proofs", "Concurrency verification"},
			Challenges:  []models.ChallengeName{"False positives", "Specification completeness"},
			Benchmarks:  []string{"DafnyBench", "miniCodeProps"},
		},
	}
}
