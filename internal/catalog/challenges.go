package catalog

import (
	"github.com/aiswe-dev/aiswe/internal/registry"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Challenges returns the nine key challenges limiting current AI-SWE
// approaches, with their quantitative impact assessments.
func Challenges() []*models.Challenge {
	return []*models.Challenge{
		{
			Name:        "Evaluation and Benchmarks",
			Category:    models.ChallengeEvaluationBenchmarks,
			Description: "Today's code LLM evaluations focus on narrow tasks, suffer from contamination, and don't reliably measure real-world software engineering abilities",
			Symptoms: []string{
				"Performance on benchmarks doesn't match user experience",
				"Contamination degrades benchmark validity over time",
				"Limited task diversity in evaluations",
				"Lack of human-AI interaction assessment",
			},
			AffectedTasks: []models.TaskName{
				"Natural Language to Code", "Code Refactoring",
				"Unit Test Generation", "Code Documentation", "Property Verification",
			},
			RootCauses: []string{
				"Narrow focus on code generation tasks",
				"Public benchmark exposure leads to contamination",
				"Difficulty quantifying software engineering qualities",
				"Lack of construct validity for real-world scenarios",
			},
			Examples: []string{
				"HumanEval performance vs actual coding assistance quality",
				"SWE-Bench contamination over time",
				"Missing evaluation for code maintainability",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityCritical,
				Frequency:         0.9,
				TaskCoverage:      0.8,
				SolutionReadiness: 0.3,
			},
		},
		{
			Name:        "Effective Tool Usage",
			Category:    models.ChallengeEffectiveToolUsage,
			Description: "AI needs to select, use, and interpret outputs from programming tools dynamically",
			Symptoms: []string{
				"Models don't proactively use appropriate tools",
				"Incorrect tool invocation parameters",
				"Failure to interpret tool outputs correctly",
				"Limited integration with development workflows",
			},
			AffectedTasks: []models.TaskName{
				"Code Migration", "Vulnerability Detection",
				"CI/CD Configuration", "Property Verification",
			},
			RootCauses: []string{
				"Lack of training on tool interaction",
				"Complex tool APIs and documentation",
				"Dynamic tool selection requirements",
				"Insufficient feedback integration",
			},
			Examples: []string{
				"CSI performance profiler integration complexity",
				"Debugger step-through navigation challenges",
				"Static analysis tool output interpretation",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityHigh,
				Frequency:         0.7,
				TaskCoverage:      0.6,
				SolutionReadiness: 0.4,
			},
		},
		{
			Name:        "Human-AI Collaboration",
			Category:    models.ChallengeHumanAICollaboration,
			Description: "Vague specifications, lack of controllability, and limited collaboration interfaces",
			Symptoms: []string{
				"Generated code doesn't match user intent",
				"No reliable way to steer model behavior",
				"Models rarely ask clarifying questions",
				"Poor transparency in agent actions",
			},
			AffectedTasks: []models.TaskName{
				"Natural Language to Code", "Code Refactoring", "Code Migration",
				"CI/CD Configuration",
			},
			RootCauses: []string{
				"Ambiguous natural language specifications",
				"Lack of uncertainty quantification",
				"Implicit constraints and trade-offs",
				"Limited multi-turn interaction training",
			},
			Examples: []string{
				"Astropy issue missing serializer-deserializer pattern",
				"Academic website requirements ambiguity",
				"Missing style guide adherence",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityCritical,
				Frequency:         0.8,
				TaskCoverage:      0.9,
				SolutionReadiness: 0.2,
			},
		},
		{
			Name:        "Long-Horizon Code Planning",
			Category:    models.ChallengeLongHorizonPlanning,
			Description: "Designing good abstractions and respecting modularity in large software projects",
			Symptoms: []string{
				"Poor abstraction choices affect extensibility",
				"Code duplication instead of reuse",
				"Suboptimal data structure selection",
				"Quality degradation with RL optimization",
			},
			AffectedTasks: []models.TaskName{
				"Code Refactoring", "Code Migration", "Natural Language to Code",
				"CI/CD Configuration",
			},
			RootCauses: []string{
				"Training optimized for correctness over quality",
				"Lack of long-term consequence modeling",
				"Insufficient exposure to design patterns",
				"Missing domain expertise integration",
			},
			Examples: []string{
				"Database schema design trade-offs",
				"Library API design for extensibility",
				"React component architecture decisions",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityHigh,
				Frequency:         0.6,
				TaskCoverage:      0.5,
				SolutionReadiness: 0.3,
			},
		},
		{
			Name:        "Large Scope and Long Contexts",
			Category:    models.ChallengeLargeScopeContexts,
			Description: "Repository-level tasks require context beyond current model limits, with retrieval challenges",
			Symptoms: []string{
				"Context length limitations for large codebases",
				"Retrieval returns syntactically similar but semantically irrelevant code",
				"Poor code reuse and adaptation",
				"Failure to maintain consistency across files",
			},
			AffectedTasks: []models.TaskName{
				"Code Migration", "Code Refactoring",
				"Vulnerability Detection", "CI/CD Configuration",
			},
			RootCauses: []string{
				"Millions of lines exceed context windows",
				"Embeddings capture syntax over semantics",
				"Complex code reuse requirements",
				"Insufficient global codebase understanding",
			},
			Examples: []string{
				"Google's billion-line repositories",
				"Chart.js BM25 retrieval failures",
				"Datadog log analysis complexity",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityHigh,
				Frequency:         0.8,
				TaskCoverage:      0.7,
				SolutionReadiness: 0.4,
			},
		},
		{
			Name:        "Semantic Understanding of Codebases",
			Category:    models.ChallengeSemanticUnderstanding,
			Description: "Lack of holistic understanding of code structure, algorithms, and program invariants",
			Symptoms: []string{
				"Inability to understand complex code relationships",
				"Missing awareness of program invariants",
				"Poor generalization across coding tasks",
				"Failure to identify bottlenecks correctly",
			},
			AffectedTasks: []models.TaskName{
				"Code Migration", "Vulnerability Detection",
				"Code Refactoring", "Property Verification",
			},
			RootCauses: []string{
				"Training focus on generation over understanding",
				"Complex algorithmic relationships",
				"Custom algorithms outside training data",
				"Lack of execution-aware training",
			},
			Examples: []string{
				"Query optimization requiring algorithm understanding",
				"Complex nested function interactions",
				"Performance bottleneck identification",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityCritical,
				Frequency:         0.7,
				TaskCoverage:      0.8,
				SolutionReadiness: 0.2,
			},
		},
		{
			Name:        "Low-Resource Languages and Specialized Libraries",
			Category:    models.ChallengeLowResourceAdaptation,
			Description: "Poor performance in domain-specific languages and custom/proprietary libraries",
			Symptoms: []string{
				"Syntactic errors in low-resource languages",
				"Hallucinated functions from similar languages",
				"Incorrect library usage patterns",
				"Poor semantic understanding of constructs",
			},
			AffectedTasks: []models.TaskName{
				"Natural Language to Code", "Code Migration", "Code Documentation",
				"Unit Test Generation", "Property Verification",
			},
			RootCauses: []string{
				"Limited training data for specialized domains",
				"Overfitting to high-resource languages",
				"Proprietary codebase distribution shift",
				"Complex domain-specific semantics",
			},
			Examples: []string{
				"Triton GPU programming syntax errors",
				"Lean theorem proving hallucinations",
				"Hazel language construct borrowing",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityHigh,
				Frequency:         0.5,
				TaskCoverage:      0.4,
				SolutionReadiness: 0.3,
			},
		},
		{
			Name:        "Library and API Version Updates",
			Category:    models.ChallengeVersionManagement,
			Description: "Difficulty adapting to rapidly changing libraries and maintaining version consistency",
			Symptoms: []string{
				"Using deprecated API patterns",
				"Mixing constructs from different versions",
				"Inability to identify correct versions",
				"Resistance to new paradigms and features",
			},
			AffectedTasks: []models.TaskName{
				"Natural Language to Code", "Code Migration", "Code Documentation",
				"Unit Test Generation", "CI/CD Configuration",
			},
			RootCauses: []string{
				"Continuous library evolution",
				"Training data lag behind current versions",
				"Complex version dependency inference",
				"Paradigm shift integration challenges",
			},
			Examples: []string{
				"React Hooks vs class components",
				"Python typing module evolution",
				"Next.js App Router navigation changes",
				"Lean 3 to Lean 4 syntax migration",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityMedium,
				Frequency:         0.6,
				TaskCoverage:      0.6,
				SolutionReadiness: 0.3,
			},
		},
		{
			Name:        "High Logical Complexity and OOD Domains",
			Category:    models.ChallengeHighComplexityOOD,
			Description: "Difficulty with research-level problems requiring novel algorithms and complex reasoning",
			Symptoms: []string{
				"Failure on challenging algorithmic problems",
				"Poor performance in specialized domains",
				"Inability to discover novel optimizations",
				"Limited progress without extensive feedback",
			},
			AffectedTasks: []models.TaskName{
				"Code Migration", "Vulnerability Detection", "Property Verification",
				"Natural Language to Code",
			},
			RootCauses: []string{
				"Rare occurrence in training data",
				"Complex domain-specific knowledge requirements",
				"Large search spaces without clear feedback",
				"Novel algorithm discovery challenges",
			},
			Examples: []string{
				"AlphaDev sorting kernel optimization",
				"FSCQ file system verification",
				"Cryptographic vulnerability discovery",
				"GPU kernel superoptimization",
			},
			Metrics: models.ChallengeMetrics{
				Severity:          models.SeverityCritical,
				Frequency:         0.3,
				TaskCoverage:      0.3,
				SolutionReadiness: 0.1,
			},
		},
	}
}

// Relationships returns the cross-reference table wired onto the challenges
// after registration. Every name resolves against the seed catalog.
func Relationships() registry.RelationshipTable {
	return registry.RelationshipTable{
		"Evaluation and Benchmarks":                        {"Human-AI Collaboration", "Semantic Understanding of Codebases"},
		"Effective Tool Usage":                             {"Large Scope and Long Contexts", "High Logical Complexity and OOD Domains"},
		"Human-AI Collaboration":                           {"Long-Horizon Code Planning", "Evaluation and Benchmarks"},
		"Long-Horizon Code Planning":                       {"Semantic Understanding of Codebases", "Human-AI Collaboration"},
		"Large Scope and Long Contexts":                    {"Semantic Understanding of Codebases", "Effective Tool Usage"},
		"Semantic Understanding of Codebases":              {"Large Scope and Long Contexts", "Low-Resource Languages and Specialized Libraries"},
		"Low-Resource Languages and Specialized Libraries": {"Library and API Version Updates", "Semantic Understanding of Codebases"},
		"Library and API Version Updates":                  {"Low-Resource Languages and Specialized Libraries", "Human-AI Collaboration"},
		"High Logical Complexity and OOD Domains":          {"Effective Tool Usage", "Long-Horizon Code Planning"},
	}
}
