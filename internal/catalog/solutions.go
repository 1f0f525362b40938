package catalog

import (
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Solutions returns the candidate solution approaches along the four main
// pathways: data collection, training methods, inference-time approaches,
// and development framework integration.
func Solutions() []*models.Solution {
	return []*models.Solution{
		{
			Name:        "Automatic Data Curation",
			Category:    models.SolutionDataCollection,
			Description: "Augment training data with program information from static analysis, instrumentation, and formal verification",
			AddressedChallenges: []models.ChallengeName{
				"Evaluation and Benchmarks", "Semantic Understanding of Codebases",
				"High Logical Complexity and OOD Domains",
			},
			TechnicalApproach: "Leverage programming tools to extract semantic information: ASTs, type info, data flow, memory usage, execution traces, program invariants, concurrency analysis",
			ImplementationSteps: []string{
				"Build static analysis pipeline for code annotation",
				"Integrate program instrumentation for runtime data",
				"Develop invariant detection and formal verification integration",
				"Create synthetic data generation with symbolic verification",
				"Scale to repository-level compositional data generation",
			},
			SuccessCriteria: []string{
				"10x increase in semantically-rich training data",
				"Measurable improvement in code understanding tasks",
				"Successful synthetic data validation with symbolic tools",
			},
			RisksLimitations: []string{
				"Computational overhead for analysis",
				"Tool integration complexity",
				"Quality vs quantity trade-offs",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessHigh,
				ImplementationDifficulty: 0.6,
				ResourceRequirements:     0.7,
				TimeToDeployment:         12,
			},
			Status: models.StatusPrototype,
		},
		{
			Name:        "Human-Centric Data Curation",
			Category:    models.SolutionDataCollection,
			Description: "Collect fine-grained developmental process data and diverse SWE task datasets from human developers",
			AddressedChallenges: []models.ChallengeName{
				"Human-AI Collaboration", "Evaluation and Benchmarks",
				"Long-Horizon Code Planning",
			},
			TechnicalApproach: "Capture fine-grained code edits, build outcomes, code reviews, telemetry data, and real-world developer interactions across diverse SWE tasks",
			ImplementationSteps: []string{
				"Deploy telemetry collection in IDE integrations",
				"Create gamified data collection arenas",
				"Build multi-modal interaction capture systems",
				"Develop privacy-preserving data sharing protocols",
				"Scale community-based curation efforts",
			},
			SuccessCriteria: []string{
				"1M+ hours of developer interaction data",
				"Comprehensive task coverage beyond code generation",
				"High-quality human preference datasets",
			},
			RisksLimitations: []string{
				"Privacy and IP concerns",
				"Data quality inconsistency",
				"Expensive collection processes",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessHigh,
				ImplementationDifficulty: 0.8,
				ResourceRequirements:     0.9,
				TimeToDeployment:         18,
			},
			Status: models.StatusResearch,
		},
		{
			Name:        "Environment Design for Code RL",
			Category:    models.SolutionTrainingMethods,
			Description: "Build executable codebase environments for reinforcement learning with verifiable rewards",
			AddressedChallenges: []models.ChallengeName{
				"Long-Horizon Code Planning", "High Logical Complexity and OOD Domains",
				"Effective Tool Usage",
			},
			TechnicalApproach: "Create gym-like RL environments with executable repositories, automated installation, task prompts from GitHub, and rule-based/execution-based rewards",
			ImplementationSteps: []string{
				"Develop automated repository installation system",
				"Build Docker-based execution infrastructure",
				"Create diverse task prompt generation",
				"Implement multi-modal reward functions",
				"Scale to thousands of executable repositories",
			},
			SuccessCriteria: []string{
				"10K+ executable repository environments",
				"Successful RL training on real-world SWE tasks",
				"Improved performance on SWE-Bench style benchmarks",
			},
			RisksLimitations: []string{
				"Massive storage requirements",
				"Complex CI/CD integration",
				"Reward hacking and gaming",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessHigh,
				ImplementationDifficulty: 0.9,
				ResourceRequirements:     0.95,
				TimeToDeployment:         24,
			},
			Status: models.StatusPrototype,
		},
		{
			Name:        "Specialized Codebase Adaptation",
			Category:    models.SolutionTrainingMethods,
			Description: "Test-time training and prompt tuning for low-resource languages and custom APIs",
			AddressedChallenges: []models.ChallengeName{
				"Low-Resource Languages and Specialized Libraries",
				"Library and API Version Updates", "Large Scope and Long Contexts",
			},
			TechnicalApproach: "Use test-time training on specialized contexts, maintain information banks of code/docs/trajectories, and apply prompt/prefix tuning for version-specific adaptation",
			ImplementationSteps: []string{
				"Develop test-time training frameworks",
				"Build retrieval-augmented memory banks",
				"Implement version-specific prompt tuning",
				"Create synthetic data generation for specialized domains",
				"Deploy continuous adaptation pipelines",
			},
			SuccessCriteria: []string{
				"50%+ improvement on low-resource language tasks",
				"Successful adaptation to new API versions",
				"Cost-effective specialization vs full retraining",
			},
			RisksLimitations: []string{
				"Catastrophic forgetting of general knowledge",
				"Limited transfer between specialized domains",
				"High computational costs for frequent adaptation",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessMedium,
				ImplementationDifficulty: 0.7,
				ResourceRequirements:     0.6,
				TimeToDeployment:         15,
			},
			Status: models.StatusResearch,
		},
		{
			Name:        "Human Collaboration Training",
			Category:    models.SolutionTrainingMethods,
			Description: "Train models to leverage enhanced specifications and communicate proactively with humans",
			AddressedChallenges: []models.ChallengeName{
				"Human-AI Collaboration", "Evaluation and Benchmarks",
				"Long-Horizon Code Planning",
			},
			TechnicalApproach: "Learn from formal specifications, test-based specifications, and interactive verification. Train uncertainty quantification and proactive communication through delayed reward modeling",
			ImplementationSteps: []string{
				"Develop formal specification translation systems",
				"Create test-driven specification frameworks",
				"Build uncertainty quantification training",
				"Implement multi-turn clarification training",
				"Deploy interactive verification systems",
			},
			SuccessCriteria: []string{
				"Successful autoformalization of user intent",
				"Proactive clarification in ambiguous scenarios",
				"Improved user alignment and satisfaction",
			},
			RisksLimitations: []string{
				"Complexity of formal specification learning",
				"Difficulty in delayed reward attribution",
				"User adoption challenges for formal methods",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessMedium,
				ImplementationDifficulty: 0.8,
				ResourceRequirements:     0.7,
				TimeToDeployment:         20,
			},
			Status: models.StatusResearch,
		},
		{
			Name:        "Semantic-Aware Embeddings and Retrieval",
			Category:    models.SolutionInferenceApproaches,
			Description: "Improve code embeddings with execution/semantic information and better retrieval-augmented generation",
			AddressedChallenges: []models.ChallengeName{
				"Large Scope and Long Contexts", "Semantic Understanding of Codebases",
				"Low-Resource Languages and Specialized Libraries",
			},
			TechnicalApproach: "Train embeddings with program execution and semantics, improve joint retriever-generator training, enable dynamic codebase navigation through tool use",
			ImplementationSteps: []string{
				"Develop execution-aware embedding training",
				"Build semantic similarity contrastive learning",
				"Implement joint retriever-generator optimization",
				"Create dynamic code navigation agents",
				"Deploy context-aware retrieval systems",
			},
			SuccessCriteria: []string{
				"Semantic code similarity captures algorithm relationships",
				"Improved retrieval precision for complex queries",
				"Better code reuse and adaptation capabilities",
			},
			RisksLimitations: []string{
				"Computational overhead for semantic analysis",
				"Difficulty in defining semantic similarity",
				"Limited scalability to massive codebases",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessHigh,
				ImplementationDifficulty: 0.6,
				ResourceRequirements:     0.5,
				TimeToDeployment:         10,
			},
			Status: models.StatusPrototype,
		},
		{
			Name:        "SWE Tool Integration",
			Category:    models.SolutionInferenceApproaches,
			Description: "Learn dynamic tool usage and integrate neurosymbolic approaches with programming language techniques",
			AddressedChallenges: []models.ChallengeName{
				"Effective Tool Usage", "High Logical Complexity and OOD Domains",
				"Semantic Understanding of Codebases",
			},
			TechnicalApproach: "RL-style learning for tool interaction, neurosymbolic integration of PL techniques (abstract interpretation, type checking, model checking), and deductive synthesis approaches",
			ImplementationSteps: []string{
				"Develop tool interaction RL frameworks",
				"Integrate static analysis with LLM generation",
				"Build constrained decoding for DSLs",
				"Implement deductive synthesis pipelines",
				"Create neurosymbolic debugging systems",
			},
			SuccessCriteria: []string{
				"Autonomous tool selection and usage",
				"Reduced false positives in static analysis",
				"Successful synthesis in formal languages",
			},
			RisksLimitations: []string{
				"Complex tool API learning",
				"Integration overhead and latency",
				"Limited tool availability and documentation",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessHigh,
				ImplementationDifficulty: 0.8,
				ResourceRequirements:     0.7,
				TimeToDeployment:         16,
			},
			Status: models.StatusResearch,
		},
		{
			Name:        "Human Supervision Scaffolding",
			Category:    models.SolutionInferenceApproaches,
			Description: "Design AI systems that scaffold human supervision through summarization and interactive verification",
			AddressedChallenges: []models.ChallengeName{
				"Human-AI Collaboration", "Evaluation and Benchmarks",
				"Large Scope and Long Contexts",
			},
			TechnicalApproach: "Enrich AI-generated content with citations and context, implement interactive programming approaches, and optimize for human interpretability",
			ImplementationSteps: []string{
				"Build contextual information enrichment",
				"Develop live programming integration",
				"Create interactive verification interfaces",
				"Implement transparency and explainability features",
				"Deploy user-centric design optimization",
			},
			SuccessCriteria: []string{
				"Reduced cognitive load for code review",
				"Improved trust and adoption of AI-generated code",
				"Faster identification of issues and improvements",
			},
			RisksLimitations: []string{
				"Increased interface complexity",
				"User training and adoption challenges",
				"Potential over-reliance on AI explanations",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessMedium,
				ImplementationDifficulty: 0.5,
				ResourceRequirements:     0.4,
				TimeToDeployment:         8,
			},
			Status: models.StatusPrototype,
		},
		{
			Name:        "SWE Development Framework Integration",
			Category:    models.SolutionFrameworkIntegration,
			Description: "Integrate AI deeply into CI/CD processes and software development frameworks",
			AddressedChallenges: []models.ChallengeName{
				"Long-Horizon Code Planning", "Large Scope and Long Contexts",
				"Effective Tool Usage",
			},
			TechnicalApproach: "Incorporate AI into CI/CD pipelines for automated review, deployment risk assessment, documentation generation, and steering away from software anti-patterns",
			ImplementationSteps: []string{
				"Build CI/CD pipeline AI integration",
				"Develop automated code review systems",
				"Create deployment risk assessment tools",
				"Implement anti-pattern detection and avoidance",
				"Deploy end-to-end development workflow integration",
			},
			SuccessCriteria: []string{
				"Seamless integration with popular CI/CD platforms",
				"Reduced security vulnerabilities in deployments",
				"Improved code quality and maintainability",
			},
			RisksLimitations: []string{
				"Resistance to workflow changes",
				"Complex integration with existing tools",
				"Potential for automation bias",
			},
			Metrics: models.SolutionMetrics{
				Effectiveness:            models.EffectivenessHigh,
				ImplementationDifficulty: 0.7,
				ResourceRequirements:     0.6,
				TimeToDeployment:         14,
			},
			Status: models.StatusPrototype,
		},
	}
}
