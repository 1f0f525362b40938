package catalog

import (
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Commands returns the assistant command surface: slash-style commands the
// integration layer dispatches, grouped by the kind of work they target.
func Commands() []*models.AssistantCommand {
	return []*models.AssistantCommand{
		{
			Name:         "analyze_task",
			Category:     models.CommandTaskAnalysis,
			Description:  "Analyze a software engineering task using the AI-SWE taxonomy",
			UsagePattern: "/analyze_task <description> [--scope function|unit|project] [--complexity low|medium|high]",
			Parameters: map[string]models.ParameterSpec{
				"description":  {Type: "string", Required: true},
				"scope":        {Type: "enum", Values: []string{"function", "unit", "project"}, Default: "auto"},
				"complexity":   {Type: "enum", Values: []string{"low", "medium", "high"}, Default: "auto"},
				"intervention": {Type: "enum", Values: []string{"low", "medium", "high"}, Default: "medium"},
			},
			Mode:           models.ModeInteractive,
			RequiredTools:  []models.ToolIntegration{models.ToolIDE},
			AddressedTasks: []string{"Task Classification", "Challenge Assessment", "Solution Planning"},
		},
		{
			Name:         "assess_challenges",
			Category:     models.CommandTaskAnalysis,
			Description:  "Assess potential challenges for the current task",
			UsagePattern: "/assess_challenges [--task_name <name>] [--context <file_pattern>]",
			Parameters: map[string]models.ParameterSpec{
				"task_name":         {Type: "string"},
				"context":           {Type: "string"},
				"include_solutions": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeInteractive,
			RequiredTools:  []models.ToolIntegration{models.ToolStaticAnalysis},
			AddressedTasks: []string{"Challenge Identification", "Risk Assessment"},
		},
		{
			Name:         "generate_function",
			Category:     models.CommandCodeGeneration,
			Description:  "Generate a function with comprehensive testing and documentation",
			UsagePattern: "/generate_function <spec> [--language <lang>] [--style <style>] [--test_coverage <percent>]",
			Parameters: map[string]models.ParameterSpec{
				"spec":          {Type: "string", Required: true},
				"language":      {Type: "string", Default: "auto"},
				"style":         {Type: "string", Default: "project"},
				"test_coverage": {Type: "number", Default: 95},
				"include_docs":  {Type: "boolean", Default: true},
			},
			Mode:           models.ModeSemiAuto,
			RequiredTools:  []models.ToolIntegration{models.ToolIDE, models.ToolTesting},
			AddressedTasks: []string{"Function Completion", "Unit Test Generation", "Code Documentation"},
		},
		{
			Name:         "implement_feature",
			Category:     models.CommandCodeGeneration,
			Description:  "Implement a complete feature across multiple files",
			UsagePattern: "/implement_feature <feature_spec> [--architecture <pattern>] [--integration_tests]",
			Parameters: map[string]models.ParameterSpec{
				"feature_spec":      {Type: "string", Required: true},
				"architecture":      {Type: "string", Default: "auto"},
				"integration_tests": {Type: "boolean", Default: true},
				"update_docs":       {Type: "boolean", Default: true},
			},
			Mode:           models.ModeInteractive,
			RequiredTools:  []models.ToolIntegration{models.ToolIDE, models.ToolGit, models.ToolTesting},
			AddressedTasks: []string{"Natural Language to Code", "Code Documentation", "Testing"},
		},
		{
			Name:         "refactor_code",
			Category:     models.CommandCodeTransformation,
			Description:  "Intelligent code refactoring with safety guarantees",
			UsagePattern: "/refactor_code <target> [--pattern <refactor_pattern>] [--preserve_tests]",
			Parameters: map[string]models.ParameterSpec{
				"target":         {Type: "string", Required: true},
				"pattern":        {Type: "enum", Values: []string{"extract_method", "inline", "move", "rename", "auto"}},
				"preserve_tests": {Type: "boolean", Default: true},
				"backup":         {Type: "boolean", Default: true},
			},
			Mode:           models.ModeSemiAuto,
			RequiredTools:  []models.ToolIntegration{models.ToolIDE, models.ToolGit, models.ToolTesting},
			AddressedTasks: []string{"Code Refactoring", "Testing", "Version Control"},
		},
		{
			Name:         "migrate_api",
			Category:     models.CommandCodeTransformation,
			Description:  "Migrate code to new API versions with compatibility checking",
			UsagePattern: "/migrate_api <from_version> <to_version> [--library <name>] [--dry_run]",
			Parameters: map[string]models.ParameterSpec{
				"from_version": {Type: "string", Required: true},
				"to_version":   {Type: "string", Required: true},
				"library":      {Type: "string"},
				"dry_run":      {Type: "boolean", Default: true},
				"update_tests": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeInteractive,
			RequiredTools:  []models.ToolIntegration{models.ToolIDE, models.ToolStaticAnalysis, models.ToolTesting},
			AddressedTasks: []string{"Code Migration", "Version Management", "Testing"},
		},
		{
			Name:         "generate_tests",
			Category:     models.CommandTestingVerification,
			Description:  "Generate comprehensive test suites with high coverage",
			UsagePattern: "/generate_tests <target> [--type unit|integration|e2e] [--coverage <percent>]",
			Parameters: map[string]models.ParameterSpec{
				"target":             {Type: "string", Required: true},
				"type":               {Type: "enum", Values: []string{"unit", "integration", "e2e", "all"}, Default: "unit"},
				"coverage":           {Type: "number", Default: 90},
				"include_edge_cases": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeSemiAuto,
			RequiredTools:  []models.ToolIntegration{models.ToolTesting, models.ToolIDE},
			AddressedTasks: []string{"Unit Test Generation", "Testing Coverage", "Edge Case Testing"},
		},
		{
			Name:         "verify_security",
			Category:     models.CommandTestingVerification,
			Description:  "Comprehensive security vulnerability analysis",
			UsagePattern: "/verify_security [--scope <files>] [--include_dependencies]",
			Parameters: map[string]models.ParameterSpec{
				"scope":                {Type: "string", Default: "all"},
				"include_dependencies": {Type: "boolean", Default: true},
				"severity_threshold":   {Type: "enum", Values: []string{"low", "medium", "high"}, Default: "medium"},
			},
			Mode:           models.ModeAutonomous,
			RequiredTools:  []models.ToolIntegration{models.ToolStaticAnalysis},
			AddressedTasks: []string{"Vulnerability Detection", "Security Analysis", "Dependency Scanning"},
		},
		{
			Name:         "document_code",
			Category:     models.CommandMaintenance,
			Description:  "Generate and update comprehensive code documentation",
			UsagePattern: "/document_code [--scope <files>] [--format <format>] [--update_existing]",
			Parameters: map[string]models.ParameterSpec{
				"scope":            {Type: "string", Default: "changed"},
				"format":           {Type: "enum", Values: []string{"docstring", "markdown", "rst", "auto"}, Default: "auto"},
				"update_existing":  {Type: "boolean", Default: true},
				"include_examples": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeSemiAuto,
			RequiredTools:  []models.ToolIntegration{models.ToolDocumentation, models.ToolIDE},
			AddressedTasks: []string{"Code Documentation", "API Documentation", "Code Examples"},
		},
		{
			Name:         "review_pr",
			Category:     models.CommandMaintenance,
			Description:  "Automated pull request review with detailed feedback",
			UsagePattern: "/review_pr [--pr_id <id>] [--focus <aspect>]",
			Parameters: map[string]models.ParameterSpec{
				"pr_id":                {Type: "string"},
				"focus":                {Type: "enum", Values: []string{"security", "performance", "style", "all"}, Default: "all"},
				"suggest_improvements": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeSemiAuto,
			RequiredTools:  []models.ToolIntegration{models.ToolGit, models.ToolStaticAnalysis},
			AddressedTasks: []string{"Pull Request Review", "Code Quality", "Security Review"},
		},
		{
			Name:         "setup_project",
			Category:     models.CommandScaffolding,
			Description:  "Initialize project with best practices and tooling",
			UsagePattern: "/setup_project <project_type> [--framework <name>] [--include_ci]",
			Parameters: map[string]models.ParameterSpec{
				"project_type":     {Type: "enum", Values: []string{"web", "api", "cli", "library", "ml"}, Required: true},
				"framework":        {Type: "string"},
				"include_ci":       {Type: "boolean", Default: true},
				"include_security": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeInteractive,
			RequiredTools:  []models.ToolIntegration{models.ToolIDE, models.ToolCICD},
			AddressedTasks: []string{"Project Setup", "CI/CD Configuration", "Security Setup"},
		},
		{
			Name:         "configure_ci",
			Category:     models.CommandScaffolding,
			Description:  "Setup and optimize CI/CD pipelines",
			UsagePattern: "/configure_ci [--platform <platform>] [--include_security] [--optimize]",
			Parameters: map[string]models.ParameterSpec{
				"platform":         {Type: "enum", Values: []string{"github", "gitlab", "jenkins", "auto"}, Default: "auto"},
				"include_security": {Type: "boolean", Default: true},
				"optimize":         {Type: "boolean", Default: true},
			},
			Mode:           models.ModeSemiAuto,
			RequiredTools:  []models.ToolIntegration{models.ToolCICD, models.ToolGit},
			AddressedTasks: []string{"CI/CD Configuration", "Security Integration", "Pipeline Optimization"},
		},
		{
			Name:         "clarify_requirements",
			Category:     models.CommandCollaboration,
			Description:  "Interactive requirements clarification and specification",
			UsagePattern: "/clarify_requirements <initial_spec> [--stakeholder <role>]",
			Parameters: map[string]models.ParameterSpec{
				"initial_spec":  {Type: "string", Required: true},
				"stakeholder":   {Type: "string", Default: "developer"},
				"include_tests": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeInteractive,
			RequiredTools:  []models.ToolIntegration{models.ToolIDE},
			AddressedTasks: []string{"Requirements Analysis", "Specification Clarification", "Stakeholder Communication"},
		},
		{
			Name:         "explain_code",
			Category:     models.CommandCollaboration,
			Description:  "Generate detailed code explanations and walkthroughs",
			UsagePattern: "/explain_code <target> [--audience <level>] [--format <format>]",
			Parameters: map[string]models.ParameterSpec{
				"target":   {Type: "string", Required: true},
				"audience": {Type: "enum", Values: []string{"beginner", "intermediate", "expert"}, Default: "intermediate"},
				"format":   {Type: "enum", Values: []string{"text", "diagram", "video"}, Default: "text"},
			},
			Mode:           models.ModeAutonomous,
			RequiredTools:  []models.ToolIntegration{models.ToolDocumentation},
			AddressedTasks: []string{"Code Understanding", "Knowledge Transfer", "Documentation"},
		},
		{
			Name:         "benchmark_performance",
			Category:     models.CommandEvaluation,
			Description:  "Comprehensive performance benchmarking and optimization suggestions",
			UsagePattern: "/benchmark_performance [--target <scope>] [--metrics <metrics>]",
			Parameters: map[string]models.ParameterSpec{
				"target":           {Type: "string", Default: "all"},
				"metrics":          {Type: "list", Default: []string{"time", "memory", "throughput"}},
				"compare_baseline": {Type: "boolean", Default: true},
			},
			Mode:           models.ModeAutonomous,
			RequiredTools:  []models.ToolIntegration{models.ToolStaticAnalysis, models.ToolTesting},
			AddressedTasks: []string{"Performance Analysis", "Optimization", "Benchmarking"},
		},
	}
}

// Hooks returns the event hooks registered with the assistant integration.
// All hooks start enabled.
func Hooks() []*models.AssistantHook {
	return []*models.AssistantHook{
		{Name: "auto_test_on_change", TriggerEvent: "file_saved", Enabled: true},
		{Name: "auto_format_on_save", TriggerEvent: "file_saved", Enabled: true},
		{Name: "pre_commit_check", TriggerEvent: "pre_commit", Enabled: true},
		{Name: "post_merge_update", TriggerEvent: "post_merge", Enabled: true},
		{Name: "challenge_detection", TriggerEvent: "task_start", Enabled: true},
		{Name: "solution_suggestion", TriggerEvent: "challenge_detected", Enabled: true},
	}
}
