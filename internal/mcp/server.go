// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the aiswe catalog and evaluator as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/aiswe-dev/aiswe/internal/evaluator"
	"github.com/aiswe-dev/aiswe/internal/logging"
	"github.com/aiswe-dev/aiswe/internal/registry"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Server wraps the aiswe registries and evaluator and exposes them as MCP
// tools. All tools are read-only queries over the in-memory catalog.
type Server struct {
	server     *gomcp.Server
	tasks      registry.TaskRegistry
	challenges registry.ChallengeRegistry
	solutions  registry.SolutionRegistry
	eval       evaluator.Evaluator
	log        zerolog.Logger
}

// NewServer creates a new MCP server over the given catalog services.
func NewServer(
	tasks registry.TaskRegistry,
	challenges registry.ChallengeRegistry,
	solutions registry.SolutionRegistry,
	eval evaluator.Evaluator,
	version string,
) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		tasks:      tasks,
		challenges: challenges,
		solutions:  solutions,
		eval:       eval,
		log:        logging.Component("mcp"),
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "aiswe", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listTasksInput struct {
	Category     string `json:"category,omitempty" jsonschema:"filter by task category (code_generation, code_transformation, testing_analysis, software_maintenance, scaffolding_metacode, formal_verification)"`
	Scope        string `json:"scope,omitempty" jsonschema:"filter by scope (function, unit, project)"`
	Complexity   string `json:"complexity,omitempty" jsonschema:"filter by logical complexity (low, medium, high)"`
	Intervention string `json:"intervention,omitempty" jsonschema:"filter by human intervention level (low, medium, high)"`
}

type taskSummary struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Scope        string `json:"scope"`
	Complexity   string `json:"complexity"`
	Intervention string `json:"intervention"`
	Description  string `json:"description"`
}

type listTasksOutput struct {
	Tasks []taskSummary `json:"tasks"`
	Count int           `json:"count"`
}

type getTaskInput struct {
	Name string `json:"name" jsonschema:"required,the task name (e.g. Unit Test Generation)"`
}

type getTaskOutput struct {
	Task models.Task `json:"task"`
}

type evaluateTaskInput struct {
	Name string `json:"name" jsonschema:"required,the task name to evaluate"`
}

type evaluateTaskOutput struct {
	Task           string   `json:"task"`
	ReadinessScore float64  `json:"readiness_score"`
	Recommendation string   `json:"recommendation"`
	Challenges     []string `json:"challenges"`
	Solutions      []string `json:"solutions"`
}

type listChallengesInput struct {
	Severity string `json:"severity,omitempty" jsonschema:"filter by severity (critical, high, medium, low)"`
	Category string `json:"category,omitempty" jsonschema:"filter by challenge category (e.g. evaluation_benchmarks, effective_tool_usage)"`
}

type challengeSummary struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Severity    string  `json:"severity"`
	ImpactScore float64 `json:"impact_score"`
	Description string  `json:"description"`
}

type listChallengesOutput struct {
	Challenges []challengeSummary `json:"challenges"`
	Count      int                `json:"count"`
}

type challengeCoverageInput struct{}

type challengeCoverageOutput struct {
	TotalChallenges          int            `json:"total_challenges"`
	CoveredChallenges        int            `json:"covered_challenges"`
	CoveragePercentage       float64        `json:"coverage_percentage"`
	AvgSolutionsPerChallenge float64        `json:"avg_solutions_per_challenge"`
	Details                  map[string]int `json:"coverage_details"`
	Uncovered                []string       `json:"uncovered,omitempty"`
	UnderAddressed           []string       `json:"under_addressed,omitempty"`
	Recommendations          []string       `json:"recommendations,omitempty"`
}

type roadmapInput struct{}

type roadmapOutput struct {
	ImmediateActions     []string `json:"immediate_actions"`
	ShortTermGoals       []string `json:"short_term_goals"`
	MediumTermObjectives []string `json:"medium_term_objectives"`
	LongTermResearch     []string `json:"long_term_research"`
	ChallengePriorities  []string `json:"challenge_priorities"`
	QuickWins            []string `json:"quick_wins"`
}

type benchmarkInput struct{}

type benchmarkOutput struct {
	TotalTasks           int                       `json:"total_tasks"`
	TaskDistribution     map[string]map[string]int `json:"task_distribution"`
	CoverageGaps         []string                  `json:"coverage_gaps,omitempty"`
	TotalChallenges      int                       `json:"total_challenges"`
	CriticalChallenges   []string                  `json:"critical_challenges"`
	HighImpactChallenges []string                  `json:"high_impact_challenges"`
	SolutionReadiness    map[string]float64        `json:"solution_readiness"`
	OverallReadiness     float64                   `json:"overall_readiness"`
	ReadinessGrade       string                    `json:"readiness_grade"`
	Recommendations      []string                  `json:"recommendations,omitempty"`
}

type quickWinsInput struct {
	MaxMonths float64 `json:"max_months,omitempty" jsonschema:"deployment horizon in months; non-positive or omitted means the default of 12"`
}

type solutionSummary struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Status           string  `json:"status"`
	FeasibilityScore float64 `json:"feasibility_score"`
	TimeToDeployment float64 `json:"time_to_deployment"`
}

type quickWinsOutput struct {
	MaxMonths float64           `json:"max_months"`
	Solutions []solutionSummary `json:"solutions"`
	Count     int               `json:"count"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List AI-SWE tasks with optional category, scope, complexity, and intervention filters.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get a task's full catalog entry by name, including metrics, examples, and benchmarks.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "evaluate_task",
		Description: "Evaluate AI readiness for a named task: affecting challenges, available solutions, readiness score, and recommendation.",
	}, s.handleEvaluateTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_challenges",
		Description: "List AI-SWE challenges with optional severity and category filters, including impact scores.",
	}, s.handleListChallenges)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "challenge_coverage",
		Description: "Report how well the solution catalog covers the challenge space: per-challenge solution counts, uncovered and under-addressed challenges.",
	}, s.handleChallengeCoverage)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "implementation_roadmap",
		Description: "Get the solution implementation roadmap: deployment horizons, top challenge priorities, and quick wins.",
	}, s.handleRoadmap)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "benchmark_state",
		Description: "Get the graded benchmark of current AI-SWE capability: task distribution, challenge severity counts, per-category readiness, and recommendations.",
	}, s.handleBenchmark)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "quick_wins",
		Description: "List solutions deployable within a given horizon in months (default 12), ranked as catalogued.",
	}, s.handleQuickWins)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	s.log.Debug().Str("tool", "list_tasks").Msg("tool call")

	filter := registry.TaskFilter{}
	if input.Scope != "" {
		scope := models.ScopeMeasure(input.Scope)
		if !scope.Valid() {
			return errorResult(fmt.Sprintf("invalid scope %q: must be one of %s",
				input.Scope, joinScopes())), listTasksOutput{}, nil
		}
		filter.Scope = &scope
	}
	if input.Complexity != "" {
		complexity := models.LogicalComplexity(input.Complexity)
		if !complexity.Valid() {
			return errorResult(fmt.Sprintf("invalid complexity %q: must be one of %s",
				input.Complexity, joinComplexities())), listTasksOutput{}, nil
		}
		filter.Complexity = &complexity
	}
	if input.Intervention != "" {
		intervention := models.HumanIntervention(input.Intervention)
		if !intervention.Valid() {
			return errorResult(fmt.Sprintf("invalid intervention %q: must be one of %s",
				input.Intervention, joinInterventions())), listTasksOutput{}, nil
		}
		filter.Intervention = &intervention
	}

	var category models.TaskCategory
	if input.Category != "" {
		category = models.TaskCategory(input.Category)
		if !category.Valid() {
			return errorResult(fmt.Sprintf("invalid category %q: must be one of %s",
				input.Category, joinTaskCategories())), listTasksOutput{}, nil
		}
	}

	tasks := s.tasks.ByMetrics(filter)
	out := listTasksOutput{Tasks: []taskSummary{}}
	for _, task := range tasks {
		if category != "" && task.Category != category {
			continue
		}
		out.Tasks = append(out.Tasks, taskToSummary(task))
	}
	out.Count = len(out.Tasks)

	return nil, out, nil
}

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input getTaskInput) (*gomcp.CallToolResult, getTaskOutput, error) {
	s.log.Debug().Str("tool", "get_task").Str("name", input.Name).Msg("tool call")

	if input.Name == "" {
		return errorResult("name is required"), getTaskOutput{}, nil
	}

	task, ok := s.tasks.Get(models.TaskName(input.Name))
	if !ok {
		return errorResult(fmt.Sprintf("task %q not found", input.Name)), getTaskOutput{}, nil
	}

	return nil, getTaskOutput{Task: *task}, nil
}

func (s *Server) handleEvaluateTask(_ context.Context, _ *gomcp.CallToolRequest, input evaluateTaskInput) (*gomcp.CallToolResult, evaluateTaskOutput, error) {
	s.log.Debug().Str("tool", "evaluate_task").Str("name", input.Name).Msg("tool call")

	if input.Name == "" {
		return errorResult("name is required"), evaluateTaskOutput{}, nil
	}

	evaluation, err := s.eval.EvaluateTask(models.TaskName(input.Name))
	if err != nil {
		return errorResult(err.Error()), evaluateTaskOutput{}, nil
	}

	out := evaluateTaskOutput{
		Task:           string(evaluation.Task.Name),
		ReadinessScore: evaluation.ReadinessScore,
		Recommendation: evaluation.Recommendation,
		Challenges:     []string{},
		Solutions:      []string{},
	}
	for _, challenge := range evaluation.Challenges {
		out.Challenges = append(out.Challenges, string(challenge.Name))
	}
	for _, solution := range evaluation.Solutions {
		out.Solutions = append(out.Solutions, string(solution.Name))
	}

	return nil, out, nil
}

func (s *Server) handleListChallenges(_ context.Context, _ *gomcp.CallToolRequest, input listChallengesInput) (*gomcp.CallToolResult, listChallengesOutput, error) {
	s.log.Debug().Str("tool", "list_challenges").Msg("tool call")

	var severity models.SeverityLevel
	if input.Severity != "" {
		severity = models.SeverityLevel(input.Severity)
		if !severity.Valid() {
			return errorResult(fmt.Sprintf("invalid severity %q: must be one of %s",
				input.Severity, joinSeverities())), listChallengesOutput{}, nil
		}
	}
	var category models.ChallengeCategory
	if input.Category != "" {
		category = models.ChallengeCategory(input.Category)
		if !category.Valid() {
			return errorResult(fmt.Sprintf("invalid category %q: must be one of %s",
				input.Category, joinChallengeCategories())), listChallengesOutput{}, nil
		}
	}

	out := listChallengesOutput{Challenges: []challengeSummary{}}
	for _, challenge := range s.challenges.All() {
		if severity != "" && challenge.Metrics.Severity != severity {
			continue
		}
		if category != "" && challenge.Category != category {
			continue
		}
		out.Challenges = append(out.Challenges, challengeSummary{
			Name:        string(challenge.Name),
			Category:    string(challenge.Category),
			Severity:    string(challenge.Metrics.Severity),
			ImpactScore: challenge.Metrics.ImpactScore(),
			Description: challenge.Description,
		})
	}
	out.Count = len(out.Challenges)

	return nil, out, nil
}

func (s *Server) handleChallengeCoverage(_ context.Context, _ *gomcp.CallToolRequest, _ challengeCoverageInput) (*gomcp.CallToolResult, challengeCoverageOutput, error) {
	s.log.Debug().Str("tool", "challenge_coverage").Msg("tool call")

	report := s.eval.ChallengeCoverage()

	out := challengeCoverageOutput{
		TotalChallenges:          report.TotalChallenges,
		CoveredChallenges:        report.CoveredChallenges,
		CoveragePercentage:       report.CoveragePercentage,
		AvgSolutionsPerChallenge: report.AvgSolutionsPerChallenge,
		Details:                  make(map[string]int, len(report.Details)),
		Uncovered:                challengeNameStrings(report.Uncovered),
		UnderAddressed:           challengeNameStrings(report.UnderAddressed),
		Recommendations:          report.Recommendations,
	}
	for name, count := range report.Details {
		out.Details[string(name)] = count
	}

	return nil, out, nil
}

func (s *Server) handleRoadmap(_ context.Context, _ *gomcp.CallToolRequest, _ roadmapInput) (*gomcp.CallToolResult, roadmapOutput, error) {
	s.log.Debug().Str("tool", "implementation_roadmap").Msg("tool call")

	report := s.eval.ImplementationRoadmap()

	out := roadmapOutput{
		ImmediateActions:     solutionNameStrings(report.ImmediateActions),
		ShortTermGoals:       solutionNameStrings(report.ShortTermGoals),
		MediumTermObjectives: solutionNameStrings(report.MediumTermObjectives),
		LongTermResearch:     solutionNameStrings(report.LongTermResearch),
		ChallengePriorities:  []string{},
		QuickWins:            solutionNameStrings(report.QuickWins),
	}
	for _, challenge := range report.ChallengePriorities {
		out.ChallengePriorities = append(out.ChallengePriorities, string(challenge.Name))
	}

	return nil, out, nil
}

func (s *Server) handleBenchmark(_ context.Context, _ *gomcp.CallToolRequest, _ benchmarkInput) (*gomcp.CallToolResult, benchmarkOutput, error) {
	s.log.Debug().Str("tool", "benchmark_state").Msg("tool call")

	report := s.eval.BenchmarkState()

	out := benchmarkOutput{
		TotalTasks:           report.TaskAnalysis.TotalTasks,
		TaskDistribution:     report.TaskAnalysis.Distribution,
		CoverageGaps:         report.TaskAnalysis.CoverageGaps,
		TotalChallenges:      report.ChallengeAnalysis.TotalChallenges,
		CriticalChallenges:   challengeNameStrings(report.ChallengeAnalysis.CriticalChallenges),
		HighImpactChallenges: challengeNameStrings(report.ChallengeAnalysis.HighImpactChallenges),
		SolutionReadiness:    make(map[string]float64, len(report.SolutionReadiness)),
		OverallReadiness:     report.OverallReadiness,
		ReadinessGrade:       report.ReadinessGrade,
		Recommendations:      report.Recommendations,
	}
	for category, readiness := range report.SolutionReadiness {
		out.SolutionReadiness[string(category)] = readiness
	}

	return nil, out, nil
}

func (s *Server) handleQuickWins(_ context.Context, _ *gomcp.CallToolRequest, input quickWinsInput) (*gomcp.CallToolResult, quickWinsOutput, error) {
	s.log.Debug().Str("tool", "quick_wins").Float64("max_months", input.MaxMonths).Msg("tool call")

	maxMonths := input.MaxMonths
	if maxMonths <= 0 {
		maxMonths = 12
	}

	wins := s.solutions.QuickWins(maxMonths)
	out := quickWinsOutput{
		MaxMonths: maxMonths,
		Solutions: []solutionSummary{},
		Count:     len(wins),
	}
	for _, solution := range wins {
		out.Solutions = append(out.Solutions, solutionSummary{
			Name:             string(solution.Name),
			Category:         string(solution.Category),
			Status:           string(solution.Status),
			FeasibilityScore: solution.Metrics.FeasibilityScore(),
			TimeToDeployment: solution.Metrics.TimeToDeployment,
		})
	}

	return nil, out, nil
}

// --- Helpers ---

func taskToSummary(task *models.Task) taskSummary {
	return taskSummary{
		Name:         string(task.Name),
		Category:     string(task.Category),
		Scope:        string(task.Metrics.Scope),
		Complexity:   string(task.Metrics.Complexity),
		Intervention: string(task.Metrics.Intervention),
		Description:  task.Description,
	}
}

func challengeNameStrings(names []models.ChallengeName) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return out
}

func solutionNameStrings(solutions []*models.Solution) []string {
	out := make([]string, 0, len(solutions))
	for _, solution := range solutions {
		out = append(out, string(solution.Name))
	}
	return out
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func joinScopes() string {
	return joinEnum(models.ScopeMeasures())
}

func joinComplexities() string {
	return joinEnum(models.LogicalComplexities())
}

func joinInterventions() string {
	return joinEnum(models.HumanInterventions())
}

func joinTaskCategories() string {
	return joinEnum(models.TaskCategories())
}

func joinSeverities() string {
	return joinEnum(models.SeverityLevels())
}

func joinChallengeCategories() string {
	return joinEnum(models.ChallengeCategories())
}

func joinEnum[T ~string](values []T) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = string(v)
	}
	return strings.Join(strs, ", ")
}
