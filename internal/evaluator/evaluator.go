// Package evaluator answers composite questions that join the task,
// challenge, and solution catalogs: per-task readiness, solution coverage
// of the challenge space, roadmap assembly, and whole-system benchmarking.
// Every operation is a pure read over the registries it is given.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/aiswe-dev/aiswe/internal/registry"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// ErrTaskNotFound reports an evaluation request for a task name that is not
// registered.
var ErrTaskNotFound = errors.New("task not found")

const (
	// quickWinMonths is the deployment horizon for roadmap quick wins.
	quickWinMonths = 6
	// priorityCount caps the challenge priority list in roadmap reports.
	priorityCount = 5
	// minFeasibleScore is the feasibility bar a solution must clear before
	// the benchmark recommends prioritizing its implementation.
	minFeasibleScore = 0.5
)

// CommandCounter reports how many assistant commands are available. The
// assistant integration implements it; a nil counter reads as zero.
type CommandCounter interface {
	CommandCount() int
}

// TaskEvaluation is the readiness assessment for a single task: the
// challenges affecting it, the solutions addressing those challenges, and
// a derived readiness score with a qualitative recommendation.
type TaskEvaluation struct {
	Task           *models.Task        `json:"task"`
	Challenges     []*models.Challenge `json:"challenges"`
	Solutions      []*models.Solution  `json:"solutions"`
	ReadinessScore float64             `json:"readiness_score"`
	Recommendation string              `json:"recommendation"`
}

// CoverageReport describes how well the solution catalog covers the
// challenge catalog. UnderAddressed holds challenges with exactly one
// solution; Uncovered holds those with none.
type CoverageReport struct {
	TotalChallenges          int                          `json:"total_challenges"`
	CoveredChallenges        int                          `json:"covered_challenges"`
	CoveragePercentage       float64                      `json:"coverage_percentage"`
	AvgSolutionsPerChallenge float64                      `json:"avg_solutions_per_challenge"`
	Details                  map[models.ChallengeName]int `json:"coverage_details"`
	Uncovered                []models.ChallengeName       `json:"uncovered"`
	UnderAddressed           []models.ChallengeName       `json:"under_addressed"`
	Recommendations          []string                     `json:"recommendations"`
}

// RoadmapReport merges the solution deployment buckets with challenge
// priorities and quick wins. ImmediateActions is reserved; no deployment
// bucket currently feeds it.
type RoadmapReport struct {
	ImmediateActions     []*models.Solution  `json:"immediate_actions"`
	ShortTermGoals       []*models.Solution  `json:"short_term_goals"`
	MediumTermObjectives []*models.Solution  `json:"medium_term_objectives"`
	LongTermResearch     []*models.Solution  `json:"long_term_research"`
	ChallengePriorities  []*models.Challenge `json:"challenge_priorities"`
	QuickWins            []*models.Solution  `json:"quick_wins"`
}

// TaskAnalysis summarizes the task catalog for a benchmark report.
type TaskAnalysis struct {
	Distribution map[string]map[string]int `json:"distribution"`
	TotalTasks   int                       `json:"total_tasks"`
	CoverageGaps []string                  `json:"coverage_gaps"`
}

// ChallengeAnalysis summarizes the challenge catalog for a benchmark report.
type ChallengeAnalysis struct {
	TotalChallenges      int                    `json:"total_challenges"`
	CriticalCount        int                    `json:"critical_count"`
	HighImpactCount      int                    `json:"high_impact_count"`
	CriticalChallenges   []models.ChallengeName `json:"critical_challenges"`
	HighImpactChallenges []models.ChallengeName `json:"high_impact_challenges"`
}

// BenchmarkReport grades the current overall state of AI-SWE capabilities.
type BenchmarkReport struct {
	TaskAnalysis      TaskAnalysis                         `json:"task_analysis"`
	ChallengeAnalysis ChallengeAnalysis                    `json:"challenge_analysis"`
	SolutionReadiness map[models.ChallengeCategory]float64 `json:"solution_readiness"`
	OverallReadiness  float64                              `json:"overall_readiness"`
	ReadinessGrade    string                               `json:"readiness_grade"`
	Recommendations   []string                             `json:"recommendations"`
}

// FrameworkOverview is the default top-level view: catalog totals plus a
// full benchmark.
type FrameworkOverview struct {
	TotalTasks        int              `json:"total_tasks"`
	TotalChallenges   int              `json:"total_challenges"`
	TotalSolutions    int              `json:"total_solutions"`
	AssistantCommands int              `json:"assistant_commands"`
	Benchmark         *BenchmarkReport `json:"benchmark"`
}

// Evaluator holds read-only references to the three registries and derives
// cross-registry reports from them.
type Evaluator interface {
	// EvaluateTask assesses how ready current AI systems are for the named
	// task. Unknown names fail with ErrTaskNotFound.
	EvaluateTask(name models.TaskName) (*TaskEvaluation, error)
	// ChallengeCoverage reports which challenges lack solutions and which
	// rest on a single approach.
	ChallengeCoverage() *CoverageReport
	ImplementationRoadmap() *RoadmapReport
	BenchmarkState() *BenchmarkReport
	Overview() *FrameworkOverview
}

type evaluator struct {
	tasks      registry.TaskRegistry
	challenges registry.ChallengeRegistry
	solutions  registry.SolutionRegistry
	commands   CommandCounter
}

// NewEvaluator creates an Evaluator over the given registries. commands may
// be nil when no assistant surface is wired; Overview then reports zero
// commands.
func NewEvaluator(tasks registry.TaskRegistry, challenges registry.ChallengeRegistry, solutions registry.SolutionRegistry, commands CommandCounter) Evaluator {
	return &evaluator{
		tasks:      tasks,
		challenges: challenges,
		solutions:  solutions,
		commands:   commands,
	}
}

// EvaluateTask gathers the challenges affecting the task and the solutions
// addressing those challenges, then scores readiness as the mean solution
// readiness of the challenges minus their mean impact, floored at zero.
// A task no challenge affects is fully ready by default.
func (e *evaluator) EvaluateTask(name models.TaskName) (*TaskEvaluation, error) {
	task, ok := e.tasks.Get(name)
	if !ok {
		return nil, fmt.Errorf("evaluating task %q: %w", name, ErrTaskNotFound)
	}

	challenges := e.challenges.ForTask(name)

	// Union of solutions across all affecting challenges, first mention wins.
	var solutions []*models.Solution
	seen := make(map[*models.Solution]bool)
	for _, challenge := range challenges {
		for _, solution := range e.solutions.ForChallenge(challenge.Name) {
			if seen[solution] {
				continue
			}
			seen[solution] = true
			solutions = append(solutions, solution)
		}
	}

	avgReadiness, challengeImpact := 1.0, 0.0
	if len(challenges) > 0 {
		var readinessSum, impactSum float64
		for _, challenge := range challenges {
			readinessSum += challenge.Metrics.SolutionReadiness
			impactSum += challenge.Metrics.ImpactScore()
		}
		avgReadiness = readinessSum / float64(len(challenges))
		challengeImpact = impactSum / float64(len(challenges))
	}
	score := avgReadiness - challengeImpact
	if score < 0 {
		score = 0
	}

	return &TaskEvaluation{
		Task:           task,
		Challenges:     challenges,
		Solutions:      solutions,
		ReadinessScore: score,
		Recommendation: recommendTask(score),
	}, nil
}

func recommendTask(score float64) string {
	switch {
	case score > 0.8:
		return "HIGH CONFIDENCE: Task is well-understood with mature solutions available"
	case score > 0.6:
		return "MEDIUM CONFIDENCE: Task has some challenges but viable solutions exist"
	case score > 0.4:
		return "LOW CONFIDENCE: Significant challenges present, solutions in development"
	default:
		return "RESEARCH NEEDED: Major challenges without mature solutions"
	}
}

// ChallengeCoverage partitions the challenge space by solution count and
// emits one recommendation per uncovered or single-solution challenge, in
// challenge registration order.
func (e *evaluator) ChallengeCoverage() *CoverageReport {
	coverage := e.solutions.Coverage()
	names := e.challenges.Names()

	report := &CoverageReport{
		TotalChallenges: len(names),
		Details:         coverage,
	}

	total := 0
	for _, name := range names {
		count := coverage[name]
		total += count
		if count > 0 {
			report.CoveredChallenges++
		}
		switch count {
		case 0:
			report.Uncovered = append(report.Uncovered, name)
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("URGENT: Develop solutions for '%s' - no current approaches", name))
		case 1:
			report.UnderAddressed = append(report.UnderAddressed, name)
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Diversify solutions for '%s' - only one approach available", name))
		}
	}

	if report.TotalChallenges > 0 {
		report.CoveragePercentage = float64(report.CoveredChallenges) / float64(report.TotalChallenges) * 100
		report.AvgSolutionsPerChallenge = float64(total) / float64(report.TotalChallenges)
	}

	return report
}

// ImplementationRoadmap relabels the deployment buckets into goal horizons,
// folds the research bucket into long-term research, and intersects quick
// wins with high-effectiveness solutions.
func (e *evaluator) ImplementationRoadmap() *RoadmapReport {
	buckets := e.solutions.Roadmap()

	longTerm := make([]*models.Solution, 0, len(buckets[registry.BucketLongTerm])+len(buckets[registry.BucketResearch]))
	longTerm = append(longTerm, buckets[registry.BucketLongTerm]...)
	longTerm = append(longTerm, buckets[registry.BucketResearch]...)

	highImpact := e.solutions.HighImpact(models.EffectivenessHigh)
	impactSet := make(map[*models.Solution]bool, len(highImpact))
	for _, solution := range highImpact {
		impactSet[solution] = true
	}
	var quickWins []*models.Solution
	for _, solution := range e.solutions.QuickWins(quickWinMonths) {
		if impactSet[solution] {
			quickWins = append(quickWins, solution)
		}
	}

	return &RoadmapReport{
		ShortTermGoals:       buckets[registry.BucketShortTerm],
		MediumTermObjectives: buckets[registry.BucketMediumTerm],
		LongTermResearch:     longTerm,
		ChallengePriorities:  e.challenges.Priority(priorityCount),
		QuickWins:            quickWins,
	}
}

// BenchmarkState combines the task distribution, challenge severity counts,
// and per-category solution readiness into a single graded report.
func (e *evaluator) BenchmarkState() *BenchmarkReport {
	distribution := e.tasks.Distribution()
	critical := e.challenges.BySeverity(models.SeverityCritical)
	high := e.challenges.BySeverity(models.SeverityHigh)
	readiness := e.challenges.SystemReadiness()

	overall := 0.0
	if len(readiness) > 0 {
		var sum float64
		for _, score := range readiness {
			sum += score
		}
		overall = sum / float64(len(readiness))
	}

	return &BenchmarkReport{
		TaskAnalysis: TaskAnalysis{
			Distribution: distribution,
			TotalTasks:   e.tasks.Len(),
			CoverageGaps: taskGaps(distribution),
		},
		ChallengeAnalysis: ChallengeAnalysis{
			TotalChallenges:      e.challenges.Len(),
			CriticalCount:        len(critical),
			HighImpactCount:      len(high),
			CriticalChallenges:   challengeNames(critical),
			HighImpactChallenges: challengeNames(high),
		},
		SolutionReadiness: readiness,
		OverallReadiness:  overall,
		ReadinessGrade:    gradeReadiness(overall),
		Recommendations:   e.improvementRecommendations(overall, critical),
	}
}

// Overview returns catalog totals together with a full benchmark.
func (e *evaluator) Overview() *FrameworkOverview {
	commandCount := 0
	if e.commands != nil {
		commandCount = e.commands.CommandCount()
	}
	return &FrameworkOverview{
		TotalTasks:        e.tasks.Len(),
		TotalChallenges:   e.challenges.Len(),
		TotalSolutions:    e.solutions.Len(),
		AssistantCommands: commandCount,
		Benchmark:         e.BenchmarkState(),
	}
}

// taskGaps flags underrepresented corners of the task distribution.
func taskGaps(distribution map[string]map[string]int) []string {
	var gaps []string
	if distribution["scope"][string(models.ScopeProject)] < 2 {
		gaps = append(gaps, "Limited project-level task coverage")
	}
	if distribution["complexity"][string(models.ComplexityHigh)] < 2 {
		gaps = append(gaps, "Insufficient high-complexity task representation")
	}
	return gaps
}

func gradeReadiness(score float64) string {
	switch {
	case score >= 0.9:
		return "A (Excellent)"
	case score >= 0.8:
		return "B (Good)"
	case score >= 0.7:
		return "C (Fair)"
	case score >= 0.6:
		return "D (Poor)"
	default:
		return "F (Critical)"
	}
}

// improvementRecommendations emits an urgency note when overall readiness
// is low, a focus note when critical challenges pile up, and one line per
// top-3 critical challenge: develop a solution where none exists, otherwise
// prioritize the most feasible one clearing the feasibility bar.
func (e *evaluator) improvementRecommendations(overall float64, critical []*models.Challenge) []string {
	var recommendations []string

	if overall < 0.7 {
		recommendations = append(recommendations, "URGENT: Address critical challenges to improve overall system capability")
	}
	if len(critical) > 3 {
		recommendations = append(recommendations, "Focus on top 3 critical challenges for maximum impact")
	}

	top := critical
	if len(top) > 3 {
		top = top[:3]
	}
	for _, challenge := range top {
		solutions := e.solutions.ForChallenge(challenge.Name)
		if len(solutions) == 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Develop solutions for critical challenge: %s", challenge.Name))
			continue
		}
		if best := mostFeasible(solutions); best != nil {
			recommendations = append(recommendations,
				fmt.Sprintf("Prioritize implementation of %s", best.Name))
		}
	}

	return recommendations
}

// mostFeasible returns the highest-scoring solution above minFeasibleScore,
// or nil when none qualifies. Ties keep the earlier solution.
func mostFeasible(solutions []*models.Solution) *models.Solution {
	var best *models.Solution
	var bestScore float64
	for _, solution := range solutions {
		score := solution.Metrics.FeasibilityScore()
		if score <= minFeasibleScore {
			continue
		}
		if best == nil || score > bestScore {
			best = solution
			bestScore = score
		}
	}
	return best
}

func challengeNames(challenges []*models.Challenge) []models.ChallengeName {
	names := make([]models.ChallengeName, 0, len(challenges))
	for _, challenge := range challenges {
		names = append(names, challenge.Name)
	}
	return names
}
