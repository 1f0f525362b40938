package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiswe-dev/aiswe/internal/evaluator"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

var (
	reportFormat string
	reportSave   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Cross-catalog reports: coverage, roadmap, benchmark, overview",
	Long: `Generate reports that join the task, challenge, and solution catalogs:
how well solutions cover the challenge space, a deployment roadmap, a
graded benchmark of overall AI-SWE readiness, and a framework overview.`,
}

var reportCoverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report solution coverage of the challenge space",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Eval == nil || Challenges == nil {
			return fmt.Errorf("evaluator not initialized")
		}
		format, err := resolveFormat(reportFormat)
		if err != nil {
			return err
		}
		rendered, err := renderCoverage(Eval.ChallengeCoverage(), Challenges.Names(), format)
		if err != nil {
			return err
		}
		return emit(rendered, reportSave)
	},
}

var reportRoadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Report the solution implementation roadmap",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Eval == nil {
			return fmt.Errorf("evaluator not initialized")
		}
		format, err := resolveFormat(reportFormat)
		if err != nil {
			return err
		}
		rendered, err := renderRoadmap(Eval.ImplementationRoadmap(), format)
		if err != nil {
			return err
		}
		return emit(rendered, reportSave)
	},
}

var reportBenchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Report the graded state of AI-SWE capabilities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Eval == nil {
			return fmt.Errorf("evaluator not initialized")
		}
		format, err := resolveFormat(reportFormat)
		if err != nil {
			return err
		}
		rendered, err := renderBenchmark(Eval.BenchmarkState(), format)
		if err != nil {
			return err
		}
		return emit(rendered, reportSave)
	},
}

var reportOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Report catalog totals with a readiness benchmark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Eval == nil {
			return fmt.Errorf("evaluator not initialized")
		}
		format, err := resolveFormat(reportFormat)
		if err != nil {
			return err
		}
		rendered, err := renderOverview(Eval.Overview(), format)
		if err != nil {
			return err
		}
		return emit(rendered, reportSave)
	},
}

func renderCoverage(report *evaluator.CoverageReport, order []models.ChallengeName, format string) (string, error) {
	if format == formatJSON {
		return renderJSON(report)
	}

	var b strings.Builder

	if format == formatTable {
		fmt.Fprintf(&b, "%-50s %s\n", "CHALLENGE", "SOLUTIONS")
		for _, name := range order {
			fmt.Fprintf(&b, "%-50s %9d\n", name, report.Details[name])
		}
		fmt.Fprintf(&b, "\n%-28s %d\n", "TOTAL CHALLENGES", report.TotalChallenges)
		fmt.Fprintf(&b, "%-28s %d (%.1f%%)\n", "COVERED", report.CoveredChallenges, report.CoveragePercentage)
		fmt.Fprintf(&b, "%-28s %.1f\n", "AVG SOLUTIONS/CHALLENGE", report.AvgSolutionsPerChallenge)
		return b.String(), nil
	}

	b.WriteString("Challenge Coverage\n\n")
	fmt.Fprintf(&b, "Total challenges: %d\n", report.TotalChallenges)
	fmt.Fprintf(&b, "Covered:          %d (%.1f%%)\n", report.CoveredChallenges, report.CoveragePercentage)
	fmt.Fprintf(&b, "Avg solutions:    %.1f per challenge\n", report.AvgSolutionsPerChallenge)

	if len(report.Uncovered) > 0 {
		b.WriteString("\nUncovered:\n")
		for _, name := range report.Uncovered {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}
	if len(report.UnderAddressed) > 0 {
		b.WriteString("\nUnder-addressed (single solution):\n")
		for _, name := range report.UnderAddressed {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}
	if len(report.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, recommendation := range report.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", recommendation)
		}
	}
	return b.String(), nil
}

func renderRoadmap(report *evaluator.RoadmapReport, format string) (string, error) {
	if format == formatJSON {
		return renderJSON(report)
	}

	var b strings.Builder

	if format == formatTable {
		fmt.Fprintf(&b, "%-42s %-24s %s\n", "SOLUTION", "HORIZON", "MONTHS")
		writeBucketRows(&b, "Short-term goals", report.ShortTermGoals)
		writeBucketRows(&b, "Medium-term objectives", report.MediumTermObjectives)
		writeBucketRows(&b, "Long-term research", report.LongTermResearch)

		fmt.Fprintf(&b, "\n%4s  %-50s %s\n", "RANK", "CHALLENGE PRIORITY", "IMPACT")
		for i, challenge := range report.ChallengePriorities {
			fmt.Fprintf(&b, "%4d  %-50s %6.2f\n", i+1, challenge.Name, challenge.Metrics.ImpactScore())
		}
		return b.String(), nil
	}

	b.WriteString("Implementation Roadmap\n")
	writeBucketSummary(&b, "Short-term goals", report.ShortTermGoals)
	writeBucketSummary(&b, "Medium-term objectives", report.MediumTermObjectives)
	writeBucketSummary(&b, "Long-term research", report.LongTermResearch)

	fmt.Fprintf(&b, "\nChallenge priorities (%d):\n", len(report.ChallengePriorities))
	for i, challenge := range report.ChallengePriorities {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, challenge.Name)
	}

	b.WriteString("\nQuick wins (high effectiveness, short horizon):\n")
	if len(report.QuickWins) == 0 {
		b.WriteString("  none\n")
	}
	for _, solution := range report.QuickWins {
		fmt.Fprintf(&b, "  - %s (%.0f mo)\n", solution.Name, solution.Metrics.TimeToDeployment)
	}
	return b.String(), nil
}

func writeBucketRows(b *strings.Builder, horizon string, solutions []*models.Solution) {
	for _, solution := range solutions {
		fmt.Fprintf(b, "%-42s %-24s %6.0f\n", solution.Name, horizon, solution.Metrics.TimeToDeployment)
	}
}

func writeBucketSummary(b *strings.Builder, horizon string, solutions []*models.Solution) {
	fmt.Fprintf(b, "\n%s (%d):\n", horizon, len(solutions))
	if len(solutions) == 0 {
		b.WriteString("  none\n")
		return
	}
	for _, solution := range solutions {
		fmt.Fprintf(b, "  - %s (%.0f mo)\n", solution.Name, solution.Metrics.TimeToDeployment)
	}
}

func renderBenchmark(report *evaluator.BenchmarkReport, format string) (string, error) {
	if format == formatJSON {
		return renderJSON(report)
	}

	var b strings.Builder

	if format == formatTable {
		fmt.Fprintf(&b, "%-28s %d\n", "TOTAL TASKS", report.TaskAnalysis.TotalTasks)
		fmt.Fprintf(&b, "%-28s %d\n", "TOTAL CHALLENGES", report.ChallengeAnalysis.TotalChallenges)
		fmt.Fprintf(&b, "%-28s %d\n", "CRITICAL CHALLENGES", report.ChallengeAnalysis.CriticalCount)
		fmt.Fprintf(&b, "%-28s %d\n", "HIGH-SEVERITY CHALLENGES", report.ChallengeAnalysis.HighImpactCount)
		fmt.Fprintf(&b, "%-28s %.2f\n", "OVERALL READINESS", report.OverallReadiness)
		fmt.Fprintf(&b, "%-28s %s\n", "GRADE", report.ReadinessGrade)

		b.WriteString("\nTASK DISTRIBUTION\n")
		writeDistributionTable(&b, report.TaskAnalysis.Distribution)

		fmt.Fprintf(&b, "\n%-28s %s\n", "CATEGORY", "READINESS")
		for _, category := range models.ChallengeCategories() {
			score, ok := report.SolutionReadiness[category]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "%-28s %9.2f\n", category, score)
		}
		return b.String(), nil
	}

	b.WriteString("AI-SWE Benchmark\n\n")
	fmt.Fprintf(&b, "Tasks:      %d\n", report.TaskAnalysis.TotalTasks)
	fmt.Fprintf(&b, "Challenges: %d (%d critical, %d high)\n",
		report.ChallengeAnalysis.TotalChallenges,
		report.ChallengeAnalysis.CriticalCount,
		report.ChallengeAnalysis.HighImpactCount)
	fmt.Fprintf(&b, "Overall readiness: %.2f - %s\n", report.OverallReadiness, report.ReadinessGrade)

	if len(report.TaskAnalysis.CoverageGaps) > 0 {
		b.WriteString("\nTask coverage gaps:\n")
		for _, gap := range report.TaskAnalysis.CoverageGaps {
			fmt.Fprintf(&b, "  - %s\n", gap)
		}
	}
	if len(report.ChallengeAnalysis.CriticalChallenges) > 0 {
		b.WriteString("\nCritical challenges:\n")
		for _, name := range report.ChallengeAnalysis.CriticalChallenges {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}
	if len(report.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, recommendation := range report.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", recommendation)
		}
	}
	return b.String(), nil
}

// writeDistributionTable prints the per-dimension counts in canonical enum
// order so output is stable across runs.
func writeDistributionTable(b *strings.Builder, distribution map[string]map[string]int) {
	dimensions := []struct {
		label  string
		values []string
	}{
		{"scope", enumStrings(models.ScopeMeasures())},
		{"complexity", enumStrings(models.LogicalComplexities())},
		{"intervention", enumStrings(models.HumanInterventions())},
		{"category", enumStrings(models.TaskCategories())},
	}
	for _, dimension := range dimensions {
		counts := distribution[dimension.label]
		for _, value := range dimension.values {
			fmt.Fprintf(b, "  %-12s %-22s %d\n", dimension.label, value, counts[value])
		}
	}
}

func enumStrings[T ~string](values []T) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = string(v)
	}
	return result
}

func renderOverview(overview *evaluator.FrameworkOverview, format string) (string, error) {
	if format == formatJSON {
		return renderJSON(overview)
	}

	var b strings.Builder
	benchmark := overview.Benchmark

	if format == formatTable {
		fmt.Fprintf(&b, "%-28s %d\n", "TASKS", overview.TotalTasks)
		fmt.Fprintf(&b, "%-28s %d\n", "CHALLENGES", overview.TotalChallenges)
		fmt.Fprintf(&b, "%-28s %d\n", "SOLUTIONS", overview.TotalSolutions)
		fmt.Fprintf(&b, "%-28s %d\n", "ASSISTANT COMMANDS", overview.AssistantCommands)
		fmt.Fprintf(&b, "%-28s %.2f\n", "OVERALL READINESS", benchmark.OverallReadiness)
		fmt.Fprintf(&b, "%-28s %s\n", "GRADE", benchmark.ReadinessGrade)
		return b.String(), nil
	}

	b.WriteString("AI-SWE Framework Overview\n\n")
	fmt.Fprintf(&b, "Tasks:              %d\n", overview.TotalTasks)
	fmt.Fprintf(&b, "Challenges:         %d\n", overview.TotalChallenges)
	fmt.Fprintf(&b, "Solutions:          %d\n", overview.TotalSolutions)
	fmt.Fprintf(&b, "Assistant commands: %d\n", overview.AssistantCommands)
	fmt.Fprintf(&b, "\nOverall readiness: %.2f - %s\n", benchmark.OverallReadiness, benchmark.ReadinessGrade)
	fmt.Fprintf(&b, "Critical challenges: %d\n", benchmark.ChallengeAnalysis.CriticalCount)

	if len(benchmark.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, recommendation := range benchmark.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", recommendation)
		}
	}
	return b.String(), nil
}

func init() {
	reportCmd.PersistentFlags().StringVarP(&reportFormat, "format", "f", "", "Output format: summary, table, or json")
	reportCmd.PersistentFlags().StringVar(&reportSave, "save", "", "Write the rendered output to a file")
	_ = reportCmd.RegisterFlagCompletionFunc("format", completeFormats)

	reportCmd.AddCommand(reportCoverageCmd)
	reportCmd.AddCommand(reportRoadmapCmd)
	reportCmd.AddCommand(reportBenchmarkCmd)
	reportCmd.AddCommand(reportOverviewCmd)
	rootCmd.AddCommand(reportCmd)
}
