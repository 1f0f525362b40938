package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiswe-dev/aiswe/internal/evaluator"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

var (
	evaluateFormat string
	evaluateSave   string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <task-name>",
	Short: "Assess AI readiness for a software engineering task",
	Long: `Evaluate how ready current AI systems are for a specific task: the
challenges affecting it, the solutions addressing those challenges, and a
readiness score with a qualitative recommendation.

A task no known challenge affects scores 1.0 and earns high confidence.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Eval == nil {
			return fmt.Errorf("evaluator not initialized")
		}
		format, err := resolveFormat(evaluateFormat)
		if err != nil {
			return err
		}
		evaluation, err := Eval.EvaluateTask(models.TaskName(args[0]))
		if err != nil {
			return err
		}
		rendered, err := renderEvaluation(evaluation, format)
		if err != nil {
			return err
		}
		return emit(rendered, evaluateSave)
	},
}

func renderEvaluation(evaluation *evaluator.TaskEvaluation, format string) (string, error) {
	if format == formatJSON {
		return renderJSON(evaluation)
	}

	var b strings.Builder
	task := evaluation.Task

	if format == formatTable {
		fmt.Fprintf(&b, "%-28s %s\n", "TASK", task.Name)
		fmt.Fprintf(&b, "%-28s %s\n", "CATEGORY", task.Category)
		fmt.Fprintf(&b, "%-28s %s\n", "SCOPE", task.Metrics.Scope)
		fmt.Fprintf(&b, "%-28s %s\n", "COMPLEXITY", task.Metrics.Complexity)
		fmt.Fprintf(&b, "%-28s %s\n", "INTERVENTION", task.Metrics.Intervention)
		fmt.Fprintf(&b, "%-28s %.2f\n", "READINESS", evaluation.ReadinessScore)
		fmt.Fprintf(&b, "%-28s %s\n", "RECOMMENDATION", evaluation.Recommendation)

		if len(evaluation.Challenges) > 0 {
			fmt.Fprintf(&b, "\n%-50s %-10s %s\n", "CHALLENGE", "SEVERITY", "IMPACT")
			for _, challenge := range evaluation.Challenges {
				fmt.Fprintf(&b, "%-50s %-10s %6.2f\n",
					challenge.Name, challenge.Metrics.Severity, challenge.Metrics.ImpactScore())
			}
		}
		if len(evaluation.Solutions) > 0 {
			fmt.Fprintf(&b, "\n%-42s %-12s %-12s %s\n", "SOLUTION", "STATUS", "FEASIBILITY", "MONTHS")
			for _, solution := range evaluation.Solutions {
				fmt.Fprintf(&b, "%-42s %-12s %11.2f %6.0f\n",
					solution.Name, solution.Status,
					solution.Metrics.FeasibilityScore(), solution.Metrics.TimeToDeployment)
			}
		}
		return b.String(), nil
	}

	fmt.Fprintf(&b, "Task: %s (%s)\n", task.Name, task.Category)
	fmt.Fprintf(&b, "Metrics: scope=%s complexity=%s intervention=%s\n\n",
		task.Metrics.Scope, task.Metrics.Complexity, task.Metrics.Intervention)
	fmt.Fprintf(&b, "Readiness score: %.2f\n", evaluation.ReadinessScore)
	fmt.Fprintf(&b, "Recommendation:  %s\n", evaluation.Recommendation)

	if len(evaluation.Challenges) == 0 {
		b.WriteString("\nNo known challenges affect this task.\n")
	} else {
		fmt.Fprintf(&b, "\nChallenges (%d):\n", len(evaluation.Challenges))
		for _, challenge := range evaluation.Challenges {
			fmt.Fprintf(&b, "  - %s [%s]\n", challenge.Name, challenge.Metrics.Severity)
		}
	}
	if len(evaluation.Solutions) > 0 {
		fmt.Fprintf(&b, "\nSolutions (%d):\n", len(evaluation.Solutions))
		for _, solution := range evaluation.Solutions {
			fmt.Fprintf(&b, "  - %s (%s)\n", solution.Name, solution.Status)
		}
	}
	return b.String(), nil
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", "", "Output format: summary, table, or json")
	evaluateCmd.Flags().StringVar(&evaluateSave, "save", "", "Write the rendered output to a file")
	registerFormatCompletions(evaluateCmd)
	rootCmd.AddCommand(evaluateCmd)
}
