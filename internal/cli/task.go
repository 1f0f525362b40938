package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiswe-dev/aiswe/internal/registry"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Inspect the AI-SWE task catalog",
	Long:  "List, show, and summarize the cataloged AI software engineering tasks.",
}

var (
	taskListCategory     string
	taskListScope        string
	taskListComplexity   string
	taskListIntervention string
	taskListJSON         bool
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by category and metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil {
			return fmt.Errorf("task catalog not initialized")
		}

		category, err := parseTaskCategoryFlag(taskListCategory)
		if err != nil {
			return err
		}
		scope, err := parseScopeFlag(taskListScope)
		if err != nil {
			return err
		}
		complexity, err := parseComplexityFlag(taskListComplexity)
		if err != nil {
			return err
		}
		intervention, err := parseInterventionFlag(taskListIntervention)
		if err != nil {
			return err
		}

		tasks := Tasks.ByMetrics(registry.TaskFilter{
			Scope:        scope,
			Complexity:   complexity,
			Intervention: intervention,
		})
		if category != "" {
			filtered := tasks[:0]
			for _, task := range tasks {
				if task.Category == category {
					filtered = append(filtered, task)
				}
			}
			tasks = filtered
		}

		if taskListJSON {
			return printJSON(tasks)
		}

		fmt.Printf("%-28s %-22s %-10s %-12s %s\n", "NAME", "CATEGORY", "SCOPE", "COMPLEXITY", "INTERVENTION")
		for _, task := range tasks {
			fmt.Printf("%-28s %-22s %-10s %-12s %s\n",
				task.Name, task.Category, task.Metrics.Scope,
				task.Metrics.Complexity, task.Metrics.Intervention)
		}
		fmt.Printf("\n%d task(s)\n", len(tasks))
		return nil
	},
}

var taskShowJSON bool

var taskShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show full details for a task",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil {
			return fmt.Errorf("task catalog not initialized")
		}
		task, ok := Tasks.Get(models.TaskName(args[0]))
		if !ok {
			return fmt.Errorf("task %q not found", args[0])
		}

		if taskShowJSON {
			return printJSON(task)
		}

		fmt.Printf("Name:         %s\n", task.Name)
		fmt.Printf("Category:     %s\n", task.Category)
		fmt.Printf("Scope:        %s\n", task.Metrics.Scope)
		fmt.Printf("Complexity:   %s\n", task.Metrics.Complexity)
		fmt.Printf("Intervention: %s\n", task.Metrics.Intervention)
		fmt.Printf("Description:  %s\n", task.Description)
		printNameList("Examples", task.Examples)
		if len(task.Challenges) > 0 {
			fmt.Printf("Challenges:\n")
			for _, name := range task.Challenges {
				fmt.Printf("  - %s\n", name)
			}
		}
		printNameList("Benchmarks", task.Benchmarks)
		return nil
	},
}

var taskDistributionJSON bool

var taskDistributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Show task counts along each catalog dimension",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil {
			return fmt.Errorf("task catalog not initialized")
		}
		distribution := Tasks.Distribution()

		if taskDistributionJSON {
			return printJSON(distribution)
		}

		fmt.Println("SCOPE")
		for _, scope := range models.ScopeMeasures() {
			fmt.Printf("  %-24s %d\n", scope, distribution["scope"][string(scope)])
		}
		fmt.Println("\nCOMPLEXITY")
		for _, complexity := range models.LogicalComplexities() {
			fmt.Printf("  %-24s %d\n", complexity, distribution["complexity"][string(complexity)])
		}
		fmt.Println("\nINTERVENTION")
		for _, intervention := range models.HumanInterventions() {
			fmt.Printf("  %-24s %d\n", intervention, distribution["intervention"][string(intervention)])
		}
		fmt.Println("\nCATEGORY")
		for _, category := range models.TaskCategories() {
			fmt.Printf("  %-24s %d\n", category, distribution["category"][string(category)])
		}
		fmt.Printf("\n%d task(s) total\n", Tasks.Len())
		return nil
	},
}

// printNameList prints a labeled bullet list, omitting empty lists.
func printNameList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func init() {
	taskListCmd.Flags().StringVar(&taskListCategory, "category", "", "Filter by task category")
	taskListCmd.Flags().StringVar(&taskListScope, "scope", "", "Filter by scope (function, unit, project)")
	taskListCmd.Flags().StringVar(&taskListComplexity, "complexity", "", "Filter by logical complexity")
	taskListCmd.Flags().StringVar(&taskListIntervention, "intervention", "", "Filter by human intervention level")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")
	_ = taskListCmd.RegisterFlagCompletionFunc("category", completeTaskCategories)
	_ = taskListCmd.RegisterFlagCompletionFunc("scope", completeScopes)
	_ = taskListCmd.RegisterFlagCompletionFunc("complexity", completeComplexities)
	_ = taskListCmd.RegisterFlagCompletionFunc("intervention", completeInterventions)

	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")
	taskDistributionCmd.Flags().BoolVar(&taskDistributionJSON, "json", false, "Output as JSON")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskDistributionCmd)
	rootCmd.AddCommand(taskCmd)
}
