package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

var solutionCmd = &cobra.Command{
	Use:   "solution",
	Short: "Inspect the AI-SWE solution catalog",
	Long:  "List, show, and rank the cataloged solution approaches.",
}

var (
	solutionListCategory string
	solutionListStatus   string
	solutionListJSON     bool
)

var solutionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List solutions, optionally filtered by category or status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Solutions == nil {
			return fmt.Errorf("solution catalog not initialized")
		}

		category, err := parseSolutionCategoryFlag(solutionListCategory)
		if err != nil {
			return err
		}
		status, err := parseStatusFlag(solutionListStatus)
		if err != nil {
			return err
		}

		solutions := Solutions.All()
		if category != "" {
			solutions = Solutions.ByCategory(category)
		}
		if status != "" {
			filtered := solutions[:0]
			for _, solution := range solutions {
				if solution.Status == status {
					filtered = append(filtered, solution)
				}
			}
			solutions = filtered
		}

		if solutionListJSON {
			return printJSON(solutions)
		}

		fmt.Printf("%-42s %-24s %-12s %s\n", "NAME", "CATEGORY", "STATUS", "EFFECTIVENESS")
		for _, solution := range solutions {
			fmt.Printf("%-42s %-24s %-12s %s\n",
				solution.Name, solution.Category, solution.Status, solution.Metrics.Effectiveness)
		}
		fmt.Printf("\n%d solution(s)\n", len(solutions))
		return nil
	},
}

var solutionShowJSON bool

var solutionShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show full details for a solution",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSolutionNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Solutions == nil {
			return fmt.Errorf("solution catalog not initialized")
		}
		solution, ok := Solutions.Get(models.SolutionName(args[0]))
		if !ok {
			return fmt.Errorf("solution %q not found", args[0])
		}

		if solutionShowJSON {
			return printJSON(solution)
		}

		fmt.Printf("Name:          %s\n", solution.Name)
		fmt.Printf("Category:      %s\n", solution.Category)
		fmt.Printf("Status:        %s\n", solution.Status)
		fmt.Printf("Effectiveness: %s\n", solution.Metrics.Effectiveness)
		fmt.Printf("Feasibility:   %.2f\n", solution.Metrics.FeasibilityScore())
		fmt.Printf("Difficulty:    %.2f\n", solution.Metrics.ImplementationDifficulty)
		fmt.Printf("Resources:     %.2f\n", solution.Metrics.ResourceRequirements)
		fmt.Printf("Deployment:    %.0f month(s)\n", solution.Metrics.TimeToDeployment)
		fmt.Printf("Description:   %s\n", solution.Description)
		fmt.Printf("Approach:      %s\n", solution.TechnicalApproach)
		if len(solution.AddressedChallenges) > 0 {
			fmt.Println("Addresses:")
			for _, name := range solution.AddressedChallenges {
				fmt.Printf("  - %s\n", name)
			}
		}
		printNameList("Implementation steps", solution.ImplementationSteps)
		printNameList("Success criteria", solution.SuccessCriteria)
		printNameList("Risks and limitations", solution.RisksLimitations)
		if len(solution.RelatedSolutions) > 0 {
			fmt.Println("Related solutions:")
			for _, related := range solution.RelatedSolutions {
				fmt.Printf("  - %s\n", related)
			}
		}
		return nil
	},
}

var solutionRankingJSON bool

var solutionRankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Rank solutions by feasibility score",
	Long: `Rank all solutions by feasibility, highest first. Feasibility combines
effectiveness, implementation difficulty, resource requirements, and the
deployment horizon.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Solutions == nil {
			return fmt.Errorf("solution catalog not initialized")
		}

		ranked := Solutions.FeasibilityRanking()
		if solutionRankingJSON {
			return printJSON(ranked)
		}

		fmt.Printf("%4s  %-42s %-12s %-12s %s\n", "RANK", "NAME", "FEASIBILITY", "STATUS", "MONTHS")
		for i, solution := range ranked {
			fmt.Printf("%4d  %-42s %11.2f %-12s %6.0f\n",
				i+1, solution.Name, solution.Metrics.FeasibilityScore(),
				solution.Status, solution.Metrics.TimeToDeployment)
		}
		return nil
	},
}

var (
	solutionQuickWinsMonths float64
	solutionQuickWinsJSON   bool
)

var solutionQuickWinsCmd = &cobra.Command{
	Use:   "quickwins",
	Short: "List solutions deployable within a time horizon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Solutions == nil {
			return fmt.Errorf("solution catalog not initialized")
		}

		months := solutionQuickWinsMonths
		if months <= 0 && Cfg != nil {
			months = Cfg.Report.QuickWinMonths
		}
		if months <= 0 {
			months = 12
		}

		wins := Solutions.QuickWins(months)
		if solutionQuickWinsJSON {
			return printJSON(wins)
		}

		fmt.Printf("Solutions deployable within %.0f month(s):\n\n", months)
		fmt.Printf("%-42s %-8s %s\n", "NAME", "MONTHS", "FEASIBILITY")
		for _, solution := range wins {
			fmt.Printf("%-42s %6.0f %12.2f\n",
				solution.Name, solution.Metrics.TimeToDeployment,
				solution.Metrics.FeasibilityScore())
		}
		fmt.Printf("\n%d solution(s)\n", len(wins))
		return nil
	},
}

func init() {
	solutionListCmd.Flags().StringVar(&solutionListCategory, "category", "", "Filter by solution category")
	solutionListCmd.Flags().StringVar(&solutionListStatus, "status", "", "Filter by implementation status")
	solutionListCmd.Flags().BoolVar(&solutionListJSON, "json", false, "Output as JSON")
	_ = solutionListCmd.RegisterFlagCompletionFunc("category", completeSolutionCategories)
	_ = solutionListCmd.RegisterFlagCompletionFunc("status", completeImplementationStatuses)

	solutionShowCmd.Flags().BoolVar(&solutionShowJSON, "json", false, "Output as JSON")
	solutionRankingCmd.Flags().BoolVar(&solutionRankingJSON, "json", false, "Output as JSON")

	solutionQuickWinsCmd.Flags().Float64Var(&solutionQuickWinsMonths, "months", 0, "Deployment horizon in months (0 = configured default)")
	solutionQuickWinsCmd.Flags().BoolVar(&solutionQuickWinsJSON, "json", false, "Output as JSON")

	solutionCmd.AddCommand(solutionListCmd)
	solutionCmd.AddCommand(solutionShowCmd)
	solutionCmd.AddCommand(solutionRankingCmd)
	solutionCmd.AddCommand(solutionQuickWinsCmd)
	rootCmd.AddCommand(solutionCmd)
}
