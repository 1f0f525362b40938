package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Inspect the AI-SWE challenge catalog",
	Long:  "List, show, and rank the cataloged challenges limiting AI software engineering.",
}

var (
	challengeListCategory string
	challengeListSeverity string
	challengeListJSON     bool
)

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List challenges, optionally filtered by category or severity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Challenges == nil {
			return fmt.Errorf("challenge catalog not initialized")
		}

		category, err := parseChallengeCategoryFlag(challengeListCategory)
		if err != nil {
			return err
		}
		severity, err := parseSeverityFlag(challengeListSeverity)
		if err != nil {
			return err
		}

		challenges := Challenges.All()
		if category != "" {
			challenges = Challenges.ByCategory(category)
		}
		if severity != "" {
			filtered := challenges[:0]
			for _, challenge := range challenges {
				if challenge.Metrics.Severity == severity {
					filtered = append(filtered, challenge)
				}
			}
			challenges = filtered
		}

		if challengeListJSON {
			return printJSON(challenges)
		}

		fmt.Printf("%-50s %-24s %-10s %s\n", "NAME", "CATEGORY", "SEVERITY", "IMPACT")
		for _, challenge := range challenges {
			fmt.Printf("%-50s %-24s %-10s %6.2f\n",
				challenge.Name, challenge.Category,
				challenge.Metrics.Severity, challenge.Metrics.ImpactScore())
		}
		fmt.Printf("\n%d challenge(s)\n", len(challenges))
		return nil
	},
}

var challengeShowJSON bool

var challengeShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show full details for a challenge",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeChallengeNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Challenges == nil {
			return fmt.Errorf("challenge catalog not initialized")
		}
		challenge, ok := Challenges.Get(models.ChallengeName(args[0]))
		if !ok {
			return fmt.Errorf("challenge %q not found", args[0])
		}

		if challengeShowJSON {
			return printJSON(challenge)
		}

		fmt.Printf("Name:         %s\n", challenge.Name)
		fmt.Printf("Category:     %s\n", challenge.Category)
		fmt.Printf("Severity:     %s\n", challenge.Metrics.Severity)
		fmt.Printf("Impact:       %.2f\n", challenge.Metrics.ImpactScore())
		fmt.Printf("Frequency:    %.2f\n", challenge.Metrics.Frequency)
		fmt.Printf("Coverage:     %.2f\n", challenge.Metrics.TaskCoverage)
		fmt.Printf("Readiness:    %.2f\n", challenge.Metrics.SolutionReadiness)
		fmt.Printf("Description:  %s\n", challenge.Description)
		printNameList("Symptoms", challenge.Symptoms)
		printNameList("Root causes", challenge.RootCauses)
		printNameList("Examples", challenge.Examples)
		if len(challenge.AffectedTasks) > 0 {
			fmt.Println("Affected tasks:")
			for _, task := range challenge.AffectedTasks {
				fmt.Printf("  - %s\n", task)
			}
		}
		if len(challenge.RelatedChallenges) > 0 {
			fmt.Println("Related challenges:")
			for _, related := range challenge.RelatedChallenges {
				fmt.Printf("  - %s\n", related)
			}
		}
		return nil
	},
}

var (
	challengeRankingTop  int
	challengeRankingJSON bool
)

var challengeRankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Rank challenges by impact score",
	Long: `Rank all challenges by impact score, highest first. Impact combines
severity, frequency, task coverage, and how far solutions are from ready.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Challenges == nil {
			return fmt.Errorf("challenge catalog not initialized")
		}

		ranked := Challenges.ImpactRanking()
		if challengeRankingTop > 0 && challengeRankingTop < len(ranked) {
			ranked = ranked[:challengeRankingTop]
		}

		if challengeRankingJSON {
			return printJSON(ranked)
		}

		fmt.Printf("%4s  %-50s %-10s %s\n", "RANK", "NAME", "SEVERITY", "IMPACT")
		for i, challenge := range ranked {
			fmt.Printf("%4d  %-50s %-10s %6.2f\n",
				i+1, challenge.Name, challenge.Metrics.Severity, challenge.Metrics.ImpactScore())
		}
		return nil
	},
}

var challengeReadinessJSON bool

// readinessView is the JSON shape of the readiness subcommand.
type readinessView struct {
	ByCategory map[models.ChallengeCategory]float64 `json:"by_category"`
	Overall    float64                              `json:"overall"`
	Grade      string                               `json:"grade"`
}

var challengeReadinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Show solution readiness per challenge category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Challenges == nil || Eval == nil {
			return fmt.Errorf("challenge catalog not initialized")
		}

		benchmark := Eval.BenchmarkState()
		view := readinessView{
			ByCategory: benchmark.SolutionReadiness,
			Overall:    benchmark.OverallReadiness,
			Grade:      benchmark.ReadinessGrade,
		}

		if challengeReadinessJSON {
			return printJSON(view)
		}

		fmt.Printf("%-28s %s\n", "CATEGORY", "READINESS")
		for _, category := range models.ChallengeCategories() {
			score, ok := view.ByCategory[category]
			if !ok {
				continue
			}
			fmt.Printf("%-28s %9.2f\n", category, score)
		}
		fmt.Printf("\nOverall: %.2f - %s\n", view.Overall, view.Grade)
		return nil
	},
}

func init() {
	challengeListCmd.Flags().StringVar(&challengeListCategory, "category", "", "Filter by challenge category")
	challengeListCmd.Flags().StringVar(&challengeListSeverity, "severity", "", "Filter by severity level")
	challengeListCmd.Flags().BoolVar(&challengeListJSON, "json", false, "Output as JSON")
	_ = challengeListCmd.RegisterFlagCompletionFunc("category", completeChallengeCategories)
	_ = challengeListCmd.RegisterFlagCompletionFunc("severity", completeSeverities)

	challengeShowCmd.Flags().BoolVar(&challengeShowJSON, "json", false, "Output as JSON")

	challengeRankingCmd.Flags().IntVar(&challengeRankingTop, "top", 0, "Limit to the top N challenges (0 = all)")
	challengeRankingCmd.Flags().BoolVar(&challengeRankingJSON, "json", false, "Output as JSON")

	challengeReadinessCmd.Flags().BoolVar(&challengeReadinessJSON, "json", false, "Output as JSON")

	challengeCmd.AddCommand(challengeListCmd)
	challengeCmd.AddCommand(challengeShowCmd)
	challengeCmd.AddCommand(challengeRankingCmd)
	challengeCmd.AddCommand(challengeReadinessCmd)
	rootCmd.AddCommand(challengeCmd)
}
