// Package cli implements the aiswe command tree using cobra. Commands read
// the catalog services from package-level variables wired by app.go; every
// RunE nil-checks the services it needs so the commands stay testable in
// isolation.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "aiswe",
	Short: "AI-SWE framework - a catalog and evaluator for AI software engineering",
	Long: `aiswe catalogs the tasks AI software engineering systems attempt, the
challenges that limit them, and the solutions proposed for those challenges.

It evaluates task readiness, reports solution coverage of the challenge
space, assembles implementation roadmaps, and benchmarks the overall state
of AI-SWE capabilities. The same catalog is exposed to AI assistants over
MCP and through a slash-style command surface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if Bootstrap == nil {
			return nil
		}
		return Bootstrap(configFlag, verboseFlag)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aiswe %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file path (default .aiswe.yaml in cwd or home)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
