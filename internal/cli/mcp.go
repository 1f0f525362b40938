package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	aiswemcp "github.com/aiswe-dev/aiswe/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the aiswe MCP server on stdio",
	Long: `Start the aiswe MCP (Model Context Protocol) server on stdio transport.

The server exposes the catalog and evaluator as MCP tools that AI coding
assistants can call: list_tasks, get_task, evaluate_task, list_challenges,
challenge_coverage, implementation_roadmap, benchmark_state, quick_wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tasks == nil || Challenges == nil || Solutions == nil || Eval == nil {
			return fmt.Errorf("catalog not initialized")
		}

		srv := aiswemcp.NewServer(Tasks, Challenges, Solutions, Eval, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
