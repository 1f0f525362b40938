package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiswe-dev/aiswe/internal/assistant"
)

var assistantCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Inspect and run the assistant command surface",
	Long: `The assistant surface catalogs slash-style commands AI coding assistants
dispatch against the framework, plus the lifecycle hooks that fire around
them. exec validates parameters and dispatches to the bound executor.`,
}

var (
	assistantListCategory string
	assistantListJSON     bool
)

var assistantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assistant commands, optionally filtered by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Assistant == nil {
			return fmt.Errorf("assistant integration not initialized")
		}
		category, err := parseCommandCategoryFlag(assistantListCategory)
		if err != nil {
			return err
		}

		commands := Assistant.Commands(category)
		if assistantListJSON {
			return printJSON(commands)
		}

		fmt.Printf("%-24s %-22s %-12s %s\n", "NAME", "CATEGORY", "MODE", "DESCRIPTION")
		for _, command := range commands {
			fmt.Printf("%-24s %-22s %-12s %s\n",
				command.Name, command.Category, command.Mode, command.Description)
		}
		fmt.Printf("\n%d command(s)\n", len(commands))
		return nil
	},
}

var assistantShowJSON bool

var assistantShowCmd = &cobra.Command{
	Use:               "show <command>",
	Short:             "Show usage for an assistant command",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAssistantCommands,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Assistant == nil {
			return fmt.Errorf("assistant integration not initialized")
		}

		if assistantShowJSON {
			command, ok := Assistant.Get(args[0])
			if !ok {
				return fmt.Errorf("assistant command %q not found", args[0])
			}
			return printJSON(command)
		}

		help, ok := Assistant.Help(args[0])
		if !ok {
			return fmt.Errorf("assistant command %q not found", args[0])
		}
		fmt.Print(help)
		return nil
	},
}

var (
	assistantExecParams []string
	assistantExecJSON   bool
)

var assistantExecCmd = &cobra.Command{
	Use:   "exec <command>",
	Short: "Execute an assistant command",
	Long: `Execute an assistant command with --param key=value arguments. Unknown
commands and parameter validation failures are reported as result records,
not command errors, mirroring how assistants receive them.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAssistantCommands,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Assistant == nil {
			return fmt.Errorf("assistant integration not initialized")
		}
		params, err := parseParams(assistantExecParams)
		if err != nil {
			return err
		}

		result := Assistant.Execute(cmd.Context(), args[0], params)
		if assistantExecJSON {
			return printJSON(result)
		}
		printExecResult(result)
		return nil
	},
}

// parseParams turns repeated key=value flags into a parameter map. Later
// occurrences of a key overwrite earlier ones.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", pair)
		}
		params[key] = value
	}
	return params, nil
}

func printExecResult(result *assistant.Result) {
	fmt.Printf("Command: %s\n", result.Command)
	fmt.Printf("Status:  %s\n", result.Status)
	if result.Message != "" {
		fmt.Printf("Message: %s\n", result.Message)
	}
	for _, e := range result.Errors {
		fmt.Printf("  - %s\n", e)
	}
	if result.Data != nil {
		rendered, err := renderJSON(result.Data)
		if err == nil {
			fmt.Printf("Data:\n%s", rendered)
		}
	}
}

var (
	assistantHooksEvent string
	assistantHooksJSON  bool
)

var assistantHooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "List registered lifecycle hooks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Assistant == nil {
			return fmt.Errorf("assistant integration not initialized")
		}

		hooks := Assistant.Hooks(assistantHooksEvent)
		if assistantHooksJSON {
			return printJSON(hooks)
		}

		fmt.Printf("%-24s %-22s %s\n", "NAME", "EVENT", "ENABLED")
		for _, hook := range hooks {
			fmt.Printf("%-24s %-22s %t\n", hook.Name, hook.TriggerEvent, hook.Enabled)
		}
		fmt.Printf("\n%d hook(s)\n", len(hooks))
		return nil
	},
}

func init() {
	assistantListCmd.Flags().StringVar(&assistantListCategory, "category", "", "Filter by command category")
	assistantListCmd.Flags().BoolVar(&assistantListJSON, "json", false, "Output as JSON")
	_ = assistantListCmd.RegisterFlagCompletionFunc("category", completeCommandCategories)

	assistantShowCmd.Flags().BoolVar(&assistantShowJSON, "json", false, "Output as JSON")

	assistantExecCmd.Flags().StringArrayVar(&assistantExecParams, "param", nil, "Command parameter as key=value (repeatable)")
	assistantExecCmd.Flags().BoolVar(&assistantExecJSON, "json", false, "Output as JSON")

	assistantHooksCmd.Flags().StringVar(&assistantHooksEvent, "event", "", "Filter by trigger event")
	assistantHooksCmd.Flags().BoolVar(&assistantHooksJSON, "json", false, "Output as JSON")
	_ = assistantHooksCmd.RegisterFlagCompletionFunc("event", completeHookEvents)

	assistantCmd.AddCommand(assistantListCmd)
	assistantCmd.AddCommand(assistantShowCmd)
	assistantCmd.AddCommand(assistantExecCmd)
	assistantCmd.AddCommand(assistantHooksCmd)
	rootCmd.AddCommand(assistantCmd)
}
