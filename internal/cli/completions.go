package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeTaskNames lists catalog task names with their category as
// description.
func completeTaskNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if Tasks == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, task := range Tasks.All() {
		name := string(task.Name)
		if toComplete == "" || strings.HasPrefix(name, toComplete) {
			names = append(names, name+"\t"+string(task.Category))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeChallengeNames lists catalog challenge names with their severity as
// description.
func completeChallengeNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if Challenges == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, challenge := range Challenges.All() {
		name := string(challenge.Name)
		if toComplete == "" || strings.HasPrefix(name, toComplete) {
			names = append(names, name+"\t"+string(challenge.Metrics.Severity))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeSolutionNames lists catalog solution names with their status as
// description.
func completeSolutionNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if Solutions == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, solution := range Solutions.All() {
		name := string(solution.Name)
		if toComplete == "" || strings.HasPrefix(name, toComplete) {
			names = append(names, name+"\t"+string(solution.Status))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeAssistantCommands lists registered assistant command names.
func completeAssistantCommands(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if Assistant == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, command := range Assistant.Commands("") {
		if toComplete == "" || strings.HasPrefix(command.Name, toComplete) {
			names = append(names, command.Name+"\t"+command.Description)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeHookEvents lists the distinct trigger events of registered hooks.
func completeHookEvents(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	if Assistant == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	seen := make(map[string]bool)
	var events []string
	for _, hook := range Assistant.Hooks("") {
		if seen[hook.TriggerEvent] {
			continue
		}
		seen[hook.TriggerEvent] = true
		events = append(events, hook.TriggerEvent)
	}
	return events, cobra.ShellCompDirectiveNoFileComp
}

func completeFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"summary\tCondensed prose output",
		"table\tFixed-width columns",
		"json\tIndented JSON",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeScopes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"function\tSingle self-contained functions",
		"unit\tLarger chunks, files, classes",
		"project\tEntire repositories",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeComplexities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"low\tMinimal reasoning required",
		"medium\tModerate reasoning required",
		"high\tDeep multi-step reasoning required",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeInterventions(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"low\tHuman-controlled, AI as tool",
		"medium\tCollaborative coordination",
		"high\tAI-driven with oversight",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeTaskCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"code_generation\tProducing new code",
		"code_transformation\tRewriting existing code",
		"testing_analysis\tTests and program analysis",
		"software_maintenance\tDocumentation and upkeep",
		"scaffolding_metacode\tBuild and CI metacode",
		"formal_verification\tProofs and properties",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeSeverities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"critical\tPrevents successful completion",
		"high\tSignificantly degrades performance",
		"medium\tNoticeable performance impact",
		"low\tMinor impact on edge cases",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeChallengeCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"evaluation_benchmarks",
		"effective_tool_usage",
		"human_ai_collaboration",
		"long_horizon_planning",
		"large_scope_contexts",
		"semantic_understanding",
		"low_resource_adaptation",
		"version_management",
		"high_complexity_ood",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeSolutionCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"data_collection\tCuration and synthesis of training data",
		"training_methods\tModel training approaches",
		"inference_approaches\tRuntime reasoning strategies",
		"framework_integration\tTooling and workflow integration",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeImplementationStatuses(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"research\tTheoretical or early research",
		"prototype\tWorking prototype exists",
		"production\tProduction-ready implementation",
		"deployed\tWidely deployed in practice",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeCommandCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"task_analysis",
		"code_generation",
		"code_transformation",
		"testing_verification",
		"maintenance",
		"scaffolding",
		"collaboration",
		"evaluation",
	}, cobra.ShellCompDirectiveNoFileComp
}

// registerFormatCompletions registers --format and --save completions on a
// report-style command.
func registerFormatCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}
