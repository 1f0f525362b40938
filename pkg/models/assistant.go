package models

// CommandCategory groups assistant commands by the kind of work they target.
type CommandCategory string

const (
	CommandTaskAnalysis        CommandCategory = "task_analysis"
	CommandCodeGeneration      CommandCategory = "code_generation"
	CommandCodeTransformation  CommandCategory = "code_transformation"
	CommandTestingVerification CommandCategory = "testing_verification"
	CommandMaintenance         CommandCategory = "maintenance"
	CommandScaffolding         CommandCategory = "scaffolding"
	CommandCollaboration       CommandCategory = "collaboration"
	CommandEvaluation          CommandCategory = "evaluation"
)

// CommandCategories returns all command categories in canonical order.
func CommandCategories() []CommandCategory {
	return []CommandCategory{
		CommandTaskAnalysis,
		CommandCodeGeneration,
		CommandCodeTransformation,
		CommandTestingVerification,
		CommandMaintenance,
		CommandScaffolding,
		CommandCollaboration,
		CommandEvaluation,
	}
}

// Valid reports whether c is a known command category.
func (c CommandCategory) Valid() bool {
	for _, known := range CommandCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// ExecutionMode describes how much human involvement a command assumes.
type ExecutionMode string

const (
	ModeInteractive ExecutionMode = "interactive" // requires human confirmation
	ModeSemiAuto    ExecutionMode = "semi_auto"   // auto with human oversight
	ModeAutonomous  ExecutionMode = "autonomous"  // fully automated
)

// ToolIntegration names an external tool surface a command depends on.
type ToolIntegration string

const (
	ToolIDE            ToolIntegration = "ide"
	ToolTerminal       ToolIntegration = "terminal"
	ToolGit            ToolIntegration = "git"
	ToolCICD           ToolIntegration = "ci_cd"
	ToolStaticAnalysis ToolIntegration = "static_analysis"
	ToolTesting        ToolIntegration = "testing"
	ToolDocumentation  ToolIntegration = "documentation"
	ToolDeployment     ToolIntegration = "deployment"
)

// ParameterSpec describes a single command parameter for validation.
// Type is one of string, enum, list, boolean, or int; Values constrains
// enum parameters; Default documents the value used when absent.
type ParameterSpec struct {
	Type     string   `yaml:"type" json:"type"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Values   []string `yaml:"values,omitempty" json:"values,omitempty"`
	Default  any      `yaml:"default,omitempty" json:"default,omitempty"`
}

// AssistantCommand is a catalog entry describing a slash-style assistant
// command: its usage, parameters, execution mode, and tool requirements.
// The catalog is metadata only; execution is dispatched by the assistant
// integration layer.
type AssistantCommand struct {
	Name           string                   `yaml:"name" json:"name"`
	Category       CommandCategory          `yaml:"category" json:"category"`
	Description    string                   `yaml:"description" json:"description"`
	UsagePattern   string                   `yaml:"usage_pattern" json:"usage_pattern"`
	Parameters     map[string]ParameterSpec `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Mode           ExecutionMode            `yaml:"execution_mode" json:"execution_mode"`
	RequiredTools  []ToolIntegration        `yaml:"required_tools,omitempty" json:"required_tools,omitempty"`
	AddressedTasks []string                 `yaml:"addressed_tasks,omitempty" json:"addressed_tasks,omitempty"`
}

// AssistantHook is an event hook registration: when TriggerEvent fires, the
// integration layer runs the named hook if it is enabled.
type AssistantHook struct {
	Name         string `yaml:"name" json:"name"`
	TriggerEvent string `yaml:"trigger_event" json:"trigger_event"`
	Enabled      bool   `yaml:"enabled" json:"enabled"`
}
