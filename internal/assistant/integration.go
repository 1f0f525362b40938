// Package assistant dispatches the catalog's slash-style assistant commands:
// parameter validation, executor dispatch, and lifecycle hook firing. The
// command catalog is metadata; commands without a bound executor acknowledge
// with a default result.
package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Result statuses. Unknown commands and failed validation are outcomes
// recorded in the Result, never Go errors, so callers render them like any
// other execution.
const (
	StatusExecuted         = "executed"
	StatusError            = "error"
	StatusUnknownCommand   = "unknown_command"
	StatusValidationFailed = "validation_failed"
)

// EventCommandExecuted fires after every dispatched command.
const EventCommandExecuted = "command_executed"

// Result records the outcome of a single command execution.
type Result struct {
	Command string         `json:"command" yaml:"command"`
	Status  string         `json:"status" yaml:"status"`
	Message string         `json:"message,omitempty" yaml:"message,omitempty"`
	Errors  []string       `json:"errors,omitempty" yaml:"errors,omitempty"`
	Params  map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	Data    any            `json:"data,omitempty" yaml:"data,omitempty"`
}

// Executor implements a command. It receives the validated parameters and
// returns arbitrary result data.
type Executor func(ctx context.Context, params map[string]any) (any, error)

// HookHandler receives hook events. The data map carries at least the
// firing hook's name under "hook".
type HookHandler func(event string, data map[string]any)

// Integration defines the assistant command surface: insertion-ordered
// command and hook registries plus the execution dispatcher.
type Integration interface {
	// Register adds a command. Re-registering a name replaces the entry in
	// its original position.
	Register(cmd *models.AssistantCommand)
	// RegisterHook adds an event hook, last registration winning by name.
	RegisterHook(hook *models.AssistantHook)
	// BindExecutor attaches a live implementation to the named command.
	// Commands without an executor still execute with a default result.
	BindExecutor(name string, exec Executor)
	// OnHook registers a handler invoked whenever an enabled hook fires.
	OnHook(handler HookHandler)

	// Commands returns registered commands in registration order, optionally
	// filtered by category (empty means all).
	Commands(category models.CommandCategory) []*models.AssistantCommand
	Get(name string) (*models.AssistantCommand, bool)
	// Help renders a usage string for the named command.
	Help(name string) (string, bool)
	// Hooks returns registered hooks in registration order, optionally
	// filtered by trigger event (empty means all).
	Hooks(event string) []*models.AssistantHook
	CommandCount() int

	// Execute dispatches a command by name: unknown names and parameter
	// validation failures come back as Result records. After dispatch the
	// command_executed event fires.
	Execute(ctx context.Context, name string, params map[string]any) *Result
	// Fire invokes every handler once per enabled hook registered for the
	// event and reports how many hooks fired.
	Fire(event string, data map[string]any) int
}

type integration struct {
	commands     map[string]*models.AssistantCommand
	commandOrder []string

	hooks     map[string]*models.AssistantHook
	hookOrder []string

	executors map[string]Executor
	handlers  []HookHandler
}

// NewIntegration creates an empty Integration.
func NewIntegration() Integration {
	return &integration{
		commands:  make(map[string]*models.AssistantCommand),
		hooks:     make(map[string]*models.AssistantHook),
		executors: make(map[string]Executor),
	}
}

func (a *integration) Register(cmd *models.AssistantCommand) {
	if _, exists := a.commands[cmd.Name]; !exists {
		a.commandOrder = append(a.commandOrder, cmd.Name)
	}
	a.commands[cmd.Name] = cmd
}

func (a *integration) RegisterHook(hook *models.AssistantHook) {
	if _, exists := a.hooks[hook.Name]; !exists {
		a.hookOrder = append(a.hookOrder, hook.Name)
	}
	a.hooks[hook.Name] = hook
}

func (a *integration) BindExecutor(name string, exec Executor) {
	a.executors[name] = exec
}

func (a *integration) OnHook(handler HookHandler) {
	a.handlers = append(a.handlers, handler)
}

func (a *integration) Commands(category models.CommandCategory) []*models.AssistantCommand {
	var result []*models.AssistantCommand
	for _, name := range a.commandOrder {
		cmd := a.commands[name]
		if category != "" && cmd.Category != category {
			continue
		}
		result = append(result, cmd)
	}
	return result
}

func (a *integration) Get(name string) (*models.AssistantCommand, bool) {
	cmd, ok := a.commands[name]
	return cmd, ok
}

func (a *integration) Help(name string) (string, bool) {
	cmd, ok := a.commands[name]
	if !ok {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", cmd.Name, cmd.Description)
	fmt.Fprintf(&b, "Usage: %s\n", cmd.UsagePattern)
	fmt.Fprintf(&b, "Mode: %s\n", cmd.Mode)

	if len(cmd.Parameters) > 0 {
		b.WriteString("Parameters:\n")
		for _, pname := range sortedParamNames(cmd) {
			spec := cmd.Parameters[pname]
			fmt.Fprintf(&b, "  %s (%s", pname, spec.Type)
			if spec.Required {
				b.WriteString(", required")
			}
			b.WriteString(")")
			if len(spec.Values) > 0 {
				fmt.Fprintf(&b, " one of: %s", strings.Join(spec.Values, "|"))
			}
			if spec.Default != nil {
				fmt.Fprintf(&b, " default: %v", spec.Default)
			}
			b.WriteString("\n")
		}
	}

	if len(cmd.RequiredTools) > 0 {
		tools := make([]string, len(cmd.RequiredTools))
		for idx, tool := range cmd.RequiredTools {
			tools[idx] = string(tool)
		}
		fmt.Fprintf(&b, "Tools: %s\n", strings.Join(tools, ", "))
	}

	return b.String(), true
}

func (a *integration) Hooks(event string) []*models.AssistantHook {
	var result []*models.AssistantHook
	for _, name := range a.hookOrder {
		hook := a.hooks[name]
		if event != "" && hook.TriggerEvent != event {
			continue
		}
		result = append(result, hook)
	}
	return result
}

func (a *integration) CommandCount() int {
	return len(a.commandOrder)
}

func (a *integration) Execute(ctx context.Context, name string, params map[string]any) *Result {
	cmd, ok := a.commands[name]
	if !ok {
		return &Result{
			Command: name,
			Status:  StatusUnknownCommand,
			Message: fmt.Sprintf("unknown command: %s", name),
		}
	}

	if errs := validateParams(cmd, params); len(errs) > 0 {
		return &Result{
			Command: name,
			Status:  StatusValidationFailed,
			Message: "parameter validation failed",
			Errors:  errs,
			Params:  params,
		}
	}

	result := &Result{Command: name, Status: StatusExecuted, Params: params}
	if exec, bound := a.executors[name]; bound {
		data, err := exec(ctx, params)
		if err != nil {
			result.Status = StatusError
			result.Message = err.Error()
		} else {
			result.Data = data
			result.Message = fmt.Sprintf("command %s executed", name)
		}
	} else {
		result.Message = fmt.Sprintf("command %s acknowledged (no executor bound)", name)
	}

	a.Fire(EventCommandExecuted, map[string]any{
		"command": name,
		"status":  result.Status,
	})

	return result
}

func (a *integration) Fire(event string, data map[string]any) int {
	fired := 0
	for _, name := range a.hookOrder {
		hook := a.hooks[name]
		if hook.TriggerEvent != event || !hook.Enabled {
			continue
		}
		fired++
		for _, handler := range a.handlers {
			hookData := map[string]any{"hook": hook.Name}
			for k, v := range data {
				hookData[k] = v
			}
			handler(event, hookData)
		}
	}
	return fired
}

// validateParams checks required presence and enum membership. Messages are
// ordered by parameter name so results are deterministic.
func validateParams(cmd *models.AssistantCommand, params map[string]any) []string {
	var errs []string
	for _, pname := range sortedParamNames(cmd) {
		spec := cmd.Parameters[pname]
		value, present := params[pname]
		if !present {
			if spec.Required {
				errs = append(errs, fmt.Sprintf("missing required parameter: %s", pname))
			}
			continue
		}
		if spec.Type == "enum" && len(spec.Values) > 0 {
			got := fmt.Sprintf("%v", value)
			valid := false
			for _, allowed := range spec.Values {
				if got == allowed {
					valid = true
					break
				}
			}
			if !valid {
				errs = append(errs, fmt.Sprintf(
					"parameter %s must be one of: %s", pname, strings.Join(spec.Values, ", ")))
			}
		}
	}
	return errs
}

func sortedParamNames(cmd *models.AssistantCommand) []string {
	names := make([]string, 0, len(cmd.Parameters))
	for name := range cmd.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
