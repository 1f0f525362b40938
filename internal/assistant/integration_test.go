package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

func testCommand(name string, category models.CommandCategory) *models.AssistantCommand {
	return &models.AssistantCommand{
		Name:         name,
		Category:     category,
		Description:  "test command " + name,
		UsagePattern: "/" + name + " <target>",
		Parameters: map[string]models.ParameterSpec{
			"target": {Type: "string", Required: true},
			"level":  {Type: "enum", Values: []string{"low", "medium", "high"}, Default: "medium"},
		},
		Mode:          models.ModeInteractive,
		RequiredTools: []models.ToolIntegration{models.ToolIDE},
	}
}

func TestRegister_InsertionOrderAndLastWins(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))
	integ.Register(testCommand("beta", models.CommandCodeGeneration))
	integ.Register(testCommand("gamma", models.CommandEvaluation))

	replacement := testCommand("beta", models.CommandCodeGeneration)
	replacement.Description = "replaced"
	integ.Register(replacement)

	if integ.CommandCount() != 3 {
		t.Fatalf("CommandCount() = %d, want 3", integ.CommandCount())
	}

	all := integ.Commands("")
	wantOrder := []string{"alpha", "beta", "gamma"}
	for i, name := range wantOrder {
		if all[i].Name != name {
			t.Errorf("Commands()[%d] = %q, want %q", i, all[i].Name, name)
		}
	}

	got, ok := integ.Get("beta")
	if !ok {
		t.Fatalf("Get(beta) not found")
	}
	if got.Description != "replaced" {
		t.Errorf("re-registration did not replace entry, Description = %q", got.Description)
	}
}

func TestCommands_FilterByCategory(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))
	integ.Register(testCommand("beta", models.CommandCodeGeneration))
	integ.Register(testCommand("gamma", models.CommandTaskAnalysis))

	analysis := integ.Commands(models.CommandTaskAnalysis)
	if len(analysis) != 2 {
		t.Fatalf("Commands(task_analysis) returned %d commands, want 2", len(analysis))
	}
	if analysis[0].Name != "alpha" || analysis[1].Name != "gamma" {
		t.Errorf("filtered commands out of order: %q, %q", analysis[0].Name, analysis[1].Name)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	integ := NewIntegration()

	result := integ.Execute(context.Background(), "no_such_command", nil)
	if result.Status != StatusUnknownCommand {
		t.Errorf("Status = %q, want %q", result.Status, StatusUnknownCommand)
	}
	if !strings.Contains(result.Message, "no_such_command") {
		t.Errorf("Message %q does not name the command", result.Message)
	}
}

func TestExecute_MissingRequiredParam(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))

	result := integ.Execute(context.Background(), "alpha", map[string]any{})
	if result.Status != StatusValidationFailed {
		t.Fatalf("Status = %q, want %q", result.Status, StatusValidationFailed)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "target") {
		t.Errorf("error %q does not name the missing parameter", result.Errors[0])
	}
}

func TestExecute_EnumMembership(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))

	result := integ.Execute(context.Background(), "alpha", map[string]any{
		"target": "pkg/foo",
		"level":  "extreme",
	})
	if result.Status != StatusValidationFailed {
		t.Fatalf("Status = %q, want %q", result.Status, StatusValidationFailed)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "low, medium, high") {
		t.Errorf("error %q does not list allowed values", result.Errors[0])
	}

	// A valid enum value passes.
	result = integ.Execute(context.Background(), "alpha", map[string]any{
		"target": "pkg/foo",
		"level":  "high",
	})
	if result.Status != StatusExecuted {
		t.Errorf("Status = %q, want %q", result.Status, StatusExecuted)
	}
}

func TestExecute_DefaultResult(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))

	params := map[string]any{"target": "pkg/foo"}
	result := integ.Execute(context.Background(), "alpha", params)
	if result.Status != StatusExecuted {
		t.Fatalf("Status = %q, want %q", result.Status, StatusExecuted)
	}
	if result.Data != nil {
		t.Errorf("Data = %v, want nil without executor", result.Data)
	}
	if !strings.Contains(result.Message, "alpha") {
		t.Errorf("Message %q does not name the command", result.Message)
	}
	if result.Params["target"] != "pkg/foo" {
		t.Errorf("Params not carried through: %v", result.Params)
	}
}

func TestExecute_BoundExecutor(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))
	integ.BindExecutor("alpha", func(ctx context.Context, params map[string]any) (any, error) {
		return map[string]any{"analyzed": params["target"]}, nil
	})

	result := integ.Execute(context.Background(), "alpha", map[string]any{"target": "pkg/foo"})
	if result.Status != StatusExecuted {
		t.Fatalf("Status = %q, want %q", result.Status, StatusExecuted)
	}
	data, ok := result.Data.(map[string]any)
	if !ok {
		t.Fatalf("Data = %T, want map[string]any", result.Data)
	}
	if data["analyzed"] != "pkg/foo" {
		t.Errorf("executor data not propagated: %v", data)
	}
}

func TestExecute_ExecutorError(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))
	integ.BindExecutor("alpha", func(ctx context.Context, params map[string]any) (any, error) {
		return nil, fmt.Errorf("backend unavailable")
	})

	result := integ.Execute(context.Background(), "alpha", map[string]any{"target": "pkg/foo"})
	if result.Status != StatusError {
		t.Fatalf("Status = %q, want %q", result.Status, StatusError)
	}
	if !strings.Contains(result.Message, "backend unavailable") {
		t.Errorf("Message %q does not carry the executor error", result.Message)
	}
}

func TestExecute_FiresCommandExecutedHooks(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))
	integ.RegisterHook(&models.AssistantHook{Name: "audit", TriggerEvent: EventCommandExecuted, Enabled: true})
	integ.RegisterHook(&models.AssistantHook{Name: "muted", TriggerEvent: EventCommandExecuted, Enabled: false})

	var events []map[string]any
	integ.OnHook(func(event string, data map[string]any) {
		if event != EventCommandExecuted {
			t.Errorf("handler received event %q, want %q", event, EventCommandExecuted)
		}
		events = append(events, data)
	})

	integ.Execute(context.Background(), "alpha", map[string]any{"target": "pkg/foo"})

	if len(events) != 1 {
		t.Fatalf("handler invoked %d times, want 1 (disabled hook must not fire)", len(events))
	}
	if events[0]["hook"] != "audit" {
		t.Errorf("data[hook] = %v, want audit", events[0]["hook"])
	}
	if events[0]["command"] != "alpha" {
		t.Errorf("data[command] = %v, want alpha", events[0]["command"])
	}

	// Validation failures do not fire hooks.
	events = nil
	integ.Execute(context.Background(), "alpha", map[string]any{})
	if len(events) != 0 {
		t.Errorf("handler invoked %d times after validation failure, want 0", len(events))
	}
}

func TestFire_CountsEnabledHooks(t *testing.T) {
	integ := NewIntegration()
	integ.RegisterHook(&models.AssistantHook{Name: "format", TriggerEvent: "file_saved", Enabled: true})
	integ.RegisterHook(&models.AssistantHook{Name: "lint", TriggerEvent: "file_saved", Enabled: false})
	integ.RegisterHook(&models.AssistantHook{Name: "detect", TriggerEvent: "task_start", Enabled: true})

	if fired := integ.Fire("file_saved", nil); fired != 1 {
		t.Errorf("Fire(file_saved) = %d, want 1", fired)
	}
	if fired := integ.Fire("unknown_event", nil); fired != 0 {
		t.Errorf("Fire(unknown_event) = %d, want 0", fired)
	}
}

func TestHooks_FilterByEvent(t *testing.T) {
	integ := NewIntegration()
	integ.RegisterHook(&models.AssistantHook{Name: "format", TriggerEvent: "file_saved", Enabled: true})
	integ.RegisterHook(&models.AssistantHook{Name: "lint", TriggerEvent: "file_saved", Enabled: false})
	integ.RegisterHook(&models.AssistantHook{Name: "detect", TriggerEvent: "task_start", Enabled: true})

	all := integ.Hooks("")
	if len(all) != 3 {
		t.Fatalf("Hooks(\"\") returned %d, want 3", len(all))
	}
	saved := integ.Hooks("file_saved")
	if len(saved) != 2 {
		t.Fatalf("Hooks(file_saved) returned %d, want 2", len(saved))
	}
	if saved[0].Name != "format" || saved[1].Name != "lint" {
		t.Errorf("hook order wrong: %q, %q", saved[0].Name, saved[1].Name)
	}
}

func TestHelp_RendersUsage(t *testing.T) {
	integ := NewIntegration()
	integ.Register(testCommand("alpha", models.CommandTaskAnalysis))

	help, ok := integ.Help("alpha")
	if !ok {
		t.Fatalf("Help(alpha) not found")
	}
	for _, want := range []string{"alpha", "/alpha <target>", "target (string, required)", "low|medium|high", "ide"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}

	if _, ok := integ.Help("missing"); ok {
		t.Errorf("Help(missing) = ok, want not found")
	}
}
