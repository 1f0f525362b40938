package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestTaskListCmd_NilRegistry(t *testing.T) {
	orig := Tasks
	defer func() { Tasks = orig }()
	Tasks = nil

	err := taskListCmd.RunE(taskListCmd, []string{})
	if err == nil {
		t.Fatal("expected error when Tasks is nil")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTaskListCmd_InvalidScope(t *testing.T) {
	withSeededCatalog(t)
	origScope := taskListScope
	defer func() { taskListScope = origScope }()
	taskListScope = "galaxy"

	err := taskListCmd.RunE(taskListCmd, []string{})
	if err == nil {
		t.Fatal("expected error for invalid scope")
	}
	if !strings.Contains(err.Error(), "function, unit, project") {
		t.Errorf("error should list valid scopes: %v", err)
	}
}

func TestTaskListCmd_InvalidCategory(t *testing.T) {
	withSeededCatalog(t)
	origCategory := taskListCategory
	defer func() { taskListCategory = origCategory }()
	taskListCategory = "not_a_category"

	err := taskListCmd.RunE(taskListCmd, []string{})
	if err == nil {
		t.Fatal("expected error for invalid category")
	}
}

func TestTaskListCmd_Success(t *testing.T) {
	withSeededCatalog(t)
	origScope := taskListScope
	defer func() { taskListScope = origScope }()

	taskListScope = "function"
	if err := taskListCmd.RunE(taskListCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	taskListScope = ""
	if err := taskListCmd.RunE(taskListCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskListCmd_JSON(t *testing.T) {
	withSeededCatalog(t)
	origJSON := taskListJSON
	defer func() { taskListJSON = origJSON }()
	taskListJSON = true

	if err := taskListCmd.RunE(taskListCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskShowCmd_NotFound(t *testing.T) {
	withSeededCatalog(t)

	err := taskShowCmd.RunE(taskShowCmd, []string{"nonexistent-task"})
	if err == nil {
		t.Fatal("expected error for unknown task")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTaskShowCmd_Success(t *testing.T) {
	withSeededCatalog(t)

	if err := taskShowCmd.RunE(taskShowCmd, []string{"Unit Test Generation"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskDistributionCmd_Success(t *testing.T) {
	withSeededCatalog(t)

	if err := taskDistributionCmd.RunE(taskDistributionCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompleteTaskNames(t *testing.T) {
	withSeededCatalog(t)

	names, directive := completeTaskNames(taskShowCmd, nil, "")
	if len(names) != 9 {
		t.Fatalf("expected 9 completions, got %d", len(names))
	}
	for _, name := range names {
		if !strings.Contains(name, "\t") {
			t.Errorf("completion %q missing description", name)
		}
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("unexpected directive %d", directive)
	}

	filtered, _ := completeTaskNames(taskShowCmd, nil, "Code")
	for _, name := range filtered {
		if !strings.HasPrefix(name, "Code") {
			t.Errorf("completion %q does not match prefix", name)
		}
	}
	if len(filtered) == 0 {
		t.Error("expected completions for prefix Code")
	}
}

func TestCompleteTaskNames_NilRegistry(t *testing.T) {
	orig := Tasks
	defer func() { Tasks = orig }()
	Tasks = nil

	names, _ := completeTaskNames(taskShowCmd, nil, "")
	if names != nil {
		t.Errorf("expected no completions, got %v", names)
	}
}
