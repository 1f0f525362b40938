package cli

import (
	"strings"
	"testing"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		wantErr bool
	}{
		{"empty", nil, false},
		{"single pair", []string{"key=value"}, false},
		{"value with equals", []string{"expr=a=b"}, false},
		{"missing separator", []string{"keyvalue"}, true},
		{"empty key", []string{"=value"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parseParams(tt.pairs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tt.pairs) == 0 && params != nil {
				t.Errorf("expected nil map for no pairs, got %v", params)
			}
		})
	}
}

func TestParseParams_ValueWithEquals(t *testing.T) {
	params, err := parseParams([]string{"expr=a=b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params["expr"] != "a=b" {
		t.Errorf("expected value split on first '=', got %v", params["expr"])
	}
}

func TestParseParams_LastOccurrenceWins(t *testing.T) {
	params, err := parseParams([]string{"scope=unit", "scope=project"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params["scope"] != "project" {
		t.Errorf("expected later value to win, got %v", params["scope"])
	}
}

func TestAssistantListCmd_InvalidCategory(t *testing.T) {
	withSeededCatalog(t)
	origCategory := assistantListCategory
	defer func() { assistantListCategory = origCategory }()
	assistantListCategory = "not_a_category"

	err := assistantListCmd.RunE(assistantListCmd, []string{})
	if err == nil {
		t.Fatal("expected error for invalid category")
	}
}

func TestAssistantListCmd_Success(t *testing.T) {
	withSeededCatalog(t)

	if err := assistantListCmd.RunE(assistantListCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssistantShowCmd_NotFound(t *testing.T) {
	withSeededCatalog(t)

	err := assistantShowCmd.RunE(assistantShowCmd, []string{"nonexistent"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAssistantShowCmd_Success(t *testing.T) {
	withSeededCatalog(t)

	if err := assistantShowCmd.RunE(assistantShowCmd, []string{"analyze_task"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Unknown assistant commands come back as result records, not command errors.
func TestAssistantExecCmd_UnknownCommandIsNotAnError(t *testing.T) {
	withSeededCatalog(t)
	origParams := assistantExecParams
	defer func() { assistantExecParams = origParams }()
	assistantExecParams = nil

	if err := assistantExecCmd.RunE(assistantExecCmd, []string{"nonexistent"}); err != nil {
		t.Fatalf("unknown command should render a result record, got error: %v", err)
	}
}

func TestAssistantExecCmd_ValidationFailureIsNotAnError(t *testing.T) {
	withSeededCatalog(t)
	origParams := assistantExecParams
	defer func() { assistantExecParams = origParams }()

	// analyze_task requires description; leave it out.
	assistantExecParams = []string{"scope=unit"}
	if err := assistantExecCmd.RunE(assistantExecCmd, []string{"analyze_task"}); err != nil {
		t.Fatalf("validation failure should render a result record, got error: %v", err)
	}
}

func TestAssistantExecCmd_BadParamSyntax(t *testing.T) {
	withSeededCatalog(t)
	origParams := assistantExecParams
	defer func() { assistantExecParams = origParams }()
	assistantExecParams = []string{"no-separator"}

	err := assistantExecCmd.RunE(assistantExecCmd, []string{"analyze_task"})
	if err == nil {
		t.Fatal("expected error for malformed --param")
	}
	if !strings.Contains(err.Error(), "expected key=value") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAssistantExecCmd_Success(t *testing.T) {
	withSeededCatalog(t)
	origParams, origJSON := assistantExecParams, assistantExecJSON
	defer func() {
		assistantExecParams = origParams
		assistantExecJSON = origJSON
	}()

	assistantExecParams = []string{"description=implement a parser", "scope=unit"}
	assistantExecJSON = true
	if err := assistantExecCmd.RunE(assistantExecCmd, []string{"analyze_task"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssistantHooksCmd_EventFilter(t *testing.T) {
	withSeededCatalog(t)
	origEvent := assistantHooksEvent
	defer func() { assistantHooksEvent = origEvent }()

	assistantHooksEvent = "file_saved"
	if err := assistantHooksCmd.RunE(assistantHooksCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assistantHooksEvent = ""
	if err := assistantHooksCmd.RunE(assistantHooksCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssistantCmds_NilIntegration(t *testing.T) {
	orig := Assistant
	defer func() { Assistant = orig }()
	Assistant = nil

	if err := assistantListCmd.RunE(assistantListCmd, []string{}); err == nil {
		t.Error("list: expected error when Assistant is nil")
	}
	if err := assistantExecCmd.RunE(assistantExecCmd, []string{"analyze_task"}); err == nil {
		t.Error("exec: expected error when Assistant is nil")
	}
}
