package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output formats accepted by the --format flag.
const (
	formatSummary = "summary"
	formatTable   = "table"
	formatJSON    = "json"
)

// resolveFormat returns the explicit flag value when set, otherwise the
// configured default, otherwise summary.
func resolveFormat(flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = formatSummary
		if Cfg != nil && Cfg.Output.Format != "" {
			format = Cfg.Output.Format
		}
	}
	switch format {
	case formatSummary, formatTable, formatJSON:
		return format, nil
	}
	return "", fmt.Errorf("invalid format %q (valid: summary, table, json)", format)
}

// emit prints rendered output to stdout and, when savePath is non-empty,
// writes the same bytes to the file.
func emit(rendered, savePath string) error {
	fmt.Print(rendered)
	if savePath == "" {
		return nil
	}
	if err := os.WriteFile(savePath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}
	return nil
}

// renderJSON marshals v as indented JSON with a trailing newline.
func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(data) + "\n", nil
}

// printJSON is the output path for list/show commands run with --json.
func printJSON(v any) error {
	rendered, err := renderJSON(v)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}
