package cli

import (
	"fmt"
	"strings"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

// joinValues renders an enum value list for error messages.
func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// The parse*Flag helpers turn an optional enum flag into a typed value.
// An empty flag means no filter and parses to nil.

func parseScopeFlag(value string) (*models.ScopeMeasure, error) {
	if value == "" {
		return nil, nil
	}
	scope := models.ScopeMeasure(value)
	if !scope.Valid() {
		return nil, fmt.Errorf("invalid scope %q (valid: %s)", value, joinValues(models.ScopeMeasures()))
	}
	return &scope, nil
}

func parseComplexityFlag(value string) (*models.LogicalComplexity, error) {
	if value == "" {
		return nil, nil
	}
	complexity := models.LogicalComplexity(value)
	if !complexity.Valid() {
		return nil, fmt.Errorf("invalid complexity %q (valid: %s)", value, joinValues(models.LogicalComplexities()))
	}
	return &complexity, nil
}

func parseInterventionFlag(value string) (*models.HumanIntervention, error) {
	if value == "" {
		return nil, nil
	}
	intervention := models.HumanIntervention(value)
	if !intervention.Valid() {
		return nil, fmt.Errorf("invalid intervention %q (valid: %s)", value, joinValues(models.HumanInterventions()))
	}
	return &intervention, nil
}

func parseTaskCategoryFlag(value string) (models.TaskCategory, error) {
	if value == "" {
		return "", nil
	}
	category := models.TaskCategory(value)
	if !category.Valid() {
		return "", fmt.Errorf("invalid category %q (valid: %s)", value, joinValues(models.TaskCategories()))
	}
	return category, nil
}

func parseSeverityFlag(value string) (models.SeverityLevel, error) {
	if value == "" {
		return "", nil
	}
	severity := models.SeverityLevel(value)
	if !severity.Valid() {
		return "", fmt.Errorf("invalid severity %q (valid: %s)", value, joinValues(models.SeverityLevels()))
	}
	return severity, nil
}

func parseChallengeCategoryFlag(value string) (models.ChallengeCategory, error) {
	if value == "" {
		return "", nil
	}
	category := models.ChallengeCategory(value)
	if !category.Valid() {
		return "", fmt.Errorf("invalid category %q (valid: %s)", value, joinValues(models.ChallengeCategories()))
	}
	return category, nil
}

func parseSolutionCategoryFlag(value string) (models.SolutionCategory, error) {
	if value == "" {
		return "", nil
	}
	category := models.SolutionCategory(value)
	if !category.Valid() {
		return "", fmt.Errorf("invalid category %q (valid: %s)", value, joinValues(models.SolutionCategories()))
	}
	return category, nil
}

func parseStatusFlag(value string) (models.ImplementationStatus, error) {
	if value == "" {
		return "", nil
	}
	status := models.ImplementationStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q (valid: %s)", value, joinValues(models.ImplementationStatuses()))
	}
	return status, nil
}

func parseCommandCategoryFlag(value string) (models.CommandCategory, error) {
	if value == "" {
		return "", nil
	}
	category := models.CommandCategory(value)
	if !category.Valid() {
		return "", fmt.Errorf("invalid category %q (valid: %s)", value, joinValues(models.CommandCategories()))
	}
	return category, nil
}
