// Package storage reads and writes catalog files: YAML documents carrying
// task, challenge, and solution entries plus the challenge relationship
// table. Overlay files layer extra or replacement entries over the built-in
// seed catalog; registry correctness never depends on them.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aiswe-dev/aiswe/internal/registry"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// CatalogFile is the top-level structure of a catalog YAML document.
type CatalogFile struct {
	Tasks         []*models.Task             `yaml:"tasks,omitempty"`
	Challenges    []*models.Challenge        `yaml:"challenges,omitempty"`
	Solutions     []*models.Solution         `yaml:"solutions,omitempty"`
	Relationships registry.RelationshipTable `yaml:"relationships,omitempty"`
}

// LoadCatalogFile reads and validates a catalog document. Unknown YAML keys
// are rejected; every invalid field is reported, one per line. An empty file
// is a valid empty catalog.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file CatalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &CatalogFile{}, nil
		}
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	if err := validateCatalog(&file); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	return &file, nil
}

// ApplyOverlay registers the file's entries over the current registry
// contents (last registration wins) and reruns relationship wiring with the
// file's relationship entries merged over the base table. The merged table
// is returned so further overlays can stack on it.
func ApplyOverlay(
	file *CatalogFile,
	tasks registry.TaskRegistry,
	challenges registry.ChallengeRegistry,
	solutions registry.SolutionRegistry,
	base registry.RelationshipTable,
) registry.RelationshipTable {
	for _, task := range file.Tasks {
		tasks.Register(task)
	}
	for _, challenge := range file.Challenges {
		challenges.Register(challenge)
	}
	for _, solution := range file.Solutions {
		solutions.Register(solution)
	}

	merged := make(registry.RelationshipTable, len(base)+len(file.Relationships))
	for name, related := range base {
		merged[name] = related
	}
	for name, related := range file.Relationships {
		merged[name] = related
	}
	challenges.WireRelationships(merged)

	return merged
}

// ExportCatalog snapshots the registries into a catalog document. The
// relationship table is rebuilt from each challenge's wired list.
func ExportCatalog(
	tasks registry.TaskRegistry,
	challenges registry.ChallengeRegistry,
	solutions registry.SolutionRegistry,
) *CatalogFile {
	file := &CatalogFile{
		Tasks:      tasks.All(),
		Challenges: challenges.All(),
		Solutions:  solutions.All(),
	}

	table := make(registry.RelationshipTable)
	for _, challenge := range file.Challenges {
		if len(challenge.RelatedChallenges) > 0 {
			table[challenge.Name] = challenge.RelatedChallenges
		}
	}
	if len(table) > 0 {
		file.Relationships = table
	}

	return file
}

// WriteCatalogFile writes the catalog document as YAML.
func WriteCatalogFile(path string, file *CatalogFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}

// validateCatalog checks every entry's enum and range fields and reports
// all problems together.
func validateCatalog(file *CatalogFile) error {
	var errs []string

	for i, task := range file.Tasks {
		if task == nil {
			errs = append(errs, fmt.Sprintf("tasks[%d]: entry is null", i))
			continue
		}
		ref := taskRef(i, task)
		if task.Name == "" {
			errs = append(errs, ref+": name must not be empty")
		}
		if !task.Category.Valid() {
			errs = append(errs, fmt.Sprintf("%s: category %q is invalid", ref, task.Category))
		}
		if !task.Metrics.Scope.Valid() {
			errs = append(errs, fmt.Sprintf("%s: scope %q is invalid", ref, task.Metrics.Scope))
		}
		if !task.Metrics.Complexity.Valid() {
			errs = append(errs, fmt.Sprintf("%s: complexity %q is invalid", ref, task.Metrics.Complexity))
		}
		if !task.Metrics.Intervention.Valid() {
			errs = append(errs, fmt.Sprintf("%s: intervention %q is invalid", ref, task.Metrics.Intervention))
		}
	}

	for i, challenge := range file.Challenges {
		if challenge == nil {
			errs = append(errs, fmt.Sprintf("challenges[%d]: entry is null", i))
			continue
		}
		ref := challengeRef(i, challenge)
		if challenge.Name == "" {
			errs = append(errs, ref+": name must not be empty")
		}
		if !challenge.Category.Valid() {
			errs = append(errs, fmt.Sprintf("%s: category %q is invalid", ref, challenge.Category))
		}
		if !challenge.Metrics.Severity.Valid() {
			errs = append(errs, fmt.Sprintf("%s: severity %q is invalid", ref, challenge.Metrics.Severity))
		}
		if !validFraction(challenge.Metrics.Frequency) {
			errs = append(errs, fmt.Sprintf("%s: frequency %g outside [0,1]", ref, challenge.Metrics.Frequency))
		}
		if !validFraction(challenge.Metrics.TaskCoverage) {
			errs = append(errs, fmt.Sprintf("%s: task_coverage %g outside [0,1]", ref, challenge.Metrics.TaskCoverage))
		}
		if !validFraction(challenge.Metrics.SolutionReadiness) {
			errs = append(errs, fmt.Sprintf("%s: solution_readiness %g outside [0,1]", ref, challenge.Metrics.SolutionReadiness))
		}
	}

	for i, solution := range file.Solutions {
		if solution == nil {
			errs = append(errs, fmt.Sprintf("solutions[%d]: entry is null", i))
			continue
		}
		ref := solutionRef(i, solution)
		if solution.Name == "" {
			errs = append(errs, ref+": name must not be empty")
		}
		if !solution.Category.Valid() {
			errs = append(errs, fmt.Sprintf("%s: category %q is invalid", ref, solution.Category))
		}
		if !solution.Status.Valid() {
			errs = append(errs, fmt.Sprintf("%s: status %q is invalid", ref, solution.Status))
		}
		if !solution.Metrics.Effectiveness.Valid() {
			errs = append(errs, fmt.Sprintf("%s: effectiveness %q is invalid", ref, solution.Metrics.Effectiveness))
		}
		if !validFraction(solution.Metrics.ImplementationDifficulty) {
			errs = append(errs, fmt.Sprintf("%s: implementation_difficulty %g outside [0,1]", ref, solution.Metrics.ImplementationDifficulty))
		}
		if !validFraction(solution.Metrics.ResourceRequirements) {
			errs = append(errs, fmt.Sprintf("%s: resource_requirements %g outside [0,1]", ref, solution.Metrics.ResourceRequirements))
		}
		if solution.Metrics.TimeToDeployment < 0 {
			errs = append(errs, fmt.Sprintf("%s: time_to_deployment %g must be non-negative", ref, solution.Metrics.TimeToDeployment))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func validFraction(v float64) bool {
	return v >= 0 && v <= 1
}

func taskRef(i int, task *models.Task) string {
	if task.Name != "" {
		return fmt.Sprintf("task %q", task.Name)
	}
	return fmt.Sprintf("tasks[%d]", i)
}

func challengeRef(i int, challenge *models.Challenge) string {
	if challenge.Name != "" {
		return fmt.Sprintf("challenge %q", challenge.Name)
	}
	return fmt.Sprintf("challenges[%d]", i)
}

func solutionRef(i int, solution *models.Solution) string {
	if solution.Name != "" {
		return fmt.Sprintf("solution %q", solution.Name)
	}
	return fmt.Sprintf("solutions[%d]", i)
}
