package cli

import (
	"github.com/aiswe-dev/aiswe/internal/assistant"
	"github.com/aiswe-dev/aiswe/internal/evaluator"
	"github.com/aiswe-dev/aiswe/internal/registry"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Catalog service instances, set during app initialization in app.go.
var (
	Tasks      registry.TaskRegistry
	Challenges registry.ChallengeRegistry
	Solutions  registry.SolutionRegistry
	Eval       evaluator.Evaluator
	Assistant  assistant.Integration
	Cfg        *models.Config

	// Relationships is the live challenge relationship table. Catalog
	// overlays merge into it and rewire the challenge registry.
	Relationships registry.RelationshipTable
)

// Bootstrap constructs the application after flag parsing; main.go wires it.
// A nil Bootstrap (as in tests) leaves the service variables untouched.
var Bootstrap func(configPath string, verbose bool) error
