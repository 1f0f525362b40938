// Package internal provides the App struct that wires all components of the
// aiswe framework together and initializes the CLI layer.
package internal

import (
	"context"
	"fmt"

	"github.com/aiswe-dev/aiswe/internal/assistant"
	"github.com/aiswe-dev/aiswe/internal/catalog"
	"github.com/aiswe-dev/aiswe/internal/cli"
	"github.com/aiswe-dev/aiswe/internal/config"
	"github.com/aiswe-dev/aiswe/internal/evaluator"
	"github.com/aiswe-dev/aiswe/internal/logging"
	"github.com/aiswe-dev/aiswe/internal/registry"
	"github.com/aiswe-dev/aiswe/internal/storage"
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// Options control App construction.
type Options struct {
	// ConfigPath, when non-empty, names the exact config file to load
	// instead of searching the working directory and $HOME.
	ConfigPath string
	// Verbose enables debug logging regardless of the config file.
	Verbose bool
}

// App holds all service dependencies for the aiswe framework.
type App struct {
	Config *models.Config

	// Registries
	Tasks      registry.TaskRegistry
	Challenges registry.ChallengeRegistry
	Solutions  registry.SolutionRegistry

	// Cross-registry services
	Eval      evaluator.Evaluator
	Assistant assistant.Integration

	// Relationships is the live challenge relationship table: seed wiring
	// plus any overlay merges, in application order.
	Relationships registry.RelationshipTable
}

// NewApp creates and wires all components of the aiswe framework and injects
// them into the CLI layer.
func NewApp(opts Options) (*App, error) {
	app := &App{}

	// --- Configuration ---
	cfg, err := config.NewManager(opts.ConfigPath).Load()
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Logging ---
	logging.Setup(opts.Verbose || cfg.Log.Verbose)
	log := logging.Component("app")
	log.Debug().Str("format", cfg.Output.Format).Msg("configuration loaded")

	// --- Registries ---
	app.Tasks = registry.NewTaskRegistry()
	app.Challenges = registry.NewChallengeRegistry()
	app.Solutions = registry.NewSolutionRegistry(app.Challenges)
	catalog.Seed(app.Tasks, app.Challenges, app.Solutions)
	app.Relationships = catalog.Relationships()
	log.Debug().
		Int("tasks", app.Tasks.Len()).
		Int("challenges", app.Challenges.Len()).
		Int("solutions", app.Solutions.Len()).
		Msg("catalog seeded")

	// --- Catalog overlays ---
	for _, path := range cfg.Catalog.Overlays {
		file, err := storage.LoadCatalogFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading overlay %s: %w", path, err)
		}
		app.Relationships = storage.ApplyOverlay(file, app.Tasks, app.Challenges, app.Solutions, app.Relationships)
		log.Debug().Str("overlay", path).Msg("catalog overlay applied")
	}

	// --- Assistant integration ---
	app.Assistant = assistant.NewIntegration()
	for _, command := range catalog.Commands() {
		app.Assistant.Register(command)
	}
	for _, hook := range catalog.Hooks() {
		app.Assistant.RegisterHook(hook)
	}
	hookLog := logging.Component("assistant")
	app.Assistant.OnHook(func(event string, data map[string]any) {
		hookLog.Debug().Str("event", event).Fields(data).Msg("hook fired")
	})

	// --- Evaluator ---
	app.Eval = evaluator.NewEvaluator(app.Tasks, app.Challenges, app.Solutions, app.Assistant)

	bindExecutors(app)

	// --- Wire CLI package-level variables ---
	cli.Cfg = app.Config
	cli.Tasks = app.Tasks
	cli.Challenges = app.Challenges
	cli.Solutions = app.Solutions
	cli.Eval = app.Eval
	cli.Assistant = app.Assistant
	cli.Relationships = app.Relationships

	return app, nil
}

// challengeAssessment is the per-challenge record assess_challenges returns.
type challengeAssessment struct {
	Name      models.ChallengeName  `json:"name"`
	Severity  models.SeverityLevel  `json:"severity"`
	Impact    float64               `json:"impact"`
	Solutions []models.SolutionName `json:"solutions,omitempty"`
}

// bindExecutors attaches live implementations to the assistant commands with
// catalog-backed behavior. All other commands acknowledge with the default
// result.
func bindExecutors(app *App) {
	app.Assistant.BindExecutor("assess_challenges", func(ctx context.Context, params map[string]any) (any, error) {
		var challenges []*models.Challenge
		if raw, ok := params["task_name"]; ok {
			challenges = app.Challenges.ForTask(models.TaskName(fmt.Sprintf("%v", raw)))
		} else {
			challenges = app.Challenges.ImpactRanking()
		}

		includeSolutions := true
		if raw, ok := params["include_solutions"]; ok {
			includeSolutions = fmt.Sprintf("%v", raw) == "true"
		}

		assessments := make([]challengeAssessment, 0, len(challenges))
		for _, challenge := range challenges {
			assessment := challengeAssessment{
				Name:     challenge.Name,
				Severity: challenge.Metrics.Severity,
				Impact:   challenge.Metrics.ImpactScore(),
			}
			if includeSolutions {
				for _, solution := range app.Solutions.ForChallenge(challenge.Name) {
					assessment.Solutions = append(assessment.Solutions, solution.Name)
				}
			}
			assessments = append(assessments, assessment)
		}
		return assessments, nil
	})

	app.Assistant.BindExecutor("benchmark_performance", func(ctx context.Context, params map[string]any) (any, error) {
		return app.Eval.BenchmarkState(), nil
	})
}
