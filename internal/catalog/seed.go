package catalog

import (
	"github.com/aiswe-dev/aiswe/internal/registry"
)

// Seed populates the three registries with the core catalog and wires the
// challenge relationships. Registration runs before wiring so every
// relationship name resolves.
func Seed(tasks registry.TaskRegistry, challenges registry.ChallengeRegistry, solutions registry.SolutionRegistry) {
	for _, task := range Tasks() {
		tasks.Register(task)
	}
	for _, challenge := range Challenges() {
		challenges.Register(challenge)
	}
	for _, solution := range Solutions() {
		solutions.Register(solution)
	}
	challenges.WireRelationships(Relationships())
}
