package registry

import (
	"sort"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

// defaultQuickWinMonths is the deployment horizon QuickWins uses when the
// caller does not supply one.
const defaultQuickWinMonths = 12

// Roadmap bucket labels, keyed by time to deployment.
const (
	BucketShortTerm  = "Short-term (0-6 months)"
	BucketMediumTerm = "Medium-term (6-12 months)"
	BucketLongTerm   = "Long-term (12-18 months)"
	BucketResearch   = "Research (18+ months)"
)

// ChallengeNames is the narrow view of the challenge catalog the solution
// registry needs for coverage counting.
type ChallengeNames interface {
	Names() []models.ChallengeName
}

// SolutionRegistry defines the interface for the solution catalog.
type SolutionRegistry interface {
	// Register inserts a solution, overwriting any existing solution with
	// the same name. A replaced solution keeps its original position in
	// iteration order.
	Register(solution *models.Solution)
	Get(name models.SolutionName) (*models.Solution, bool)
	All() []*models.Solution
	ByCategory(category models.SolutionCategory) []*models.Solution
	ByStatus(status models.ImplementationStatus) []*models.Solution
	// ForChallenge returns the solutions whose addressed-challenges set
	// contains the given challenge name, in registration order.
	ForChallenge(name models.ChallengeName) []*models.Solution
	// FeasibilityRanking returns all solutions sorted by feasibility score
	// descending. The sort is stable: equal scores keep registration order.
	FeasibilityRanking() []*models.Solution
	// QuickWins returns the solutions deployable within maxMonths, in
	// registration order. Non-positive maxMonths means the default of 12.
	QuickWins(maxMonths float64) []*models.Solution
	// Roadmap buckets every solution by time to deployment. All four
	// buckets are always present; each solution falls into exactly one.
	Roadmap() map[string][]*models.Solution
	// Coverage counts, for every challenge name known to the challenge
	// catalog, how many solutions address it. Challenges no solution
	// addresses appear with count 0; addressed names the challenge catalog
	// does not know are ignored.
	Coverage() map[models.ChallengeName]int
	// HighImpact returns the solutions whose effectiveness is exactly the
	// given level. An empty level means high.
	HighImpact(level models.EffectivenessLevel) []*models.Solution
	Len() int
}

type solutionRegistry struct {
	solutions  map[models.SolutionName]*models.Solution
	order      []models.SolutionName
	challenges ChallengeNames
}

// NewSolutionRegistry creates an empty SolutionRegistry. The challenges
// collaborator supplies the name space Coverage counts over.
func NewSolutionRegistry(challenges ChallengeNames) SolutionRegistry {
	return &solutionRegistry{
		solutions:  make(map[models.SolutionName]*models.Solution),
		challenges: challenges,
	}
}

func (r *solutionRegistry) Register(solution *models.Solution) {
	if _, exists := r.solutions[solution.Name]; !exists {
		r.order = append(r.order, solution.Name)
	}
	r.solutions[solution.Name] = solution
}

func (r *solutionRegistry) Get(name models.SolutionName) (*models.Solution, bool) {
	solution, ok := r.solutions[name]
	return solution, ok
}

func (r *solutionRegistry) All() []*models.Solution {
	solutions := make([]*models.Solution, 0, len(r.order))
	for _, name := range r.order {
		solutions = append(solutions, r.solutions[name])
	}
	return solutions
}

func (r *solutionRegistry) ByCategory(category models.SolutionCategory) []*models.Solution {
	var result []*models.Solution
	for _, solution := range r.All() {
		if solution.Category == category {
			result = append(result, solution)
		}
	}
	return result
}

func (r *solutionRegistry) ByStatus(status models.ImplementationStatus) []*models.Solution {
	var result []*models.Solution
	for _, solution := range r.All() {
		if solution.Status == status {
			result = append(result, solution)
		}
	}
	return result
}

func (r *solutionRegistry) ForChallenge(name models.ChallengeName) []*models.Solution {
	var result []*models.Solution
	for _, solution := range r.All() {
		if solution.Addresses(name) {
			result = append(result, solution)
		}
	}
	return result
}

func (r *solutionRegistry) FeasibilityRanking() []*models.Solution {
	ranked := r.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Metrics.FeasibilityScore() > ranked[j].Metrics.FeasibilityScore()
	})
	return ranked
}

func (r *solutionRegistry) QuickWins(maxMonths float64) []*models.Solution {
	if maxMonths <= 0 {
		maxMonths = defaultQuickWinMonths
	}
	var result []*models.Solution
	for _, solution := range r.All() {
		if solution.Metrics.TimeToDeployment <= maxMonths {
			result = append(result, solution)
		}
	}
	return result
}

func (r *solutionRegistry) Roadmap() map[string][]*models.Solution {
	roadmap := map[string][]*models.Solution{
		BucketShortTerm:  {},
		BucketMediumTerm: {},
		BucketLongTerm:   {},
		BucketResearch:   {},
	}
	for _, solution := range r.All() {
		switch ttd := solution.Metrics.TimeToDeployment; {
		case ttd <= 6:
			roadmap[BucketShortTerm] = append(roadmap[BucketShortTerm], solution)
		case ttd <= 12:
			roadmap[BucketMediumTerm] = append(roadmap[BucketMediumTerm], solution)
		case ttd <= 18:
			roadmap[BucketLongTerm] = append(roadmap[BucketLongTerm], solution)
		default:
			roadmap[BucketResearch] = append(roadmap[BucketResearch], solution)
		}
	}
	return roadmap
}

func (r *solutionRegistry) Coverage() map[models.ChallengeName]int {
	names := r.challenges.Names()
	coverage := make(map[models.ChallengeName]int, len(names))
	for _, name := range names {
		n := 0
		for _, solution := range r.All() {
			if solution.Addresses(name) {
				n++
			}
		}
		coverage[name] = n
	}
	return coverage
}

func (r *solutionRegistry) HighImpact(level models.EffectivenessLevel) []*models.Solution {
	if level == "" {
		level = models.EffectivenessHigh
	}
	var result []*models.Solution
	for _, solution := range r.All() {
		if solution.Metrics.Effectiveness == level {
			result = append(result, solution)
		}
	}
	return result
}

func (r *solutionRegistry) Len() int {
	return len(r.order)
}
