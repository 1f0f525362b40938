package registry

import (
	"sort"

	"github.com/aiswe-dev/aiswe/pkg/models"
)

// defaultTopPriorities is how many challenges Priority returns when the
// caller does not ask for a specific count.
const defaultTopPriorities = 5

// RelationshipTable maps a challenge name to the names of related
// challenges. It is applied in a separate pass after all challenges are
// registered so forward references resolve.
type RelationshipTable map[models.ChallengeName][]models.ChallengeName

// ChallengeRegistry defines the interface for the challenge catalog.
type ChallengeRegistry interface {
	// Register inserts a challenge, overwriting any existing challenge with
	// the same name. A replaced challenge keeps its original position in
	// iteration order; its related-challenges list is whatever the new
	// value carries (empty until WireRelationships runs again).
	Register(challenge *models.Challenge)
	Get(name models.ChallengeName) (*models.Challenge, bool)
	All() []*models.Challenge
	// Names returns every registered challenge name in registration order.
	Names() []models.ChallengeName
	ByCategory(category models.ChallengeCategory) []*models.Challenge
	BySeverity(level models.SeverityLevel) []*models.Challenge
	// ForTask returns the challenges whose affected-task set contains the
	// given task name, in registration order.
	ForTask(name models.TaskName) []*models.Challenge
	// ImpactRanking returns all challenges sorted by impact score
	// descending. The sort is stable: equal scores keep registration order.
	ImpactRanking() []*models.Challenge
	// Priority returns the first topN challenges of ImpactRanking.
	// Non-positive topN means the default of 5.
	Priority(topN int) []*models.Challenge
	// SystemReadiness returns the mean solution readiness per challenge
	// category. Categories with no registered challenges are absent.
	SystemReadiness() map[models.ChallengeCategory]float64
	// WireRelationships assigns each challenge's related-challenges list
	// from the table, dropping names that are not registered. Challenges
	// absent from the table end up with an empty list.
	WireRelationships(table RelationshipTable)
	Len() int
}

type challengeRegistry struct {
	challenges map[models.ChallengeName]*models.Challenge
	order      []models.ChallengeName
}

// NewChallengeRegistry creates an empty ChallengeRegistry.
func NewChallengeRegistry() ChallengeRegistry {
	return &challengeRegistry{challenges: make(map[models.ChallengeName]*models.Challenge)}
}

func (r *challengeRegistry) Register(challenge *models.Challenge) {
	if _, exists := r.challenges[challenge.Name]; !exists {
		r.order = append(r.order, challenge.Name)
	}
	r.challenges[challenge.Name] = challenge
}

func (r *challengeRegistry) Get(name models.ChallengeName) (*models.Challenge, bool) {
	challenge, ok := r.challenges[name]
	return challenge, ok
}

func (r *challengeRegistry) All() []*models.Challenge {
	challenges := make([]*models.Challenge, 0, len(r.order))
	for _, name := range r.order {
		challenges = append(challenges, r.challenges[name])
	}
	return challenges
}

func (r *challengeRegistry) Names() []models.ChallengeName {
	names := make([]models.ChallengeName, len(r.order))
	copy(names, r.order)
	return names
}

func (r *challengeRegistry) ByCategory(category models.ChallengeCategory) []*models.Challenge {
	var result []*models.Challenge
	for _, challenge := range r.All() {
		if challenge.Category == category {
			result = append(result, challenge)
		}
	}
	return result
}

func (r *challengeRegistry) BySeverity(level models.SeverityLevel) []*models.Challenge {
	var result []*models.Challenge
	for _, challenge := range r.All() {
		if challenge.Metrics.Severity == level {
			result = append(result, challenge)
		}
	}
	return result
}

func (r *challengeRegistry) ForTask(name models.TaskName) []*models.Challenge {
	var result []*models.Challenge
	for _, challenge := range r.All() {
		if challenge.Affects(name) {
			result = append(result, challenge)
		}
	}
	return result
}

func (r *challengeRegistry) ImpactRanking() []*models.Challenge {
	ranked := r.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Metrics.ImpactScore() > ranked[j].Metrics.ImpactScore()
	})
	return ranked
}

func (r *challengeRegistry) Priority(topN int) []*models.Challenge {
	if topN <= 0 {
		topN = defaultTopPriorities
	}
	ranked := r.ImpactRanking()
	if topN > len(ranked) {
		topN = len(ranked)
	}
	return ranked[:topN]
}

func (r *challengeRegistry) SystemReadiness() map[models.ChallengeCategory]float64 {
	sums := make(map[models.ChallengeCategory]float64)
	counts := make(map[models.ChallengeCategory]int)
	for _, challenge := range r.All() {
		sums[challenge.Category] += challenge.Metrics.SolutionReadiness
		counts[challenge.Category]++
	}

	readiness := make(map[models.ChallengeCategory]float64, len(sums))
	for category, sum := range sums {
		readiness[category] = sum / float64(counts[category])
	}
	return readiness
}

func (r *challengeRegistry) WireRelationships(table RelationshipTable) {
	for _, challenge := range r.challenges {
		challenge.RelatedChallenges = nil
	}
	for name, related := range table {
		challenge, ok := r.challenges[name]
		if !ok {
			continue
		}
		var wired []models.ChallengeName
		for _, rel := range related {
			if _, registered := r.challenges[rel]; registered {
				wired = append(wired, rel)
			}
		}
		challenge.RelatedChallenges = wired
	}
}

func (r *challengeRegistry) Len() int {
	return len(r.order)
}
