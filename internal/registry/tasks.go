package registry

import (
	"github.com/aiswe-dev/aiswe/pkg/models"
)

// TaskFilter specifies metric criteria for filtering tasks.
// All non-nil fields use AND logic: a task must match every criterion;
// nil fields are wildcards.
type TaskFilter struct {
	Scope        *models.ScopeMeasure
	Complexity   *models.LogicalComplexity
	Intervention *models.HumanIntervention
}

// TaskRegistry defines the interface for the AI-SWE task catalog.
type TaskRegistry interface {
	// Register inserts a task, overwriting any existing task with the same
	// name. A replaced task keeps its original position in iteration order.
	Register(task *models.Task)
	Get(name models.TaskName) (*models.Task, bool)
	// All returns every task in registration order.
	All() []*models.Task
	ByCategory(category models.TaskCategory) []*models.Task
	ByMetrics(filter TaskFilter) []*models.Task
	// Distribution counts tasks per enum value along each of the four
	// dimensions (scope, complexity, intervention, category). Every enum
	// member appears as a key, with zero for unused values.
	Distribution() map[string]map[string]int
	Len() int
}

type taskRegistry struct {
	tasks map[models.TaskName]*models.Task
	order []models.TaskName
}

// NewTaskRegistry creates an empty TaskRegistry.
func NewTaskRegistry() TaskRegistry {
	return &taskRegistry{tasks: make(map[models.TaskName]*models.Task)}
}

func (r *taskRegistry) Register(task *models.Task) {
	if _, exists := r.tasks[task.Name]; !exists {
		r.order = append(r.order, task.Name)
	}
	r.tasks[task.Name] = task
}

func (r *taskRegistry) Get(name models.TaskName) (*models.Task, bool) {
	task, ok := r.tasks[name]
	return task, ok
}

func (r *taskRegistry) All() []*models.Task {
	tasks := make([]*models.Task, 0, len(r.order))
	for _, name := range r.order {
		tasks = append(tasks, r.tasks[name])
	}
	return tasks
}

func (r *taskRegistry) ByCategory(category models.TaskCategory) []*models.Task {
	var result []*models.Task
	for _, task := range r.All() {
		if task.Category == category {
			result = append(result, task)
		}
	}
	return result
}

func (r *taskRegistry) ByMetrics(filter TaskFilter) []*models.Task {
	var result []*models.Task
	for _, task := range r.All() {
		if matchesTaskFilter(task, filter) {
			result = append(result, task)
		}
	}
	return result
}

func matchesTaskFilter(task *models.Task, filter TaskFilter) bool {
	if filter.Scope != nil && task.Metrics.Scope != *filter.Scope {
		return false
	}
	if filter.Complexity != nil && task.Metrics.Complexity != *filter.Complexity {
		return false
	}
	if filter.Intervention != nil && task.Metrics.Intervention != *filter.Intervention {
		return false
	}
	return true
}

func (r *taskRegistry) Distribution() map[string]map[string]int {
	scope := make(map[string]int, len(models.ScopeMeasures()))
	for _, s := range models.ScopeMeasures() {
		scope[string(s)] = 0
	}
	complexity := make(map[string]int, len(models.LogicalComplexities()))
	for _, c := range models.LogicalComplexities() {
		complexity[string(c)] = 0
	}
	intervention := make(map[string]int, len(models.HumanInterventions()))
	for _, h := range models.HumanInterventions() {
		intervention[string(h)] = 0
	}
	category := make(map[string]int, len(models.TaskCategories()))
	for _, c := range models.TaskCategories() {
		category[string(c)] = 0
	}

	for _, task := range r.All() {
		scope[string(task.Metrics.Scope)]++
		complexity[string(task.Metrics.Complexity)]++
		intervention[string(task.Metrics.Intervention)]++
		category[string(task.Category)]++
	}

	return map[string]map[string]int{
		"scope":        scope,
		"complexity":   complexity,
		"intervention": intervention,
		"category":     category,
	}
}

func (r *taskRegistry) Len() int {
	return len(r.order)
}
