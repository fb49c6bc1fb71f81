// Package steps provides stage definitions and dependency validation for the
// extraction pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Stage categories.
const (
	CategorySegment = "segment"
	CategoryRecord  = "record"
)

// Stage names.
const (
	StepClassify  = "classify"
	StepExtract   = "extract"
	StepAggregate = "aggregate"
	StepBuild     = "build"
)

// StepDefinition defines metadata for a pipeline stage.
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	// Order is the position of the stage in a sequential run.
	Order int
}

// StepRegistry holds all stage definitions.
var StepRegistry = map[string]StepDefinition{
	StepClassify: {
		Name:         StepClassify,
		Category:     CategorySegment,
		Dependencies: []string{},
		Order:        1,
	},
	StepExtract: {
		Name:         StepExtract,
		Category:     CategorySegment,
		Dependencies: []string{StepClassify},
		Order:        2,
	},
	StepAggregate: {
		Name:         StepAggregate,
		Category:     CategoryRecord,
		Dependencies: []string{StepExtract},
		Order:        3,
	},
	StepBuild: {
		Name:         StepBuild,
		Category:     CategoryRecord,
		Dependencies: []string{StepAggregate},
		Order:        4,
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName is in completed.
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}

// Ordered returns the stage names in execution order.
func Ordered() []string {
	names := make([]string, 0, len(StepRegistry))
	for name := range StepRegistry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return StepRegistry[names[i]].Order < StepRegistry[names[j]].Order })
	return names
}

// Category returns the category of a stage, or "" for unknown stages.
func Category(stepName string) string {
	return StepRegistry[stepName].Category
}

// Tracker records completed stages of one run. It is not safe for concurrent use.
type Tracker struct {
	completed map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]bool)}
}

// Begin validates that stepName may start.
func (t *Tracker) Begin(stepName string) error {
	return ValidateDependencies(t.completed, stepName)
}

// Complete marks stepName as done.
func (t *Tracker) Complete(stepName string) {
	t.completed[stepName] = true
}

// Completed reports whether stepName is done.
func (t *Tracker) Completed(stepName string) bool {
	return t.completed[stepName]
}
