// Package steps provides step definitions and dependency validation
// for the resume generation pipeline.
package steps

import "fmt"

// Step names
const (
	StepLoadProfile   = "load_profile"
	StepGenerateQR    = "generate_qr_code"
	StepRenderLaTeX   = "render_latex"
	StepWriteDocument = "write_document"
)

// Step statuses reported by Tracker.Status
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

// Step categories
const (
	CategoryInput  = "input"
	CategoryAssets = "assets"
	CategoryOutput = "output"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	// Optional steps must run before this one when they run at all
	Optional []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepLoadProfile: {
		Name:         StepLoadProfile,
		Category:     CategoryInput,
		Dependencies: []string{},
		Optional:     []string{},
	},
	StepGenerateQR: {
		Name:         StepGenerateQR,
		Category:     CategoryAssets,
		Dependencies: []string{StepLoadProfile},
		Optional:     []string{},
	},
	StepRenderLaTeX: {
		Name:         StepRenderLaTeX,
		Category:     CategoryOutput,
		Dependencies: []string{StepLoadProfile},
		Optional:     []string{},
	},
	StepWriteDocument: {
		Name:         StepWriteDocument,
		Category:     CategoryOutput,
		Dependencies: []string{StepRenderLaTeX},
		Optional:     []string{StepGenerateQR},
	},
}

// Order is the sequence the pipeline runs its steps in
var Order = []string{StepLoadProfile, StepGenerateQR, StepRenderLaTeX, StepWriteDocument}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// Tracker records which steps of a run have completed or been skipped
type Tracker struct {
	completed map[string]bool
	skipped   map[string]bool
}

// NewTracker creates an empty Tracker
func NewTracker() *Tracker {
	return &Tracker{
		completed: make(map[string]bool),
		skipped:   make(map[string]bool),
	}
}

// Complete marks a step as completed
func (t *Tracker) Complete(step string) {
	t.completed[step] = true
}

// Skip marks a step as skipped. Skipped optional steps no longer block dependents.
func (t *Tracker) Skip(step string) {
	t.skipped[step] = true
}

// Completed reports whether step has completed
func (t *Tracker) Completed(step string) bool {
	return t.completed[step]
}

// Skipped reports whether step was skipped
func (t *Tracker) Skipped(step string) bool {
	return t.skipped[step]
}

// Status returns the status of step
func (t *Tracker) Status(step string) string {
	switch {
	case t.Completed(step):
		return StatusCompleted
	case t.Skipped(step):
		return StatusSkipped
	default:
		return StatusPending
	}
}

// ValidateDependencies checks that every required dependency of stepName has
// completed and every optional one has either completed or been skipped.
func (t *Tracker) ValidateDependencies(stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string

	for _, dep := range def.Dependencies {
		if !t.completed[dep] {
			missing = append(missing, dep)
		}
	}
	for _, dep := range def.Optional {
		if !t.completed[dep] && !t.skipped[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}
