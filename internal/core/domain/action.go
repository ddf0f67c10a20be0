package domain

import "github.com/botzz826/gradle/internal/core/classload"

// ActionFactory produces a fresh, single-use Action instance per call.
type ActionFactory func() Action

// Action is one executable unit of work attached to a task.
type Action interface {
	// Execute runs the action against the task. The ambient context loader
	// is scoped to the declaring type's loader for the duration of the
	// call. Errors returned by the task's own method propagate unchanged.
	Execute(task Task) error
	// Loader returns the loader owning the scope the action executes in.
	Loader() *classload.Loader
	// ActionClassName returns the name of the task type the action was
	// resolved for, not the ancestor that declared the method.
	ActionClassName() string
	// DisplayName returns a short human-readable description of the
	// action, e.g. "Execute run".
	DisplayName() string
}

// ContextAwareAction is an Action consuming per-execution state. The caller
// binds the execution context immediately before Execute and releases it
// immediately after, whatever the outcome.
type ContextAwareAction interface {
	Action
	// BindContext hands the action the state of the upcoming execution.
	BindContext(execCtx ExecutionContext)
	// ReleaseContext drops the bound state so it cannot leak across
	// executions.
	ReleaseContext()
}

// ExecutionContext carries the per-execution state of a single task run.
type ExecutionContext interface {
	// ArtifactState returns the change-tracking state of the current
	// execution.
	ArtifactState() ArtifactState
}

// ArtifactState exposes a task execution's input change information.
type ArtifactState interface {
	InputChanges() InputChanges
}
