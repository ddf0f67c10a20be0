package taskfactory

import (
	"go.trai.ch/zerr"

	"github.com/botzz826/gradle/internal/core/classload"
	"github.com/botzz826/gradle/internal/core/domain"
)

// standardAction executes a parameterless action method inside the
// declaring type's loader scope.
type standardAction struct {
	resolved  *domain.Type
	declaring *domain.Type
	method    domain.Method

	// invoke is the variant-specific invocation; incremental actions
	// replace it at construction.
	invoke func(task domain.Task) error
}

func newStandardAction(resolved, declaring *domain.Type, m domain.Method) *standardAction {
	a := &standardAction{resolved: resolved, declaring: declaring, method: m}
	a.invoke = a.call
	return a
}

// Execute swaps the ambient context loader to the declaring type's loader,
// invokes the method, and restores the previous loader on every exit path.
func (a *standardAction) Execute(task domain.Task) error {
	restore := classload.EnterScope(a.declaring.OwningLoader())
	defer restore()
	return a.invoke(task)
}

func (a *standardAction) call(task domain.Task) error {
	if a.method.Call == nil {
		return zerr.With(domain.ErrMethodNotCallable, "method", a.method.Name.String())
	}
	return a.method.Call(task)
}

// Loader returns the declaring type's loader.
func (a *standardAction) Loader() *classload.Loader {
	return a.declaring.OwningLoader()
}

// ActionClassName returns the name of the resolved task type, not the
// ancestor that declared the method.
func (a *standardAction) ActionClassName() string {
	return a.resolved.Name.String()
}

// DisplayName returns "Execute <method>".
func (a *standardAction) DisplayName() string {
	return "Execute " + a.method.Name.String()
}

// incrementalAction is a standardAction whose method receives the input
// changes of the execution context bound by the caller.
type incrementalAction struct {
	standardAction
	state domain.ArtifactState
}

func newIncrementalAction(resolved, declaring *domain.Type, m domain.Method) *incrementalAction {
	a := &incrementalAction{
		standardAction: standardAction{resolved: resolved, declaring: declaring, method: m},
	}
	a.invoke = a.callWithChanges
	return a
}

// BindContext captures the execution's artifact state ahead of Execute.
func (a *incrementalAction) BindContext(execCtx domain.ExecutionContext) {
	a.state = execCtx.ArtifactState()
}

// ReleaseContext drops the captured state so it cannot leak across
// executions.
func (a *incrementalAction) ReleaseContext() {
	a.state = nil
}

func (a *incrementalAction) callWithChanges(task domain.Task) error {
	if a.state == nil {
		return zerr.With(domain.ErrContextNotBound, "method", a.method.Name.String())
	}
	if a.method.CallChanges == nil {
		return zerr.With(domain.ErrMethodNotCallable, "method", a.method.Name.String())
	}
	return a.method.CallChanges(task, a.state.InputChanges())
}

// newActionFactory returns a factory producing fresh single-use action
// instances for the given declaration.
func newActionFactory(resolved, declaring *domain.Type, m domain.Method, inputChanges bool) domain.ActionFactory {
	if inputChanges {
		return func() domain.Action { return newIncrementalAction(resolved, declaring, m) }
	}
	return func() domain.Action { return newStandardAction(resolved, declaring, m) }
}
