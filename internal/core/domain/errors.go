package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidActionDeclaration covers every structurally broken task
	// action declaration. The specific sentinels below wrap it, so callers
	// can match either the family or the exact violation.
	ErrInvalidActionDeclaration = zerr.New("invalid task action declaration")

	// ErrStaticActionMethod is returned when an action annotation sits on a
	// static method.
	ErrStaticActionMethod = zerr.Wrap(ErrInvalidActionDeclaration, "task action must be an instance method")

	// ErrTooManyActionParameters is returned when an action method declares
	// more than one parameter.
	ErrTooManyActionParameters = zerr.Wrap(ErrInvalidActionDeclaration, "task action takes at most one parameter")

	// ErrInvalidActionParameter is returned when an action method's single
	// parameter is not the input changes type.
	ErrInvalidActionParameter = zerr.Wrap(ErrInvalidActionDeclaration, "task action parameter is not a valid input changes type")

	// ErrMultipleIncrementalActions is returned when a task type declares
	// more than one action accepting input changes.
	ErrMultipleIncrementalActions = zerr.Wrap(ErrInvalidActionDeclaration, "task type declares multiple input changes actions")

	// ErrNilTaskType is returned when action resolution is asked about a
	// nil type.
	ErrNilTaskType = zerr.New("task type is nil")

	// ErrContextNotBound is returned when an incremental action executes
	// without a bound execution context.
	ErrContextNotBound = zerr.New("execution context not bound")

	// ErrMethodNotCallable is returned when executing an action whose
	// method carries no bound implementation.
	ErrMethodNotCallable = zerr.New("task action method has no bound implementation")

	// ErrInspectionFailed is returned when at least one inspected task type
	// fails action validation.
	ErrInspectionFailed = zerr.New("task type inspection failed")
)
