package domain

import "slices"

// TaskClassInfo is the immutable result of scanning a task type: whether
// the type declares an incremental action, and a factory per executable
// action method in resolution order.
type TaskClassInfo struct {
	incremental bool
	factories   []ActionFactory
}

// NewTaskClassInfo creates a TaskClassInfo from a completed scan.
func NewTaskClassInfo(incremental bool, factories []ActionFactory) *TaskClassInfo {
	return &TaskClassInfo{
		incremental: incremental,
		factories:   slices.Clone(factories),
	}
}

// Incremental reports whether the type declares an action accepting input
// changes.
func (i *TaskClassInfo) Incremental() bool {
	return i.incremental
}

// ActionFactories returns the action factories in resolution order.
func (i *TaskClassInfo) ActionFactories() []ActionFactory {
	return slices.Clone(i.factories)
}

// ActionCount returns the number of executable actions.
func (i *TaskClassInfo) ActionCount() int {
	return len(i.factories)
}
