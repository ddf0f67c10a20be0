// Package domain contains the core domain models for task action
// resolution: task types, their declared methods, and the metadata the
// engine derives from them.
package domain

import (
	"iter"
	"slices"

	"github.com/botzz826/gradle/internal/core/classload"
)

// AnnotationTaskAction is the conventional annotation marking a declared
// method as a task action.
const AnnotationTaskAction = "TaskAction"

// ParamType identifies the declared type of an action method parameter.
type ParamType string

// ParamInputChanges is the only parameter type an action method may accept.
// Methods taking it receive the incremental input changes of the current
// execution.
const ParamInputChanges ParamType = "InputChanges"

// Method describes one declared method of a task type. The invocation
// closures are bound when the type is registered; the engine never invokes
// by name.
type Method struct {
	Name        InternedString
	Static      bool
	Params      []ParamType
	Annotations []string

	// Call invokes a parameterless method against a task instance. Nil for
	// declaration-only types, e.g. those loaded from a manifest.
	Call func(task Task) error
	// CallChanges invokes a one-parameter incremental method.
	CallChanges func(task Task, changes InputChanges) error
}

// HasAnnotation reports whether the method carries the given annotation.
func (m Method) HasAnnotation(name string) bool {
	return slices.Contains(m.Annotations, name)
}

// Type describes a task type: its identity, its place in the type
// hierarchy, the loader that owns it, and its declared methods in
// declaration order. A Type must not be mutated once handed to the
// resolution engine.
type Type struct {
	Name    InternedString
	Parent  *Type
	Loader  *classload.Loader
	Methods []Method
}

// OwningLoader returns the loader the type belongs to, defaulting to the
// bootstrap loader.
func (t *Type) OwningLoader() *classload.Loader {
	if t.Loader != nil {
		return t.Loader
	}
	return classload.Bootstrap
}

// Ancestry yields the type followed by its ancestors, most derived first.
func (t *Type) Ancestry() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		for cur := t; cur != nil; cur = cur.Parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// String returns the type's name.
func (t *Type) String() string {
	return t.Name.String()
}

// Task is a runtime task instance the engine executes actions against.
type Task interface {
	// Name returns the task's build-unique name.
	Name() string
	// Type returns the runtime type actions are resolved from.
	Type() *Type
}
