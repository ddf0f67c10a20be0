// Package classload models the isolated code scopes task types are loaded
// from, and the ambient context loader task code resolves against while an
// action executes.
package classload

import "sync/atomic"

// Loader identifies an isolated scope of loadable task code. Loaders form a
// parent-delegation chain rooted at Bootstrap. A Loader is immutable after
// construction and safe for concurrent use.
type Loader struct {
	name   string
	parent *Loader
}

// Bootstrap is the root loader every other loader descends from. Types with
// no explicit loader belong to it.
var Bootstrap = &Loader{name: "bootstrap"}

// NewLoader creates a loader with the given name delegating to parent.
// A nil parent delegates to Bootstrap.
func NewLoader(name string, parent *Loader) *Loader {
	if parent == nil {
		parent = Bootstrap
	}
	return &Loader{name: name, parent: parent}
}

// Name returns the loader's name.
func (l *Loader) Name() string {
	return l.name
}

// Parent returns the loader this loader delegates to. Bootstrap has no
// parent.
func (l *Loader) Parent() *Loader {
	return l.parent
}

// String returns the loader's name.
func (l *Loader) String() string {
	return l.name
}

// contextLoader is the process-wide ambient loader slot. Goroutines have
// no per-thread storage for it, so the slot is shared and scope guards
// only undo their own swap.
var contextLoader atomic.Pointer[Loader]

func init() {
	contextLoader.Store(Bootstrap)
}

// ContextLoader returns the ambient loader task code currently resolves
// against.
func ContextLoader() *Loader {
	return contextLoader.Load()
}

// SetContextLoader replaces the ambient loader. A nil loader resets the
// slot to Bootstrap.
func SetContextLoader(l *Loader) {
	if l == nil {
		l = Bootstrap
	}
	contextLoader.Store(l)
}

// EnterScope makes l the ambient context loader and returns a restore
// function reinstating the previous loader. Callers must invoke restore on
// every exit path, typically via defer. If another scope replaced the slot
// in the meantime, restore leaves that newer value untouched.
func EnterScope(l *Loader) (restore func()) {
	if l == nil {
		l = Bootstrap
	}
	prev := contextLoader.Swap(l)
	return func() {
		contextLoader.CompareAndSwap(l, prev)
	}
}
