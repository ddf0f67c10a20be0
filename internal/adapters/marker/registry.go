package marker

import (
	"sync"

	"github.com/botzz826/gradle/internal/core/domain"
)

// Registry recognises action methods by explicit registration instead of
// annotations. Entries are keyed by type name and method name.
type Registry struct {
	mu     sync.RWMutex
	marked map[registryKey]struct{}
}

type registryKey struct {
	typeName   domain.InternedString
	methodName domain.InternedString
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{marked: make(map[registryKey]struct{})}
}

// Mark registers a method of the named type as a task action.
func (r *Registry) Mark(typeName, methodName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marked[registryKey{
		typeName:   domain.NewInternedString(typeName),
		methodName: domain.NewInternedString(methodName),
	}] = struct{}{}
}

// IsAction reports whether the method was registered for the declaring type.
func (r *Registry) IsAction(declaring *domain.Type, method domain.Method) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.marked[registryKey{typeName: declaring.Name, methodName: method.Name}]
	return ok
}
