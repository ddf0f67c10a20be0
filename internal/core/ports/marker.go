package ports

import "github.com/botzz826/gradle/internal/core/domain"

// ActionMarker decides whether a declared method is a task action. The
// resolution engine consults it once per declared method during a scan.
//
//go:generate mockgen -source=marker.go -destination=mocks/mock_marker.go -package=mocks
type ActionMarker interface {
	// IsAction reports whether the method declared on the given type is
	// marked as a task action.
	IsAction(declaring *domain.Type, method domain.Method) bool
}
