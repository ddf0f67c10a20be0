// Package marker implements the strategies that decide which methods of a
// task type count as task actions.
package marker

import (
	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports"
)

// AnnotationMarker recognises action methods by a source annotation.
type AnnotationMarker struct {
	annotation string
}

// NewAnnotationMarker creates a marker recognising the standard task action
// annotation.
func NewAnnotationMarker() ports.ActionMarker {
	return NewAnnotationMarkerFor(domain.AnnotationTaskAction)
}

// NewAnnotationMarkerFor creates a marker recognising the given annotation.
func NewAnnotationMarkerFor(annotation string) ports.ActionMarker {
	return &AnnotationMarker{annotation: annotation}
}

// IsAction reports whether the method carries the marker's annotation.
func (m *AnnotationMarker) IsAction(_ *domain.Type, method domain.Method) bool {
	return method.HasAnnotation(m.annotation)
}
