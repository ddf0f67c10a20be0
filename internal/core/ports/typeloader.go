package ports

import "github.com/botzz826/gradle/internal/core/domain"

// TypeLoader defines the interface for loading task type declarations.
//
//go:generate mockgen -source=typeloader.go -destination=mocks/mock_typeloader.go -package=mocks
type TypeLoader interface {
	// Load reads the task type declarations from the manifest at the given
	// path. Loaded types are declaration-only: their methods carry no
	// invocation closures.
	Load(path string) ([]*domain.Type, error)
}
