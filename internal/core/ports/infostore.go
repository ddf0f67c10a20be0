package ports

import "github.com/botzz826/gradle/internal/core/domain"

// TaskInfoStore resolves task types to their executable action metadata.
//
//go:generate mockgen -source=infostore.go -destination=mocks/mock_infostore.go -package=mocks
type TaskInfoStore interface {
	// Get returns the scanned action metadata for the given type. Results
	// are memoized per live type; concurrent callers for the same type
	// share a single scan. A validation failure is returned as-is and is
	// never cached.
	Get(t *domain.Type) (*domain.TaskClassInfo, error)
}
