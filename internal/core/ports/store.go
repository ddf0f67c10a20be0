package ports

import "context"

// ArtifactStore defines the write surface of the remote build artifact
// store. Reading entries back is a separate concern and not part of this
// port.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Put stores an artifact under the given cache key.
	Put(ctx context.Context, key string, artifact []byte) error
}
