package remotestore

import "context"

// NoOpStore is a no-op implementation of ports.ArtifactStore, used when no
// remote cache is configured.
type NoOpStore struct{}

// NewNoOpStore creates a new NoOpStore.
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

// Put discards the entry.
func (s *NoOpStore) Put(_ context.Context, _ string, _ []byte) error {
	return nil
}
