// Package cas implements a content-addressed local store for build result
// entries.
package cas

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Store implements ports.ArtifactStore on the local filesystem. Each entry
// is written to <dir>/<key>.json; keys are content hashes, so rewriting an
// existing entry is idempotent.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given directory, creating it if
// necessary.
func NewStore(dir string) (*Store, error) {
	cleaned := filepath.Clean(dir)
	if err := os.MkdirAll(cleaned, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create local build cache directory")
	}
	return &Store{dir: cleaned}, nil
}

// Put writes the artifact under its cache key.
func (s *Store) Put(_ context.Context, key string, artifact []byte) error {
	path := filepath.Join(s.dir, key+".json")
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, artifact, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write local build cache entry"), "key", key)
	}
	return nil
}
