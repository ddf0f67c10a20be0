package remotestore

import (
	"context"
	"os"

	"github.com/botzz826/gradle/internal/adapters/cas"
	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.artifact_store"

const (
	// EnvCacheURL names the environment variable carrying the remote cache
	// base URL. A remote cache takes precedence over a local one.
	EnvCacheURL = "GRADLE_REMOTE_CACHE_URL"
	// EnvCacheDir names the environment variable carrying the local cache
	// directory. Caching is skipped when neither variable is set.
	EnvCacheDir = "GRADLE_CACHE_DIR"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactStore, error) {
			if base := os.Getenv(EnvCacheURL); base != "" {
				return NewHTTPStore(base)
			}
			if dir := os.Getenv(EnvCacheDir); dir != "" {
				return cas.NewStore(dir)
			}
			return NewNoOpStore(), nil
		},
	})
}
