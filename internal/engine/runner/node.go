package runner

import (
	"context"

	"github.com/botzz826/gradle/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/botzz826/gradle/internal/adapters/remotestore"        //nolint:depguard // Wired in engine wiring
	"github.com/botzz826/gradle/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/botzz826/gradle/internal/engine/taskfactory"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			taskfactory.NodeID,
			remotestore.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			infos, err := graft.Dep[ports.TaskInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(infos, store, log, tracer), nil
		},
	})
}
