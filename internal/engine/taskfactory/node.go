package taskfactory

import (
	"context"

	"github.com/botzz826/gradle/internal/adapters/marker" //nolint:depguard // Wired in engine wiring
	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the task info store Graft node.
const NodeID graft.ID = "engine.task_info_store"

func init() {
	graft.Register(graft.Node[ports.TaskInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			marker.NodeID,
		},
		Run: func(ctx context.Context) (ports.TaskInfoStore, error) {
			m, err := graft.Dep[ports.ActionMarker](ctx)
			if err != nil {
				return nil, err
			}
			return NewInfoStore(NewScanner(m)), nil
		},
	})
}
