package marker

import (
	"context"

	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.action_marker"

func init() {
	graft.Register(graft.Node[ports.ActionMarker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ActionMarker, error) {
			return NewAnnotationMarker(), nil
		},
	})
}
