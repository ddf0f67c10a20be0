package config

import (
	"context"

	"github.com/botzz826/gradle/internal/adapters/logger"
	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.type_loader"

func init() {
	graft.Register(graft.Node[ports.TypeLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TypeLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
