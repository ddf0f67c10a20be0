package app

import (
	"context"

	"github.com/botzz826/gradle/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/botzz826/gradle/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/botzz826/gradle/internal/adapters/remotestore"        //nolint:depguard // Wired in app layer
	"github.com/botzz826/gradle/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/botzz826/gradle/internal/engine/runner"
	"github.com/botzz826/gradle/internal/engine/taskfactory"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			taskfactory.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			types, err := graft.Dep[ports.TypeLoader](ctx)
			if err != nil {
				return nil, err
			}

			infos, err := graft.Dep[ports.TaskInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(types, infos, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			taskfactory.NodeID,
			runner.NodeID,
			remotestore.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	types, err := graft.Dep[ports.TypeLoader](ctx)
	if err != nil {
		return nil, err
	}

	infos, err := graft.Dep[ports.TaskInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Types:  types,
		Infos:  infos,
		Runner: run,
		Store:  store,
		Tracer: tracer,
	}, nil
}
