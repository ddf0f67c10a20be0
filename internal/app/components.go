package app

import (
	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/botzz826/gradle/internal/engine/runner"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Types  ports.TypeLoader
	Infos  ports.TaskInfoStore
	Runner *runner.Runner
	Store  ports.ArtifactStore
	Tracer ports.Tracer
}
