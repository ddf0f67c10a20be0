// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/botzz826/gradle/internal/adapters/config"
	_ "github.com/botzz826/gradle/internal/adapters/logger"
	_ "github.com/botzz826/gradle/internal/adapters/marker"
	_ "github.com/botzz826/gradle/internal/adapters/remotestore"
	_ "github.com/botzz826/gradle/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/botzz826/gradle/internal/app"
	_ "github.com/botzz826/gradle/internal/engine/runner"
	_ "github.com/botzz826/gradle/internal/engine/taskfactory"
)
