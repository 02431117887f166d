// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/cache"
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/config"
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/logger"
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/shell"
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/telemetry"
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/app"
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/engine/scheduler"
)
