// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/symup/internal/adapters/archive"
	_ "go.trai.ch/symup/internal/adapters/config"
	_ "go.trai.ch/symup/internal/adapters/dwarfdump"
	_ "go.trai.ch/symup/internal/adapters/fs"
	_ "go.trai.ch/symup/internal/adapters/ingest"
	_ "go.trai.ch/symup/internal/adapters/logger"
	_ "go.trai.ch/symup/internal/adapters/plist"
	_ "go.trai.ch/symup/internal/adapters/shell"
	_ "go.trai.ch/symup/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/symup/internal/app"
	_ "go.trai.ch/symup/internal/engine/pipeline"
)
