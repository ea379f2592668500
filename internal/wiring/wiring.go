// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sema/internal/adapters/config"
	_ "go.trai.ch/sema/internal/adapters/logger"
	_ "go.trai.ch/sema/internal/adapters/snapshot"
	// Register app and session nodes.
	_ "go.trai.ch/sema/internal/app"
	_ "go.trai.ch/sema/internal/session"
)
