package engine

import (
	"github.com/frostpine/garland/engine/core"
)

// ApplicationConfig carries the frontend-facing settings of a display
// application.
type ApplicationConfig struct {
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name string
	// Path of the TOML tuning file; missing file falls back to defaults.
	TuningPath string
	// Seed for the layout random source; 0 means non-deterministic.
	Seed     uint64
	LogLevel core.LogLevel
}

// Game is the application half of the engine contract: the frontend
// supplies lifecycle hooks, the engine supplies choreography through its
// per-sample and per-tick entry points.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnShutdown        Shutdown
}

type Initialize func() error
type Shutdown func() error
