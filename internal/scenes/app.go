package scenes

import (
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/audio"
	"github.com/DmmDGM/apcsa-rhythm/internal/chart"
	"github.com/DmmDGM/apcsa-rhythm/internal/config"
	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
	"github.com/DmmDGM/apcsa-rhythm/internal/theme"
)

// Scene names
const (
	Init  = "init"
	Title = "title"
	Menu  = "menu"
	Game  = "game"
	Debug = engine.DebugScene

	// Set while the debug scene has been visited, until cleared there
	DebugState = "debug"
)

// App is everything the scenes share. Scenes reach the engine, the
// chart library and the screen only through it.
type App struct {
	Engine  *engine.Engine
	Library *chart.Library
	Screen  *render.Screen
	Theme   theme.Theme
	Audio   audio.Player
	Config  *config.Config
	// Size reports the terminal size in columns and rows
	Size    func() (int, int, error)
	Watcher *chart.Watcher
}

func (a *App) context() *engine.Context {
	return a.Engine.Context()
}

// Register adds every scene to the registry
func Register(reg *engine.Registry, app *App) {
	reg.Register(Init, func() (engine.Scene, error) { return &initScene{app: app}, nil })
	reg.Register(Title, func() (engine.Scene, error) { return &titleScene{app: app}, nil })
	reg.Register(Menu, func() (engine.Scene, error) { return &menuScene{app: app}, nil })
	reg.Register(Game, func() (engine.Scene, error) { return &gameScene{app: app}, nil })
	reg.Register(Debug, func() (engine.Scene, error) { return &debugScene{app: app}, nil })
}

func measuredFps(delta time.Duration) float64 {
	if delta <= 0 {
		return 0
	}
	return float64(time.Second) / float64(delta)
}
