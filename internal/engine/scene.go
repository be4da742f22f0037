package engine

import (
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

// Scene is one screen of the game. All hooks run on the engine loop, one
// at a time, so scenes never need locks. Embed Base for no-op defaults.
type Scene interface {
	Init() error
	Update(delta time.Duration) error
	Draw() error
	Key(data []byte) error
	// Fix is offered domain errors raised by the other hooks
	Fix(err *game.Error) error
}

// Base implements every hook as a no-op.
type Base struct{}

func (Base) Init() error                { return nil }
func (Base) Update(time.Duration) error { return nil }
func (Base) Draw() error                { return nil }
func (Base) Key([]byte) error           { return nil }
func (Base) Fix(*game.Error) error      { return nil }
