package scenes

import (
	"errors"
	"fmt"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
)

// initScene holds the game back until the terminal fits the canvas.
type initScene struct {
	engine.Base
	app *App

	width, height int
	pass          bool
}

func (s *initScene) Init() error {
	s.app.Engine.SetFps(10)
	s.width, s.height, s.pass = 0, 0, false
	s.app.Screen.ClearScreen()
	return nil
}

func (s *initScene) Update(time.Duration) error {
	w, h, err := s.app.Size()
	if nil != err {
		return game.Wrap(err)
	}
	s.width, s.height = w, h
	s.pass = w >= render.Width && h >= render.Height
	if s.pass {
		return s.app.context().SetScene(Title)
	}
	return nil
}

func (s *initScene) Draw() error {
	if s.pass {
		return nil
	}
	scr := s.app.Screen
	scr.WriteCenter(1, s.app.Theme.Highlight("--- WARNING! ---"))
	scr.ClearLine(2)
	scr.WriteCenter(3, "Your current terminal is too small to display this game!")
	scr.WriteCenter(4, fmt.Sprintf("Minimum size: %dx%d", render.Width, render.Height))
	scr.WriteCenter(5, fmt.Sprintf("Current size: %dx%d", s.width, s.height))
	scr.ClearLine(6)
	scr.WriteCenter(7, "Resizing during gameplay may result in corrupt rendering.")
	scr.WriteCenter(8, "The game will proceed once the minimum terminal size is met.")
	scr.WriteCenter(9, "Quit with alt + shift + q and restart if the size does not update.")
	scr.ClearHere()
	return nil
}

// Fix lets the game start when the size cannot be read at all
func (s *initScene) Fix(err *game.Error) error {
	if errors.Is(err, game.ErrUnknownException) {
		return s.app.context().SetScene(Title)
	}
	return nil
}
