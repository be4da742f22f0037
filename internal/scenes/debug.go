package scenes

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
)

// debugScene is a test card for alignment and frame timing.
type debugScene struct {
	engine.Base
	app *App

	delta         time.Duration
	width, height int
}

func (s *debugScene) Init() error {
	s.app.context().AddState(DebugState)
	s.delta, s.width, s.height = 0, 0, 0
	s.app.Screen.ClearScreen()
	return nil
}

func (s *debugScene) Update(delta time.Duration) error {
	s.delta = delta
	w, h, err := s.app.Size()
	if nil != err {
		log.Println(err, "unable to read terminal size")
		w, h = 0, 0
	}
	s.width, s.height = w, h
	return nil
}

func (s *debugScene) Draw() error {
	scr := s.app.Screen

	scr.WriteCenter(1, "DEBUG MODE ENABLED")
	scr.ClearLine(2)

	scr.WriteLeft(3, s.app.Theme.Inverse(strings.Repeat("/", render.Width)))
	scr.ClearLine(4)

	scr.WriteLeft(5, "--- LEFT TEXT ---")
	scr.WriteCenter(6, "--- CENTER TEXT ---")
	scr.WriteRight(7, "--- RIGHT TEXT ---")
	scr.WriteJustify(8, "--- LEFT JUSTIFY ---", "--- CENTER JUSTIFY ---", "--- RIGHT JUSTIFY ---")
	scr.ClearLine(9)

	scr.WriteJustify(10,
		fmt.Sprintf("FPS: %.1f / %d", measuredFps(s.delta), s.app.Engine.Fps()),
		"",
		fmt.Sprintf("Delta: %d ms", s.delta.Milliseconds()))
	scr.WriteJustify(11,
		fmt.Sprintf("Render size: %dx%d", render.Width, render.Height),
		"",
		fmt.Sprintf("Terminal size: %dx%d", s.width, s.height))
	scr.WriteJustify(12, "Press x to leave debug mode", "", "Any other key returns")

	scr.WriteLeft(13, "Scenes: "+strings.Join(s.app.context().Scenes(), ", "))

	for row := 14; row < render.Height; row++ {
		scr.ClearLine(row)
	}
	scr.WriteCenter(render.Height, "--- BOTTOM OF RENDER ---")
	return nil
}

func (s *debugScene) Key(data []byte) error {
	ctx := s.app.context()
	if "x" == string(data) {
		ctx.RemoveState(DebugState)
	}
	return ctx.SetScene(Init)
}
