package scenes

import (
	"strings"

	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
)

var banner = []string{
	` ____  _   _ __   __ _____  _   _  __  __ `,
	`|  _ \| | | |\ \ / /|_   _|| | | ||  \/  |`,
	`| |_) | |_| | \ V /   | |  | |_| || |\/| |`,
	`|  _ <|  _  |  | |    | |  |  _  || |  | |`,
	`|_| \_\_| |_|  |_|    |_|  |_| |_||_|  |_|`,
}

type titleScene struct {
	engine.Base
	app *App
}

func (s *titleScene) Init() error {
	s.app.Engine.SetFps(10)
	s.app.Screen.ClearScreen()
	return nil
}

func (s *titleScene) Draw() error {
	scr := s.app.Screen
	th := s.app.Theme

	col := (render.Width-render.StringWidth(banner[0]))/2 + 1
	for i, line := range banner {
		scr.WriteLine(6+i, col, th.Accent(line))
	}
	scr.ClearLine(11)

	buttons := make([]string, 0, game.NumChannels)
	for _, ch := range game.Channels {
		buttons = append(buttons, th.Button(ch, true))
	}
	scr.WriteCenter(12, strings.Join(buttons, " "))
	scr.ClearDown(13)

	// Blinks off for a third of every 15 frames
	if s.app.Engine.Frames()%15 < 10 {
		scr.WriteCenter(16, th.Highlight("Press any key to start"))
	}
	scr.WriteCenter(render.Height, "alt + shift + q to quit")
	return nil
}

func (s *titleScene) Key([]byte) error {
	return s.app.context().SetScene(Menu)
}
