package scenes

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/input"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
	"github.com/mattn/go-runewidth"
)

const (
	MenuRows   = 15
	NameWidth  = 72
	BlinkCycle = 1000 * time.Millisecond
)

type menuScene struct {
	engine.Base
	app *App

	charts   []*game.Chart
	position int
	index    int
	elapsed  time.Duration
	delta    time.Duration
}

func (s *menuScene) Init() error {
	s.app.Engine.SetFps(30)
	s.app.Screen.ClearScreen()
	s.elapsed, s.delta = 0, 0
	s.position, s.index = 0, 0

	selected := ""
	if current, err := s.app.Library.Current(); nil == err {
		selected = s.app.Library.Key(current)
	}
	return s.load(selected)
}

// load fetches the chart list and selects the chart stored as selected
func (s *menuScene) load(selected string) error {
	charts, err := s.app.Library.LoadAll()
	if nil != err {
		s.charts = nil
		return err
	}
	s.charts = charts

	s.index = 0
	for i, c := range charts {
		if "" != selected && s.app.Library.Key(c) == selected {
			s.index = i
			break
		}
	}
	return nil
}

func (s *menuScene) Update(delta time.Duration) error {
	s.delta = delta
	s.elapsed += delta

	select {
	case <-s.app.Watcher.Changed():
		log.Println("charts changed, reloading")
		selected := ""
		if s.index < len(s.charts) {
			selected = s.app.Library.Key(s.charts[s.index])
		}
		s.app.Library.Refresh()
		if err := s.load(selected); nil != err {
			return err
		}
	default:
	}

	if s.index < s.position {
		s.position = s.index
	}
	if s.index >= s.position+MenuRows {
		s.position = s.index - MenuRows + 1
	}
	return nil
}

func (s *menuScene) Draw() error {
	scr := s.app.Screen
	th := s.app.Theme
	rule := th.Accent(strings.Repeat("-", render.Width))

	scr.WriteLeft(1, rule)
	scr.WriteCenter(2, th.Accent("Choose a Chart to Play!"))
	scr.WriteLeft(3, rule)
	scr.ClearLine(4)

	blink := s.elapsed%BlinkCycle < BlinkCycle/2
	for i := 0; i < MenuRows; i++ {
		n := s.position + i
		if n >= len(s.charts) {
			scr.ClearLine(5 + i)
			continue
		}
		c := s.charts[n]
		name := runewidth.FillRight(runewidth.Truncate(c.Name, NameWidth, "…"), NameWidth)
		line := fmt.Sprintf("%3d. %s %s", n+1, name, c.Difficulty.Stars())
		switch {
		case n != s.index:
		case blink:
			line = th.Accent(line + " <--")
		default:
			line = th.Highlight(line + " <--")
		}
		scr.WriteLeft(5+i, line)
	}
	scr.ClearLine(20)
	if 0 == len(s.charts) {
		scr.WriteCenter(12, "No charts found.")
	}

	description := ""
	if s.index < len(s.charts) {
		description = runewidth.Truncate(s.charts[s.index].Description, render.Width/2, "…")
	}
	scr.WriteLeft(22, rule)
	scr.WriteJustify(23, description, "", fmt.Sprintf("| %d charts loaded! (%.1f / %d fps)",
		len(s.charts), measuredFps(s.delta), s.app.Engine.Fps()))
	scr.WriteLeft(24, rule)
	return nil
}

func (s *menuScene) Key(data []byte) error {
	switch string(data) {
	case input.ShiftUp:
		s.move(-10)
	case input.Up:
		s.move(-1)
	case input.Down:
		s.move(1)
	case input.ShiftDown:
		s.move(10)
	case input.Enter, input.Space:
		if 0 == len(s.charts) {
			return nil
		}
		s.app.Library.SetCurrent(s.charts[s.index])
		return s.app.context().SetScene(Game)
	}
	return nil
}

func (s *menuScene) move(by int) {
	s.index += by
	if s.index > len(s.charts)-1 {
		s.index = len(s.charts) - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}
