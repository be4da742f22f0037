package scenes

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/input"
	"github.com/DmmDGM/apcsa-rhythm/internal/score"
)

const (
	boardWidth = score.StripWidth + 8

	horizontal = "═"
	vertical   = "║"

	boardRow    = 4
	feedbackRow = 23
	debugRow    = 24
)

type gameScene struct {
	engine.Base
	app *App

	session  *score.Session
	pressed  [game.NumChannels]bool
	delta    time.Duration
	finished bool
}

func (s *gameScene) Init() error {
	s.app.Engine.SetFps(30)
	s.app.Screen.ClearScreen()
	s.session = nil

	c, err := s.app.Library.Current()
	if nil != err {
		return err
	}
	s.start(c)
	return nil
}

func (s *gameScene) start(c *game.Chart) {
	s.session = score.NewSession(c)
	s.pressed = [game.NumChannels]bool{}
	s.delta = 0
	s.finished = false
}

func (s *gameScene) Update(delta time.Duration) error {
	if nil == s.session {
		return game.ErrChartNotInitialized
	}
	s.delta = delta
	s.session.Advance(delta)
	s.session.SweepMissed()

	if s.session.HasEnded() && !s.finished {
		s.finished = true
		log.Printf("session %s finished: %s", s.session.ID, s.session.Summary())
	}
	return nil
}

func (s *gameScene) Draw() error {
	if nil == s.session {
		return game.ErrChartNotInitialized
	}
	scr := s.app.Screen
	th := s.app.Theme
	ses := s.session

	scr.WriteJustify(1, "Name: "+ses.Chart().Name, "", "Time: "+ses.Clock())
	scr.WriteJustify(2, fmt.Sprintf("Score: %d", ses.Score()), "", "Shift + [R]eset [Q]uit")
	scr.WriteCenter(3, th.Highlight(ses.Status()))

	for i, line := range s.board() {
		scr.WriteCenter(boardRow+i, line)
	}

	scr.WriteCenter(feedbackRow, th.Judgement(ses.Last().Kind, ses.Feedback()))
	if s.app.context().TestState(DebugState) {
		scr.WriteLeft(debugRow, fmt.Sprintf("FPS: %.1f / %d", measuredFps(s.delta), s.app.Engine.Fps()))
	} else {
		scr.ClearLine(debugRow)
	}

	// buttons stay lit for one frame
	s.pressed = [game.NumChannels]bool{}
	return nil
}

// board renders the lanes between horizontal rules. Upper lanes carry
// their button on the first row, lower lanes on the second.
func (s *gameScene) board() []string {
	th := s.app.Theme
	rule := strings.Repeat(horizontal, boardWidth)

	lines := []string{rule}
	for _, ch := range game.Channels {
		rail := th.Rail(ch, s.session.Strip(ch))
		labeled := vertical + "  " + th.Button(ch, s.pressed[ch]) + "  " + vertical + rail + vertical
		unlabeled := vertical + "     " + vertical + rail + vertical
		if ch < game.ChannelJ {
			lines = append(lines, labeled, unlabeled)
		} else {
			lines = append(lines, unlabeled, labeled)
		}
		lines = append(lines, rule)
	}
	return lines
}

func (s *gameScene) Key(data []byte) error {
	if nil == s.session {
		return game.ErrChartNotInitialized
	}

	switch string(data) {
	case "R":
		s.start(s.session.Chart())
		s.app.Screen.ClearScreen()
		return nil
	case "Q":
		return s.app.context().SetScene(Menu)
	case input.Enter:
		if s.session.HasEnded() {
			return s.app.context().SetScene(Menu)
		}
		return nil
	}
	if strings.HasPrefix(string(data), input.Escape) {
		return nil
	}

	// fast typing can deliver several keys in one read
	for _, r := range string(data) {
		ch, ok := s.app.Config.Lane(r)
		if !ok {
			continue
		}
		s.pressed[ch] = true
		s.session.SweepMissed()
		if j, ok := s.session.Press(ch); ok {
			s.app.Audio.Hit(j.Kind)
		}
	}
	return nil
}

// Fix sends the player back to the menu when no chart was chosen
func (s *gameScene) Fix(err *game.Error) error {
	if errors.Is(err, game.ErrChartNotInitialized) {
		return s.app.context().SetScene(Menu)
	}
	return nil
}
