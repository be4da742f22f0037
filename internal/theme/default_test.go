package theme

import (
	"strings"
	"testing"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
	"github.com/DmmDGM/apcsa-rhythm/internal/score"
)

func TestRailKeepsStripWidth(t *testing.T) {
	th := &DefaultTheme{}
	var strip score.Strip
	strip[score.JudgeColumn] = score.Line
	strip[0] = score.Note
	strip[score.StripWidth-1] = score.Note

	rail := th.Rail(game.ChannelK, strip)
	if w := render.StringWidth(rail); w != score.StripWidth {
		t.Errorf("expected width %d, got %d", score.StripWidth, w)
	}
	if !strings.Contains(rail, judgeSym) {
		t.Error("rail is missing the judgement line")
	}
	if !strings.HasPrefix(rail, "\033[104m") {
		t.Errorf("lane K notes should be blue, got %q", rail[:8])
	}
}

func TestButtonWidth(t *testing.T) {
	th := &DefaultTheme{}
	for _, ch := range game.Channels {
		for _, pressed := range []bool{false, true} {
			if w := render.StringWidth(th.Button(ch, pressed)); w != 1 {
				t.Errorf("%v pressed=%v: expected width 1, got %d", ch, pressed, w)
			}
		}
	}
}

func TestJudgementPlainForNone(t *testing.T) {
	th := &DefaultTheme{}
	if got := th.Judgement(game.None, "x"); got != "x" {
		t.Errorf("expected unstyled text, got %q", got)
	}
	if th.Accent("") != "" {
		t.Error("painting nothing should produce nothing")
	}
}
