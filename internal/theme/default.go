package theme

import (
	"fmt"
	"strings"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/score"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) Rail(ch game.Channel, strip score.Strip) string {
	var b strings.Builder
	for _, cell := range strip {
		switch cell {
		case score.Note:
			b.WriteString(paint(laneBackgrounds[ch], " "))
		case score.Line:
			b.WriteString(judgeSym)
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (t *DefaultTheme) Button(ch game.Channel, pressed bool) string {
	if pressed {
		return paint(laneBackgrounds[ch]+";30", ch.String())
	}
	return paint(laneForegrounds[ch], ch.String())
}

func (t *DefaultTheme) Judgement(kind game.JudgementKind, text string) string {
	code, ok := judgementColors[kind]
	if !ok {
		return text
	}
	return paint(code, text)
}

func (t *DefaultTheme) Accent(text string) string {
	return paint("96", text)
}

func (t *DefaultTheme) Highlight(text string) string {
	return paint("93", text)
}

func (t *DefaultTheme) Inverse(text string) string {
	return paint("47;30", text)
}

const (
	judgeSym = "┆"
)

var (
	// S D F J K L: red, yellow, green, cyan, blue, magenta
	laneBackgrounds = [game.NumChannels]string{"101", "103", "102", "106", "104", "105"}
	laneForegrounds = [game.NumChannels]string{"91", "93", "92", "96", "94", "95"}
	judgementColors = map[game.JudgementKind]string{
		game.Perfect: "1;96",
		game.Good:    "1;92",
		game.Ok:      "1;93",
		game.Miss:    "1;91",
	}
)

func paint(code, text string) string {
	if text == "" {
		return ""
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", code, text)
}
