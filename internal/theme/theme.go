package theme

import (
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/score"
)

type Theme interface {
	// Rail renders a projected lane, one column per cell
	Rail(ch game.Channel, strip score.Strip) string
	Button(ch game.Channel, pressed bool) string
	Judgement(kind game.JudgementKind, text string) string
	Accent(text string) string
	Highlight(text string) string
	Inverse(text string) string
}
