package audio

import "github.com/DmmDGM/apcsa-rhythm/internal/game"

// Player gives audible feedback for judgements.
type Player interface {
	Hit(kind game.JudgementKind)
	Close() error
}

// Silent plays nothing
type Silent struct{}

func (Silent) Hit(game.JudgementKind) {}
func (Silent) Close() error           { return nil }
