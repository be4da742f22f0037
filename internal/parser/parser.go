package parser

import "github.com/DmmDGM/apcsa-rhythm/internal/game"

// Parser decodes the stored chart format.
type Parser interface {
	Parse(data []byte) (*game.Chart, error)
}
