package score

import (
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

const (
	StripWidth   = 92
	JudgeColumn  = 12
	ColumnLength = 25 * time.Millisecond

	LookBehind = game.MissThreshold
	LookAhead  = 2000 * time.Millisecond
)

// Cell is one column of a rendered lane.
type Cell uint8

const (
	Empty Cell = iota
	Line
	Note
)

type Strip [StripWidth]Cell

// Strip projects the unresolved notes of a lane onto columns, the
// judgement line at JudgeColumn. It never changes the session.
func (s *Session) Strip(ch game.Channel) Strip {
	var strip Strip
	strip[JudgeColumn] = Line

	now := s.elapsed
	if now < 0 {
		now = 0
	}
	for _, n := range s.remaining[ch] {
		d := n.Time - now
		if d >= LookAhead {
			break
		}
		if d < LookBehind {
			continue
		}
		strip[floorDiv(d, ColumnLength)+JudgeColumn] = Note
	}
	return strip
}

func floorDiv(d, unit time.Duration) int {
	q := d / unit
	if d%unit != 0 && d < 0 {
		q--
	}
	return int(q)
}
