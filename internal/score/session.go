package score

import (
	"log"
	"math"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/google/uuid"
)

const (
	// Elapsed time when a session starts, the Ready/Set/GO countdown
	Countdown = -3000 * time.Millisecond
	// Points taken per missed note
	MissPenalty = 100
)

// Counts tallies resolved notes by kind.
type Counts struct {
	Perfect, Good, Ok, Missed int
}

// Session is the state of one playthrough of a chart. It is owned by
// the scene that created it and is discarded on restart.
type Session struct {
	ID string

	chart     *game.Chart
	elapsed   time.Duration
	remaining [game.NumChannels][]game.Note
	score     int
	counts    Counts
	last      game.Judgement

	captions []game.Caption
	caption  string
}

func NewSession(c *game.Chart) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		chart:    c,
		elapsed:  Countdown,
		captions: c.Captions,
	}
	for i, lane := range c.Lanes {
		s.remaining[i] = append([]game.Note(nil), lane.Notes...)
	}
	log.Printf("session %s started on %q (%d notes)", s.ID, c.Name, c.NoteCount())
	return s
}

func (s *Session) Chart() *game.Chart {
	return s.chart
}

func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Counts() Counts {
	return s.counts
}

// Last returns the most recent judgement, the zero value before any
func (s *Session) Last() game.Judgement {
	return s.last
}

// Remaining returns a copy of the unresolved notes of a lane
func (s *Session) Remaining(ch game.Channel) []game.Note {
	return append([]game.Note(nil), s.remaining[ch]...)
}

// Advance moves the clock forward. Notes are resolved separately by
// SweepMissed and Press.
func (s *Session) Advance(delta time.Duration) {
	if delta > 0 {
		s.elapsed += delta
	}
}

// SweepMissed drops every note that is further than the miss threshold
// behind the clock, and returns how many were dropped.
func (s *Session) SweepMissed() int {
	if s.elapsed < 0 {
		return 0
	}

	missed := 0
	for i, lane := range s.remaining {
		for len(lane) > 0 && lane[0].Time-s.elapsed < game.MissThreshold {
			lane = lane[1:]
			missed++
		}
		s.remaining[i] = lane
	}

	if missed > 0 {
		s.counts.Missed += missed
		s.penalize(missed)
		s.last = game.Judgement{Kind: game.Miss, Delta: game.Missed, At: s.elapsed}
	}
	return missed
}

// Press judges the front note of a lane. Presses during the countdown,
// on an empty lane, or further than the press window ahead of the next
// note consume nothing and report false.
func (s *Session) Press(ch game.Channel) (game.Judgement, bool) {
	if s.elapsed < 0 {
		return game.Judgement{}, false
	}
	lane := s.remaining[ch]
	if len(lane) == 0 {
		return game.Judgement{}, false
	}
	delta := lane[0].Time - s.elapsed
	if delta > game.PressWindow {
		return game.Judgement{}, false
	}
	s.remaining[ch] = lane[1:]

	kind := game.Classify(delta)
	switch kind {
	case game.Perfect:
		s.counts.Perfect++
	case game.Good:
		s.counts.Good++
	case game.Ok:
		s.counts.Ok++
	case game.Miss:
		s.counts.Missed++
		s.penalize(1)
	}
	if kind != game.Miss {
		s.score += Reward(delta)
	}

	s.last = game.Judgement{Kind: kind, Delta: delta, At: s.elapsed}
	return s.last, true
}

func (s *Session) penalize(missed int) {
	s.score -= MissPenalty * missed
	if s.score < 0 {
		s.score = 0
	}
}

// HasEnded reports whether the clock is past the chart length
func (s *Session) HasEnded() bool {
	return s.elapsed > s.chart.Length
}

// Reward is round(1000 / ln(|delta| + 1)) with |delta| in milliseconds.
// Deltas under a millisecond count as one so a dead-on hit is finite.
func Reward(delta time.Duration) int {
	if delta < 0 {
		delta = -delta
	}
	ms := float64(delta) / float64(time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return int(math.Round(1000 / math.Log(ms+1)))
}
