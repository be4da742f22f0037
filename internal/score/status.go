package score

import (
	"fmt"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

const (
	// How long the congratulation shows before the tallies
	Grace = 3000 * time.Millisecond
	// How long a judgement stays on the feedback line
	FeedbackLength = 2000 * time.Millisecond
)

// Status is the text of the status line: the countdown, the latest
// caption, and after the end a congratulation followed by the tallies.
func (s *Session) Status() string {
	switch {
	case s.elapsed < -2000*time.Millisecond:
		return "Ready?"
	case s.elapsed < -1000*time.Millisecond:
		return "Set!"
	case s.elapsed < 0:
		return "GO!"
	case s.HasEnded():
		if s.elapsed <= s.chart.Length+Grace {
			return "Well played!"
		}
		return s.Summary()
	}

	for len(s.captions) > 0 && s.captions[0].Time <= s.elapsed {
		s.caption = s.captions[0].Text
		s.captions = s.captions[1:]
	}
	return s.caption
}

// Summary lists the final tallies
func (s *Session) Summary() string {
	return fmt.Sprintf("Perfect: %d | Good: %d | Ok: %d | Missed: %d | Score: %d",
		s.counts.Perfect, s.counts.Good, s.counts.Ok, s.counts.Missed, s.score)
}

// Feedback describes the last judgement until it fades
func (s *Session) Feedback() string {
	j := s.last
	if j.Kind == game.None || s.elapsed-j.At > FeedbackLength {
		return ""
	}
	if j.Delta == game.Missed {
		return "Miss!"
	}

	ms := j.Delta.Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	early := j.Delta > 0
	switch j.Kind {
	case game.Perfect:
		return fmt.Sprintf("Perfect! (%d ms)", ms)
	case game.Good:
		return fmt.Sprintf("Good (%d ms)", ms)
	case game.Ok:
		if early {
			return fmt.Sprintf("Ok, a bit early (%d ms)", ms)
		}
		return fmt.Sprintf("Ok, a bit late (%d ms)", ms)
	}
	if early {
		return "Too early!"
	}
	return "Late!"
}

// Clock renders the elapsed time over the chart length as M:SS / M:SS
func (s *Session) Clock() string {
	e := s.elapsed
	if e < 0 {
		e = 0
	}
	if e > s.chart.Length {
		e = s.chart.Length
	}
	return clock(e) + " / " + clock(s.chart.Length)
}

func clock(d time.Duration) string {
	seconds := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
