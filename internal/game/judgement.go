package game

import (
	"math"
	"time"
)

// JudgementKind classifies a resolved note.
type JudgementKind uint8

const (
	None JudgementKind = iota
	Perfect
	Good
	Ok
	Miss
)

func (k JudgementKind) String() string {
	switch k {
	case Perfect:
		return "Perfect"
	case Good:
		return "Good"
	case Ok:
		return "Ok"
	case Miss:
		return "Miss"
	}
	return ""
}

// Judgement is the outcome of the most recent resolution, kept around
// so the feedback line can fade it out.
type Judgement struct {
	Kind  JudgementKind
	Delta time.Duration // note time minus elapsed, negative is late
	At    time.Duration // elapsed when it happened
}

// Missed is the delta recorded when notes scroll past without a press
const Missed = time.Duration(math.MinInt64)

// Window is the largest absolute delta that still earns a kind.
type Window struct {
	Kind JudgementKind
	Max  time.Duration
}

// Windows are ordered from tightest to widest. Anything beyond the last
// window but inside PressWindow is judged a Miss.
var Windows = []Window{
	{Kind: Perfect, Max: 50 * time.Millisecond},
	{Kind: Good, Max: 100 * time.Millisecond},
	{Kind: Ok, Max: 500 * time.Millisecond},
}

const (
	// Presses further ahead of the next note than this are strays
	PressWindow = 1000 * time.Millisecond
	// Notes later than this are swept as missed
	MissThreshold = -300 * time.Millisecond
)

// Classify returns the kind earned by a press at the given delta
func Classify(delta time.Duration) JudgementKind {
	if delta < 0 {
		delta = -delta
	}
	for _, w := range Windows {
		if delta <= w.Max {
			return w.Kind
		}
	}
	return Miss
}
