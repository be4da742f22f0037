package game

import (
	"sort"
	"time"
)

// Note is a single timed press, measured from the start of the chart.
type Note struct {
	Time time.Duration
}

// Lane holds the notes of one channel in ascending time order.
// Simultaneous notes are legal and kept side by side.
type Lane struct {
	Notes []Note
}

func NewLane(times []time.Duration) Lane {
	notes := make([]Note, len(times))
	for i, t := range times {
		notes[i] = Note{Time: t}
	}
	sortNotes(notes)
	return Lane{Notes: notes}
}

// Len returns the number of notes in the lane
func (l Lane) Len() int {
	return len(l.Notes)
}

// Caption is a timed on-screen message, independent of the lanes.
type Caption struct {
	Time time.Duration
	Text string
}

func sortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
}

func sortCaptions(captions []Caption) {
	sort.SliceStable(captions, func(i, j int) bool {
		return captions[i].Time < captions[j].Time
	})
}
