package game

import "time"

// Chart is the immutable definition of a song. Nothing in the program
// mutates a Chart after NewChart returns it; sessions copy what they consume.
type Chart struct {
	Name        string
	Description string
	Difficulty  Difficulty
	Length      time.Duration
	Lanes       [NumChannels]Lane
	Captions    []Caption

	// Every note of every lane, ascending
	Notes []Note
}

// NewChart sorts lanes and captions and builds the chart wide note sequence.
// The length is raised to the last note time when it falls short of it.
func NewChart(name, description string, difficulty Difficulty, length time.Duration, lanes [NumChannels]Lane, captions []Caption) *Chart {
	c := &Chart{
		Name:        name,
		Description: description,
		Difficulty:  difficulty,
		Length:      length,
		Captions:    append([]Caption(nil), captions...),
	}
	for i, lane := range lanes {
		notes := append([]Note(nil), lane.Notes...)
		sortNotes(notes)
		c.Lanes[i] = Lane{Notes: notes}
		c.Notes = append(c.Notes, notes...)
	}
	sortNotes(c.Notes)
	sortCaptions(c.Captions)

	if n := len(c.Notes); n > 0 && c.Notes[n-1].Time > c.Length {
		c.Length = c.Notes[n-1].Time
	}
	return c
}

// NoteCount returns the total number of notes across all lanes
func (c *Chart) NoteCount() int {
	return len(c.Notes)
}

// Lane returns the notes of a single channel
func (c *Chart) Lane(ch Channel) Lane {
	return c.Lanes[ch]
}
