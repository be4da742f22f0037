package testdata

import (
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

// Tutorial is a small chart in the storage format, one note per lane
// plus a chord and two captions.
const Tutorial = `{
    "description": "Learn the six keys.",
    "difficulty": 1,
    "length": 9000,
    "name": "Tutorial",
    "table": [
        [1000, 4000],
        [1500],
        [2000],
        [2500],
        [3000],
        [4000, 3500]
    ],
    "texts": [
        [3000, "Both hands now"],
        [0, "Press S D F J K L"]
    ]
}`

// Hard and Easy exist to check difficulty ordering.
const Hard = `{"name": "Hard", "difficulty": 5, "length": 6000, "table": [[1000], [], [], [], [], []], "texts": []}`

const Easy = `{"name": "Easy", "difficulty": 0, "length": 6000, "table": [[], [], [], [], [], [2000]], "texts": []}`

// Sibling has the same difficulty as Tutorial.
const Sibling = `{"name": "Sibling", "difficulty": 1, "length": 6000, "table": [[], [1000]], "texts": []}`

// Notation is the tutorial written in the text notation.
const Notation = `# Notation | 2 | Compiled from text.
s | Hello
=
d f
=
---
j k l
l | Last one
`

// Single is a chart with one note at one second in lane S.
func Single() *game.Chart {
	var lanes [game.NumChannels]game.Lane
	lanes[game.ChannelS] = game.NewLane([]time.Duration{time.Second})
	return game.NewChart("Single", "One note.", 0, 6*time.Second, lanes, nil)
}

// Chart builds a chart from millisecond times per lane.
func Chart(length time.Duration, table map[game.Channel][]int) *game.Chart {
	var lanes [game.NumChannels]game.Lane
	for ch, times := range table {
		ds := make([]time.Duration, len(times))
		for i, t := range times {
			ds[i] = time.Duration(t) * time.Millisecond
		}
		lanes[ch] = game.NewLane(ds)
	}
	return game.NewChart("Generated", "", 0, length, lanes, nil)
}
