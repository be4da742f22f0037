package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

var headerPattern = regexp.MustCompile(`^# (.*?) \| (\d+) \| (.*?)$`)

// Compile converts the text notation into a chart.
//
// The first line is a header of the form "# name | difficulty | description".
// Every following line is one eighth of a measure: space separated lane
// letters, or "=" / nothing for a rest, optionally followed by "| caption".
// A line of "---" jumps to the start of the next measure.
func Compile(src string) (*game.Chart, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no header", ErrMalformed)
	}

	header := headerPattern.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if nil == header {
		return nil, fmt.Errorf("%w: invalid header %q", ErrMalformed, lines[0])
	}
	difficulty, err := strconv.Atoi(header[2])
	if nil != err {
		return nil, fmt.Errorf("%w: difficulty: %v", ErrMalformed, err)
	}

	var (
		measures int
		offset   time.Duration
		times    [game.NumChannels][]time.Duration
		captions []game.Caption
	)
	now := func() time.Duration {
		return time.Duration(measures)*game.MeasureLength + offset
	}

	for i, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "---" {
			measures++
			offset = 0
			continue
		}

		values, text, hasText := strings.Cut(line, "|")
		if hasText {
			captions = append(captions, game.Caption{Time: now(), Text: strings.TrimSpace(text)})
		}

		notes := strings.Fields(values)
		if !isRest(notes) {
			for _, note := range notes {
				ch, ok := game.ChannelFromLabel(rune(note[0]))
				if len(note) != 1 || !ok {
					return nil, fmt.Errorf("%w: line %d: unknown lane %q", ErrMalformed, i+2, note)
				}
				times[ch] = append(times[ch], now())
			}
		}

		offset += game.LineLength
		if offset == game.MeasureLength {
			measures++
			offset = 0
		}
	}

	var lanes [game.NumChannels]game.Lane
	for i, ts := range times {
		lanes[i] = game.NewLane(ts)
	}
	length := time.Duration(measures+game.TrailingMeasures) * game.MeasureLength
	return game.NewChart(header[1], header[3], game.Difficulty(difficulty), length, lanes, captions), nil
}

func isRest(notes []string) bool {
	if len(notes) == 0 {
		return true
	}
	for _, n := range notes {
		if n == "=" {
			return true
		}
	}
	return false
}
