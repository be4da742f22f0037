package parser

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/tidwall/gjson"
)

var ErrMalformed = errors.New("malformed chart")

// DefaultParser reads the JSON chart format. Missing fields fall back to
// defaults; present fields of the wrong shape are rejected.
type DefaultParser struct{}

func (p *DefaultParser) Parse(data []byte) (*game.Chart, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformed)
	}

	name, err := str(root, "name", "default")
	if nil != err {
		return nil, err
	}
	description, err := str(root, "description", "")
	if nil != err {
		return nil, err
	}
	difficulty, err := integer(root, "difficulty")
	if nil != err {
		return nil, err
	}
	length, err := integer(root, "length")
	if nil != err {
		return nil, err
	}

	lanes, err := p.parseTable(root.Get("table"))
	if nil != err {
		return nil, err
	}
	captions, err := p.parseTexts(root.Get("texts"))
	if nil != err {
		return nil, err
	}

	return game.NewChart(
		name,
		description,
		game.Difficulty(difficulty),
		time.Duration(length)*time.Millisecond,
		lanes,
		captions,
	), nil
}

func (p *DefaultParser) parseTable(table gjson.Result) ([game.NumChannels]game.Lane, error) {
	var lanes [game.NumChannels]game.Lane
	if !table.Exists() {
		return lanes, nil
	}
	if !table.IsArray() {
		return lanes, fmt.Errorf("%w: table is not an array", ErrMalformed)
	}
	rows := table.Array()
	if len(rows) > game.NumChannels {
		return lanes, fmt.Errorf("%w: table has %d lanes", ErrMalformed, len(rows))
	}
	for i, row := range rows {
		if !row.IsArray() {
			return lanes, fmt.Errorf("%w: lane %v is not an array", ErrMalformed, game.Channel(i))
		}
		times := []time.Duration{}
		for _, v := range row.Array() {
			ms, ok := millis(v)
			if !ok {
				return lanes, fmt.Errorf("%w: lane %v has an invalid note time %s", ErrMalformed, game.Channel(i), v.Raw)
			}
			times = append(times, time.Duration(ms)*time.Millisecond)
		}
		lanes[i] = game.NewLane(times)
	}
	return lanes, nil
}

func (p *DefaultParser) parseTexts(texts gjson.Result) ([]game.Caption, error) {
	if !texts.Exists() {
		return nil, nil
	}
	if !texts.IsArray() {
		return nil, fmt.Errorf("%w: texts is not an array", ErrMalformed)
	}
	captions := []game.Caption{}
	for _, entry := range texts.Array() {
		pair := entry.Array()
		if !entry.IsArray() || len(pair) != 2 || pair[1].Type != gjson.String {
			return nil, fmt.Errorf("%w: text entry %s", ErrMalformed, entry.Raw)
		}
		ms, ok := millis(pair[0])
		if !ok {
			return nil, fmt.Errorf("%w: text entry %s", ErrMalformed, entry.Raw)
		}
		captions = append(captions, game.Caption{
			Time: time.Duration(ms) * time.Millisecond,
			Text: pair[1].Str,
		})
	}
	return captions, nil
}

func str(root gjson.Result, key, def string) (string, error) {
	v := root.Get(key)
	if !v.Exists() {
		return def, nil
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformed, key)
	}
	return v.Str, nil
}

func integer(root gjson.Result, key string) (int64, error) {
	v := root.Get(key)
	if !v.Exists() {
		return 0, nil
	}
	ms, ok := millis(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a non-negative integer", ErrMalformed, key)
	}
	return ms, nil
}

// millis accepts whole, non-negative numbers only
func millis(v gjson.Result) (int64, bool) {
	if v.Type != gjson.Number || v.Num < 0 || v.Num != math.Trunc(v.Num) {
		return 0, false
	}
	return v.Int(), true
}
