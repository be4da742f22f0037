package parser

import (
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Encode writes a chart in the storage format read by DefaultParser
func Encode(c *game.Chart) ([]byte, error) {
	table := make([][]int64, game.NumChannels)
	for i, lane := range c.Lanes {
		table[i] = make([]int64, len(lane.Notes))
		for j, n := range lane.Notes {
			table[i][j] = n.Time.Milliseconds()
		}
	}
	texts := make([][]interface{}, len(c.Captions))
	for i, caption := range c.Captions {
		texts[i] = []interface{}{caption.Time.Milliseconds(), caption.Text}
	}

	fields := []struct {
		path  string
		value interface{}
	}{
		{"description", c.Description},
		{"difficulty", int(c.Difficulty)},
		{"length", c.Length.Milliseconds()},
		{"name", c.Name},
		{"table", table},
		{"texts", texts},
	}

	data := []byte(`{}`)
	var err error
	for _, f := range fields {
		data, err = sjson.SetBytes(data, f.path, f.value)
		if nil != err {
			return nil, err
		}
	}
	return pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "    "}), nil
}
