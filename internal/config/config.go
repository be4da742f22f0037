package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	Version = "0.3.0"

	PlayCommand    = "play"
	CompileCommand = "compile"

	RawInput      = "raw"
	KeyboardInput = "keyboard"
)

type Config struct {
	Command string

	Charts string
	Fps    int
	Input  string
	Sound  bool
	Log    string
	Keys   [game.NumChannels]rune
	Scene  string

	// compile
	Source string
	Output string
}

// Load reads .env from the working directory, then parses args with
// every flag falling back to its RHYTHM_* variable.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); nil != err && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}

	app := kingpin.New("rhythm", "A six lane rhythm game for the terminal.")
	app.Version(Version)

	play := app.Command(PlayCommand, "Play charts.").Default()
	charts := play.Flag("charts", "Chart directory or .db chart pack").Default("charts").Short('c').Envar("RHYTHM_CHARTS").String()
	fps := play.Flag("fps", "Initial frame rate").Default("10").Short('f').Envar("RHYTHM_FPS").Int()
	source := play.Flag("input", "Key source").Default(RawInput).Short('i').Envar("RHYTHM_INPUT").Enum(RawInput, KeyboardInput)
	sound := play.Flag("sound", "Play a tone on every hit").Short('s').Envar("RHYTHM_SOUND").Bool()
	logFile := play.Flag("log", "Log file").Short('l').Envar("RHYTHM_LOG").String()
	keys := play.Flag("keys", "Lane keys, left to right").Default("sdfjkl").Short('k').Envar("RHYTHM_KEYS").String()
	scene := play.Flag("scene", "First scene").Default("init").Envar("RHYTHM_SCENE").String()

	compile := app.Command(CompileCommand, "Compile chart notation.")
	src := compile.Arg("source", "Notation file").Required().ExistingFile()
	out := compile.Arg("output", "Output .json file or .db chart pack").Required().String()

	command, err := app.Parse(args)
	if nil != err {
		return nil, err
	}

	c := &Config{
		Command: command,
		Charts:  *charts,
		Fps:     *fps,
		Input:   *source,
		Sound:   *sound,
		Log:     *logFile,
		Scene:   *scene,
		Source:  *src,
		Output:  *out,
	}
	if command == PlayCommand {
		if c.Fps < engine.MinFps || c.Fps > engine.MaxFps {
			return nil, fmt.Errorf("fps must be between %d and %d, got %d", engine.MinFps, engine.MaxFps, c.Fps)
		}
		if c.Keys, err = laneKeys(*keys); nil != err {
			return nil, err
		}
	}
	return c, nil
}

func laneKeys(keys string) ([game.NumChannels]rune, error) {
	var lanes [game.NumChannels]rune
	runes := []rune(strings.ToLower(keys))
	if len(runes) != game.NumChannels {
		return lanes, fmt.Errorf("expected %d lane keys, got %q", game.NumChannels, keys)
	}
	seen := map[rune]bool{}
	for i, r := range runes {
		if seen[r] {
			return lanes, fmt.Errorf("lane key %q used twice", r)
		}
		seen[r] = true
		lanes[i] = r
	}
	return lanes, nil
}

// Lane returns the lane bound to r
func (c *Config) Lane(r rune) (game.Channel, bool) {
	for i, k := range c.Keys {
		if k == r {
			return game.Channel(i), true
		}
	}
	return 0, false
}
