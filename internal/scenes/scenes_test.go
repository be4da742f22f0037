package scenes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/chart"
	"github.com/DmmDGM/apcsa-rhythm/internal/config"
	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/input"
	"github.com/DmmDGM/apcsa-rhythm/internal/parser"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
	"github.com/DmmDGM/apcsa-rhythm/internal/score"
	"github.com/DmmDGM/apcsa-rhythm/internal/testdata"
	"github.com/DmmDGM/apcsa-rhythm/internal/theme"
)

// screenBuffer keeps only the text written, cursor moves are dropped
type screenBuffer struct {
	strings.Builder
}

func (b *screenBuffer) MoveCursor(row, col int)  {}
func (b *screenBuffer) ClearRegion(render.Scope) {}
func (b *screenBuffer) WriteRaw(text string)     { b.WriteString(text) }
func (b *screenBuffer) Flush() error             { return nil }

type hits []game.JudgementKind

func (h *hits) Hit(kind game.JudgementKind) { *h = append(*h, kind) }
func (h *hits) Close() error                { return nil }

func newApp(t *testing.T, charts map[string]string) (*App, *screenBuffer, *hits) {
	t.Helper()
	return newAppIn(t, t.TempDir(), charts)
}

func newAppIn(t *testing.T, dir string, charts map[string]string) (*App, *screenBuffer, *hits) {
	t.Helper()
	for name, data := range charts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); nil != err {
			t.Fatal(err)
		}
	}
	store, err := chart.Open(dir)
	if nil != err {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	buf := &screenBuffer{}
	played := &hits{}
	reg := engine.NewRegistry()
	app := &App{
		Engine:  engine.New(engine.NewContext(reg), buf),
		Library: chart.NewLibrary(store, &parser.DefaultParser{}),
		Screen:  render.NewScreen(buf),
		Theme:   &theme.DefaultTheme{},
		Audio:   played,
		Config:  &config.Config{Keys: [game.NumChannels]rune{'s', 'd', 'f', 'j', 'k', 'l'}},
		Size:    func() (int, int, error) { return render.Width, render.Height, nil },
	}
	Register(reg, app)
	return app, buf, played
}

func emit(t *testing.T, app *App, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if err := app.Engine.EmitKey([]byte(k)); nil != err {
			t.Fatalf("key %q: %v", k, err)
		}
	}
}

func frame(t *testing.T, app *App) {
	t.Helper()
	if err := app.Engine.ElapseFrame(); nil != err {
		t.Fatal(err)
	}
}

func expectScene(t *testing.T, app *App, name string) {
	t.Helper()
	if got := app.Engine.Context().Name(); got != name {
		t.Fatalf("expected scene %q, got %q", name, got)
	}
}

func TestInitWaitsForSize(t *testing.T) {
	app, buf, _ := newApp(t, nil)
	width := 80
	app.Size = func() (int, int, error) { return width, 24, nil }

	if err := app.Engine.Start(Init); nil != err {
		t.Fatal(err)
	}
	frame(t, app)
	expectScene(t, app, Init)
	if !strings.Contains(buf.String(), "Current size: 80x24") {
		t.Error("expected the size warning")
	}
	if app.Engine.Fps() != 10 {
		t.Errorf("expected 10 fps, got %v", app.Engine.Fps())
	}

	width = 128
	frame(t, app)
	expectScene(t, app, Title)
}

func TestInitSizeFailure(t *testing.T) {
	app, _, _ := newApp(t, nil)
	app.Size = func() (int, int, error) { return 0, 0, errors.New("not a terminal") }

	if err := app.Engine.Start(Init); nil != err {
		t.Fatal(err)
	}
	frame(t, app)
	expectScene(t, app, Title)
}

func TestTitle(t *testing.T) {
	app, buf, _ := newApp(t, nil)
	if err := app.Engine.Start(Title); nil != err {
		t.Fatal(err)
	}
	frame(t, app)
	if !strings.Contains(buf.String(), "Press any key to start") {
		t.Error("expected the prompt on the first frame")
	}
	emit(t, app, "a")
	expectScene(t, app, Menu)
}

func TestMenu(t *testing.T) {
	app, buf, _ := newApp(t, map[string]string{
		"hard.json":     testdata.Hard,
		"tutorial.json": testdata.Tutorial,
		"easy.json":     testdata.Easy,
		"notes.txt":     "ignored",
	})
	if err := app.Engine.Start(Menu); nil != err {
		t.Fatal(err)
	}
	s, _ := app.Engine.Context().Scene()
	menu := s.(*menuScene)

	names := []string{}
	for _, c := range menu.charts {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "Easy,Tutorial,Hard" {
		t.Errorf("expected charts by difficulty, got %v", names)
	}

	frame(t, app)
	out := buf.String()
	for _, want := range []string{"Choose a Chart to Play!", "3 charts loaded!", "★★★★★", "<--"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q on the menu", want)
		}
	}

	emit(t, app, input.ShiftDown)
	if menu.index != 2 {
		t.Errorf("expected index clamped to 2, got %v", menu.index)
	}
	emit(t, app, input.ShiftUp, input.Up, input.Down)
	if menu.index != 1 {
		t.Errorf("expected index 1, got %v", menu.index)
	}

	emit(t, app, input.Enter)
	expectScene(t, app, Game)
	c, err := app.Library.Current()
	if nil != err || c.Name != "Tutorial" {
		t.Fatalf("expected Tutorial selected, got %v %v", c, err)
	}

	emit(t, app, "Q")
	expectScene(t, app, Menu)
	if menu.index != 1 {
		t.Errorf("expected the played chart to stay selected, got %v", menu.index)
	}
}

func TestMenuEmpty(t *testing.T) {
	app, buf, _ := newApp(t, nil)
	if err := app.Engine.Start(Menu); nil != err {
		t.Fatal(err)
	}
	emit(t, app, input.Down, input.Space)
	expectScene(t, app, Menu)
	frame(t, app)
	if !strings.Contains(buf.String(), "No charts found.") {
		t.Error("expected the empty notice")
	}
}

func startGame(t *testing.T) (*App, *gameScene, *screenBuffer, *hits) {
	t.Helper()
	app, buf, played := newApp(t, nil)
	app.Library.SetCurrent(testdata.Single())
	if err := app.Engine.Start(Game); nil != err {
		t.Fatal(err)
	}
	s, _ := app.Engine.Context().Scene()
	return app, s.(*gameScene), buf, played
}

func TestGamePress(t *testing.T) {
	app, g, buf, played := startGame(t)

	// one second into the chart, on the note
	if err := g.Update(4 * time.Second); nil != err {
		t.Fatal(err)
	}
	emit(t, app, "s")

	last := g.session.Last()
	if last.Kind != game.Perfect || last.Delta != 0 {
		t.Errorf("expected a perfect hit, got %+v", last)
	}
	if g.session.Score() != 1443 {
		t.Errorf("expected 1443, got %v", g.session.Score())
	}
	if len(*played) != 1 || (*played)[0] != game.Perfect {
		t.Errorf("expected one perfect tone, got %v", *played)
	}
	if !g.pressed[game.ChannelS] {
		t.Error("expected the S button lit")
	}

	if err := g.Draw(); nil != err {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Name: Single", "Score: 1443", "Perfect! (0 ms)", "Time: 0:01 / 0:06"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q on the board", want)
		}
	}
	if g.pressed[game.ChannelS] {
		t.Error("buttons should go dark after a frame")
	}
}

func TestGameIgnoresOtherKeys(t *testing.T) {
	app, g, _, played := startGame(t)
	if err := g.Update(4 * time.Second); nil != err {
		t.Fatal(err)
	}
	emit(t, app, "x", "S", input.Up)
	if len(g.session.Remaining(game.ChannelS)) != 1 || len(*played) != 0 {
		t.Error("only lane keys should press")
	}
}

func TestGameReset(t *testing.T) {
	app, g, _, _ := startGame(t)
	if err := g.Update(4 * time.Second); nil != err {
		t.Fatal(err)
	}
	emit(t, app, "s")
	id := g.session.ID

	emit(t, app, "R")
	expectScene(t, app, Game)
	if g.session.ID == id || g.session.Score() != 0 || g.session.Elapsed() != score.Countdown {
		t.Error("expected a fresh session")
	}
}

func TestGameEnd(t *testing.T) {
	app, g, _, _ := startGame(t)
	emit(t, app, input.Enter)
	expectScene(t, app, Game)

	if err := g.Update(10 * time.Second); nil != err {
		t.Fatal(err)
	}
	if g.session.Counts().Missed != 1 {
		t.Errorf("expected the note missed, got %+v", g.session.Counts())
	}
	emit(t, app, input.Enter)
	expectScene(t, app, Menu)
}

func TestGameWithoutChart(t *testing.T) {
	app, _, _ := newApp(t, nil)
	if err := app.Engine.Start(Game); nil != err {
		t.Fatal(err)
	}
	expectScene(t, app, Menu)
}

func TestGameBoard(t *testing.T) {
	_, g, _, _ := startGame(t)
	board := g.board()
	if len(board) != 19 {
		t.Fatalf("expected 19 board lines, got %v", len(board))
	}
	for i, line := range board {
		if w := render.StringWidth(line); w != boardWidth {
			t.Errorf("line %d: expected width %d, got %d", i, boardWidth, w)
		}
	}
}

func TestDebug(t *testing.T) {
	app, buf, _ := newApp(t, nil)
	ctx := app.Engine.Context()
	if err := app.Engine.Start(Title); nil != err {
		t.Fatal(err)
	}

	emit(t, app, input.Debug)
	expectScene(t, app, Debug)
	if !ctx.TestState(DebugState) {
		t.Error("expected the debug state")
	}
	frame(t, app)
	for _, want := range []string{"DEBUG MODE ENABLED", "Render size: 128x24", "Scenes: debug, game, init, menu, title", "--- BOTTOM OF RENDER ---"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q on the test card", want)
		}
	}

	emit(t, app, "a")
	expectScene(t, app, Init)
	if !ctx.TestState(DebugState) {
		t.Error("any key should keep the debug state")
	}

	emit(t, app, input.Debug, "x")
	expectScene(t, app, Init)
	if ctx.TestState(DebugState) {
		t.Error("x should clear the debug state")
	}
}

func TestMenuReloadKeepsSelection(t *testing.T) {
	dir := t.TempDir()
	app, _, _ := newAppIn(t, dir, map[string]string{
		"hard.json":     testdata.Hard,
		"tutorial.json": testdata.Tutorial,
		"easy.json":     testdata.Easy,
	})
	w, err := chart.Watch(dir)
	if nil != err {
		t.Skipf("unable to watch: %v", err)
	}
	defer w.Close()
	app.Watcher = w

	if err := app.Engine.Start(Menu); nil != err {
		t.Fatal(err)
	}
	s, _ := app.Engine.Context().Scene()
	menu := s.(*menuScene)

	// play Hard, come back and move the cursor to Tutorial
	emit(t, app, input.ShiftDown, input.Enter, "Q", input.Up)
	if menu.charts[menu.index].Name != "Tutorial" {
		t.Fatalf("expected Tutorial selected, got %q", menu.charts[menu.index].Name)
	}

	extra := `{"name": "Extra", "difficulty": 0, "length": 6000, "table": [[500]], "texts": []}`
	if err := os.WriteFile(filepath.Join(dir, "extra.json"), []byte(extra), 0o644); nil != err {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for len(menu.charts) != 4 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
		frame(t, app)
	}
	if len(menu.charts) != 4 {
		t.Fatalf("expected the new chart listed, got %d charts", len(menu.charts))
	}

	if got := menu.charts[menu.index].Name; got != "Tutorial" {
		t.Errorf("expected Tutorial still selected after reload, got %q", got)
	}
	current, err := app.Library.Current()
	if nil != err {
		t.Fatal(err)
	}
	if current.Name != "Hard" || current != menu.charts[3] {
		t.Errorf("expected current to be the reloaded Hard, got %q", current.Name)
	}
}
