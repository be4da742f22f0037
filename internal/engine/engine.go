package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/input"
)

const (
	MinFps     = 1
	MaxFps     = 120
	DefaultFps = 10

	DebugScene = "debug"
)

// ErrQuit is returned by EmitKey when the quit sequence arrives
var ErrQuit = errors.New("quit requested")

// Flusher receives one Flush after every frame and key event.
type Flusher interface {
	Flush() error
}

// Engine drives the active scene through update and draw cycles and
// routes key input to it. Frames and keys are handled on the goroutine
// that calls Run, one at a time.
type Engine struct {
	ctx    *Context
	out    Flusher
	fps    int
	tick   time.Time
	frames uint64
	now    func() time.Time
}

func New(ctx *Context, out Flusher) *Engine {
	return &Engine{
		ctx:  ctx,
		out:  out,
		fps:  DefaultFps,
		tick: time.Now(),
		now:  time.Now,
	}
}

func (e *Engine) Context() *Context {
	return e.ctx
}

func (e *Engine) Fps() int {
	return e.fps
}

// SetFps sets the target frame rate, clamped to [MinFps, MaxFps]
func (e *Engine) SetFps(rate int) {
	if rate < MinFps {
		rate = MinFps
	}
	if rate > MaxFps {
		rate = MaxFps
	}
	e.fps = rate
}

// Period is the wait between the end of one frame and the next
func (e *Engine) Period() time.Duration {
	return time.Second / time.Duration(e.fps)
}

// Tick returns the time the last frame started
func (e *Engine) Tick() time.Time {
	return e.tick
}

// Frames returns how many frames have run
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Start activates the first scene. Domain errors from its Init are
// offered to its Fix hook.
func (e *Engine) Start(name string) error {
	err := e.ctx.SetScene(name)
	if nil == err {
		return nil
	}
	scene, serr := e.ctx.Scene()
	if nil != serr {
		return err
	}
	return e.recover(scene, err)
}

// ElapseFrame runs one update and draw of the active scene
func (e *Engine) ElapseFrame() error {
	scene, err := e.ctx.Scene()
	if nil != err {
		return err
	}

	tock := e.now()
	delta := tock.Sub(e.tick)

	err = scene.Update(delta)
	if nil == err {
		err = scene.Draw()
	}
	if err := e.recover(scene, err); nil != err {
		return err
	}
	if err := e.flush(); nil != err {
		return err
	}

	e.frames++
	e.tick = tock
	return nil
}

// EmitKey handles one chunk of raw input. The debug and quit sequences
// are handled here, everything else goes to the active scene verbatim.
func (e *Engine) EmitKey(data []byte) error {
	switch string(data) {
	case input.Quit:
		return ErrQuit
	case input.Debug:
		prev, _ := e.ctx.Scene()
		if err := e.ctx.SetScene(DebugScene); nil != err {
			if nil == prev {
				return err
			}
			return e.recover(prev, err)
		}
	default:
		scene, err := e.ctx.Scene()
		if nil != err {
			return err
		}
		if err := e.recover(scene, scene.Key(data)); nil != err {
			return err
		}
	}
	return e.flush()
}

// recover offers domain errors to the scene's Fix hook. Other errors
// are returned as they are.
func (e *Engine) recover(scene Scene, err error) error {
	if nil == err {
		return nil
	}
	de, ok := game.AsError(err)
	if !ok {
		return err
	}
	log.Printf("scene %q recovering from %v", e.ctx.Name(), de)
	return scene.Fix(de)
}

func (e *Engine) flush() error {
	if nil == e.out {
		return nil
	}
	if err := e.out.Flush(); nil != err {
		return fmt.Errorf("unable to flush output: %w", err)
	}
	return nil
}

// Run ticks the active scene and feeds it keys until the quit sequence
// arrives, the key channel closes, ctx is done, or a non domain error
// escapes a scene. Quitting returns nil.
func (e *Engine) Run(ctx context.Context, keys <-chan []byte) error {
	e.tick = e.now()
	timer := time.NewTimer(e.Period())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case data, ok := <-keys:
			if !ok {
				log.Println("input closed")
				return nil
			}
			for _, key := range input.Split(data) {
				err := e.EmitKey(key)
				if errors.Is(err, ErrQuit) {
					return nil
				}
				if fatal(err) {
					return err
				}
			}

		case <-timer.C:
			if err := e.ElapseFrame(); fatal(err) {
				return err
			}
			// Armed only once the frame is done, so frames never overlap
			timer.Reset(e.Period())
		}
	}
}

func fatal(err error) bool {
	if nil == err {
		return false
	}
	if de, ok := game.AsError(err); ok {
		log.Println("ignoring", de)
		return false
	}
	return true
}
