package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/DmmDGM/apcsa-rhythm/internal/audio"
	"github.com/DmmDGM/apcsa-rhythm/internal/chart"
	"github.com/DmmDGM/apcsa-rhythm/internal/config"
	"github.com/DmmDGM/apcsa-rhythm/internal/engine"
	"github.com/DmmDGM/apcsa-rhythm/internal/input"
	"github.com/DmmDGM/apcsa-rhythm/internal/parser"
	"github.com/DmmDGM/apcsa-rhythm/internal/render"
	"github.com/DmmDGM/apcsa-rhythm/internal/scenes"
	"github.com/DmmDGM/apcsa-rhythm/internal/theme"
	"golang.org/x/term"
)

// Program owns every resource the game holds open.
type Program struct {
	cfg *config.Config

	Parser   parser.Parser
	Theme    theme.Theme
	Terminal *render.ANSITerminal
	Store    chart.Store
	Watcher  *chart.Watcher
	Input    input.Source
	Audio    audio.Player
	Engine   *engine.Engine

	closers []func() error
}

func NewProgram(cfg *config.Config) (*Program, error) {
	// Ensure our Default implementations are used as interfaces
	p := &Program{
		cfg:    cfg,
		Parser: &parser.DefaultParser{},
		Theme:  &theme.DefaultTheme{},
	}

	if err := p.setup(); nil != err {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Program) setup() error {
	store, err := chart.Open(p.cfg.Charts)
	if nil != err {
		return fmt.Errorf("unable to open charts: %w", err)
	}
	p.Store = store
	p.closers = append(p.closers, store.Close)

	if info, err := os.Stat(p.cfg.Charts); nil == err && info.IsDir() {
		if p.Watcher, err = chart.Watch(p.cfg.Charts); nil != err {
			log.Println(err, "unable to watch", p.cfg.Charts)
			p.Watcher = nil
		} else {
			p.closers = append(p.closers, p.Watcher.Close)
		}
	}

	p.Audio = audio.Silent{}
	if p.cfg.Sound {
		player, err := audio.NewBeepPlayer()
		if nil != err {
			log.Println(err, "playing without sound")
		} else {
			p.Audio = player
			p.closers = append(p.closers, player.Close)
		}
	}

	switch p.cfg.Input {
	case config.KeyboardInput:
		p.Input, err = input.NewKeyboardSource()
	default:
		p.Input, err = input.NewRawSource(os.Stdin)
	}
	if nil != err {
		return err
	}
	p.closers = append(p.closers, p.Input.Close)

	p.Terminal = render.NewANSITerminal(os.Stdout)
	if err := p.Terminal.Init(); nil != err {
		return fmt.Errorf("unable to prepare terminal: %w", err)
	}
	p.closers = append(p.closers, p.Terminal.Deinit)

	reg := engine.NewRegistry()
	p.Engine = engine.New(engine.NewContext(reg), p.Terminal)
	p.Engine.SetFps(p.cfg.Fps)

	scenes.Register(reg, &scenes.App{
		Engine:  p.Engine,
		Library: chart.NewLibrary(p.Store, p.Parser),
		Screen:  render.NewScreen(p.Terminal),
		Theme:   p.Theme,
		Audio:   p.Audio,
		Config:  p.cfg,
		Size:    terminalSize,
		Watcher: p.Watcher,
	})
	return nil
}

func terminalSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Run plays until the quit sequence or a termination signal
func (p *Program) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("starting at scene %q with charts from %v", p.cfg.Scene, filepath.Clean(p.cfg.Charts))
	if err := p.Engine.Start(p.cfg.Scene); nil != err {
		return err
	}
	err := p.Engine.Run(ctx, p.Input.Keys())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases resources in reverse order of acquisition
func (p *Program) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); nil != err {
			log.Println(err, "unable to release resource")
		}
	}
	p.closers = nil
}
