package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/DmmDGM/apcsa-rhythm/internal/chart"
	"github.com/DmmDGM/apcsa-rhythm/internal/config"
	"github.com/DmmDGM/apcsa-rhythm/internal/parser"
)

func main() {
	if err := run(); nil != err {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if nil != err {
		return err
	}

	switch cfg.Command {
	case config.CompileCommand:
		return compile(cfg.Source, cfg.Output)
	}

	closeLog, err := setupLogging(cfg.Log)
	if nil != err {
		return err
	}
	defer closeLog()

	p, err := NewProgram(cfg)
	if nil != err {
		return err
	}
	defer p.Close()
	return p.Run()
}

// The terminal belongs to the game, so logs go to a file or nowhere
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}

// compile turns a notation file into a .json chart, or into an entry of
// a .db chart pack
func compile(source, output string) error {
	src, err := os.ReadFile(source)
	if nil != err {
		return fmt.Errorf("unable to read notation: %w", err)
	}
	c, err := parser.Compile(string(src))
	if nil != err {
		return fmt.Errorf("unable to compile %v: %w", source, err)
	}
	data, err := parser.Encode(c)
	if nil != err {
		return err
	}

	if filepath.Ext(output) != ".db" {
		if err := os.WriteFile(output, data, 0o644); nil != err {
			return fmt.Errorf("unable to write chart: %w", err)
		}
		log.Printf("wrote %q to %v", c.Name, output)
		return nil
	}

	store, err := chart.OpenSQLite(output)
	if nil != err {
		return err
	}
	defer store.Close()

	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ".json"
	if err := store.Write(name, data); nil != err {
		return err
	}
	log.Printf("added %q to %v as %v", c.Name, output, name)
	return nil
}
