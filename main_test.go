package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DmmDGM/apcsa-rhythm/internal/chart"
	"github.com/DmmDGM/apcsa-rhythm/internal/parser"
)

func TestCompileJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tutorial.json")
	if err := compile(filepath.Join("charts", "src", "tutorial.txt"), out); nil != err {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if nil != err {
		t.Fatal(err)
	}
	got, err := (&parser.DefaultParser{}).Parse(data)
	if nil != err {
		t.Fatal(err)
	}

	// the shipped chart is the compiled notation
	shipped, err := os.ReadFile(filepath.Join("charts", "tutorial.json"))
	if nil != err {
		t.Fatal(err)
	}
	want, err := (&parser.DefaultParser{}).Parse(shipped)
	if nil != err {
		t.Fatal(err)
	}

	if got.Name != want.Name || got.Length != want.Length || got.NoteCount() != want.NoteCount() || len(got.Captions) != len(want.Captions) {
		t.Fatalf("compiled chart differs from charts/tutorial.json: %+v", got)
	}
	for i := range got.Lanes {
		if got.Lanes[i].Len() != want.Lanes[i].Len() {
			t.Errorf("lane %d: expected %d notes, got %d", i, want.Lanes[i].Len(), got.Lanes[i].Len())
			continue
		}
		for j, n := range got.Lanes[i].Notes {
			if n != want.Lanes[i].Notes[j] {
				t.Errorf("lane %d note %d: expected %v, got %v", i, j, want.Lanes[i].Notes[j].Time, n.Time)
			}
		}
	}
}

func TestCompilePack(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pack.db")
	if err := compile(filepath.Join("charts", "src", "tutorial.txt"), out); nil != err {
		t.Skipf("sqlite unavailable: %v", err)
	}

	store, err := chart.Open(out)
	if nil != err {
		t.Fatal(err)
	}
	defer store.Close()

	c, err := chart.NewLibrary(store, &parser.DefaultParser{}).Load("tutorial.json")
	if nil != err {
		t.Fatal(err)
	}
	if c.Name != "Tutorial" {
		t.Errorf("expected Tutorial, got %q", c.Name)
	}
}

func TestCompileMissing(t *testing.T) {
	if err := compile("missing.txt", filepath.Join(t.TempDir(), "out.json")); nil == err {
		t.Error("expected an error for a missing source")
	}
}
