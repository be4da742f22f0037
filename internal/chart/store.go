package chart

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store enumerates and reads stored charts by name.
type Store interface {
	List() ([]string, error)
	Read(name string) ([]byte, error)
	Close() error
}

// Open picks a store for path: a .db file is a SQLite chart pack,
// anything else a directory of .json files.
func Open(path string) (Store, error) {
	if strings.EqualFold(filepath.Ext(path), ".db") {
		return OpenSQLite(path)
	}
	info, err := os.Stat(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open chart directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}
	return &DirStore{Dir: path}, nil
}

// DirStore reads charts from .json files in a single directory.
type DirStore struct {
	Dir string
}

func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if nil != err {
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (s *DirStore) Read(name string) ([]byte, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("chart %q: %w", name, fs.ErrNotExist)
	}
	return os.ReadFile(filepath.Join(s.Dir, name))
}

func (s *DirStore) Close() error {
	return nil
}
