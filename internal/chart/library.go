package chart

import (
	"log"
	"sort"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/DmmDGM/apcsa-rhythm/internal/parser"
)

// Library loads charts from a store once and keeps them for the life of
// the process. It also holds the chart currently selected for play.
type Library struct {
	store   Store
	parser  parser.Parser
	cache   map[string]*game.Chart
	keys    map[*game.Chart]string
	current *game.Chart
}

func NewLibrary(store Store, p parser.Parser) *Library {
	return &Library{
		store:  store,
		parser: p,
		cache:  map[string]*game.Chart{},
		keys:   map[*game.Chart]string{},
	}
}

// Load returns the named chart, parsing it on first request
func (l *Library) Load(name string) (*game.Chart, error) {
	if c, ok := l.cache[name]; ok {
		return c, nil
	}

	data, err := l.store.Read(name)
	if nil != err {
		return nil, game.ErrUnknownChart.With(err)
	}
	c, err := l.parser.Parse(data)
	if nil != err {
		return nil, game.ErrUnknownChart.With(err)
	}

	l.cache[name] = c
	l.keys[c] = name
	return c, nil
}

// LoadAll loads every stored chart, easiest first. Charts of equal
// difficulty keep the order the store listed them in. Charts that fail
// to load are logged and left out.
func (l *Library) LoadAll() ([]*game.Chart, error) {
	names, err := l.store.List()
	if nil != err {
		return nil, game.Wrap(err)
	}

	charts := make([]*game.Chart, 0, len(names))
	for _, name := range names {
		c, err := l.Load(name)
		if nil != err {
			log.Printf("skipping chart %s: %v", name, err)
			continue
		}
		charts = append(charts, c)
	}

	sort.SliceStable(charts, func(i, j int) bool {
		return charts[i].Difficulty < charts[j].Difficulty
	})
	return charts, nil
}

// Current returns the selected chart
func (l *Library) Current() (*game.Chart, error) {
	if nil == l.current {
		return nil, game.ErrChartNotInitialized
	}
	return l.current, nil
}

func (l *Library) SetCurrent(c *game.Chart) {
	l.current = c
}

// Key returns the store name a chart was loaded from, empty for charts
// the library did not load.
func (l *Library) Key(c *game.Chart) string {
	return l.keys[c]
}

// Refresh drops every cached chart so the next load reads the store
// again. The current chart is reloaded under the same name, or cleared
// if it can no longer be loaded.
func (l *Library) Refresh() {
	name, stored := l.keys[l.current]
	l.cache = map[string]*game.Chart{}
	l.keys = map[*game.Chart]string{}
	if nil == l.current || !stored {
		return
	}

	c, err := l.Load(name)
	if nil != err {
		log.Printf("dropping current chart %s: %v", name, err)
		c = nil
	}
	l.current = c
}
