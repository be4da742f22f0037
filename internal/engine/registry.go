package engine

import (
	"sort"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

// Factory builds a scene the first time it is requested.
type Factory func() (Scene, error)

// Registry maps scene names to their factories. It is filled once at
// startup.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// New builds the named scene
func (r *Registry) New(name string) (Scene, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, game.ErrUnknownScene
	}
	s, err := f()
	if nil != err {
		return nil, game.ErrUnknownScene.With(err)
	}
	return s, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
