package engine

import (
	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

// Context owns the active scene, the cache of scenes built so far and
// the process wide state flags.
type Context struct {
	registry *Registry
	scenes   map[string]Scene
	scene    Scene
	name     string
	states   map[string]struct{}
}

func NewContext(r *Registry) *Context {
	return &Context{
		registry: r,
		scenes:   map[string]Scene{},
		states:   map[string]struct{}{},
	}
}

// Scene returns the active scene
func (c *Context) Scene() (Scene, error) {
	if nil == c.scene {
		return nil, game.ErrSceneNotInitialized
	}
	return c.scene, nil
}

// Name returns the name of the active scene, empty before the first switch
func (c *Context) Name() string {
	return c.name
}

func (c *Context) fetch(name string) (Scene, error) {
	if s, ok := c.scenes[name]; ok {
		return s, nil
	}
	s, err := c.registry.New(name)
	if nil != err {
		return nil, err
	}
	c.scenes[name] = s
	return s, nil
}

// SetScene activates the named scene and runs its Init hook. Init may
// itself switch scenes; the last switch wins.
func (c *Context) SetScene(name string) error {
	s, err := c.fetch(name)
	if nil != err {
		return err
	}
	c.scene = s
	c.name = name
	return s.Init()
}

// Scenes lists the registered scene names
func (c *Context) Scenes() []string {
	return c.registry.Names()
}

func (c *Context) TestState(state string) bool {
	_, ok := c.states[state]
	return ok
}

func (c *Context) AddState(state string) {
	c.states[state] = struct{}{}
}

func (c *Context) RemoveState(state string) {
	delete(c.states, state)
}
