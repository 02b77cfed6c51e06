package engine

import (
	"sync/atomic"

	"physics2d/internal/physics"
)

var lastUID atomic.Uint64

// GameObject is the gameplay-side identity of a simulated body. The body
// itself lives in the physics world and is reached through Body.
type GameObject struct {
	UID    uint64
	Name   string
	Tags   []string
	Active bool
	Scene  *Scene
	World  WorldAccess    // set when spawned into a world
	Body   physics.Handle // zero when the object has no body

	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        lastUID.Add(1),
		Name:       name,
		Active:     true,
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) HasBody() bool {
	return g.Body.Valid()
}

// PhysicsBody resolves the object's body through its world.
func (g *GameObject) PhysicsBody() (*physics.Body, bool) {
	if g.World == nil || !g.Body.Valid() {
		return nil, false
	}
	return g.World.BodyOf(g)
}
