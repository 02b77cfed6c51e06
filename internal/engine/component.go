package engine

import "physics2d/internal/physics"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// CollisionHandler is implemented by components that want collision
// callbacks. Callbacks run after the physics step, never during resolution.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject, contact physics.Contact)
	OnCollisionExit(other *GameObject)
}

// TriggerHandler receives overlap callbacks for pairs involving a trigger.
type TriggerHandler interface {
	OnTriggerEnter(other *GameObject)
	OnTriggerExit(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
