package world

import (
	"time"

	"physics2d/internal/engine"
	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World pairs a scene of GameObjects with the physics world that simulates
// their bodies. It is not safe for concurrent use.
type World struct {
	Scene     *engine.Scene
	Physics   *physics.World
	DebugDraw bool
	ScenePath string

	// OnCollision fires once per physics event, after the step that
	// produced it and before component callbacks.
	OnCollision engine.EventWithArg[physics.CollisionEvent]

	objects      map[physics.Handle]*engine.GameObject
	texturePaths map[physics.Handle]string
	started      bool

	// Exits from objects destroyed while events are being delivered wait
	// until the batch is done.
	dispatching  bool
	pendingExits []detached

	watcher  *Watcher
	reloadAt time.Time
}

func New() *World {
	return &World{
		Scene:        engine.NewScene("Main"),
		Physics:      physics.NewWorld(),
		objects:      make(map[physics.Handle]*engine.GameObject),
		texturePaths: make(map[physics.Handle]string),
	}
}

// Start starts every object already in the scene. Objects spawned later
// start on spawn.
func (w *World) Start() {
	w.Scene.Start()
	w.started = true
}

// Spawn adds g to the scene and, when body is non-nil, registers the body
// with the physics world.
func (w *World) Spawn(g *engine.GameObject, body *physics.Body) {
	g.World = w
	if body != nil {
		h := w.Physics.AddObject(body)
		g.Body = h
		w.objects[h] = g
	}
	w.Scene.AddGameObject(g)
	if w.started {
		g.Start()
	}
}

// Destroy removes g and its body. Objects g was touching receive their exit
// callbacks; g itself does not. Safe to call from component callbacks.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil {
		return
	}
	var exits []physics.CollisionEvent
	if g.Body.Valid() {
		exits, _ = w.Physics.Detach(g.Body)
		delete(w.objects, g.Body)
		delete(w.texturePaths, g.Body)
		g.Body = 0
	}
	w.Scene.RemoveGameObject(g)
	g.World = nil

	if len(exits) == 0 {
		return
	}
	if w.dispatching {
		w.pendingExits = append(w.pendingExits, detached{gone: g, exits: exits})
		return
	}
	w.deliverExits(g, exits)
}

// detached holds the exit events of a destroyed object.
type detached struct {
	gone  *engine.GameObject
	exits []physics.CollisionEvent
}

func (w *World) deliverExits(gone *engine.GameObject, exits []physics.CollisionEvent) {
	for _, ev := range exits {
		w.OnCollision.Invoke(ev)
		if survivor := w.objects[ev.A]; survivor != nil {
			notify(survivor, gone, ev.Kind, ev.Contact)
		} else if survivor := w.objects[ev.B]; survivor != nil {
			notify(survivor, gone, ev.Kind, ev.Contact.Flipped())
		}
	}
}

func (w *World) BodyOf(g *engine.GameObject) (*physics.Body, bool) {
	if g == nil || !g.Body.Valid() {
		return nil, false
	}
	return w.Physics.Body(g.Body)
}

// ObjectOf maps a physics handle back to its GameObject.
func (w *World) ObjectOf(h physics.Handle) *engine.GameObject {
	return w.objects[h]
}

func (w *World) Raycast(origin, direction rl.Vector2, maxDistance float32) (engine.RaycastResult, bool) {
	hit, ok := w.Physics.Raycast(origin, direction, maxDistance)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: w.objects[hit.Handle],
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

// Clear destroys every object and body.
func (w *World) Clear() {
	for _, g := range w.Scene.GameObjects {
		g.World = nil
		g.Body = 0
	}
	w.Scene.Clear()
	w.Physics.Clear()
	w.pendingExits = nil
	clear(w.objects)
	clear(w.texturePaths)
}

// Update advances physics by deltaTime, delivers the resulting events and
// then updates components. Returns the number of physics steps run.
func (w *World) Update(deltaTime float32) int {
	steps := w.Physics.Advance(deltaTime)
	w.dispatch(w.Physics.Events())
	w.Scene.Update(deltaTime)
	return steps
}

// StepOnce runs a single fixed step regardless of elapsed time. Used while
// paused.
func (w *World) StepOnce() {
	dt := w.Physics.FixedTimeStep()
	w.Physics.Step(dt)
	w.dispatch(w.Physics.Events())
	w.Scene.Update(dt)
}

// dispatch delivers a step's events to both participants. Objects are
// resolved before any callback runs, so an object destroyed mid-batch still
// appears as the other side of its remaining events, and its partners get
// their exits after the batch.
func (w *World) dispatch(events []physics.CollisionEvent) {
	if len(events) == 0 {
		return
	}
	type participants struct{ a, b *engine.GameObject }
	resolved := make([]participants, len(events))
	for i, ev := range events {
		resolved[i] = participants{w.objects[ev.A], w.objects[ev.B]}
	}

	w.dispatching = true
	for i, ev := range events {
		w.OnCollision.Invoke(ev)

		a, b := resolved[i].a, resolved[i].b
		if a == nil || b == nil {
			continue
		}
		notify(a, b, ev.Kind, ev.Contact)
		notify(b, a, ev.Kind, ev.Contact.Flipped())
	}
	w.dispatching = false

	for len(w.pendingExits) > 0 {
		p := w.pendingExits[0]
		w.pendingExits = w.pendingExits[1:]
		w.deliverExits(p.gone, p.exits)
	}
}

// notify delivers one event to the components of self. Destroyed objects
// get nothing.
func notify(self, other *engine.GameObject, kind physics.EventKind, contact physics.Contact) {
	if self.World == nil {
		return
	}
	for _, c := range self.Components() {
		switch kind {
		case physics.CollisionEnter:
			if h, ok := c.(engine.CollisionHandler); ok {
				h.OnCollisionEnter(other, contact)
			}
		case physics.CollisionExit:
			if h, ok := c.(engine.CollisionHandler); ok {
				h.OnCollisionExit(other)
			}
		case physics.TriggerEnter:
			if h, ok := c.(engine.TriggerHandler); ok {
				h.OnTriggerEnter(other)
			}
		case physics.TriggerExit:
			if h, ok := c.(engine.TriggerHandler); ok {
				h.OnTriggerExit(other)
			}
		}
	}
}

// Unload releases the watcher, if any.
func (w *World) Unload() {
	if w.watcher != nil {
		_ = w.watcher.Close()
		w.watcher = nil
	}
}
