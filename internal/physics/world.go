package physics

import (
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Resolver constants.
const (
	correctionPercent = 0.4  // share of penetration removed per pass
	correctionSlop    = 0.01 // penetration allowed before correcting
)

// stepTolerance absorbs float rounding so that one Advance of n steps and n
// Advance calls of one step each run the same number of steps.
const stepTolerance = 1e-6

// World advances registered bodies with a fixed timestep and resolves their
// contacts. It is not safe for concurrent use; add and remove bodies between
// Advance calls.
type World struct {
	gravity       rl.Vector2
	fixedTimeStep float32
	iterations    int
	maxSubSteps   int

	accumulator float64
	bodies      arena

	// Collision tracking for events
	pairs  pairTracker
	events []CollisionEvent

	lastDropLog time.Time // rate-limits the dropped-time log
}

// NewWorld returns an empty world configured with DefaultSettings.
func NewWorld() *World {
	w := &World{
		bodies: newArena(),
		pairs:  newPairTracker(),
	}
	w.ApplySettings(DefaultSettings())
	return w
}

// ===== Settings =====

func (w *World) ApplySettings(s Settings) {
	w.gravity = s.Gravity
	w.SetStepRate(s.StepRate)
	w.iterations = s.Iterations
	w.maxSubSteps = s.MaxSubSteps
}

func (w *World) Settings() Settings {
	return Settings{
		Gravity:     w.gravity,
		StepRate:    w.StepRate(),
		Iterations:  w.iterations,
		MaxSubSteps: w.maxSubSteps,
	}
}

func (w *World) SetGravity(g rl.Vector2) { w.gravity = g }
func (w *World) Gravity() rl.Vector2     { return w.gravity }

// SetStepRate sets the number of fixed steps per second.
func (w *World) SetStepRate(stepsPerSecond float32) {
	w.fixedTimeStep = 1 / stepsPerSecond
}

func (w *World) StepRate() float32      { return 1 / w.fixedTimeStep }
func (w *World) FixedTimeStep() float32 { return w.fixedTimeStep }

func (w *World) SetIterations(n int) { w.iterations = n }
func (w *World) Iterations() int     { return w.iterations }

func (w *World) SetMaxSubSteps(n int) { w.maxSubSteps = n }
func (w *World) MaxSubSteps() int     { return w.maxSubSteps }

// Accumulator is the simulated time not yet consumed by a step.
func (w *World) Accumulator() float32 { return float32(w.accumulator) }

// ===== Bodies =====

// AddObject registers b and returns its handle. Registering a body twice
// returns the existing handle. The world never allocates or frees bodies.
func (w *World) AddObject(b *Body) Handle {
	if b == nil {
		return 0
	}
	return w.bodies.add(b)
}

// RemoveObject unregisters the body behind h. Pairs involving it are dropped
// without exit events.
func (w *World) RemoveObject(h Handle) bool {
	_, ok := w.Detach(h)
	return ok
}

// Detach unregisters the body behind h like RemoveObject and returns the
// exit events for the pairs it was touching as of the last step. The events
// are not added to Events; delivering them is up to the caller.
func (w *World) Detach(h Handle) ([]CollisionEvent, bool) {
	if !w.bodies.remove(h) {
		return nil, false
	}
	return w.pairs.forget(h, nil), true
}

// RemoveBody unregisters b if it is registered.
func (w *World) RemoveBody(b *Body) bool {
	h, ok := w.bodies.index[b]
	if !ok {
		return false
	}
	return w.RemoveObject(h)
}

// Clear unregisters every body. Outstanding handles become invalid.
func (w *World) Clear() {
	w.bodies.clear()
	w.pairs.reset()
	w.events = w.events[:0]
}

func (w *World) Body(h Handle) (*Body, bool) {
	return w.bodies.get(h)
}

func (w *World) HandleOf(b *Body) (Handle, bool) {
	h, ok := w.bodies.index[b]
	return h, ok
}

func (w *World) Len() int { return len(w.bodies.order) }

// Objects returns the registered bodies in registration order. The slice is
// a copy; the bodies are shared.
func (w *World) Objects() []*Body {
	out := make([]*Body, 0, len(w.bodies.order))
	for _, h := range w.bodies.order {
		out = append(out, w.bodies.slots[h.index()].body)
	}
	return out
}

// Handles returns the live handles in registration order.
func (w *World) Handles() []Handle {
	out := make([]Handle, len(w.bodies.order))
	copy(out, w.bodies.order)
	return out
}

// Touching returns how many bodies h was in contact with during the last
// step.
func (w *World) Touching(h Handle) int {
	return w.pairs.touching(h)
}

// Events returns the collision events produced by the most recent Advance or
// Step call. The slice is reused by the next call.
func (w *World) Events() []CollisionEvent {
	return w.events
}

// ===== Simulation =====

// Advance adds dt of wall-clock time and runs as many fixed steps as the
// accumulated time allows. Leftover time carries over to the next call.
// Returns the number of steps run.
func (w *World) Advance(dt float32) int {
	w.events = w.events[:0]
	w.accumulator += float64(dt)

	step := float64(w.fixedTimeStep)
	if step <= 0 {
		return 0
	}

	steps := 0
	for w.accumulator >= step-stepTolerance {
		if w.maxSubSteps > 0 && steps >= w.maxSubSteps {
			w.dropTime()
			break
		}
		w.step(w.fixedTimeStep)
		w.accumulator = max(w.accumulator-step, 0)
		steps++
	}
	return steps
}

// dropTime discards the backlog once the sub-step cap is reached.
func (w *World) dropTime() {
	if time.Since(w.lastDropLog) >= time.Second {
		w.lastDropLog = time.Now()
		log.Printf("Physics: sub-step cap %d reached, dropping %.1fms of simulation", w.maxSubSteps, w.accumulator*1000)
	}
	w.accumulator = 0
}

// Step runs exactly one simulation step of dt, bypassing the accumulator.
func (w *World) Step(dt float32) {
	w.events = w.events[:0]
	w.step(dt)
}

func (w *World) step(dt float32) {
	// 1. Gravity
	for _, h := range w.bodies.order {
		b := w.bodies.slots[h.index()].body
		if b.BodyType == Dynamic {
			b.ApplyForce(rl.Vector2Scale(w.gravity, b.Mass()*b.GravityScale))
		}
	}

	// 2. Integrate
	for _, h := range w.bodies.order {
		w.bodies.slots[h.index()].body.Integrate(dt)
	}

	// 3. Detect and resolve, from scratch each pass
	for i := 0; i < w.iterations; i++ {
		w.resolveCollisions()
	}

	// 4. Enter/exit events
	w.events = w.pairs.flush(w.events)
}

func (w *World) resolveCollisions() {
	order := w.bodies.order
	for i := 0; i < len(order); i++ {
		a := w.bodies.slots[order[i].index()].body
		if !a.Collidable {
			continue
		}
		for j := i + 1; j < len(order); j++ {
			b := w.bodies.slots[order[j].index()].body
			if !b.Collidable {
				continue
			}
			if !a.CanCollideWith(b) {
				continue
			}
			if a.BodyType == Static && b.BodyType == Static {
				continue
			}
			if !a.AABB().Intersects(b.AABB()) {
				continue
			}

			contact := CheckCollision(a, b)
			if !contact.HasCollision {
				continue
			}

			trigger := a.Trigger || b.Trigger
			w.pairs.record(order[i], order[j], trigger, contact)
			if trigger {
				continue
			}
			resolveContact(a, b, contact)
		}
	}
}

// resolveContact applies a single sequential impulse along the contact
// normal, a positional correction and a tangential friction impulse.
func resolveContact(a, b *Body, c Contact) {
	relVel := rl.Vector2Subtract(b.Velocity, a.Velocity)
	velAlongNormal := rl.Vector2DotProduct(relVel, c.Normal)

	// Separating already
	if velAlongNormal > 0 {
		return
	}

	restitution := min(a.Restitution, b.Restitution)
	invMassA, invMassB := a.InverseMass(), b.InverseMass()
	invMassSum := invMassA + invMassB
	if invMassSum <= epsilon {
		return
	}

	j := -(1 + restitution) * velAlongNormal / invMassSum
	impulse := rl.Vector2Scale(c.Normal, j)
	a.ApplyImpulse(rl.Vector2Negate(impulse))
	b.ApplyImpulse(impulse)

	amount := max(c.Penetration-correctionSlop, 0) / invMassSum * correctionPercent
	correction := rl.Vector2Scale(c.Normal, amount)
	if a.BodyType != Static {
		a.Transform.Position = rl.Vector2Subtract(a.Transform.Position, rl.Vector2Scale(correction, invMassA))
	}
	if b.BodyType != Static {
		b.Transform.Position = rl.Vector2Add(b.Transform.Position, rl.Vector2Scale(correction, invMassB))
	}

	// Friction works on the pre-impulse relative velocity and is not clamped
	// against the normal impulse.
	tangent := rl.Vector2Subtract(relVel, rl.Vector2Scale(c.Normal, velAlongNormal))
	tangentLen := rl.Vector2Length(tangent)
	if tangentLen <= epsilon {
		return
	}
	tangent = rl.Vector2Scale(tangent, 1/tangentLen)

	mu := sqrtf(a.Friction * b.Friction)
	jt := -rl.Vector2DotProduct(relVel, tangent) / invMassSum * mu
	friction := rl.Vector2Scale(tangent, jt)
	a.ApplyImpulse(rl.Vector2Negate(friction))
	b.ApplyImpulse(friction)
}
