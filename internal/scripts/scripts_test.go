package scripts

import (
	"testing"

	"physics2d/internal/engine"
	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type stubWorld struct {
	bodies    map[uint64]*physics.Body
	destroyed []*engine.GameObject
}

func newStubWorld() *stubWorld {
	return &stubWorld{bodies: map[uint64]*physics.Body{}}
}

func (s *stubWorld) BodyOf(g *engine.GameObject) (*physics.Body, bool) {
	b, ok := s.bodies[g.UID]
	return b, ok
}

func (s *stubWorld) Spawn(g *engine.GameObject, body *physics.Body) {
	s.bodies[g.UID] = body
	g.World = s
}

func (s *stubWorld) Destroy(g *engine.GameObject) {
	delete(s.bodies, g.UID)
	s.destroyed = append(s.destroyed, g)
}

func (s *stubWorld) Raycast(origin, direction rl.Vector2, maxDistance float32) (engine.RaycastResult, bool) {
	return engine.RaycastResult{}, false
}

func spawned(w *stubWorld, c engine.Component) (*engine.GameObject, *physics.Body) {
	g := engine.NewGameObject("obj")
	body := physics.NewBody()
	w.Spawn(g, body)
	g.AddComponent(c)
	return g, body
}

func TestScriptsRegistered(t *testing.T) {
	for _, name := range []string{"Rotator", "ContactTint", "Lifetime"} {
		if engine.CreateScript(name, nil) == nil {
			t.Errorf("Expected %s to be registered", name)
		}
	}
}

func TestRotatorSpinsBody(t *testing.T) {
	w := newStubWorld()
	r := engine.CreateScript("Rotator", map[string]any{"speed": 180}).(*Rotator)
	_, body := spawned(w, r)

	r.Update(0.5)
	if body.Transform.Rotation != 90 {
		t.Errorf("Expected rotation 90, got %f", body.Transform.Rotation)
	}
	r.Update(2)
	if body.Transform.Rotation != 90 {
		t.Errorf("Expected rotation to wrap to 90, got %f", body.Transform.Rotation)
	}
}

func TestRotatorWithoutWorld(t *testing.T) {
	r := &Rotator{Speed: 10}
	g := engine.NewGameObject("loose")
	g.AddComponent(r)
	r.Update(1)
}

func TestContactTintCountsContacts(t *testing.T) {
	w := newStubWorld()
	ct := engine.CreateScript("ContactTint", map[string]any{"color": "Gold"}).(*ContactTint)
	_, body := spawned(w, ct)
	body.Color = rl.Blue

	ct.OnCollisionEnter(nil, physics.Contact{})
	if body.Color != rl.Gold {
		t.Errorf("Expected Gold while touching, got %v", body.Color)
	}
	ct.OnTriggerEnter(nil)
	ct.OnCollisionExit(nil)
	if body.Color != rl.Gold || ct.Touching() != 1 {
		t.Errorf("Still touching one object, got color %v count %d", body.Color, ct.Touching())
	}
	ct.OnTriggerExit(nil)
	if body.Color != rl.Blue {
		t.Errorf("Expected original color back, got %v", body.Color)
	}
	ct.OnTriggerExit(nil)
	if ct.Touching() != 0 {
		t.Errorf("Count should not go negative, got %d", ct.Touching())
	}
}

func TestContactTintSerializer(t *testing.T) {
	ct := engine.CreateScript("ContactTint", map[string]any{"color": "#10203040"})
	name, props, ok := engine.SerializeScript(ct)
	if !ok || name != "ContactTint" {
		t.Fatalf("Expected ContactTint, got %q (%v)", name, ok)
	}
	if props["color"] != "#10203040" {
		t.Errorf("Expected #10203040, got %v", props["color"])
	}

	bad := engine.CreateScript("ContactTint", map[string]any{"color": "nope"}).(*ContactTint)
	if bad.Tint != rl.Red {
		t.Errorf("Unknown colors should fall back to Red, got %v", bad.Tint)
	}
}

func TestLifetimeDestroys(t *testing.T) {
	w := newStubWorld()
	l := engine.CreateScript("Lifetime", map[string]any{"seconds": 1.5}).(*Lifetime)
	g, _ := spawned(w, l)

	l.Update(1)
	if len(w.destroyed) != 0 {
		t.Fatal("Object destroyed too early")
	}
	if l.Remaining() != 0.5 {
		t.Errorf("Expected 0.5s remaining, got %f", l.Remaining())
	}
	l.Update(0.5)
	if len(w.destroyed) != 1 || w.destroyed[0] != g {
		t.Errorf("Expected the object to be destroyed, got %v", w.destroyed)
	}
}
