package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCollisionLayersDefault(t *testing.T) {
	a := NewCollisionLayers()
	b := NewCollisionLayers()
	b.SetLayer(31)

	if a.Layer() != 0 {
		t.Errorf("Expected layer 0, got %d", a.Layer())
	}
	if !a.CanCollideWith(b) {
		t.Error("Default mask should accept every layer")
	}
}

func TestCollisionLayersEnableDisable(t *testing.T) {
	a := NewCollisionLayers()
	b := NewCollisionLayers()
	b.SetLayer(5)

	a.DisableLayer(5)
	if a.CanCollideWith(b) {
		t.Error("Disabled layer should be rejected")
	}
	if a.Mask() != AllLayers&^(1<<5) {
		t.Errorf("Unexpected mask %x", a.Mask())
	}

	a.EnableLayer(5)
	if !a.CanCollideWith(b) {
		t.Error("Re-enabled layer should be accepted")
	}

	a.SetMask(0)
	if a.CanCollideWith(b) {
		t.Error("Empty mask should reject everything")
	}
}

func TestCollisionLayersDirectional(t *testing.T) {
	a := NewCollisionLayers()
	a.SetLayer(1)
	a.SetMask(1 << 2)
	b := NewCollisionLayers()
	b.SetLayer(2)
	b.SetMask(0)

	if !a.CanCollideWith(b) {
		t.Error("a's mask includes b's layer")
	}
	if b.CanCollideWith(a) {
		t.Error("b's mask excludes a's layer")
	}
}

func TestCollisionLayersOutOfRange(t *testing.T) {
	a := NewCollisionLayers()
	b := NewCollisionLayers()
	for _, layer := range []int{-1, MaxLayers, 100} {
		b.SetLayer(layer)
		if a.CanCollideWith(b) {
			t.Errorf("Layer %d should never match", layer)
		}
	}

	a.EnableLayer(40)
	a.DisableLayer(-3)
	if a.Mask() != AllLayers {
		t.Errorf("Out of range layers should not change the mask, got %x", a.Mask())
	}
}

func TestLayerGatingBlocksOverlap(t *testing.T) {
	a := NewBody()
	b := NewBody()
	b.Transform.Position = rl.Vector2{X: 10}
	b.Layers.SetLayer(5)
	a.Layers.DisableLayer(5)

	if a.IsCollidingWith(b) {
		t.Error("IsCollidingWith should honour the layer mask")
	}

	w := NewWorld()
	w.SetGravity(rl.Vector2{})
	w.AddObject(a)
	w.AddObject(b)
	w.Step(1.0 / 60)

	if len(w.Events()) != 0 {
		t.Errorf("Expected no events for a filtered pair, got %d", len(w.Events()))
	}
	if a.Transform.Position != (rl.Vector2{}) || b.Transform.Position != (rl.Vector2{X: 10}) {
		t.Errorf("Filtered bodies should not be pushed apart, got %v and %v", a.Transform.Position, b.Transform.Position)
	}
}
