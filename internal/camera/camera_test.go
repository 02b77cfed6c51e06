package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector2) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy < 1e-4
}

func TestNewIsIdentity(t *testing.T) {
	c := New(800, 600)
	for _, p := range []rl.Vector2{{}, {X: 800, Y: 600}, {X: 123, Y: 45}} {
		if got := c.ScreenToWorld(p); !near(got, p) {
			t.Errorf("Expected %v, got %v", p, got)
		}
	}
}

func TestPan(t *testing.T) {
	c := New(800, 600)
	c.Zoom = 2
	c.Pan(rl.Vector2{X: 100, Y: -50})
	if !near(c.Target, rl.Vector2{X: 350, Y: 325}) {
		t.Errorf("Expected target (350,325), got %v", c.Target)
	}
}

func TestZoomKeepsPointUnderMouse(t *testing.T) {
	c := New(800, 600)
	mouse := rl.Vector2{X: 100, Y: 500}
	before := c.ScreenToWorld(mouse)

	c.ZoomAt(mouse, 3)
	if c.Zoom <= 1 {
		t.Errorf("Positive wheel should zoom in, got %f", c.Zoom)
	}
	if after := c.ScreenToWorld(mouse); !near(after, before) {
		t.Errorf("Point under mouse moved from %v to %v", before, after)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(800, 600)
	for i := 0; i < 100; i++ {
		c.ZoomAt(rl.Vector2{}, 5)
	}
	if c.Zoom != MaxZoom {
		t.Errorf("Expected zoom clamped to %f, got %f", float32(MaxZoom), c.Zoom)
	}
	for i := 0; i < 100; i++ {
		c.ZoomAt(rl.Vector2{}, -5)
	}
	if c.Zoom != MinZoom {
		t.Errorf("Expected zoom clamped to %f, got %f", float32(MinZoom), c.Zoom)
	}
}

func TestResizeKeepsTargetCentred(t *testing.T) {
	c := New(800, 600)
	c.Resize(1000, 1000)
	if got := c.ScreenToWorld(rl.Vector2{X: 500, Y: 500}); !near(got, c.Target) {
		t.Errorf("Window centre should show the target, got %v", got)
	}
}

func TestScreenToWorldRotated(t *testing.T) {
	cam := rl.Camera2D{Offset: rl.Vector2{X: 50, Y: 50}, Rotation: 90, Zoom: 1}
	got := ScreenToWorld(rl.Vector2{X: 60, Y: 50}, cam)
	if !near(got, rl.Vector2{X: 0, Y: -10}) {
		t.Errorf("Expected (0,-10), got %v", got)
	}
}
