package world

import (
	"testing"

	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector2) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy < 1e-4
}

func TestViewBoundsIdentity(t *testing.T) {
	view := ViewBounds(rl.Camera2D{Zoom: 1}, 800, 600)
	if !near(view.Min, rl.Vector2{}) || !near(view.Max, rl.Vector2{X: 800, Y: 600}) {
		t.Errorf("Expected (0,0)-(800,600), got %v-%v", view.Min, view.Max)
	}
}

func TestViewBoundsZoomAndOffset(t *testing.T) {
	cam := rl.Camera2D{
		Offset: rl.Vector2{X: 400, Y: 300},
		Target: rl.Vector2{X: 100, Y: 100},
		Zoom:   2,
	}
	view := ViewBounds(cam, 800, 600)
	if !near(view.Min, rl.Vector2{X: -100, Y: -50}) || !near(view.Max, rl.Vector2{X: 300, Y: 250}) {
		t.Errorf("Expected (-100,-50)-(300,250), got %v-%v", view.Min, view.Max)
	}
}

func TestViewBoundsRotated(t *testing.T) {
	cam := rl.Camera2D{Offset: rl.Vector2{X: 50, Y: 50}, Rotation: 90, Zoom: 1}
	view := ViewBounds(cam, 100, 100)
	if !near(view.Min, rl.Vector2{X: -50, Y: -50}) || !near(view.Max, rl.Vector2{X: 50, Y: 50}) {
		t.Errorf("A square view rotated 90 degrees keeps its bounds, got %v-%v", view.Min, view.Max)
	}
}

func TestInView(t *testing.T) {
	view := physics.AABB{Max: rl.Vector2{X: 100, Y: 100}}
	b := physics.NewBody()
	b.SetCircle(10)

	b.Transform.Position = rl.Vector2{X: 50, Y: 50}
	if !InView(b, view) {
		t.Error("Body inside the view should be visible")
	}
	b.Transform.Position = rl.Vector2{X: 105, Y: 50}
	if !InView(b, view) {
		t.Error("Body straddling the edge should be visible")
	}
	b.Transform.Position = rl.Vector2{X: 200, Y: 50}
	if InView(b, view) {
		t.Error("Body outside the view should be culled")
	}
}

func TestScreenCCW(t *testing.T) {
	cw := []rl.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	got := screenCCW(cw)
	if got[0] != cw[2] || got[2] != cw[0] {
		t.Errorf("Expected reversed winding, got %v", got)
	}
	ccw := []rl.Vector2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}
	if got := screenCCW(ccw); &got[0] != &ccw[0] {
		t.Error("Already counter-clockwise input should be returned as is")
	}
}
