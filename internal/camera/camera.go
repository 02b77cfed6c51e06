package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	MinZoom = 0.2
	MaxZoom = 5.0
)

// Camera is a pan and zoom 2D camera kept centred on the window.
type Camera struct {
	Target    rl.Vector2 // world point shown at the window centre
	Zoom      float32
	ZoomSpeed float32 // fraction of zoom per wheel notch

	offset rl.Vector2
}

// New returns a camera that shows world coordinates 1:1 with screen
// coordinates on a width x height window.
func New(width, height float32) *Camera {
	center := rl.Vector2{X: width / 2, Y: height / 2}
	return &Camera{
		Target:    center,
		Zoom:      1,
		ZoomSpeed: 0.1,
		offset:    center,
	}
}

// Update applies middle-button panning and wheel zoom from raylib input.
func (c *Camera) Update() {
	c.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		c.Pan(rl.GetMouseDelta())
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.ZoomAt(rl.GetMousePosition(), wheel)
	}
}

// Resize keeps the target at the centre of a resized window.
func (c *Camera) Resize(width, height float32) {
	c.offset = rl.Vector2{X: width / 2, Y: height / 2}
}

// Pan moves the view by a screen-space delta, like dragging the world.
func (c *Camera) Pan(screenDelta rl.Vector2) {
	c.Target = rl.Vector2Subtract(c.Target, rl.Vector2Scale(screenDelta, 1/c.Zoom))
}

// ZoomAt zooms by wheel notches while keeping the world point under
// screenPoint fixed.
func (c *Camera) ZoomAt(screenPoint rl.Vector2, wheel float32) {
	before := c.ScreenToWorld(screenPoint)
	c.Zoom = rl.Clamp(c.Zoom*(1+c.ZoomSpeed*wheel), MinZoom, MaxZoom)
	after := c.ScreenToWorld(screenPoint)
	c.Target = rl.Vector2Add(c.Target, rl.Vector2Subtract(before, after))
}

func (c *Camera) Camera2D() rl.Camera2D {
	return rl.Camera2D{Offset: c.offset, Target: c.Target, Zoom: c.Zoom}
}

func (c *Camera) ScreenToWorld(p rl.Vector2) rl.Vector2 {
	return ScreenToWorld(p, c.Camera2D())
}

// ScreenToWorld inverts the Camera2D transform: offset, then zoom, then
// rotation around target.
func ScreenToWorld(p rl.Vector2, camera rl.Camera2D) rl.Vector2 {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1
	}
	local := rl.Vector2Scale(rl.Vector2Subtract(p, camera.Offset), 1/zoom)
	local = rl.Vector2Rotate(local, -camera.Rotation*rl.Deg2rad)
	return rl.Vector2Add(local, camera.Target)
}
