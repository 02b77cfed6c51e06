package world

import (
	"physics2d/internal/camera"
	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ViewBounds returns the world-space box seen by cam on a screen of the
// given size. Rotated cameras get the box around the rotated view.
func ViewBounds(cam rl.Camera2D, screenWidth, screenHeight float32) physics.AABB {
	corners := []rl.Vector2{
		camera.ScreenToWorld(rl.Vector2{}, cam),
		camera.ScreenToWorld(rl.Vector2{X: screenWidth}, cam),
		camera.ScreenToWorld(rl.Vector2{X: screenWidth, Y: screenHeight}, cam),
		camera.ScreenToWorld(rl.Vector2{Y: screenHeight}, cam),
	}
	return physics.NewAABBFromPoints(corners)
}

// InView reports whether any part of b can be on screen.
func InView(b *physics.Body, view physics.AABB) bool {
	box := b.AABB()
	return box.Min.X <= view.Max.X && box.Max.X >= view.Min.X &&
		box.Min.Y <= view.Max.Y && box.Max.Y >= view.Min.Y
}
