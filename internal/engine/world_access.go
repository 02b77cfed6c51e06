package engine

import (
	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastResult is a raycast hit resolved to its GameObject.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector2
	Normal     rl.Vector2
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	BodyOf(g *GameObject) (*physics.Body, bool)
	Spawn(g *GameObject, body *physics.Body)
	Destroy(g *GameObject)
	Raycast(origin, direction rl.Vector2, maxDistance float32) (RaycastResult, bool)
}
