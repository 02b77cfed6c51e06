package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an oriented rectangle.
type OBB struct {
	Center   rl.Vector2    // World-space center
	HalfSize rl.Vector2    // Half-extents along local axes
	Axes     [2]rl.Vector2 // Local X and Y axes (rotated)
}

// NewOBB creates an OBB from center, full size and rotation in degrees.
func NewOBB(center, size rl.Vector2, rotation float32) OBB {
	rad := float64(rotation) * math.Pi / 180
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))
	return OBB{
		Center:   center,
		HalfSize: rl.Vector2{X: size.X / 2, Y: size.Y / 2},
		Axes: [2]rl.Vector2{
			{X: c, Y: s},
			{X: -s, Y: c},
		},
	}
}

// ToLocal expresses a world point in the box frame (origin at the center).
func (o OBB) ToLocal(p rl.Vector2) rl.Vector2 {
	d := rl.Vector2Subtract(p, o.Center)
	return rl.Vector2{X: rl.Vector2DotProduct(d, o.Axes[0]), Y: rl.Vector2DotProduct(d, o.Axes[1])}
}

// ToWorld maps a point in the box frame back to world space.
func (o OBB) ToWorld(local rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(o.Center, o.Rotate(local))
}

// Rotate applies the box orientation to a direction without translating it.
func (o OBB) Rotate(v rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(rl.Vector2Scale(o.Axes[0], v.X), rl.Vector2Scale(o.Axes[1], v.Y))
}

// ClampLocal clamps a local point to the box extents.
func (o OBB) ClampLocal(local rl.Vector2) rl.Vector2 {
	return rl.Vector2{
		X: clampf(local.X, -o.HalfSize.X, o.HalfSize.X),
		Y: clampf(local.Y, -o.HalfSize.Y, o.HalfSize.Y),
	}
}

// ClosestPoint returns the point of the box (interior included) nearest to p.
func (o OBB) ClosestPoint(p rl.Vector2) rl.Vector2 {
	return o.ToWorld(o.ClampLocal(o.ToLocal(p)))
}

// Vertices returns the four corners, wound top-left, top-right,
// bottom-right, bottom-left before rotation.
func (o OBB) Vertices() []rl.Vector2 {
	hx, hy := o.HalfSize.X, o.HalfSize.Y
	local := [4]rl.Vector2{{X: -hx, Y: -hy}, {X: hx, Y: -hy}, {X: hx, Y: hy}, {X: -hx, Y: hy}}
	out := make([]rl.Vector2, 4)
	for i, v := range local {
		out[i] = o.ToWorld(v)
	}
	return out
}
