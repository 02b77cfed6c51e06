package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min rl.Vector2
	Max rl.Vector2
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector2) AABB {
	half := rl.Vector2{X: size.X / 2, Y: size.Y / 2}
	return AABB{
		Min: rl.Vector2Subtract(center, half),
		Max: rl.Vector2Add(center, half),
	}
}

// NewAABBFromPoints reduces a point list to its bounds. An empty list yields
// the zero box.
func NewAABBFromPoints(points []rl.Vector2) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
	}
	return box
}

// Intersects reports strict overlap; boxes that only share an edge do not
// intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// Contains reports whether p lies inside the box, edges included.
func (a AABB) Contains(p rl.Vector2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

func (a AABB) Center() rl.Vector2 {
	return rl.Vector2Scale(rl.Vector2Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector2 {
	return rl.Vector2Subtract(a.Max, a.Min)
}

// Rectangle converts the box to raylib's x/y/width/height form.
func (a AABB) Rectangle() rl.Rectangle {
	return rl.Rectangle{X: a.Min.X, Y: a.Min.Y, Width: a.Max.X - a.Min.X, Height: a.Max.Y - a.Min.Y}
}
