package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// epsilon guards divisions by near-zero lengths.
const epsilon = 1e-4

// clampf restricts a value to a range
func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// RotatePoint rotates point around origin by angle degrees.
func RotatePoint(point, origin rl.Vector2, angle float32) rl.Vector2 {
	if angle == 0 {
		return point
	}
	d := rl.Vector2Subtract(point, origin)
	return rl.Vector2Add(rl.Vector2Rotate(d, angle*rl.Deg2rad), origin)
}

// RectangleVertices returns the corners of a rectangle centred on pos.
func RectangleVertices(pos rl.Vector2, width, height, rotation float32) []rl.Vector2 {
	return NewOBB(pos, rl.Vector2{X: width, Y: height}, rotation).Vertices()
}

// LineIntersection intersects segments p1-p2 and p3-p4. Parallel segments
// never intersect.
func LineIntersection(p1, p2, p3, p4 rl.Vector2) (rl.Vector2, bool) {
	d1 := rl.Vector2Subtract(p2, p1)
	d2 := rl.Vector2Subtract(p4, p3)

	denom := d1.X*d2.Y - d1.Y*d2.X
	if absf(denom) < epsilon {
		return rl.Vector2{}, false
	}

	w := rl.Vector2Subtract(p3, p1)
	t := (w.X*d2.Y - w.Y*d2.X) / denom
	u := (w.X*d1.Y - w.Y*d1.X) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return rl.Vector2{}, false
	}
	return rl.Vector2Add(p1, rl.Vector2Scale(d1, t)), true
}

// closestPointOnSegment projects p onto segment a-b.
func closestPointOnSegment(p, a, b rl.Vector2) rl.Vector2 {
	edge := rl.Vector2Subtract(b, a)
	lenSq := rl.Vector2DotProduct(edge, edge)
	if lenSq < epsilon*epsilon {
		return a
	}
	t := clampf(rl.Vector2DotProduct(rl.Vector2Subtract(p, a), edge)/lenSq, 0, 1)
	return rl.Vector2Add(a, rl.Vector2Scale(edge, t))
}

// centroid is the vertex average, not the area centroid.
func centroid(verts []rl.Vector2) rl.Vector2 {
	if len(verts) == 0 {
		return rl.Vector2{}
	}
	var sum rl.Vector2
	for _, v := range verts {
		sum = rl.Vector2Add(sum, v)
	}
	return rl.Vector2Scale(sum, 1/float32(len(verts)))
}

// pointInConvex reports whether p is inside a convex hull of either winding.
func pointInConvex(p rl.Vector2, verts []rl.Vector2) bool {
	if len(verts) < 3 {
		return false
	}
	var sign float32
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false
		}
	}
	return true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
