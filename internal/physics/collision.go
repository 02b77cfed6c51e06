package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes the overlap of two shapes. Normal is a unit vector
// pointing from the first shape toward the second.
type Contact struct {
	Point        rl.Vector2
	Normal       rl.Vector2
	Penetration  float32
	HasCollision bool
}

// Flipped returns the contact as seen from the other body.
func (c Contact) Flipped() Contact {
	c.Normal = rl.Vector2Negate(c.Normal)
	return c
}

type collideFunc func(a, b *Body) Contact

// dispatch routes a pair of shape kinds to its narrow-phase test. Missing
// entries (anything involving a Line) never collide.
var dispatch [numShapeKinds][numShapeKinds]collideFunc

func init() {
	register(KindRectangle, KindRectangle, rectangleRectangle)
	register(KindCircle, KindCircle, circleCircle)
	register(KindRectangle, KindCircle, rectangleCircle)
	for _, k := range []ShapeKind{KindTriangle, KindPolygon} {
		register(k, KindCircle, polygonCircle)
		register(KindRectangle, k, polygonPolygon)
		register(k, KindTriangle, polygonPolygon)
		register(k, KindPolygon, polygonPolygon)
	}
}

// register installs fn for (ka, kb) and, unless set explicitly, its mirrored
// form for (kb, ka).
func register(ka, kb ShapeKind, fn collideFunc) {
	dispatch[ka][kb] = fn
	if ka != kb && dispatch[kb][ka] == nil {
		dispatch[kb][ka] = func(a, b *Body) Contact {
			return fn(b, a).Flipped()
		}
	}
}

// CheckCollision runs the narrow phase for a and b. Layers and flags are not
// consulted.
func CheckCollision(a, b *Body) Contact {
	if a == nil || b == nil || a.shape == nil || b.shape == nil {
		return Contact{}
	}
	fn := dispatch[a.shape.Kind()][b.shape.Kind()]
	if fn == nil {
		return Contact{}
	}
	return fn(a, b)
}

func rectangleRectangle(a, b *Body) Contact {
	sa, sb := a.Transform.Scale, b.Transform.Scale
	return RectangleVsRectangle(
		a.Transform.Position, rl.Vector2{X: a.Width() * sa, Y: a.Height() * sa}, a.Transform.Rotation,
		b.Transform.Position, rl.Vector2{X: b.Width() * sb, Y: b.Height() * sb}, b.Transform.Rotation,
	)
}

func circleCircle(a, b *Body) Contact {
	return CircleVsCircle(a.Transform.Position, a.ScaledRadius(), b.Transform.Position, b.ScaledRadius())
}

func rectangleCircle(a, b *Body) Contact {
	s := a.Transform.Scale
	return RectangleVsCircle(
		a.Transform.Position, rl.Vector2{X: a.Width() * s, Y: a.Height() * s}, a.Transform.Rotation,
		b.Transform.Position, b.ScaledRadius(),
	)
}

func polygonPolygon(a, b *Body) Contact {
	return PolygonVsPolygon(a.WorldVertices(), b.WorldVertices())
}

func polygonCircle(a, b *Body) Contact {
	return PolygonVsCircle(a.WorldVertices(), b.Transform.Position, b.ScaledRadius())
}

// RectangleVsRectangle tests two centred rectangles. Axis-aligned pairs use
// the per-axis overlap; rotated pairs fall back to SAT on their hulls.
func RectangleVsRectangle(posA, sizeA rl.Vector2, rotA float32, posB, sizeB rl.Vector2, rotB float32) Contact {
	if rotA != 0 || rotB != 0 {
		return PolygonVsPolygon(RectangleVertices(posA, sizeA.X, sizeA.Y, rotA), RectangleVertices(posB, sizeB.X, sizeB.Y, rotB))
	}

	delta := rl.Vector2Subtract(posB, posA)
	overlapX := (sizeA.X+sizeB.X)/2 - absf(delta.X)
	overlapY := (sizeA.Y+sizeB.Y)/2 - absf(delta.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return Contact{}
	}

	contact := Contact{
		HasCollision: true,
		Point:        rl.Vector2Add(posA, rl.Vector2Scale(delta, 0.5)),
	}
	if overlapX <= overlapY {
		contact.Penetration = overlapX
		contact.Normal = rl.Vector2{X: signf(delta.X)}
	} else {
		contact.Penetration = overlapY
		contact.Normal = rl.Vector2{Y: signf(delta.Y)}
	}
	return contact
}

// CircleVsCircle reports touching circles (distance == sum of radii) as
// separate.
func CircleVsCircle(posA rl.Vector2, radiusA float32, posB rl.Vector2, radiusB float32) Contact {
	delta := rl.Vector2Subtract(posB, posA)
	distSq := rl.Vector2DotProduct(delta, delta)
	radiusSum := radiusA + radiusB
	if distSq >= radiusSum*radiusSum {
		return Contact{}
	}

	dist := sqrtf(distSq)
	normal := rl.Vector2{X: 1}
	if dist > epsilon {
		normal = rl.Vector2Scale(delta, 1/dist)
	}
	penetration := radiusSum - dist
	return Contact{
		HasCollision: true,
		Normal:       normal,
		Penetration:  penetration,
		Point:        rl.Vector2Add(posA, rl.Vector2Scale(normal, radiusA-penetration/2)),
	}
}

// RectangleVsCircle works in the rectangle's local frame: the circle centre
// is clamped to the half-extents and the result rotated back to world space.
func RectangleVsCircle(rectPos, size rl.Vector2, rotation float32, circlePos rl.Vector2, radius float32) Contact {
	box := NewOBB(rectPos, size, rotation)
	local := box.ToLocal(circlePos)
	closest := box.ClampLocal(local)

	delta := rl.Vector2Subtract(local, closest)
	distSq := rl.Vector2DotProduct(delta, delta)
	if distSq >= radius*radius {
		return Contact{}
	}

	dist := sqrtf(distSq)
	normal := rl.Vector2{Y: -1}
	if dist > epsilon {
		normal = rl.Vector2Scale(delta, 1/dist)
	}
	return Contact{
		HasCollision: true,
		Normal:       box.Rotate(normal),
		Penetration:  radius - dist,
		Point:        box.ToWorld(closest),
	}
}

// PolygonVsPolygon is a separating axis test over the edge normals of both
// hulls. The normal is oriented from A's centroid toward B's. The contact
// point averages A's vertices that fall inside B's bounds.
func PolygonVsPolygon(vertsA, vertsB []rl.Vector2) Contact {
	if len(vertsA) < 3 || len(vertsB) < 3 {
		return Contact{}
	}

	minPenetration := float32(math.MaxFloat32)
	var normal rl.Vector2

	testAxes := func(verts []rl.Vector2) bool {
		for i := range verts {
			edge := rl.Vector2Subtract(verts[(i+1)%len(verts)], verts[i])
			if rl.Vector2Length(edge) < epsilon {
				continue
			}
			axis := rl.Vector2Normalize(rl.Vector2{X: -edge.Y, Y: edge.X})

			minA, maxA := project(vertsA, axis)
			minB, maxB := project(vertsB, axis)
			if maxA < minB || maxB < minA {
				return false
			}
			if overlap := min(maxA-minB, maxB-minA); overlap < minPenetration {
				minPenetration = overlap
				normal = axis
			}
		}
		return true
	}
	if !testAxes(vertsA) || !testAxes(vertsB) {
		return Contact{}
	}
	if minPenetration == math.MaxFloat32 {
		// every edge was degenerate
		return Contact{}
	}

	centerA, centerB := centroid(vertsA), centroid(vertsB)
	if rl.Vector2DotProduct(normal, rl.Vector2Subtract(centerB, centerA)) < 0 {
		normal = rl.Vector2Negate(normal)
	}

	contact := Contact{
		HasCollision: true,
		Normal:       normal,
		Penetration:  minPenetration,
		Point:        rl.Vector2Scale(rl.Vector2Add(centerA, centerB), 0.5),
	}

	boundsB := NewAABBFromPoints(vertsB)
	var sum rl.Vector2
	count := 0
	for _, v := range vertsA {
		if boundsB.Contains(v) {
			sum = rl.Vector2Add(sum, v)
			count++
		}
	}
	if count > 0 {
		contact.Point = rl.Vector2Scale(sum, 1/float32(count))
	}
	return contact
}

// PolygonVsCircle finds the hull point nearest the circle centre. A centre
// inside the hull still collides, with the normal pointing out through the
// nearest edge.
func PolygonVsCircle(verts []rl.Vector2, circlePos rl.Vector2, radius float32) Contact {
	if len(verts) < 3 {
		return Contact{}
	}

	minDistSq := float32(math.MaxFloat32)
	var closest rl.Vector2
	for i := range verts {
		p := closestPointOnSegment(circlePos, verts[i], verts[(i+1)%len(verts)])
		d := rl.Vector2Subtract(circlePos, p)
		if distSq := rl.Vector2DotProduct(d, d); distSq < minDistSq {
			minDistSq = distSq
			closest = p
		}
	}

	inside := pointInConvex(circlePos, verts)
	if !inside && minDistSq >= radius*radius {
		return Contact{}
	}

	dist := sqrtf(minDistSq)
	normal := rl.Vector2{Y: 1}
	if dist > epsilon {
		normal = rl.Vector2Scale(rl.Vector2Subtract(circlePos, closest), 1/dist)
	}
	penetration := radius - dist
	if inside {
		normal = rl.Vector2Negate(normal)
		penetration = radius + dist
	}
	return Contact{
		HasCollision: true,
		Normal:       normal,
		Penetration:  penetration,
		Point:        closest,
	}
}

func project(verts []rl.Vector2, axis rl.Vector2) (float32, float32) {
	lo := float32(math.MaxFloat32)
	hi := float32(-math.MaxFloat32)
	for _, v := range verts {
		p := rl.Vector2DotProduct(v, axis)
		lo = min(lo, p)
		hi = max(hi, p)
	}
	return lo, hi
}

func signf(x float32) float32 {
	if x > 0 {
		return 1
	}
	return -1
}
