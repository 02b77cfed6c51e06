package physics

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Handle   Handle
	Body     *Body
	Point    rl.Vector2
	Normal   rl.Vector2 // faces against the ray
	Distance float32
}

// Raycast returns the closest body hit by the segment from origin along
// direction, at most maxDistance long. Line bodies are never hit.
func (w *World) Raycast(origin, direction rl.Vector2, maxDistance float32) (RaycastHit, bool) {
	var closest RaycastHit
	found := false
	w.castRay(origin, direction, maxDistance, func(hit RaycastHit) {
		if !found || hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	})
	return closest, found
}

// RaycastAll returns one hit per body crossed by the ray, nearest first.
func (w *World) RaycastAll(origin, direction rl.Vector2, maxDistance float32) []RaycastHit {
	var hits []RaycastHit
	w.castRay(origin, direction, maxDistance, func(hit RaycastHit) {
		hits = append(hits, hit)
	})
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func (w *World) castRay(origin, direction rl.Vector2, maxDistance float32, emit func(RaycastHit)) {
	if rl.Vector2Length(direction) < epsilon || maxDistance <= 0 {
		return
	}
	dir := rl.Vector2Normalize(direction)
	end := rl.Vector2Add(origin, rl.Vector2Scale(dir, maxDistance))

	for _, h := range w.bodies.order {
		b := w.bodies.slots[h.index()].body

		var hit RaycastHit
		var ok bool
		switch b.ShapeKind() {
		case KindCircle:
			hit, ok = raycastCircle(origin, dir, maxDistance, b.Transform.Position, b.ScaledRadius())
		case KindRectangle, KindTriangle, KindPolygon:
			hit, ok = raycastPolygon(origin, end, dir, b.WorldVertices())
		}
		if !ok {
			continue
		}
		hit.Handle = h
		hit.Body = b
		emit(hit)
	}
}

// raycastCircle projects the centre onto the ray and steps back to the entry
// point. Circles behind the origin or containing it are not hit.
func raycastCircle(origin, dir rl.Vector2, maxDistance float32, center rl.Vector2, radius float32) (RaycastHit, bool) {
	projection := rl.Vector2DotProduct(rl.Vector2Subtract(center, origin), dir)
	if projection < 0 {
		return RaycastHit{}, false
	}

	closest := rl.Vector2Add(origin, rl.Vector2Scale(dir, projection))
	distToCenter := rl.Vector2Distance(closest, center)
	if distToCenter > radius {
		return RaycastHit{}, false
	}

	hitDist := projection - sqrtf(radius*radius-distToCenter*distToCenter)
	if hitDist < 0 || hitDist > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector2Add(origin, rl.Vector2Scale(dir, hitDist))
	normal := rl.Vector2Negate(dir)
	if d := rl.Vector2Subtract(point, center); rl.Vector2Length(d) > epsilon {
		normal = rl.Vector2Normalize(d)
	}
	return RaycastHit{Point: point, Normal: normal, Distance: hitDist}, true
}

// raycastPolygon intersects the ray segment with every hull edge and keeps
// the nearest crossing.
func raycastPolygon(origin, end, dir rl.Vector2, verts []rl.Vector2) (RaycastHit, bool) {
	var best RaycastHit
	found := false
	for i := range verts {
		p1 := verts[i]
		p2 := verts[(i+1)%len(verts)]
		point, ok := LineIntersection(origin, end, p1, p2)
		if !ok {
			continue
		}
		dist := rl.Vector2Distance(origin, point)
		if found && dist >= best.Distance {
			continue
		}

		edge := rl.Vector2Subtract(p2, p1)
		normal := rl.Vector2Normalize(rl.Vector2{X: -edge.Y, Y: edge.X})
		if rl.Vector2DotProduct(normal, dir) > 0 {
			normal = rl.Vector2Negate(normal)
		}
		best = RaycastHit{Point: point, Normal: normal, Distance: dist}
		found = true
	}
	return best, found
}
