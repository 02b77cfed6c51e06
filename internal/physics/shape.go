package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ShapeKind tags the geometry carried by a Body.
type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindCircle
	KindTriangle
	KindPolygon
	KindLine

	numShapeKinds
)

// KindNone is reported by bodies without a shape.
const KindNone ShapeKind = -1

func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindPolygon:
		return "polygon"
	case KindLine:
		return "line"
	case KindNone:
		return "none"
	}
	return "unknown"
}

// IsPolygonal reports whether the kind is tested with vertex hulls.
func (k ShapeKind) IsPolygonal() bool {
	return k == KindRectangle || k == KindTriangle || k == KindPolygon
}

// Shape is the geometry of a body in local space.
// Implemented by Rectangle, Circle, Triangle, Polygon and Line.
type Shape interface {
	Kind() ShapeKind
}

// Rectangle is centred on the body position.
type Rectangle struct {
	Width  float32
	Height float32
}

func (Rectangle) Kind() ShapeKind { return KindRectangle }

type Circle struct {
	Radius float32
}

func (Circle) Kind() ShapeKind { return KindCircle }

// Triangle vertices are relative to the body position.
type Triangle struct {
	Vertices [3]rl.Vector2
}

func (Triangle) Kind() ShapeKind { return KindTriangle }

// Polygon vertices are relative to the body position and should describe a
// convex hull. Fewer than three vertices never collide.
type Polygon struct {
	Vertices []rl.Vector2
}

func (Polygon) Kind() ShapeKind { return KindPolygon }

// Line endpoints are relative to the body position.
type Line struct {
	Start rl.Vector2
	End   rl.Vector2
}

func (Line) Kind() ShapeKind { return KindLine }

// localVertices returns the untransformed hull of polygon-family shapes.
func localVertices(s Shape) []rl.Vector2 {
	switch sh := s.(type) {
	case Triangle:
		return []rl.Vector2{sh.Vertices[0], sh.Vertices[1], sh.Vertices[2]}
	case Polygon:
		out := make([]rl.Vector2, len(sh.Vertices))
		copy(out, sh.Vertices)
		return out
	}
	return nil
}
