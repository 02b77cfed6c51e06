package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// MinMass is the lowest mass a body reports.
const MinMass = 0.001

// BodyType determines how a body reacts to forces and contacts.
type BodyType int

const (
	Static  BodyType = iota // never moves, infinite mass
	Dynamic                 // affected by gravity, forces and impulses
)

func (t BodyType) String() string {
	if t == Static {
		return "static"
	}
	return "dynamic"
}

type Transform struct {
	Position rl.Vector2
	Rotation float32 // degrees
	Scale    float32 // uniform
}

// Body is a simulated object: geometry, transform, rigidbody state, material
// and collision metadata. Visual fields are carried for renderers only.
// Create bodies with NewBody. The zero value has no shape, never collides and
// reports MinMass.
type Body struct {
	Transform Transform
	BodyType  BodyType

	Velocity     rl.Vector2
	Friction     float32 // 0 = frictionless, 1 = high friction
	Drag         float32 // linear air resistance per second
	Restitution  float32 // 0 = no bounce, 1 = perfect bounce
	GravityScale float32

	// Trigger bodies report overlaps but are never resolved.
	Trigger bool
	// Collidable=false excludes the body from the world's narrow phase.
	// IsCollidingWith still tests it.
	Collidable bool
	Layers     CollisionLayers

	Color      rl.Color
	Texture    rl.Texture2D
	HasTexture bool
	Outline    bool
	Thickness  float32

	shape        Shape
	mass         float32
	acceleration rl.Vector2
}

// NewBody returns a dynamic 100x100 rectangle at the origin.
func NewBody() *Body {
	return &Body{
		Transform:    Transform{Scale: 1},
		BodyType:     Dynamic,
		Friction:     0.3,
		Drag:         0.01,
		Restitution:  0.5,
		GravityScale: 1,
		Collidable:   true,
		Layers:       NewCollisionLayers(),
		Color:        rl.Blue,
		Thickness:    1,
		shape:        Rectangle{Width: 100, Height: 100},
		mass:         1,
	}
}

// ===== Shape configuration =====
// Each setter replaces whatever shape the body had before.

func (b *Body) SetRectangle(width, height float32) {
	b.shape = Rectangle{Width: width, Height: height}
}

func (b *Body) SetCircle(radius float32) {
	b.shape = Circle{Radius: radius}
}

func (b *Body) SetTriangle(p1, p2, p3 rl.Vector2) {
	b.shape = Triangle{Vertices: [3]rl.Vector2{p1, p2, p3}}
}

// SetPolygon copies vertices; no convexity or count validation is done.
func (b *Body) SetPolygon(vertices []rl.Vector2) {
	verts := make([]rl.Vector2, len(vertices))
	copy(verts, vertices)
	b.shape = Polygon{Vertices: verts}
}

func (b *Body) SetLine(start, end rl.Vector2) {
	b.shape = Line{Start: start, End: end}
}

// SetShape installs any Shape value. A nil shape is ignored.
func (b *Body) SetShape(s Shape) {
	if s == nil {
		return
	}
	if p, ok := s.(Polygon); ok {
		b.SetPolygon(p.Vertices)
		return
	}
	b.shape = s
}

func (b *Body) Shape() Shape { return b.shape }

// ShapeKind is KindNone for a body without a shape.
func (b *Body) ShapeKind() ShapeKind {
	if b.shape == nil {
		return KindNone
	}
	return b.shape.Kind()
}

// Width is the unscaled rectangle width, zero for other shapes.
func (b *Body) Width() float32 {
	if r, ok := b.shape.(Rectangle); ok {
		return r.Width
	}
	return 0
}

func (b *Body) Height() float32 {
	if r, ok := b.shape.(Rectangle); ok {
		return r.Height
	}
	return 0
}

// Radius is the unscaled circle radius, zero for other shapes.
func (b *Body) Radius() float32 {
	if c, ok := b.shape.(Circle); ok {
		return c.Radius
	}
	return 0
}

// ===== Rigidbody =====

// SetMass stores m, floored at MinMass.
func (b *Body) SetMass(m float32) {
	b.mass = max(m, MinMass)
}

// Mass is never below MinMass, including for a zero Body.
func (b *Body) Mass() float32 { return max(b.mass, MinMass) }

// InverseMass is zero for static bodies.
func (b *Body) InverseMass() float32 {
	if b.BodyType == Static {
		return 0
	}
	return 1 / b.Mass()
}

func (b *Body) IsStatic() bool { return b.BodyType == Static }

// Acceleration is the force accumulated since the last Integrate.
func (b *Body) Acceleration() rl.Vector2 { return b.acceleration }

// ApplyForce accumulates force/mass into the acceleration. Static bodies
// ignore it.
func (b *Body) ApplyForce(force rl.Vector2) {
	if b.BodyType != Dynamic {
		return
	}
	b.acceleration = rl.Vector2Add(b.acceleration, rl.Vector2Scale(force, 1/b.Mass()))
}

// ApplyImpulse adds impulse/mass to the velocity. Static bodies ignore it.
func (b *Body) ApplyImpulse(impulse rl.Vector2) {
	if b.BodyType != Dynamic {
		return
	}
	b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(impulse, 1/b.Mass()))
}

// Integrate advances a dynamic body by dt: linear drag, acceleration,
// position, then clears the acceleration.
func (b *Body) Integrate(dt float32) {
	if b.BodyType == Static {
		return
	}
	b.Velocity = rl.Vector2Scale(b.Velocity, 1-b.Drag*dt)
	b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(b.acceleration, dt))
	b.Transform.Position = rl.Vector2Add(b.Transform.Position, rl.Vector2Scale(b.Velocity, dt))
	b.acceleration = rl.Vector2{}
}

// ===== Geometry =====

// OBB returns the oriented box of a rectangle body with scale applied.
func (b *Body) OBB() OBB {
	s := b.Transform.Scale
	return NewOBB(b.Transform.Position, rl.Vector2{X: b.Width() * s, Y: b.Height() * s}, b.Transform.Rotation)
}

// ScaledRadius is the world-space radius of a circle body.
func (b *Body) ScaledRadius() float32 {
	return b.Radius() * b.Transform.Scale
}

// WorldVertices returns the world-space hull of rectangle, triangle and
// polygon bodies (scale, then rotation, then translation). Circles and lines
// have no hull and return nil.
func (b *Body) WorldVertices() []rl.Vector2 {
	switch b.ShapeKind() {
	case KindRectangle:
		return b.OBB().Vertices()
	case KindTriangle, KindPolygon:
		verts := localVertices(b.shape)
		for i, v := range verts {
			verts[i] = b.toWorld(v)
		}
		return verts
	}
	return nil
}

// LineEndpoints returns the world-space endpoints of a line body.
func (b *Body) LineEndpoints() (rl.Vector2, rl.Vector2, bool) {
	l, ok := b.shape.(Line)
	if !ok {
		return rl.Vector2{}, rl.Vector2{}, false
	}
	return b.toWorld(l.Start), b.toWorld(l.End), true
}

func (b *Body) toWorld(local rl.Vector2) rl.Vector2 {
	scaled := rl.Vector2Scale(local, b.Transform.Scale)
	return rl.Vector2Add(RotatePoint(scaled, rl.Vector2{}, b.Transform.Rotation), b.Transform.Position)
}

// AABB returns the world-space bounding box used by the broad phase.
func (b *Body) AABB() AABB {
	pos := b.Transform.Position
	s := b.Transform.Scale
	switch sh := b.shape.(type) {
	case Rectangle:
		if b.Transform.Rotation == 0 {
			return NewAABBFromCenter(pos, rl.Vector2{X: sh.Width * s, Y: sh.Height * s})
		}
		return NewAABBFromPoints(b.WorldVertices())
	case Circle:
		d := sh.Radius * s * 2
		return NewAABBFromCenter(pos, rl.Vector2{X: d, Y: d})
	case Triangle, Polygon:
		return NewAABBFromPoints(b.WorldVertices())
	case Line:
		start, end, _ := b.LineEndpoints()
		return NewAABBFromPoints([]rl.Vector2{start, end})
	}
	return AABB{Min: pos, Max: pos}
}

// ===== Collision queries =====

// CanCollideWith applies this body's layer mask to other's layer.
func (b *Body) CanCollideWith(other *Body) bool {
	return b.Layers.CanCollideWith(other.Layers)
}

// IsCollidingWith runs the layer filter and the narrow phase against other,
// ignoring the Collidable flag so triggers and non-physical bodies can be
// polled.
func (b *Body) IsCollidingWith(other *Body) bool {
	if other == nil || other == b || !b.CanCollideWith(other) {
		return false
	}
	return CheckCollision(b, other).HasCollision
}
