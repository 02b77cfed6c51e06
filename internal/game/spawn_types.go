package game

import (
	"math"

	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpawnType is a body template the player can drop with the mouse.
type SpawnType struct {
	Name  string
	Build func() *physics.Body
}

// spawnTypes lists the shapes offered by the spawn selector, in order.
var spawnTypes = []SpawnType{
	{"Box", newBox},
	{"Ball", newBall},
	{"Wedge", newWedge},
	{"Hexagon", newHexagon},
}

var spawnPalette = []rl.Color{rl.SkyBlue, rl.Orange, rl.Lime, rl.Pink, rl.Gold, rl.Purple}

func newBox() *physics.Body {
	b := physics.NewBody()
	b.SetRectangle(40, 40)
	return b
}

func newBall() *physics.Body {
	b := physics.NewBody()
	b.SetCircle(20)
	b.Restitution = 0.7
	b.Friction = 0.1
	return b
}

func newWedge() *physics.Body {
	b := physics.NewBody()
	b.SetTriangle(rl.Vector2{X: -25, Y: 20}, rl.Vector2{X: 25, Y: 20}, rl.Vector2{X: 0, Y: -25})
	b.SetMass(1.5)
	return b
}

func newHexagon() *physics.Body {
	b := physics.NewBody()
	b.SetPolygon(regularPolygon(6, 24))
	b.SetMass(2)
	b.Restitution = 0.3
	return b
}

// regularPolygon returns n vertices on a circle of radius r, clockwise on
// screen starting at the top.
func regularPolygon(n int, r float32) []rl.Vector2 {
	verts := make([]rl.Vector2, n)
	for i := range verts {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		verts[i] = rl.Vector2{X: r * float32(math.Cos(angle)), Y: r * float32(math.Sin(angle))}
	}
	return verts
}
