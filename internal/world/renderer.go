package world

import (
	"fmt"
	"strings"

	"physics2d/internal/assets"
	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	debugDotRadius  = 3
	velocityScale   = 0.1
	gravityArrowLen = 40
	labelFontSize   = 10
)

// Renderer draws bodies and the optional debug overlay. All methods must be
// called between rl.BeginDrawing and rl.EndDrawing.
type Renderer struct {
	GravityAnchor rl.Vector2 // screen position of the gravity arrow
}

func NewRenderer() *Renderer {
	return &Renderer{GravityAnchor: rl.Vector2{X: 60, Y: 60}}
}

// Draw renders every body inside view in insertion order, then the debug
// overlay when the world has it enabled.
func (r *Renderer) Draw(w *World, view physics.AABB) {
	for _, h := range w.Physics.Handles() {
		b, ok := w.Physics.Body(h)
		if !ok || !InView(b, view) {
			continue
		}
		if path, ok := w.texturePaths[h]; ok && !b.HasTexture {
			b.Texture = assets.LoadTexture(path)
			b.HasTexture = true
		}
		r.DrawBody(b)
	}

	if !w.DebugDraw {
		return
	}
	for _, b := range w.Physics.Objects() {
		if InView(b, view) {
			r.DrawDebug(b)
		}
	}
}

func (r *Renderer) DrawBody(b *physics.Body) {
	pos := b.Transform.Position
	switch b.ShapeKind() {
	case physics.KindRectangle:
		scale := b.Transform.Scale
		dst := rl.Rectangle{X: pos.X, Y: pos.Y, Width: b.Width() * scale, Height: b.Height() * scale}
		origin := rl.Vector2{X: dst.Width / 2, Y: dst.Height / 2}
		switch {
		case b.HasTexture:
			src := rl.Rectangle{Width: float32(b.Texture.Width), Height: float32(b.Texture.Height)}
			rl.DrawTexturePro(b.Texture, src, dst, origin, b.Transform.Rotation, b.Color)
		case b.Outline:
			drawClosed(b.WorldVertices(), b.Thickness, b.Color)
		default:
			rl.DrawRectanglePro(dst, origin, b.Transform.Rotation, b.Color)
		}

	case physics.KindCircle:
		radius := b.ScaledRadius()
		if b.Outline {
			rl.DrawRing(pos, max(radius-b.Thickness, 0), radius, 0, 360, 36, b.Color)
		} else {
			rl.DrawCircleV(pos, radius, b.Color)
		}

	case physics.KindTriangle, physics.KindPolygon:
		verts := b.WorldVertices()
		if len(verts) < 3 {
			return
		}
		if b.Outline {
			drawClosed(verts, b.Thickness, b.Color)
			return
		}
		rl.DrawTriangleFan(screenCCW(verts), b.Color)

	case physics.KindLine:
		if start, end, ok := b.LineEndpoints(); ok {
			rl.DrawLineEx(start, end, b.Thickness, b.Color)
		}
	}
}

// DrawDebug draws bounds, velocity, centre and body type for one body.
func (r *Renderer) DrawDebug(b *physics.Body) {
	pos := b.Transform.Position

	if b.ShapeKind() == physics.KindCircle {
		rl.DrawCircleLinesV(pos, b.ScaledRadius(), rl.Yellow)
	} else {
		rl.DrawRectangleLinesEx(b.AABB().Rectangle(), 1, rl.Yellow)
	}

	if b.BodyType == physics.Dynamic {
		end := rl.Vector2Add(pos, rl.Vector2Scale(b.Velocity, velocityScale))
		rl.DrawLineV(pos, end, rl.Green)
		rl.DrawCircleV(end, debugDotRadius, rl.Green)
	}

	rl.DrawCircleV(pos, debugDotRadius, rl.Red)

	label := strings.ToUpper(b.BodyType.String())
	rl.DrawText(label, int32(pos.X)+6, int32(pos.Y)+6, labelFontSize, rl.RayWhite)
}

// DrawGravity draws the gravity direction at GravityAnchor. It is a screen
// overlay, so call it outside rl.BeginMode2D.
func (r *Renderer) DrawGravity(g rl.Vector2) {
	from := r.GravityAnchor
	label := fmt.Sprintf("gravity (%.0f, %.0f)", g.X, g.Y)
	rl.DrawText(label, int32(from.X)-40, int32(from.Y)-gravityArrowLen-14, labelFontSize, rl.Magenta)

	if rl.Vector2Length(g) == 0 {
		rl.DrawCircleV(from, debugDotRadius, rl.Magenta)
		return
	}
	dir := rl.Vector2Normalize(g)
	to := rl.Vector2Add(from, rl.Vector2Scale(dir, gravityArrowLen))
	rl.DrawLineEx(from, to, 2, rl.Magenta)

	// Arrow head
	back := rl.Vector2Scale(dir, -10)
	left := rl.Vector2Add(to, rl.Vector2Rotate(back, 0.5))
	right := rl.Vector2Add(to, rl.Vector2Rotate(back, -0.5))
	rl.DrawLineEx(to, left, 2, rl.Magenta)
	rl.DrawLineEx(to, right, 2, rl.Magenta)
}

func drawClosed(verts []rl.Vector2, thickness float32, c rl.Color) {
	for i := range verts {
		rl.DrawLineEx(verts[i], verts[(i+1)%len(verts)], thickness, c)
	}
}

// screenCCW returns verts wound counter-clockwise on screen (y down), the
// order raylib fills.
func screenCCW(verts []rl.Vector2) []rl.Vector2 {
	var area float32
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		return verts
	}
	out := make([]rl.Vector2, len(verts))
	for i, v := range verts {
		out[len(verts)-1-i] = v
	}
	return out
}
