package world

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"physics2d/internal/assets"
	"physics2d/internal/engine"
	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- File format ---

type SceneFile struct {
	Settings *SettingsDef `yaml:"settings,omitempty"`
	Objects  []ObjectDef  `yaml:"objects"`
}

// SettingsDef fields are optional; missing ones keep the defaults.
type SettingsDef struct {
	Gravity     []float32 `yaml:"gravity,flow,omitempty"`
	StepRate    *float32  `yaml:"step_rate,omitempty"`
	Iterations  *int      `yaml:"iterations,omitempty"`
	MaxSubSteps *int      `yaml:"max_sub_steps,omitempty"`
	DebugDraw   *bool     `yaml:"debug_draw,omitempty"`
}

type ObjectDef struct {
	Name      string        `yaml:"name"`
	Tags      []string      `yaml:"tags,flow,omitempty"`
	Shape     ShapeDef      `yaml:"shape"`
	Position  []float32     `yaml:"position,flow,omitempty"`
	Rotation  float32       `yaml:"rotation,omitempty"`
	Scale     float32       `yaml:"scale,omitempty"`
	Body      *BodyDef      `yaml:"body,omitempty"`
	Collision *CollisionDef `yaml:"collision,omitempty"`
	Visual    *VisualDef    `yaml:"visual,omitempty"`
	Scripts   []ScriptDef   `yaml:"scripts,omitempty"`
}

// ShapeDef describes geometry in local space. Triangles take three vertices,
// lines take two (start, end).
type ShapeDef struct {
	Kind     string      `yaml:"kind"`
	Width    float32     `yaml:"width,omitempty"`
	Height   float32     `yaml:"height,omitempty"`
	Radius   float32     `yaml:"radius,omitempty"`
	Vertices [][]float32 `yaml:"vertices,flow,omitempty"`
}

type BodyDef struct {
	Type         string    `yaml:"type,omitempty"`
	Mass         *float32  `yaml:"mass,omitempty"`
	Friction     *float32  `yaml:"friction,omitempty"`
	Drag         *float32  `yaml:"drag,omitempty"`
	Restitution  *float32  `yaml:"restitution,omitempty"`
	GravityScale *float32  `yaml:"gravity_scale,omitempty"`
	Velocity     []float32 `yaml:"velocity,flow,omitempty"`
}

type CollisionDef struct {
	Trigger    bool    `yaml:"trigger,omitempty"`
	Collidable *bool   `yaml:"collidable,omitempty"`
	Layer      int     `yaml:"layer,omitempty"`
	Mask       *uint32 `yaml:"mask,omitempty"`
}

type VisualDef struct {
	Color     string   `yaml:"color,omitempty"`
	Outline   bool     `yaml:"outline,omitempty"`
	Thickness *float32 `yaml:"thickness,omitempty"`
	Texture   string   `yaml:"texture,omitempty"`
}

type ScriptDef struct {
	Type  string         `yaml:"type"`
	Props map[string]any `yaml:"props,omitempty"`
}

// --- Loading ---

// ParseScene decodes a scene file without touching any world.
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// LoadScene replaces the current scene with the one at path. On error the
// current scene is left untouched.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	sf, err := ParseScene(data)
	if err != nil {
		return err
	}

	type pending struct {
		obj     *engine.GameObject
		body    *physics.Body
		texture string
	}
	built := make([]pending, 0, len(sf.Objects))
	for i, def := range sf.Objects {
		body, err := buildBody(def)
		if err != nil {
			return fmt.Errorf("object %d (%s): %w", i, def.Name, err)
		}
		g := engine.NewGameObject(def.Name)
		g.Tags = def.Tags
		for _, s := range def.Scripts {
			if c := engine.CreateScript(s.Type, s.Props); c != nil {
				g.AddComponent(c)
			} else {
				log.Printf("World: object %s: unknown script %q", def.Name, s.Type)
			}
		}
		var texture string
		if def.Visual != nil {
			texture = def.Visual.Texture
		}
		built = append(built, pending{obj: g, body: body, texture: texture})
	}

	settings, debug := mergeSettings(physics.DefaultSettings(), w.DebugDraw, sf.Settings)

	w.Clear()
	w.Physics.ApplySettings(settings)
	w.DebugDraw = debug
	w.Scene.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	w.ScenePath = path
	for _, p := range built {
		w.Spawn(p.obj, p.body)
		if p.texture != "" {
			w.texturePaths[p.obj.Body] = p.texture
		}
	}

	log.Printf("World: loaded scene %s (%d objects)", path, len(built))
	return nil
}

func mergeSettings(s physics.Settings, debug bool, def *SettingsDef) (physics.Settings, bool) {
	if def == nil {
		return s, debug
	}
	if len(def.Gravity) == 2 {
		s.Gravity = rl.Vector2{X: def.Gravity[0], Y: def.Gravity[1]}
	}
	if def.StepRate != nil {
		s.StepRate = *def.StepRate
	}
	if def.Iterations != nil {
		s.Iterations = *def.Iterations
	}
	if def.MaxSubSteps != nil {
		s.MaxSubSteps = *def.MaxSubSteps
	}
	if def.DebugDraw != nil {
		debug = *def.DebugDraw
	}
	return s, debug
}

func buildBody(def ObjectDef) (*physics.Body, error) {
	b := physics.NewBody()

	shape, err := buildShape(def.Shape)
	if err != nil {
		return nil, err
	}
	b.SetShape(shape)

	b.Transform.Position = vec2(def.Position)
	b.Transform.Rotation = def.Rotation
	if def.Scale != 0 {
		b.Transform.Scale = def.Scale
	}

	if bd := def.Body; bd != nil {
		switch bd.Type {
		case "", "dynamic":
			b.BodyType = physics.Dynamic
		case "static":
			b.BodyType = physics.Static
		default:
			return nil, fmt.Errorf("unknown body type %q", bd.Type)
		}
		if bd.Mass != nil {
			b.SetMass(*bd.Mass)
		}
		setIf(&b.Friction, bd.Friction)
		setIf(&b.Drag, bd.Drag)
		setIf(&b.Restitution, bd.Restitution)
		setIf(&b.GravityScale, bd.GravityScale)
		b.Velocity = vec2(bd.Velocity)
	}

	if cd := def.Collision; cd != nil {
		b.Trigger = cd.Trigger
		setIf(&b.Collidable, cd.Collidable)
		b.Layers.SetLayer(cd.Layer)
		if cd.Mask != nil {
			b.Layers.SetMask(*cd.Mask)
		}
	}

	if vd := def.Visual; vd != nil {
		if vd.Color != "" {
			c, err := assets.ParseColor(vd.Color)
			if err != nil {
				return nil, err
			}
			b.Color = c
		}
		b.Outline = vd.Outline
		setIf(&b.Thickness, vd.Thickness)
	}

	return b, nil
}

func buildShape(def ShapeDef) (physics.Shape, error) {
	verts := make([]rl.Vector2, len(def.Vertices))
	for i, v := range def.Vertices {
		if len(v) != 2 {
			return nil, fmt.Errorf("%s vertex %d: expected [x, y]", def.Kind, i)
		}
		verts[i] = rl.Vector2{X: v[0], Y: v[1]}
	}

	switch def.Kind {
	case "rectangle":
		return physics.Rectangle{Width: def.Width, Height: def.Height}, nil
	case "circle":
		return physics.Circle{Radius: def.Radius}, nil
	case "triangle":
		if len(verts) != 3 {
			return nil, fmt.Errorf("triangle needs 3 vertices, got %d", len(verts))
		}
		return physics.Triangle{Vertices: [3]rl.Vector2{verts[0], verts[1], verts[2]}}, nil
	case "polygon":
		return physics.Polygon{Vertices: verts}, nil
	case "line":
		if len(verts) != 2 {
			return nil, fmt.Errorf("line needs 2 vertices, got %d", len(verts))
		}
		return physics.Line{Start: verts[0], End: verts[1]}, nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", def.Kind)
}

func vec2(v []float32) rl.Vector2 {
	if len(v) < 2 {
		return rl.Vector2{}
	}
	return rl.Vector2{X: v[0], Y: v[1]}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// --- Saving ---

// SaveScene writes the current scene to path. Objects without a body are
// skipped.
func (w *World) SaveScene(path string) error {
	data, err := yaml.Marshal(w.sceneFile())
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	log.Printf("World: saved scene %s", path)
	return nil
}

func (w *World) sceneFile() SceneFile {
	s := w.Physics.Settings()
	sf := SceneFile{
		Settings: &SettingsDef{
			Gravity:     []float32{s.Gravity.X, s.Gravity.Y},
			StepRate:    ptr(s.StepRate),
			Iterations:  ptr(s.Iterations),
			MaxSubSteps: ptr(s.MaxSubSteps),
			DebugDraw:   ptr(w.DebugDraw),
		},
		Objects: make([]ObjectDef, 0, len(w.Scene.GameObjects)),
	}

	for _, g := range w.Scene.GameObjects {
		b, ok := w.BodyOf(g)
		if !ok || b.Shape() == nil {
			continue
		}
		def := serializeBody(b)
		def.Name = g.Name
		def.Tags = g.Tags
		if path, ok := w.texturePaths[g.Body]; ok {
			def.Visual.Texture = path
		}
		for _, c := range g.Components() {
			if name, props, ok := engine.SerializeScript(c); ok {
				def.Scripts = append(def.Scripts, ScriptDef{Type: name, Props: props})
			}
		}
		sf.Objects = append(sf.Objects, def)
	}
	return sf
}

func serializeBody(b *physics.Body) ObjectDef {
	def := ObjectDef{
		Shape:    serializeShape(b.Shape()),
		Position: []float32{b.Transform.Position.X, b.Transform.Position.Y},
		Rotation: b.Transform.Rotation,
		Scale:    b.Transform.Scale,
		Body: &BodyDef{
			Type:         b.BodyType.String(),
			Mass:         ptr(b.Mass()),
			Friction:     ptr(b.Friction),
			Drag:         ptr(b.Drag),
			Restitution:  ptr(b.Restitution),
			GravityScale: ptr(b.GravityScale),
		},
		Collision: &CollisionDef{
			Trigger:    b.Trigger,
			Collidable: ptr(b.Collidable),
			Layer:      b.Layers.Layer(),
			Mask:       ptr(b.Layers.Mask()),
		},
		Visual: &VisualDef{
			Color:     assets.ColorName(b.Color),
			Outline:   b.Outline,
			Thickness: ptr(b.Thickness),
		},
	}
	if b.Velocity != (rl.Vector2{}) {
		def.Body.Velocity = []float32{b.Velocity.X, b.Velocity.Y}
	}
	return def
}

func serializeShape(s physics.Shape) ShapeDef {
	def := ShapeDef{Kind: s.Kind().String()}
	switch shape := s.(type) {
	case physics.Rectangle:
		def.Width, def.Height = shape.Width, shape.Height
	case physics.Circle:
		def.Radius = shape.Radius
	case physics.Triangle:
		def.Vertices = points(shape.Vertices[:])
	case physics.Polygon:
		def.Vertices = points(shape.Vertices)
	case physics.Line:
		def.Vertices = points([]rl.Vector2{shape.Start, shape.End})
	}
	return def
}

func points(vs []rl.Vector2) [][]float32 {
	out := make([][]float32, len(vs))
	for i, v := range vs {
		out[i] = []float32{v.X, v.Y}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
