package scripts

import "physics2d/internal/engine"

// Rotator spins the object's body at a fixed rate in degrees per second.
type Rotator struct {
	engine.BaseComponent
	Speed float32
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || g.World == nil {
		return
	}
	body, ok := g.World.BodyOf(g)
	if !ok {
		return
	}
	body.Transform.Rotation += r.Speed * deltaTime
	if body.Transform.Rotation > 360 {
		body.Transform.Rotation -= 360
	} else if body.Transform.Rotation < -360 {
		body.Transform.Rotation += 360
	}
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func rotatorFactory(props map[string]any) engine.Component {
	return &Rotator{Speed: engine.PropFloat(props, "speed", 90)}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}
