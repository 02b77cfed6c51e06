package scripts

import "physics2d/internal/engine"

// Lifetime destroys its object after Seconds of simulated time.
type Lifetime struct {
	engine.BaseComponent
	Seconds float32

	elapsed float32
}

func (l *Lifetime) Update(deltaTime float32) {
	g := l.GetGameObject()
	if g == nil || g.World == nil {
		return
	}
	l.elapsed += deltaTime
	if l.elapsed >= l.Seconds {
		g.World.Destroy(g)
	}
}

// Remaining returns the seconds left before the object is destroyed.
func (l *Lifetime) Remaining() float32 {
	if l.elapsed >= l.Seconds {
		return 0
	}
	return l.Seconds - l.elapsed
}

func init() {
	engine.RegisterScript("Lifetime", lifetimeFactory, lifetimeSerializer)
}

func lifetimeFactory(props map[string]any) engine.Component {
	return &Lifetime{Seconds: engine.PropFloat(props, "seconds", 5)}
}

func lifetimeSerializer(c engine.Component) map[string]any {
	l, ok := c.(*Lifetime)
	if !ok {
		return nil
	}
	return map[string]any{
		"seconds": l.Seconds,
	}
}
