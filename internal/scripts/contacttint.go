package scripts

import (
	"physics2d/internal/assets"
	"physics2d/internal/engine"
	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ContactTint recolors the body while anything touches it, collisions and
// trigger overlaps alike.
type ContactTint struct {
	engine.BaseComponent
	Tint rl.Color

	original rl.Color
	touching int
}

func (c *ContactTint) OnCollisionEnter(other *engine.GameObject, contact physics.Contact) {
	c.enter()
}

func (c *ContactTint) OnCollisionExit(other *engine.GameObject) {
	c.exit()
}

func (c *ContactTint) OnTriggerEnter(other *engine.GameObject) {
	c.enter()
}

func (c *ContactTint) OnTriggerExit(other *engine.GameObject) {
	c.exit()
}

// Touching is the number of objects currently in contact.
func (c *ContactTint) Touching() int { return c.touching }

func (c *ContactTint) enter() {
	body := c.body()
	if body == nil {
		return
	}
	if c.touching == 0 {
		c.original = body.Color
		body.Color = c.Tint
	}
	c.touching++
}

func (c *ContactTint) exit() {
	if c.touching == 0 {
		return
	}
	c.touching--
	if c.touching > 0 {
		return
	}
	if body := c.body(); body != nil {
		body.Color = c.original
	}
}

func (c *ContactTint) body() *physics.Body {
	g := c.GetGameObject()
	if g == nil || g.World == nil {
		return nil
	}
	body, _ := g.World.BodyOf(g)
	return body
}

func init() {
	engine.RegisterScript("ContactTint", contactTintFactory, contactTintSerializer)
}

func contactTintFactory(props map[string]any) engine.Component {
	tint, err := assets.ParseColor(engine.PropString(props, "color", "Red"))
	if err != nil {
		tint = rl.Red
	}
	return &ContactTint{Tint: tint}
}

func contactTintSerializer(c engine.Component) map[string]any {
	ct, ok := c.(*ContactTint)
	if !ok {
		return nil
	}
	return map[string]any{
		"color": assets.ColorName(ct.Tint),
	}
}
