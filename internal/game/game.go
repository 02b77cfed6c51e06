package game

import (
	"fmt"
	"log"
	"time"

	"physics2d/internal/assets"
	"physics2d/internal/camera"
	"physics2d/internal/engine"
	"physics2d/internal/physics"
	"physics2d/internal/scripts"
	"physics2d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	rayMaxDistance = 5000
	spawnLifetime  = 60
)

// Config is the process level configuration, usually from flags.
type Config struct {
	ScenePath string
	Width     int32
	Height    int32
	Watch     bool
	Debug     bool
}

type Game struct {
	Config    Config
	World     *world.World
	Renderer  *world.Renderer
	Camera    *camera.Camera
	Paused    bool
	ShowPanel bool

	spawnType     int32
	spawnCount    int
	history       spawnHistory
	stepRequested bool
	lastSteps     int

	rayActive bool
	rayOrigin rl.Vector2

	message     string
	messageTime float64

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg Config) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	return &Game{
		Config:    cfg,
		World:     world.New(),
		Renderer:  world.NewRenderer(),
		Camera:    camera.New(float32(cfg.Width), float32(cfg.Height)),
		ShowPanel: true,
	}
}

// Setup loads the configured scene, or builds the built-in one, without
// opening a window.
func (g *Game) Setup() error {
	if g.Config.ScenePath != "" {
		if err := g.World.LoadScene(g.Config.ScenePath); err != nil {
			return err
		}
		if g.Config.Watch {
			if err := g.World.WatchScene(); err != nil {
				log.Printf("Game: hot reload disabled: %v", err)
			}
		}
	} else {
		BuildDefaultScene(g.World, float32(g.Config.Width), float32(g.Config.Height))
	}
	if g.Config.Debug {
		g.World.DebugDraw = true
	}
	g.World.Start()
	return nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(g.Config.Width, g.Config.Height, "physics2d")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initRayguiStyle()
	defer assets.Unload()

	if err := g.Setup(); err != nil {
		return err
	}
	defer g.World.Unload()

	prefs, err := LoadPrefs(prefsFile)
	if err != nil {
		log.Printf("Game: ignoring prefs: %v", err)
	}
	g.ApplyPrefs(prefs)

	log.Printf("Game: started with %d bodies", g.World.Physics.Len())

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	if err := SavePrefs(prefsFile, g.prefs()); err != nil {
		log.Printf("Game: %v", err)
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.handleInput()

	if g.Paused {
		if g.stepRequested {
			g.World.StepOnce()
			g.lastSteps = 1
		} else {
			g.lastSteps = 0
		}
	} else {
		g.lastSteps = g.World.Update(deltaTime)
	}
	g.stepRequested = false

	if g.World.PollReload() {
		g.history.clear()
		g.notify("Scene reloaded")
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleInput() {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.World.DebugDraw = !g.World.DebugDraw
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.Paused = !g.Paused
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.stepRequested = true
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.ShowPanel = !g.ShowPanel
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.spawnType = (g.spawnType + 1) % int32(len(spawnTypes))
	}
	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		g.history.pop(g.World)
	}
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		g.saveScene()
	}
	if !ctrl && rl.IsKeyPressed(rl.KeyR) {
		g.reloadScene()
	}

	g.Camera.Update()

	mouse := rl.GetMousePosition()
	mouseWorld := g.Camera.ScreenToWorld(mouse)
	overPanel := g.ShowPanel && rl.CheckCollisionPointRec(mouse, panelBounds(int32(rl.GetScreenWidth())))

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overPanel {
		g.Spawn(mouseWorld)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) && !overPanel {
		g.rayActive = true
		g.rayOrigin = mouseWorld
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		g.rayActive = false
	}
}

// Spawn drops the selected body type at pos. Spawned objects expire after
// spawnLifetime seconds.
func (g *Game) Spawn(pos rl.Vector2) *engine.GameObject {
	st := spawnTypes[g.spawnType]
	body := st.Build()
	body.Transform.Position = pos
	body.Color = spawnPalette[g.spawnCount%len(spawnPalette)]
	g.spawnCount++

	obj := engine.NewGameObject(fmt.Sprintf("%s_%d", st.Name, g.spawnCount))
	obj.Tags = []string{"spawned"}
	obj.AddComponent(&scripts.Lifetime{Seconds: spawnLifetime})
	g.World.Spawn(obj, body)
	g.history.push(obj)
	return obj
}

func (g *Game) saveScene() {
	path := g.World.ScenePath
	if path == "" {
		path = "scene.yaml"
	}
	if err := g.World.SaveScene(path); err != nil {
		g.notify(fmt.Sprintf("Save failed: %v", err))
		return
	}
	g.World.ScenePath = path
	g.notify("Saved " + path)
}

func (g *Game) reloadScene() {
	if g.World.ScenePath == "" {
		g.World.Clear()
		BuildDefaultScene(g.World, float32(g.Config.Width), float32(g.Config.Height))
		g.history.clear()
		g.notify("Scene reset")
		return
	}
	if err := g.World.LoadScene(g.World.ScenePath); err != nil {
		g.notify(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	g.history.clear()
	g.notify("Scene reloaded")
}

func (g *Game) notify(msg string) {
	g.message = msg
	g.messageTime = rl.GetTime()
	log.Printf("Game: %s", msg)
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	screenW, screenH := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	cam := g.Camera.Camera2D()
	view := world.ViewBounds(cam, screenW, screenH)

	rl.BeginMode2D(cam)
	g.Renderer.Draw(g.World, view)
	g.drawRay()
	rl.EndMode2D()

	if g.World.DebugDraw {
		g.Renderer.GravityAnchor = rl.Vector2{X: 80, Y: 180}
		g.Renderer.DrawGravity(g.World.Physics.Gravity())
	}
	g.drawPanel()
	g.drawHUD()
	rl.EndDrawing()

	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

// drawRay casts from the right-click point toward the mouse and shows the
// nearest hit with its normal.
func (g *Game) drawRay() {
	if !g.rayActive {
		return
	}
	target := g.Camera.ScreenToWorld(rl.GetMousePosition())
	dir := rl.Vector2Subtract(target, g.rayOrigin)
	if rl.Vector2Length(dir) == 0 {
		return
	}

	rl.DrawCircleV(g.rayOrigin, 4, colorAccentLight)
	hit, ok := g.World.Raycast(g.rayOrigin, dir, rayMaxDistance)
	if !ok {
		end := rl.Vector2Add(g.rayOrigin, rl.Vector2Scale(rl.Vector2Normalize(dir), rayMaxDistance))
		rl.DrawLineV(g.rayOrigin, end, colorTextMuted)
		return
	}

	rl.DrawLineEx(g.rayOrigin, hit.Point, 2, rl.Yellow)
	rl.DrawCircleV(hit.Point, 4, rl.Yellow)
	rl.DrawLineEx(hit.Point, rl.Vector2Add(hit.Point, rl.Vector2Scale(hit.Normal, 30)), 2, rl.SkyBlue)
	if hit.GameObject != nil {
		label := fmt.Sprintf("%s  %.0f", hit.GameObject.Name, hit.Distance)
		rl.DrawText(label, int32(hit.Point.X)+8, int32(hit.Point.Y)-18, 14, rl.Yellow)
	}
}

// BuildDefaultScene fills w with a walled box, a ramp, a row of pegs and a
// sensor zone, sized to a width x height screen.
func BuildDefaultScene(w *world.World, width, height float32) {
	w.Scene.Name = "default"

	static := func(name string, body *physics.Body, pos rl.Vector2) {
		body.BodyType = physics.Static
		body.Transform.Position = pos
		body.Color = rl.DarkGray
		w.Spawn(engine.NewGameObject(name), body)
	}

	ground := physics.NewBody()
	ground.SetRectangle(width, 40)
	static("ground", ground, rl.Vector2{X: width / 2, Y: height - 20})

	left := physics.NewBody()
	left.SetRectangle(40, height)
	static("wall_left", left, rl.Vector2{X: 20, Y: height / 2})

	right := physics.NewBody()
	right.SetRectangle(40, height)
	static("wall_right", right, rl.Vector2{X: width - 20, Y: height / 2})

	ramp := physics.NewBody()
	ramp.SetRectangle(360, 20)
	ramp.Transform.Rotation = 20
	static("ramp", ramp, rl.Vector2{X: width * 0.3, Y: height * 0.55})

	for i := 0; i < 5; i++ {
		peg := physics.NewBody()
		peg.SetCircle(12)
		peg.Restitution = 0.8
		static(fmt.Sprintf("peg_%d", i), peg, rl.Vector2{X: width*0.55 + float32(i)*70, Y: height * 0.4})
	}

	sensor := physics.NewBody()
	sensor.SetRectangle(200, 120)
	sensor.Trigger = true
	sensor.Outline = true
	sensor.Thickness = 2
	sensor.BodyType = physics.Static
	sensor.Color = rl.Green
	sensor.Transform.Position = rl.Vector2{X: width * 0.75, Y: height - 100}
	zone := engine.NewGameObject("sensor")
	zone.AddComponent(&scripts.ContactTint{Tint: rl.Red})
	w.Spawn(zone, sensor)

	box := physics.NewBody()
	box.SetRectangle(50, 50)
	box.Color = rl.SkyBlue
	box.Transform.Position = rl.Vector2{X: width * 0.25, Y: height * 0.2}
	w.Spawn(engine.NewGameObject("box"), box)
}
