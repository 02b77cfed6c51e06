package game

import (
	"fmt"
	"math"
	"strings"

	"physics2d/internal/physics"
	"physics2d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 280
	panelMargin = 10
	rowHeight   = 28
)

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

// initRayguiStyle sets up the indigo dark theme
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// panelValues mirrors the editable simulation settings as slider values.
type panelValues struct {
	GravityX    float32
	GravityY    float32
	StepRate    float32
	Iterations  float32
	MaxSubSteps float32
	Debug       bool
	Paused      bool
}

func readPanel(w *world.World, paused bool) panelValues {
	s := w.Physics.Settings()
	return panelValues{
		GravityX:    s.Gravity.X,
		GravityY:    s.Gravity.Y,
		StepRate:    s.StepRate,
		Iterations:  float32(s.Iterations),
		MaxSubSteps: float32(s.MaxSubSteps),
		Debug:       w.DebugDraw,
		Paused:      paused,
	}
}

// apply writes v back to the world. Counts are rounded to whole numbers.
func (v panelValues) apply(w *world.World) {
	w.Physics.ApplySettings(physics.Settings{
		Gravity:     rl.Vector2{X: v.GravityX, Y: v.GravityY},
		StepRate:    v.StepRate,
		Iterations:  int(math.Round(float64(v.Iterations))),
		MaxSubSteps: int(math.Round(float64(v.MaxSubSteps))),
	})
	w.DebugDraw = v.Debug
}

// panelBounds is the screen area the settings panel covers.
func panelBounds(screenWidth int32) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(screenWidth) - panelWidth - panelMargin,
		Y:      panelMargin,
		Width:  panelWidth,
		Height: 16*rowHeight + 20,
	}
}

// drawPanel draws the settings panel and applies any edits.
func (g *Game) drawPanel() {
	if !g.ShowPanel {
		return
	}
	bounds := panelBounds(int32(rl.GetScreenWidth()))
	gui.Panel(bounds, "Simulation")

	x := bounds.X + 90
	width := bounds.Width - 140
	y := bounds.Y + 34
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: width, Height: 20}
		y += rowHeight
		return r
	}
	check := func() rl.Rectangle {
		r := rl.Rectangle{X: bounds.X + 15, Y: y, Width: 20, Height: 20}
		y += rowHeight
		return r
	}
	full := func() rl.Rectangle {
		r := rl.Rectangle{X: bounds.X + 15, Y: y, Width: bounds.Width - 30, Height: 22}
		y += rowHeight
		return r
	}

	before := readPanel(g.World, g.Paused)
	v := before
	v.GravityX = gui.Slider(row(), "Gravity X", fmt.Sprintf("%.0f", v.GravityX), v.GravityX, -2000, 2000)
	v.GravityY = gui.Slider(row(), "Gravity Y", fmt.Sprintf("%.0f", v.GravityY), v.GravityY, -2000, 2000)
	v.StepRate = gui.Slider(row(), "Step rate", fmt.Sprintf("%.0f", v.StepRate), v.StepRate, 15, 240)
	v.Iterations = gui.Slider(row(), "Iterations", fmt.Sprintf("%.0f", v.Iterations), v.Iterations, 1, 20)
	v.MaxSubSteps = gui.Slider(row(), "Max steps", fmt.Sprintf("%.0f", v.MaxSubSteps), v.MaxSubSteps, 0, 16)
	v.Debug = gui.CheckBox(check(), "Debug draw", v.Debug)
	v.Paused = gui.CheckBox(check(), "Paused", v.Paused)
	if v != before {
		v.apply(g.World)
		g.Paused = v.Paused
	}

	gui.Label(full(), "Spawn shape (Tab)")
	g.spawnType = gui.ToggleGroup(rl.Rectangle{X: bounds.X + 15, Y: y, Width: (bounds.Width - 30) / float32(len(spawnTypes)), Height: 22},
		spawnTypeNames(), g.spawnType)
	y += rowHeight

	if gui.Button(full(), "Step (N)") {
		g.stepRequested = true
	}
	if gui.Button(full(), "Undo spawn (Ctrl+Z)") {
		g.history.pop(g.World)
	}
	if gui.Button(full(), "Save scene (Ctrl+S)") {
		g.saveScene()
	}
	if gui.Button(full(), "Reload scene (R)") {
		g.reloadScene()
	}
	if gui.Button(full(), "Reset settings") {
		g.World.Physics.ApplySettings(physics.DefaultSettings())
	}

	stats := fmt.Sprintf("Bodies: %d  Steps/frame: %d", g.World.Physics.Len(), g.lastSteps)
	rl.DrawText(stats, int32(bounds.X)+15, int32(y)+4, 14, colorAccentLight)
}

func spawnTypeNames() string {
	names := make([]string, len(spawnTypes))
	for i, st := range spawnTypes {
		names[i] = st.Name
	}
	return strings.Join(names, ";")
}

// drawHUD draws the key help and status text in the top-left corner.
func (g *Game) drawHUD() {
	rl.DrawText("LMB spawn   RMB drag raycast   MMB pan   Wheel zoom", 10, 10, 16, colorTextSecondary)
	rl.DrawText("P pause   N step   F1 debug   H panel   Ctrl+Z undo   Ctrl+S save   R reload", 10, 30, 16, colorTextSecondary)
	rl.DrawFPS(10, 52)

	status := fmt.Sprintf("%s  |  %s  |  %d bodies", g.World.Scene.Name, spawnTypes[g.spawnType].Name, g.World.Physics.Len())
	if g.Paused {
		status += "  |  PAUSED"
	}
	rl.DrawText(status, 10, 74, 16, colorAccentLight)

	if g.message != "" && rl.GetTime()-g.messageTime < 3 {
		rl.DrawText(g.message, 10, 96, 16, colorTextMuted)
	}

	if g.World.DebugDraw {
		rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs), 10, int32(rl.GetScreenHeight())-26, 16, rl.Green)
	}
}
