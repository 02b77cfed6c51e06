package game

import (
	"fmt"
	"os"

	"physics2d/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Prefs is the view state kept between runs.
type Prefs struct {
	CameraTarget []float32 `yaml:"camera_target,flow"`
	CameraZoom   float32   `yaml:"camera_zoom"`
	ShowPanel    bool      `yaml:"show_panel"`
	SpawnType    int32     `yaml:"spawn_type"`
	DebugDraw    bool      `yaml:"debug_draw"`
}

const prefsFile = ".physics2d_prefs.yaml"

// LoadPrefs reads prefs from path. A missing file is not an error and
// returns nil.
func LoadPrefs(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	var prefs Prefs
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	return &prefs, nil
}

func SavePrefs(path string, prefs Prefs) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// prefs captures the current view state.
func (g *Game) prefs() Prefs {
	return Prefs{
		CameraTarget: []float32{g.Camera.Target.X, g.Camera.Target.Y},
		CameraZoom:   g.Camera.Zoom,
		ShowPanel:    g.ShowPanel,
		SpawnType:    g.spawnType,
		DebugDraw:    g.World.DebugDraw,
	}
}

// ApplyPrefs restores view state. Out of range values are ignored.
func (g *Game) ApplyPrefs(prefs *Prefs) {
	if prefs == nil {
		return
	}
	if len(prefs.CameraTarget) == 2 {
		g.Camera.Target = rl.Vector2{X: prefs.CameraTarget[0], Y: prefs.CameraTarget[1]}
	}
	if prefs.CameraZoom >= camera.MinZoom && prefs.CameraZoom <= camera.MaxZoom {
		g.Camera.Zoom = prefs.CameraZoom
	}
	g.ShowPanel = prefs.ShowPanel
	if prefs.SpawnType >= 0 && int(prefs.SpawnType) < len(spawnTypes) {
		g.spawnType = prefs.SpawnType
	}
	g.World.DebugDraw = g.World.DebugDraw || prefs.DebugDraw
}
