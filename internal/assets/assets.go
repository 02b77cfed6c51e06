package assets

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager caches textures by path so scenes can share them.
type Manager struct {
	textures map[string]rl.Texture2D
}

var manager *Manager

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
	"Magenta":   rl.Magenta,
}

var nameByColor = map[rl.Color]string{}

func init() {
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// ParseColor accepts a palette name or #rrggbb / #rrggbbaa.
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return rl.Color{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	var c rl.Color
	var err error
	if c.R, err = parse(0); err != nil {
		return rl.Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	if c.G, err = parse(2); err != nil {
		return rl.Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	if c.B, err = parse(4); err != nil {
		return rl.Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	c.A = 255
	if len(hex) == 8 {
		if c.A, err = parse(6); err != nil {
			return rl.Color{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
	}
	return c, nil
}

// ColorName returns the palette name of c, or its #rrggbbaa form.
func ColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func Init() {
	manager = &Manager{
		textures: make(map[string]rl.Texture2D),
	}
}

// LoadTexture needs an open window.
func LoadTexture(path string) rl.Texture2D {
	if manager == nil {
		Init()
	}

	if texture, exists := manager.textures[path]; exists {
		return texture
	}

	texture := rl.LoadTexture(path)
	manager.textures[path] = texture
	return texture
}

func Unload() {
	if manager == nil {
		return
	}

	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}

	manager.textures = make(map[string]rl.Texture2D)
}
