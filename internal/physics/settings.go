package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Settings is the world-wide simulation configuration. Values are not
// validated; a zero StepRate is a caller error.
type Settings struct {
	Gravity    rl.Vector2
	StepRate   float32 // fixed steps per second
	Iterations int     // resolver passes per step
	// MaxSubSteps bounds the steps one Advance may run. Zero means unbounded.
	MaxSubSteps int
}

func DefaultSettings() Settings {
	return Settings{
		Gravity:    rl.Vector2{X: 0, Y: 980},
		StepRate:   60,
		Iterations: 4,
	}
}
