// Stress test timing the O(n²) collision pipeline at growing body counts
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"physics2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	steps := flag.Int("steps", 120, "fixed steps to simulate per body count")
	seed := flag.Int64("seed", 42, "random seed for body placement")
	flag.Parse()
	if *steps < 1 {
		*steps = 1
	}

	testCounts := []int{50, 100, 200, 400, 800, 1600}
	for _, count := range testCounts {
		run(count, *steps, *seed)
	}
}

func run(count, steps int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	w := physics.NewWorld()

	// Arena scales with count to keep density reasonable
	size := float32(400) + float32(count)*2

	floor := physics.NewBody()
	floor.BodyType = physics.Static
	floor.SetRectangle(size, 40)
	floor.Transform.Position = rl.Vector2{X: size / 2, Y: size + 20}
	w.AddObject(floor)

	for i := 0; i < count; i++ {
		b := physics.NewBody()
		if i%2 == 0 {
			b.SetCircle(4 + rng.Float32()*6)
		} else {
			b.SetRectangle(8+rng.Float32()*12, 8+rng.Float32()*12)
			b.Transform.Rotation = rng.Float32() * 90
		}
		b.Transform.Position = rl.Vector2{X: rng.Float32() * size, Y: rng.Float32() * size}
		w.AddObject(b)
	}

	// Warm up
	w.Step(w.FixedTimeStep())

	events := 0
	start := time.Now()
	for i := 0; i < steps; i++ {
		w.Step(w.FixedTimeStep())
		events += len(w.Events())
	}
	perStep := time.Since(start) / time.Duration(steps)

	pairs := count * (count + 1) / 2
	fmt.Printf("%5d bodies: %10v/step | %8d pairs tested | %6d events | %.0f steps/s\n",
		count, perStep.Round(time.Microsecond), pairs, events, float64(time.Second)/float64(perStep))
}
