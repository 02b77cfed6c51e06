package main

import (
	"flag"
	"log"

	"physics2d/internal/game"
)

func main() {
	scene := flag.String("scene", "", "YAML scene file to load (empty = built-in scene)")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	watch := flag.Bool("watch", false, "reload the scene file when it changes on disk")
	debug := flag.Bool("debug", false, "start with debug draw enabled")
	flag.Parse()

	g := game.New(game.Config{
		ScenePath: *scene,
		Width:     int32(*width),
		Height:    int32(*height),
		Watch:     *watch,
		Debug:     *debug,
	})
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
