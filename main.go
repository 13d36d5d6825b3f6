package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := DefaultConfig()
	var updateMs int
	flag.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height in pixels")
	flag.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width in pixels")
	flag.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "pixel size of one cell")
	flag.Float64Var(&cfg.Prob0, "prob0", cfg.Prob0, "probability a cell starts dead")
	flag.IntVar(&updateMs, "updateSpeed", int(cfg.UpdateSpeed/time.Millisecond), "milliseconds between generations")
	flag.BoolVar(&cfg.Noise, "noise", false, "seed the grid from Perlin noise instead of uniform random")
	flag.Int64Var(&cfg.Seed, "seed", 0, "RNG seed, 0 uses the current time")
	flag.Parse()
	cfg.UpdateSpeed = time.Duration(updateMs) * time.Millisecond

	sim, err := NewSimulation(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Conway's Game of Life")

	// Run the game loop
	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
