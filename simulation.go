package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorAlive = color.RGBA{255, 255, 255, 255}
	colorDead  = color.RGBA{0, 0, 0, 255}
)

// Canvas is the drawing surface for one frame. It is satisfied by a thin
// wrapper over an ebiten image in the real game and by a recorder in tests.
type Canvas interface {
	FillRect(x, y, size float32, clr color.Color)
}

type ebitenCanvas struct {
	screen *ebiten.Image
}

func (e ebitenCanvas) FillRect(x, y, size float32, clr color.Color) {
	vector.DrawFilledRect(e.screen, x, y, size, size, clr, false)
}

// drawGrid fills one rectangle per cell, white for alive and black for
// dead, at the cell's pixel position.
func drawGrid(c Canvas, g *Grid, resolution int) {
	for r := 0; r < g.Height(); r++ {
		for col := 0; col < g.Width(); col++ {
			state, _ := g.CellAt(r, col)
			clr := color.Color(colorDead)
			if state == Alive {
				clr = colorAlive
			}
			c.FillRect(float32(col*resolution), float32(r*resolution), float32(resolution), clr)
		}
	}
}

// Simulation drives the automaton: it owns the grid, seeds it on start or
// restart, and advances one generation per elapsed update interval. It
// implements ebiten.Game, so ebiten owns the window and the frame loop.
type Simulation struct {
	cfg        Config
	grid       *Grid
	rng        *rand.Rand
	running    bool
	generation int
	lastStep   time.Time
	now        func() time.Time
}

// NewSimulation validates the configuration and prepares a simulation on
// the title screen, ready to start.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Simulation{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	return s, nil
}

// seedGrid builds a fresh first generation. Config validation already
// bounds the parameters, so construction cannot fail here.
func (s *Simulation) seedGrid() error {
	var err error
	if s.cfg.Noise {
		s.grid, err = NewNoiseGrid(s.cfg.Cols(), s.cfg.Rows(), s.cfg.Prob0, s.rng.Int63())
	} else {
		s.grid, err = NewRandomGrid(s.cfg.Cols(), s.cfg.Rows(), s.cfg.Prob0, s.rng)
	}
	return err
}

// start leaves the title screen and begins a run with a fresh grid.
func (s *Simulation) start() error {
	if err := s.seedGrid(); err != nil {
		return err
	}
	s.generation = 0
	s.lastStep = s.now()
	s.running = true
	return nil
}

// restart returns to the title screen; the next start reseeds.
func (s *Simulation) restart() {
	s.running = false
	s.grid = nil
}

// advance steps the grid once per elapsed update interval.
func (s *Simulation) advance(now time.Time) {
	if !s.running {
		return
	}
	if now.Sub(s.lastStep) < s.cfg.UpdateSpeed {
		return
	}
	s.grid.Step()
	s.generation++
	s.lastStep = now
}

// Update is called each tick by ebiten.
func (s *Simulation) Update() error {
	if !s.running {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if err := s.start(); err != nil {
				return err
			}
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
		return nil
	}
	s.advance(s.now())
	return nil
}

// Draw is called each frame by ebiten.
func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(colorDead)
	if !s.running {
		s.drawTitle(screen)
		return
	}
	drawGrid(ebitenCanvas{screen}, s.grid, s.cfg.Resolution)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("generation: %d  alive: %d", s.generation, s.grid.Population()))
}

func (s *Simulation) drawTitle(screen *ebiten.Image) {
	x := s.cfg.WindowWidth / 8
	y := s.cfg.WindowHeight / 8
	face := basicfont.Face7x13
	text.Draw(screen, "Conway's Game of Life", face, x, y, colorAlive)
	text.Draw(screen, "Press Space to start", face, x, y+2*face.Height, colorAlive)
	text.Draw(screen, "Press R to restart", face, x, y+4*face.Height, colorAlive)
}

// Layout returns the screen size.
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.WindowWidth, s.cfg.WindowHeight
}
