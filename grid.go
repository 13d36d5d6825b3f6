package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// ErrOutOfRange is returned when a cell is queried outside the grid bounds.
var ErrOutOfRange = errors.New("cell index out of range")

// CellState is the state of a single cell.
type CellState uint8

const (
	Dead  CellState = 0
	Alive CellState = 1
)

// Perlin noise parameters for noise-seeded grids
const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseIter  = 3
	noiseScale = 10.0 // grid cells per noise period
)

// Grid holds the cell states of one generation. Cells are stored row-major
// in a flat slice; a second buffer of the same size receives the next
// generation during Step and the two are swapped. The edges wrap around
// (toroidal), so every cell has exactly 8 neighbors.
type Grid struct {
	width  int
	height int
	cells  []CellState
	next   []CellState
}

// NewGrid creates an all-dead grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfig, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
		next:   make([]CellState, width*height),
	}, nil
}

// NewRandomGrid creates a grid where each cell is independently alive with
// probability 1-prob0. The caller supplies the random source so runs can be
// reproduced from a fixed seed.
func NewRandomGrid(width, height int, prob0 float64, rng *rand.Rand) (*Grid, error) {
	if prob0 < 0 || prob0 > 1 {
		return nil, fmt.Errorf("%w: prob0 %v must be in [0,1]", ErrInvalidConfig, prob0)
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		if rng.Float64() >= prob0 {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// NewNoiseGrid creates a grid seeded from smoothed 2D Perlin noise: a cell
// is dead where the noise value, mapped to [0,1], falls below prob0. Unlike
// NewRandomGrid the live cells come out clustered rather than uniform.
func NewNoiseGrid(width, height int, prob0 float64, seed int64) (*Grid, error) {
	if prob0 < 0 || prob0 > 1 {
		return nil, fmt.Errorf("%w: prob0 %v must be in [0,1]", ErrInvalidConfig, prob0)
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIter, seed)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			v := p.Noise2D(float64(c)/noiseScale, float64(r)/noiseScale)
			if (v+1)/2 >= prob0 {
				g.cells[r*width+c] = Alive
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellAt returns the state of the cell at (row, col).
func (g *Grid) CellAt(row, col int) (CellState, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Dead, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, row, col, g.height, g.width)
	}
	return g.cells[row*g.width+col], nil
}

// Set sets the state of the cell at (row, col).
func (g *Grid) Set(row, col int, state CellState) error {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, row, col, g.height, g.width)
	}
	g.cells[row*g.width+col] = state
	return nil
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cells {
		if s == Alive {
			n++
		}
	}
	return n
}

// liveNeighbors counts the live cells in the Moore neighborhood of
// (row, col), wrapping around the grid edges.
func (g *Grid) liveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + g.height) % g.height
			c := (col + dc + g.width) % g.width
			if g.cells[r*g.width+c] == Alive {
				n++
			}
		}
	}
	return n
}

// Step advances the grid by one generation. Every next state is computed
// from the current cells only, written into the scratch buffer, and the
// buffers are swapped at the end, so no partially updated generation is
// ever visible.
func (g *Grid) Step() {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			n := g.liveNeighbors(r, c)
			alive := g.cells[r*g.width+c] == Alive
			if (alive && n == 2) || n == 3 {
				g.next[r*g.width+c] = Alive
			} else {
				g.next[r*g.width+c] = Dead
			}
		}
	}
	g.cells, g.next = g.next, g.cells
}
