package main

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when configuration or grid parameters fail
// validation before the simulation starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the simulation parameters supplied at startup.
type Config struct {
	WindowWidth  int           // Window width in pixels
	WindowHeight int           // Window height in pixels
	Resolution   int           // Pixel size of one cell
	Prob0        float64       // Probability a cell starts dead
	UpdateSpeed  time.Duration // Delay between generations
	Noise        bool          // Seed the grid from Perlin noise instead of uniform random
	Seed         int64         // RNG seed, 0 means use current time
}

// DefaultConfig returns the default simulation parameters.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  500,
		WindowHeight: 500,
		Resolution:   10,
		Prob0:        0.7,
		UpdateSpeed:  75 * time.Millisecond,
		Seed:         0,
	}
}

// Validate checks the configuration before any resources are acquired.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %d must be positive", ErrInvalidConfig, c.Resolution)
	}
	if c.WindowWidth%c.Resolution != 0 || c.WindowHeight%c.Resolution != 0 {
		return fmt.Errorf("%w: resolution %d must divide window size %dx%d", ErrInvalidConfig, c.Resolution, c.WindowWidth, c.WindowHeight)
	}
	if c.Prob0 < 0 || c.Prob0 > 1 {
		return fmt.Errorf("%w: prob0 %v must be in [0,1]", ErrInvalidConfig, c.Prob0)
	}
	if c.UpdateSpeed < 0 {
		return fmt.Errorf("%w: update speed %v must be non-negative", ErrInvalidConfig, c.UpdateSpeed)
	}
	return nil
}

// Cols returns the number of grid columns derived from the window width.
func (c Config) Cols() int {
	return c.WindowWidth / c.Resolution
}

// Rows returns the number of grid rows derived from the window height.
func (c Config) Rows() int {
	return c.WindowHeight / c.Resolution
}
