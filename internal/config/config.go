// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Validation errors.
var (
	ErrInvalidGrid      = errors.New("config: grid must be at least 4x4")
	ErrInvalidTickRate  = errors.New("config: tick_rate must be between 1 and 120")
	ErrInvalidCellWidth = errors.New("config: render.cell_width must be 1 or 2")
	ErrUnknownSampler   = errors.New("config: unknown food sampler")
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid     GridConfig   `yaml:"grid"`
	TickRate int          `yaml:"tick_rate"`
	Food     FoodConfig   `yaml:"food"`
	Render   RenderConfig `yaml:"render"`

	// Source is where the configuration was read from.
	Source string `yaml:"-"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FoodConfig defines how food is placed.
type FoodConfig struct {
	Sampler string `yaml:"sampler"` // "rejection" or "freelist"
}

// RenderConfig defines presentation options.
type RenderConfig struct {
	GridLines bool `yaml:"grid_lines"`
	CellWidth int  `yaml:"cell_width"` // Terminal columns per cell
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidGrid, c.Grid.Width, c.Grid.Height)
	}
	if c.TickRate < 1 || c.TickRate > 120 {
		return fmt.Errorf("%w (got %d)", ErrInvalidTickRate, c.TickRate)
	}
	if c.Render.CellWidth != 1 && c.Render.CellWidth != 2 {
		return fmt.Errorf("%w (got %d)", ErrInvalidCellWidth, c.Render.CellWidth)
	}
	switch c.Food.Sampler {
	case snake.SamplerRejection, snake.SamplerFreeList:
	default:
		return fmt.Errorf("%w %q", ErrUnknownSampler, c.Food.Sampler)
	}
	return nil
}
