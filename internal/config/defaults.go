package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration:
// a 32x24 board at 4 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		TickRate: 4,
		Food: FoodConfig{
			Sampler: snake.SamplerRejection,
		},
		Render: RenderConfig{
			GridLines: true,
			CellWidth: 2,
		},
		Source: "built-in",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
