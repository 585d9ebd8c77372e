package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way "play" does and prints it as YAML.
The output is a valid config file.

Examples:
  snake config
  snake config --config ./my-snake.yaml
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", cfg.Source)
	_, err = out.Write(data)
	return err
}

// loadConfig loads the config file and applies the play flags that cmd defines.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate, _ = flags.GetInt("fps")
	}
	if flags.Changed("width") {
		cfg.Grid.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Grid.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("sampler") {
		cfg.Food.Sampler, _ = flags.GetString("sampler")
	}
	if flags.Changed("no-grid") {
		noGrid, _ := flags.GetBool("no-grid")
		cfg.Render.GridLines = !noGrid
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}
