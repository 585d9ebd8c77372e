// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                - Play (same as "snake play")
//	snake play           - Play with flags overriding the config file
//	snake list           - List available games
//	snake config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>       - RNG seed for reproducible food placement
//	--log <path>         - Write a debug log to this file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a wrap-around board. Eat food to grow, don't bite yourself.

Available commands:
  play     - Play (default)
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  snake
  snake play --fps 8 --width 20 --height 15
  snake play --seed 42 --summary
  snake config > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// The root command plays too, so it takes the play flags.
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
