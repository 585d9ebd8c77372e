package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause (Space restarts after game over)
  Enter/R      - Restart
  Esc/Q        - Quit
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  ?            - Show all keys

Flags override the config file:
  --fps        - Ticks per second
  --width      - Board columns
  --height     - Board rows
  --sampler    - Food placement: rejection or freelist
  --no-grid    - Hide the grid dots

Examples:
  snake play
  snake play --fps 10
  snake play --width 16 --height 12 --sampler freelist
  snake play --config ./my-snake.yaml --summary`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. Values are read through
// cmd.Flags() so root and play keep separate state.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int("fps", 0, "Ticks per second (overrides tick_rate)")
	cmd.Flags().Int("width", 0, "Board columns (overrides grid.width)")
	cmd.Flags().Int("height", 0, "Board rows (overrides grid.height)")
	cmd.Flags().String("sampler", "", "Food sampler: rejection or freelist")
	cmd.Flags().Bool("no-grid", false, "Hide the grid dots")
	cmd.Flags().Bool("summary", false, "Print a table of the session's rounds on exit")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	snake.SetOptions(optionsFromConfig(cfg))
	game, err := registry.Create("snake")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}

	logger.Info("starting",
		"config", cfg.Source,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tick_rate", cfg.TickRate,
		"sampler", cfg.Food.Sampler,
	)

	// The ledger only feeds the summary; the game runs without it.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("session ledger unavailable", "err", err)
		store = nil
	} else {
		logger = logger.With("session", store.SessionID())
	}

	runErr := tui.Run(game, store, logger, rcfg)

	if store != nil {
		summary, _ := cmd.Flags().GetBool("summary")
		if summary && runErr == nil {
			out, sumErr := tui.SessionSummary(store)
			if sumErr != nil {
				logger.Warn("cannot build session summary", "err", sumErr)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
		}
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	logger.Info("exiting")
	return nil
}

// optionsFromConfig maps the validated config onto game options.
func optionsFromConfig(cfg config.SnakeConfig) snake.Options {
	return snake.Options{
		Width:     cfg.Grid.Width,
		Height:    cfg.Grid.Height,
		Sampler:   cfg.Food.Sampler,
		GridLines: cfg.Render.GridLines,
		CellWidth: cfg.Render.CellWidth,
	}
}
