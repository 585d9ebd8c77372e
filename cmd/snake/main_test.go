package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// newPlayFlags returns a command carrying the play flags, isolated from the globals.
func newPlayFlags(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addPlayFlags(cmd)
	for name, value := range set {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("setting --%s: %v", name, err)
		}
	}
	return cmd
}

// isolateConfig makes LoadSnake fall back to the embedded defaults.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	old := flagConfig
	flagConfig = ""
	t.Cleanup(func() { flagConfig = old })
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	isolateConfig(t)

	cmd := newPlayFlags(t, map[string]string{
		"fps":     "10",
		"width":   "16",
		"height":  "12",
		"sampler": "freelist",
		"no-grid": "true",
	})

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.TickRate != 10 || cfg.Grid.Width != 16 || cfg.Grid.Height != 12 {
		t.Errorf("numeric overrides not applied: %+v", cfg)
	}
	if cfg.Food.Sampler != snake.SamplerFreeList || cfg.Render.GridLines {
		t.Errorf("sampler/grid overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigUnchangedFlagsKeepFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 9\nrender:\n  grid_lines: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, err := loadConfig(newPlayFlags(t, nil))
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.TickRate != 9 || cfg.Render.GridLines {
		t.Errorf("file values should survive default flags: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadOverrides(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name    string
		flags   map[string]string
		wantErr error
	}{
		{"tiny board", map[string]string{"width": "2"}, config.ErrInvalidGrid},
		{"zero fps", map[string]string{"fps": "0"}, config.ErrInvalidTickRate},
		{"unknown sampler", map[string]string{"sampler": "magic"}, config.ErrUnknownSampler},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(newPlayFlags(t, tc.flags))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.GridConfig{Width: 10, Height: 8}
	cfg.Render.CellWidth = 1

	o := optionsFromConfig(cfg)
	if o.Width != 10 || o.Height != 8 || o.CellWidth != 1 || !o.GridLines || o.Sampler != snake.SamplerRejection {
		t.Errorf("unexpected options: %+v", o)
	}
}

func TestRunConfigPrintsYAML(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "config"}
	cmd.SetOut(&out)

	if err := runConfig(cmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}
	text := out.String()
	if !strings.HasPrefix(text, "# source: embedded\n") {
		t.Errorf("missing source comment:\n%s", text)
	}
	if !strings.Contains(text, "tick_rate: 4") || !strings.Contains(text, "sampler: rejection") {
		t.Errorf("unexpected YAML:\n%s", text)
	}
}

func TestRunListShowsSnake(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{Use: "list"}
	cmd.SetOut(&out)

	runList(cmd, nil)
	if !strings.Contains(out.String(), "snake") || !strings.Contains(out.String(), "Snake") {
		t.Errorf("snake not listed:\n%s", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("unknown level should be rejected")
	}

	logger, closeLog, err := newLogger("", "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("discarded")
	if err := closeLog(); err != nil {
		t.Errorf("closing discard logger: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closeLog, err = newLogger(path, "warn")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "score", 30)
	if err := closeLog(); err != nil {
		t.Fatalf("closing log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(text, "shown") || !strings.Contains(text, "score=30") || !strings.Contains(text, "snake") {
		t.Errorf("unexpected log output: %q", text)
	}
}
