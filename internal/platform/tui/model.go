package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// sizer is implemented by games that need a minimum screen size.
// Ticks are held while the screen is smaller.
type sizer interface {
	MinSize() (w, h int)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives a game once per tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	roundTicks uint64 // Ticks played in the current round
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.layout()
	return m
}

// Init starts the first round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick. Quit is applied at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot(screenshotDir())
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.inputFrame) {
		return m.step(false)
	}
	return m, nil
}

// handleResize keeps the screen buffer in sync with the terminal.
// The round is not reset; a board that no longer fits simply pauses the ticks.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout()
	return m, nil
}

// layout sizes the game screen to leave room for the help footer.
func (m *Model) layout() {
	m.help.Width = m.width
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, max(0, m.height-helpHeight))
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	return m.step(true)
}

// step runs the game for one tick and handles the resulting events.
// When schedule is set the next tick is requested.
func (m Model) step(schedule bool) (tea.Model, tea.Cmd) {
	if m.tooSmall() && !m.inputFrame.Has(core.ActionQuit) {
		m.inputFrame.Clear()
		return m, m.next(schedule)
	}

	prev := m.game.State()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Has(core.EventRestarted) {
		m.roundTicks = 0
	}
	if moved(prev, result) {
		m.roundTicks++
	}

	for _, ev := range result.Events {
		m.handleEvent(ev, prev, result.State)
	}

	if m.gameState.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.next(schedule)
}

func (m Model) next(schedule bool) tea.Cmd {
	if !schedule {
		return nil
	}
	return tickCmd(m.config.TickRate)
}

// handleEvent logs an event and keeps the session ledger current.
func (m *Model) handleEvent(ev core.Event, prev, st core.GameState) {
	switch ev {
	case core.EventAte:
		m.logger.Debug("food eaten", "score", st.Score, "length", st.Length)

	case core.EventGameOver:
		m.logger.Info("game over", "score", st.Score, "length", st.Length, "ticks", m.roundTicks)
		m.recordRound(storage.EndCollision, st)

	case core.EventRestarted:
		m.logger.Info("round restarted")

	case core.EventPaused, core.EventResumed:
		m.logger.Debug(ev.String(), "score", st.Score)

	case core.EventQuit:
		m.logger.Info("quit", "score", st.Score, "length", st.Length)
		// A round that already ended was recorded on game over.
		if !prev.GameOver && !prev.Terminated && st.Score > 0 {
			m.recordRound(storage.EndQuit, st)
		}
	}
}

// recordRound stores a finished round. Failures only cost the session summary.
func (m *Model) recordRound(reason string, st core.GameState) {
	if m.store == nil {
		return
	}
	id, err := m.store.RecordRound(storage.Round{
		GameID:    m.game.ID(),
		Score:     st.Score,
		Length:    st.Length,
		Ticks:     m.roundTicks,
		EndReason: reason,
	})
	if err != nil {
		m.logger.Warn("could not record round", "err", err)
		return
	}
	m.logger.Debug("round recorded", "id", id, "reason", reason)
}

// tooSmall reports whether the screen cannot fit the game.
func (m Model) tooSmall() bool {
	s, ok := m.game.(sizer)
	if !ok {
		return false
	}
	w, h := s.MinSize()
	return m.screen.Width() < w || m.screen.Height() < h
}

// moved reports whether the board was updated during the tick.
// The tick that resumes or restarts updates it too.
func moved(prev core.GameState, r core.StepResult) bool {
	if r.Has(core.EventPaused) || r.Has(core.EventQuit) {
		return false
	}
	running := !prev.GameOver && !prev.Paused && !prev.Terminated
	return running || r.Has(core.EventResumed) || r.Has(core.EventRestarted)
}

// screenshotDir returns the directory screenshots are written to.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// saveScreenshot writes the current frame as plain text into dir.
func (m *Model) saveScreenshot(dir string) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
