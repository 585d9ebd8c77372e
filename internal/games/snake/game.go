package snake

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Phase is the state of the game loop.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options control the board and presentation of a game.
type Options struct {
	Width     int    // Grid columns
	Height    int    // Grid rows
	Sampler   string // Food sampler name, see NewSampler
	GridLines bool   // Draw dots on empty cells
	CellWidth int    // Terminal columns per grid cell (1 or 2)
}

// DefaultOptions returns the classic 32x24 board.
func DefaultOptions() Options {
	return Options{
		Width:     32,
		Height:    24,
		Sampler:   SamplerRejection,
		GridLines: true,
		CellWidth: 2,
	}
}

// Options applied to games created through the registry.
var (
	optionsMu       sync.Mutex
	selectedOptions = DefaultOptions()
)

// SetOptions sets the options used by New.
func SetOptions(o Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	selectedOptions = o
}

// CurrentOptions returns the options used by New.
func CurrentOptions() Options {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	return selectedOptions
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// Game implements the snake game loop: input, update and render once per tick.
type Game struct {
	opts    Options
	rng     *rand.Rand
	grid    Grid
	sampler Sampler
	snake   *Snake
	food    *Food
	phase   Phase
	tick    uint64
	best    int // Best final score since the process started
}

// New creates a game with the currently selected options.
func New() *Game {
	return NewWithOptions(CurrentOptions())
}

// NewWithOptions creates a game with explicit options.
// Invalid sizes fall back to the defaults; configuration is validated earlier.
func NewWithOptions(o Options) *Game {
	def := DefaultOptions()
	if o.Width < 4 || o.Height < 4 {
		o.Width, o.Height = def.Width, def.Height
	}
	if o.CellWidth != 1 && o.CellWidth != 2 {
		o.CellWidth = def.CellWidth
	}
	sampler, err := NewSampler(o.Sampler)
	if err != nil {
		sampler = RejectionSampler{}
	}

	g := &Game{
		opts:    o,
		grid:    NewGrid(o.Width, o.Height),
		sampler: sampler,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset seeds the RNG and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.snake = NewSnake(g.grid)
	g.food = NewFood(g.grid, g.sampler, g.rng)
	g.food.Relocate(g.snake.segments)
	g.phase = PhaseRunning
}

// restart begins a new round without reseeding, keeping the session best.
func (g *Game) restart() {
	g.snake.Reset()
	g.food.Relocate(g.snake.segments)
	g.phase = PhaseRunning
}

// Step runs one tick. Input transitions are applied first; the board is
// then updated if the game is running, including on the tick that resumes
// or restarts it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if in.Has(core.ActionQuit) {
		g.phase = PhaseTerminated
		return g.result(core.EventQuit)
	}

	switch g.phase {
	case PhaseRunning:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			return g.result(core.EventPaused)
		}

	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhaseRunning
			events = append(events, core.EventResumed)
		}

	case PhaseGameOver:
		// Space doubles as restart on the game over screen.
		if in.Has(core.ActionRestart) || in.Has(core.ActionPause) {
			g.restart()
			events = append(events, core.EventRestarted)
		}

	case PhaseTerminated:
	}

	if g.phase == PhaseRunning {
		g.snake.Steer(turns(in))
		events = append(events, g.update()...)
	}
	return g.result(events...)
}

// turns converts the steering keys of a frame to directions, oldest first.
func turns(in core.InputFrame) []Direction {
	var ds []Direction
	for _, a := range in.Directions() {
		if d, ok := directionFor(a); ok {
			ds = append(ds, d)
		}
	}
	return ds
}

// update advances the snake and resolves collision and food.
func (g *Game) update() []core.Event {
	if g.snake.Advance() == Collided {
		g.phase = PhaseGameOver
		if g.snake.score > g.best {
			g.best = g.snake.score
		}
		return []core.Event{core.EventGameOver}
	}

	if g.food.At(g.snake.Head()) {
		g.snake.Grow()
		g.food.Relocate(g.snake.segments)
		return []core.Event{core.EventAte}
	}
	return nil
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.snake.score,
		Length:     len(g.snake.segments),
		GameOver:   g.phase == PhaseGameOver,
		Paused:     g.phase == PhasePaused,
		Terminated: g.phase == PhaseTerminated,
	}
}

// Phase returns the loop state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Best returns the best final score since the process started.
func (g *Game) Best() int {
	return g.best
}

// Options returns the options the game was built with.
func (g *Game) Options() Options {
	return g.opts
}
