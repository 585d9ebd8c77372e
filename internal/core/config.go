package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 4)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 4,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score
	Length     int  // Current snake length
	GameOver   bool // Whether the round has ended
	Paused     bool // Whether the game is paused
	Terminated bool // Whether the player asked to quit
}

// Event is a notable transition that happened during a tick.
// The platform uses events for logging and session bookkeeping.
type Event int

const (
	EventAte Event = iota + 1
	EventGameOver
	EventRestarted
	EventPaused
	EventResumed
	EventQuit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
