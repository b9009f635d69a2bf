package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in front-end units (characters or pixels)
	ScreenH  int   // Screen height in front-end units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Rate returns the tick rate, defaulting to 60.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// Elapsed returns the simulated time after the given number of ticks.
// It is exact at any tick rate, so per-tick deltas taken from it never drift.
func (c RuntimeConfig) Elapsed(ticks uint64) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(c.Rate())
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game is waiting for a restart
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventNone      EventKind = iota
	EventAteApple            // Snake ate an apple and grew
	EventCrash               // Snake hit a wall or itself
	EventBoardFull           // No free cell remains for a new apple
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAteApple:
		return "ate_apple"
	case EventCrash:
		return "crash"
	case EventBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// Event is emitted by a game step. Score and Length describe the snake at
// the moment of the event.
type Event struct {
	Kind   EventKind
	Score  int
	Length int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred during the step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
