package snake

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Score    int
	Best     int
	Deaths   int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	Queued   []Direction
	AppleX   int
	AppleY   int
	Interval time.Duration
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	head := g.body.Head()
	return Snapshot{
		Tick:     g.tick,
		Variant:  g.id,
		Score:    g.score,
		Best:     g.best,
		Deaths:   g.deaths,
		SnakeLen: g.body.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.direction,
		Queued:   g.queue.Slice(),
		AppleX:   g.apple.X,
		AppleY:   g.apple.Y,
		Interval: g.MoveInterval(),
		State:    state,
	}
}
