// Package window runs the game in a resizable raylib desktop window.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Default window settings.
const (
	DefaultWidth  = 800
	DefaultHeight = 450
	DefaultFPS    = 60
)

// Options configures a window session. Every field is optional.
type Options struct {
	Width  int
	Height int
	FPS    int
	Seed   int64
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
	Player string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = storage.DefaultPlayer
	}
	return o
}

// keyActions maps raylib keys to game actions.
var keyActions = map[int32]core.Action{
	rl.KeyW:      core.ActionUp,
	rl.KeyUp:     core.ActionUp,
	rl.KeyS:      core.ActionDown,
	rl.KeyDown:   core.ActionDown,
	rl.KeyA:      core.ActionLeft,
	rl.KeyLeft:   core.ActionLeft,
	rl.KeyD:      core.ActionRight,
	rl.KeyRight:  core.ActionRight,
	rl.KeyP:      core.ActionPause,
	rl.KeyEscape: core.ActionPause,
	rl.KeyR:      core.ActionRestart,
}

// readKeys drains the pressed-key queue into frame in press order.
// next returns 0 once the queue is empty. It reports whether Q was pressed.
func readKeys(next func() int32, frame *core.InputFrame) (quit bool) {
	for k := next(); k != 0; k = next() {
		if k == rl.KeyQ {
			quit = true
			continue
		}
		if a, ok := keyActions[k]; ok {
			frame.Set(a)
		}
	}
	return quit
}

// frameDelta converts raylib's frame time in seconds to a Duration.
func frameDelta(seconds float32) time.Duration {
	return time.Duration(float64(seconds) * float64(time.Second))
}

// Run opens the window and plays until it is closed or Q is pressed.
// The window is always released before Run returns.
func Run(game *snake.Game, opts Options) error {
	opts = opts.withDefaults()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), game.Title())
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window: cannot open %dx%d window", opts.Width, opts.Height)
	}

	// Escape pauses instead of closing
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.FPS))

	// Zero screen size: the window lays the grid out itself
	game.Reset(core.RuntimeConfig{TickRate: opts.FPS, Seed: opts.Seed})
	opts.Logger.Info("window opened", "game", game.ID(), "width", opts.Width, "height", opts.Height, "fps", opts.FPS)

	s := &session{game: game, opts: opts, frame: core.NewInputFrame()}
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(game.ID()); err == nil {
			s.best = high
		}
	}

	for !rl.WindowShouldClose() {
		if readKeys(rl.GetKeyPressed, &s.frame) {
			break
		}
		s.step(frameDelta(rl.GetFrameTime()))

		rl.BeginDrawing()
		s.draw(rl.GetScreenWidth(), rl.GetScreenHeight())
		rl.EndDrawing()
	}

	snap := game.Snapshot()
	opts.Logger.Info("window closed", "game", game.ID(), "best", s.best, "deaths", snap.Deaths, "ticks", snap.Tick, "state", snap.State)
	return nil
}

// session holds the per-window loop state.
type session struct {
	game  *snake.Game
	opts  Options
	frame core.InputFrame
	best  int
}

// step advances the game by one frame of dt and handles its events.
func (s *session) step(dt time.Duration) {
	result := s.game.Advance(s.frame, dt)
	s.frame.Clear()

	for _, ev := range result.Events {
		if ev.Kind == core.EventCrash {
			s.recordRun(ev)
		}
	}
	if s.opts.Sound != nil {
		s.opts.Sound.PlayEvents(result.Events)
	}
}

// recordRun saves a finished run. Best-effort: the game continues regardless.
func (s *session) recordRun(ev core.Event) {
	s.best = max(s.best, ev.Score)
	if ev.Score <= 0 || s.opts.Store == nil {
		return
	}
	entry, err := s.opts.Store.SaveRun(storage.Run{
		GameID: s.game.ID(),
		Player: s.opts.Player,
		Score:  ev.Score,
		Length: ev.Length,
	})
	if err != nil {
		s.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	s.opts.Logger.Info("score saved", "game", entry.GameID, "score", entry.Score, "run", entry.RunID)
}
