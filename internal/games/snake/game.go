// Package snake implements the classic grid Snake game: a fixed-step
// simulation with buffered direction input, wall and self collision, and
// apple placement, plus a terminal renderer and a pixel scene for raster
// front ends.
package snake

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant identifiers. Each variant keeps its own high-score table.
const (
	VariantClassic = "snake"         // free-cell enumeration for apples
	VariantSampled = "snake_sampled" // rejection sampling for apples
)

// Game implements the Snake game.
type Game struct {
	id    string
	title string

	cfg        config.SnakeConfig
	palette    config.Palette
	difficulty *config.DifficultyManager
	placer     Placer
	rng        *rand.Rand

	// Grid and snake state
	width      int
	height     int
	body       *Body
	direction  Direction
	initialDir Direction
	queue      *DirectionQueue
	apple      Cell

	// Timing
	clock   core.RuntimeConfig // Tick rate source for Step
	moveAcc time.Duration      // Time accumulated toward the next move
	tick    uint64

	// Scoring
	score  int
	best   int
	deaths int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool

	// Screen dimensions, in terminal cells
	screenW int
	screenH int

	events []core.Event
}

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultSnakeConfig()
)

// SetConfig sets the configuration used by games created from the registry.
// Call it before creating games; running games keep the config they started with.
func SetConfig(cfg config.SnakeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// CurrentConfig returns the configuration new registry games will use.
func CurrentConfig() config.SnakeConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(VariantClassic, func() registry.Game {
		return NewVariant(VariantClassic, CurrentConfig())
	})
	registry.Register(VariantSampled, func() registry.Game {
		return NewVariant(VariantSampled, CurrentConfig())
	})
}

// New creates a game using the apple strategy named in cfg.
func New(cfg config.SnakeConfig) *Game {
	id := VariantClassic
	if cfg.Apple.Strategy == config.StrategySample {
		id = VariantSampled
	}
	return NewVariant(id, cfg)
}

// NewVariant creates a game for a registered variant id. The variant decides
// the apple strategy; every other setting comes from cfg.
func NewVariant(id string, cfg config.SnakeConfig) *Game {
	title := "Snake"
	if id == VariantSampled {
		cfg.Apple.Strategy = config.StrategySample
		title = "Snake (Sampled Apples)"
	} else {
		id = VariantClassic
		cfg.Apple.Strategy = config.StrategyEnumerate
	}

	initialDir, err := ParseDirection(cfg.Snake.InitialDirection)
	if err != nil {
		initialDir = DirRight
	}

	g := &Game{
		id:         id,
		title:      title,
		cfg:        cfg,
		palette:    cfg.Render.Palette(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		placer:     NewPlacer(cfg.Apple.Strategy, cfg.Apple.SampleAttempts),
		width:      max(1, cfg.Grid.Width),
		height:     max(1, cfg.Grid.Height),
		body:       NewBody(),
		initialDir: initialDir,
		direction:  initialDir,
		queue:      NewDirectionQueue(cfg.Snake.QueueCapacity),
		apple:      NoCell,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes/restarts the game, including the session best score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = cfg
	g.tick = 0
	g.best = 0
	g.deaths = 0
	g.paused = false
	g.direction = g.initialDir
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.restart()
}

// restart re-centres a fresh snake facing the current direction, clears
// buffered input and places a new apple. The session best score survives.
func (g *Game) restart() {
	centre := Cell{X: g.width / 2, Y: g.height / 2}
	back := g.direction.Opposite().Offset()

	length := max(1, g.cfg.Snake.InitialLength)
	cells := make([]Cell, 0, length)
	for i := 0; i < length; i++ {
		c := Cell{X: centre.X + back.X*i, Y: centre.Y + back.Y*i}
		if !c.In(g.width, g.height) {
			break
		}
		cells = append(cells, c)
	}
	g.body.Reset(cells...)

	g.queue.Clear()
	g.moveAcc = 0
	g.score = 0
	g.gameOver = false
	g.placeApple()
}

// Resize records the terminal size. The simulation holds while the grid
// does not fit. A zero size means the game is not drawn to a terminal.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w > 0 && h > 0 && !g.layout().Fits
}

// QueueDirection buffers a direction change for an upcoming move.
// See DirectionQueue.Push for the rejection rules.
func (g *Game) QueueDirection(d Direction) bool {
	return g.queue.Push(d, g.direction)
}

// IsGameOver reports whether moving the head to newHead is fatal: it leaves
// the grid or lands on any current body cell.
func (g *Game) IsGameOver(newHead Cell) bool {
	if !newHead.In(g.width, g.height) {
		return true
	}
	return g.body.Contains(newHead)
}

// Update performs one move: apply one buffered direction, advance the head,
// then grow on an apple or drop the tail. It returns true when the move
// collides, leaving the snake untouched.
func (g *Game) Update() bool {
	if d, ok := g.queue.Pop(); ok {
		g.direction = d
	}

	newHead := g.body.Head().Add(g.direction.Offset())
	if g.IsGameOver(newHead) {
		return true
	}

	g.body.PushFront(newHead)

	if newHead == g.apple {
		g.score++
		g.best = max(g.best, g.score)
		g.events = append(g.events, g.event(core.EventAteApple))
		g.placeApple()
	} else {
		g.body.PopBack()
	}
	return false
}

// placeApple moves the apple to a free cell, or to NoCell on a full grid.
func (g *Game) placeApple() {
	apple, ok := g.placer.Place(g.rng, g.width, g.height, g.body)
	g.apple = apple
	if !ok {
		g.events = append(g.events, g.event(core.EventBoardFull))
	}
}

// MoveInterval returns the current time between moves.
func (g *Game) MoveInterval() time.Duration {
	return max(time.Nanosecond, g.difficulty.Interval(g.cfg.Timing.MoveInterval, g.cfg.Timing.MinInterval, g.score, g.tick))
}

// Step advances the game by one tick of the configured tick rate.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	dt := g.clock.Elapsed(g.tick+1) - g.clock.Elapsed(g.tick)
	return g.Advance(input, dt)
}

// Advance advances the game by one tick that lasted dt of wall-clock time.
// At most one move happens per tick; time past the move interval carries
// over to the next one.
func (g *Game) Advance(input core.InputFrame, dt time.Duration) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.restart()
		return g.result()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return g.result()
	}

	for _, a := range input.Sequence() {
		if d, ok := directionFor(a); ok {
			g.QueueDirection(d)
		}
	}

	g.moveAcc += max(0, dt)
	if interval := g.MoveInterval(); g.moveAcc >= interval {
		g.moveAcc %= interval
		g.move()
	}

	return g.result()
}

// move runs one Update and handles a collision.
func (g *Game) move() {
	if !g.Update() {
		return
	}

	g.deaths++
	g.events = append(g.events, g.event(core.EventCrash))
	if g.cfg.Gameplay.AutoRestart {
		g.restart()
		return
	}
	g.gameOver = true
}

func (g *Game) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, Score: g.score, Length: g.body.Len()}
}

func (g *Game) result() core.StepResult {
	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// directionFor maps a movement action to a Direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Body returns a copy of the snake cells, head first.
func (g *Game) Body() []Cell {
	return g.body.Cells()
}

// Apple returns the apple cell, or NoCell if the grid is full.
func (g *Game) Apple() Cell {
	return g.apple
}

// Direction returns the direction of the last move.
func (g *Game) Direction() Direction {
	return g.direction
}

// Size returns the grid dimensions.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

// Palette returns the configured render colors.
func (g *Game) Palette() config.Palette {
	return g.palette
}
