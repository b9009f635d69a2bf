package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// stepConfig makes every Step perform exactly one move with the default
// 100ms interval.
var stepConfig = core.RuntimeConfig{
	TickRate: 10,
	Seed:     42,
}

func newTestGame(t *testing.T, mutate func(*config.SnakeConfig)) *Game {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg)
	g.Reset(stepConfig)
	return g
}

func dirInput(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestResetCentresSnake(t *testing.T) {
	g := newTestGame(t, nil)

	want := []Cell{{X: 12, Y: 12}, {X: 11, Y: 12}, {X: 10, Y: 12}}
	got := g.Body()
	if len(got) != len(want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body = %v, want %v", got, want)
		}
	}

	if g.Direction() != DirRight {
		t.Errorf("direction = %v, want right", g.Direction())
	}
	if !g.Apple().In(25, 25) || g.body.Contains(g.Apple()) {
		t.Errorf("apple %v must be a free grid cell", g.Apple())
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, want 0", g.State().Score)
	}
}

func TestResetOrientsAlongDirection(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.Snake.InitialDirection = "up"
	})

	body := g.Body()
	if body[0] != (Cell{X: 12, Y: 12}) || body[2] != (Cell{X: 12, Y: 14}) {
		t.Errorf("body = %v, want vertical snake trailing downward", body)
	}
}

func TestUpdateMovesWithoutGrowth(t *testing.T) {
	g := newTestGame(t, nil)
	g.apple = Cell{X: 0, Y: 0}

	if g.Update() {
		t.Fatal("Update reported a collision")
	}

	body := g.Body()
	if len(body) != 3 {
		t.Fatalf("len = %d, want 3", len(body))
	}
	if body[0] != (Cell{X: 13, Y: 12}) {
		t.Errorf("head = %v, want (13,12)", body[0])
	}
	if body[2] != (Cell{X: 11, Y: 12}) {
		t.Errorf("tail = %v, want (11,12)", body[2])
	}
	if g.Apple() != (Cell{X: 0, Y: 0}) {
		t.Errorf("apple moved to %v without being eaten", g.Apple())
	}
}

func TestUpdateEatsApple(t *testing.T) {
	g := newTestGame(t, nil)
	g.apple = Cell{X: 13, Y: 12}

	if g.Update() {
		t.Fatal("Update reported a collision")
	}

	body := g.Body()
	if len(body) != 4 {
		t.Fatalf("len = %d, want 4", len(body))
	}
	if body[0] != (Cell{X: 13, Y: 12}) || body[3] != (Cell{X: 10, Y: 12}) {
		t.Errorf("body = %v, want head (13,12) and unchanged tail (10,12)", body)
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}
	if a := g.Apple(); !a.In(25, 25) || g.body.Contains(a) {
		t.Errorf("relocated apple %v must be a free grid cell", a)
	}
}

func TestIsGameOver(t *testing.T) {
	g := newTestGame(t, nil)
	g.body.Reset(Cell{X: 5, Y: 5}, Cell{X: 5, Y: 6}, Cell{X: 6, Y: 6}, Cell{X: 6, Y: 5})

	tests := []struct {
		name string
		head Cell
		want bool
	}{
		{"free cell", Cell{X: 4, Y: 5}, false},
		{"left wall", Cell{X: -1, Y: 5}, true},
		{"right wall", Cell{X: 25, Y: 5}, true},
		{"top wall", Cell{X: 5, Y: -1}, true},
		{"bottom wall", Cell{X: 5, Y: 25}, true},
		{"own body", Cell{X: 6, Y: 6}, true},
		{"current tail", Cell{X: 6, Y: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsGameOver(tt.head); got != tt.want {
				t.Errorf("IsGameOver(%v) = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}

func TestRightWallCollisionLeavesSnake(t *testing.T) {
	g := newTestGame(t, nil)
	g.body.Reset(Cell{X: 24, Y: 12}, Cell{X: 23, Y: 12}, Cell{X: 22, Y: 12})

	if !g.Update() {
		t.Fatal("moving right from x=24 should collide")
	}
	if g.body.Head() != (Cell{X: 24, Y: 12}) || g.body.Len() != 3 {
		t.Errorf("snake changed on collision: %v", g.Body())
	}
}

func TestSelfCollisionAfterTurn(t *testing.T) {
	g := newTestGame(t, nil)
	// Moving up with the body curling back to the right of the head
	g.direction = DirUp
	g.body.Reset(Cell{X: 5, Y: 5}, Cell{X: 5, Y: 6}, Cell{X: 6, Y: 6}, Cell{X: 6, Y: 5}, Cell{X: 7, Y: 5})

	if !g.QueueDirection(DirRight) {
		t.Fatal("right turn should be accepted")
	}
	if !g.Update() {
		t.Error("turning into the body should collide")
	}
}

func TestStepAppliesQueuedTurn(t *testing.T) {
	g := newTestGame(t, nil)
	g.apple = Cell{X: 0, Y: 0}

	g.Step(dirInput(core.ActionUp))

	if head := g.body.Head(); head != (Cell{X: 12, Y: 11}) {
		t.Errorf("head = %v, want (12,11)", head)
	}
	if g.Direction() != DirUp {
		t.Errorf("direction = %v, want up", g.Direction())
	}
}

func TestStepRejectsReversal(t *testing.T) {
	g := newTestGame(t, nil)
	g.apple = Cell{X: 0, Y: 0}

	g.Step(dirInput(core.ActionLeft))

	if g.Direction() != DirRight {
		t.Errorf("direction = %v, want right", g.Direction())
	}
	if head := g.body.Head(); head != (Cell{X: 13, Y: 12}) {
		t.Errorf("head = %v, want (13,12)", head)
	}
}

func TestStepTwoTurnsInOneInterval(t *testing.T) {
	// Up then Left before a move: a quick U-turn without reversing
	g := newTestGame(t, nil)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	g.apple = Cell{X: 0, Y: 0}

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	g.Step(in)

	if got := g.queue.Slice(); len(got) != 2 || got[0] != DirUp || got[1] != DirLeft {
		t.Fatalf("queue = %v, want [up left]", got)
	}
}

func TestMoveTiming(t *testing.T) {
	g := newTestGame(t, nil)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	g.apple = Cell{X: 0, Y: 0}

	start := g.body.Head()
	steps := 0
	for g.body.Head() == start {
		g.Step(core.NewInputFrame())
		steps++
		if steps > 100 {
			t.Fatal("snake never moved")
		}
	}

	// 6 ticks at 60 per second make exactly 100ms
	if steps != 6 {
		t.Errorf("moved after %d steps, want 6", steps)
	}
	if g.MoveInterval() != 100*time.Millisecond {
		t.Errorf("MoveInterval = %v, want 100ms", g.MoveInterval())
	}
}

func TestMoveRateMatchesInterval(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		seconds  int
	}{
		{"60fps", 60, 10},
		{"144fps", 144, 10},
		{"50fps", 50, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, func(c *config.SnakeConfig) {
				c.Grid.Width = 2000
				c.Grid.Height = 3
			})
			g.Reset(core.RuntimeConfig{TickRate: tt.tickRate, Seed: 1})
			startX := g.body.Head().X

			for range tt.tickRate * tt.seconds {
				g.Step(core.NewInputFrame())
			}

			// One move per 100ms, whatever the tick rate
			want := tt.seconds * 10
			if got := g.body.Head().X - startX; got != want {
				t.Errorf("%d moves in %ds, want %d", got, tt.seconds, want)
			}
		})
	}
}

func TestAdvanceCarriesRemainder(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.Grid.Width = 200
	})
	startX := g.body.Head().X

	// 30ms frames: moves land at 120, 210, 300ms
	for range 10 {
		g.Advance(core.NewInputFrame(), 30*time.Millisecond)
	}
	if got := g.body.Head().X - startX; got != 3 {
		t.Errorf("%d moves in 300ms, want 3", got)
	}

	// A long stall moves once and keeps only the partial interval
	g.Advance(core.NewInputFrame(), 450*time.Millisecond)
	if got := g.body.Head().X - startX; got != 4 {
		t.Errorf("%d moves after stall, want 4", got)
	}
	if g.moveAcc != 50*time.Millisecond {
		t.Errorf("moveAcc = %v, want 50ms", g.moveAcc)
	}
}

func TestCrashAutoRestarts(t *testing.T) {
	g := newTestGame(t, nil)
	g.body.Reset(Cell{X: 24, Y: 12}, Cell{X: 23, Y: 12}, Cell{X: 22, Y: 12})
	g.score = 5

	res := g.Step(core.NewInputFrame())

	if !res.Has(core.EventCrash) {
		t.Fatal("expected crash event")
	}
	if res.Events[0].Score != 5 || res.Events[0].Length != 3 {
		t.Errorf("crash event = %+v, want score 5 and length 3", res.Events[0])
	}
	if res.State.GameOver {
		t.Error("auto restart should not report game over")
	}
	if g.State().Score != 0 || g.body.Head() != (Cell{X: 12, Y: 12}) || g.body.Len() != 3 {
		t.Errorf("snake not reset: score %d, body %v", g.State().Score, g.Body())
	}
	if g.Snapshot().Deaths != 1 {
		t.Errorf("deaths = %d, want 1", g.Snapshot().Deaths)
	}
}

func TestCrashHoldsWithoutAutoRestart(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.Gameplay.AutoRestart = false
	})
	g.body.Reset(Cell{X: 24, Y: 12}, Cell{X: 23, Y: 12}, Cell{X: 22, Y: 12})

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || !res.Has(core.EventCrash) {
		t.Fatalf("expected game over with crash event, got %+v", res)
	}

	// Further ticks do nothing
	g.Step(core.NewInputFrame())
	if g.body.Head() != (Cell{X: 24, Y: 12}) {
		t.Errorf("snake moved after game over: %v", g.Body())
	}

	res = g.Step(dirInput(core.ActionRestart))
	if res.State.GameOver {
		t.Error("restart should clear game over")
	}
	if g.body.Head() != (Cell{X: 12, Y: 12}) {
		t.Errorf("head after restart = %v, want (12,12)", g.body.Head())
	}
}

func TestBoardFull(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.Grid.Width = 3
		c.Grid.Height = 1
	})

	// Centre (1,0) with one cell of room behind it
	if g.body.Len() != 2 || g.Apple() != (Cell{X: 2, Y: 0}) {
		t.Fatalf("body %v apple %v, want 2 cells and apple (2,0)", g.Body(), g.Apple())
	}

	res := g.Step(core.NewInputFrame())
	if !res.Has(core.EventAteApple) || !res.Has(core.EventBoardFull) {
		t.Fatalf("expected apple and board-full events, got %+v", res.Events)
	}
	if g.Apple() != NoCell {
		t.Errorf("apple = %v, want NoCell", g.Apple())
	}

	res = g.Step(core.NewInputFrame())
	if !res.Has(core.EventCrash) {
		t.Error("next move off a full board should crash")
	}
}

func TestPauseHoldsSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	g.apple = Cell{X: 0, Y: 0}

	res := g.Step(dirInput(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	head := g.body.Head()
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.body.Head() != head {
		t.Error("snake moved while paused")
	}

	res = g.Step(dirInput(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestLongRunInvariants(t *testing.T) {
	for _, id := range []string{VariantClassic, VariantSampled} {
		t.Run(id, func(t *testing.T) {
			g := NewVariant(id, config.DefaultSnakeConfig())
			g.Reset(stepConfig)

			turns := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}
			for i := 0; i < 3000; i++ {
				in := core.NewInputFrame()
				if i%7 == 0 {
					in.Set(turns[(i/7)%len(turns)])
				}
				res := g.Step(in)

				body := g.Body()
				if len(body) != 3+res.State.Score {
					t.Fatalf("tick %d: length %d with score %d", i, len(body), res.State.Score)
				}
				seen := make(map[Cell]bool, len(body))
				for _, c := range body {
					if !c.In(25, 25) {
						t.Fatalf("tick %d: cell %v outside grid", i, c)
					}
					if seen[c] {
						t.Fatalf("tick %d: duplicate cell %v", i, c)
					}
					seen[c] = true
				}
				if seen[g.Apple()] {
					t.Fatalf("tick %d: apple %v on snake", i, g.Apple())
				}
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, nil)
	g2 := newTestGame(t, nil)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i % 40 {
		case 10:
			input.Set(core.ActionDown)
		case 20:
			input.Set(core.ActionLeft)
		case 30:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if snap1.Tick != snap2.Tick || snap1.Score != snap2.Score || snap1.Deaths != snap2.Deaths {
		t.Errorf("snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
	if snap1.HeadX != snap2.HeadX || snap1.HeadY != snap2.HeadY {
		t.Errorf("Head position mismatch: (%d,%d) vs (%d,%d)",
			snap1.HeadX, snap1.HeadY, snap2.HeadX, snap2.HeadY)
	}
	if snap1.AppleX != snap2.AppleX || snap1.AppleY != snap2.AppleY {
		t.Errorf("Apple position mismatch: (%d,%d) vs (%d,%d)",
			snap1.AppleX, snap1.AppleY, snap2.AppleX, snap2.AppleY)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 10, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %v, want %v", g.Snapshot().State, StatePausedSmall)
	}
	head := g.body.Head()
	g.Step(core.NewInputFrame())
	if g.body.Head() != head {
		t.Error("snake moved while the window was too small")
	}

	g.Resize(80, 40)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state after resize = %v, want playing", g.Snapshot().State)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(80, 40)
	g.apple = Cell{X: 0, Y: 0}

	screen := core.NewScreen(80, 40)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	l := g.layout()
	head := l.CellRect(Cell{X: 12, Y: 12})
	cell := screen.GetCell(head.X, head.Y)
	want := core.Shade(g.palette.Head, 0, 3).Color()
	if cell.Rune != cellRune || cell.Color != want {
		t.Errorf("head cell = %+v, want %q in %v", cell, cellRune, want)
	}

	tail := l.CellRect(Cell{X: 10, Y: 12})
	if got := screen.GetCell(tail.X, tail.Y).Color; got != core.Shade(g.palette.Head, 2, 3).Color() {
		t.Errorf("tail color = %v, want darker shade", got)
	}

	apple := l.CellRect(Cell{X: 0, Y: 0})
	if screen.Get(apple.X, apple.Y) != appleRune {
		t.Errorf("apple not drawn at %v", apple)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(30, 12)

	screen := core.NewScreen(30, 12)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id       string
		strategy string
	}{
		{VariantClassic, config.StrategyEnumerate},
		{VariantSampled, config.StrategySample},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rg, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q): %v", tt.id, err)
			}
			if rg.ID() != tt.id {
				t.Errorf("ID = %q, want %q", rg.ID(), tt.id)
			}
			g, ok := rg.(*Game)
			if !ok {
				t.Fatalf("unexpected game type %T", rg)
			}
			if g.cfg.Apple.Strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", g.cfg.Apple.Strategy, tt.strategy)
			}
		})
	}
}

func TestSetConfig(t *testing.T) {
	prev := CurrentConfig()
	t.Cleanup(func() { SetConfig(prev) })

	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Width = 11
	cfg.Grid.Height = 9
	SetConfig(cfg)

	rg, err := registry.Create(VariantClassic)
	if err != nil {
		t.Fatal(err)
	}
	w, h := rg.(*Game).Size()
	if w != 11 || h != 9 {
		t.Errorf("Size = %dx%d, want 11x9", w, h)
	}
}
