package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudFontSize     = 20
	overlayFontSize = 32
	hudMargin       = 8
)

var (
	hudColor     = rl.NewColor(40, 40, 40, 255)
	overlayShade = rl.NewColor(0, 0, 0, 140)
)

func toColor(c core.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func fillRect(r core.Rect, c rl.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c)
}

// draw renders one frame: border, apple, gradient snake, HUD and overlays.
func (s *session) draw(screenW, screenH int) {
	rl.ClearBackground(rl.RayWhite)

	sc := s.game.Scene(screenW, screenH)
	if !sc.Layout.Fits {
		drawCentered(screenW, screenH, "Window too small", hudFontSize, hudColor)
		return
	}

	fillRect(sc.Frame, toColor(sc.BorderBG))
	if sc.Border > 0 {
		frame := rl.NewRectangle(float32(sc.Frame.X), float32(sc.Frame.Y), float32(sc.Frame.W), float32(sc.Frame.H))
		rl.DrawRectangleLinesEx(frame, float32(sc.Border), toColor(sc.BorderColor))
	}
	for _, sp := range sc.Sprites {
		fillRect(sp.Rect, toColor(sp.Color))
	}

	s.drawHUD()

	state := s.game.State()
	switch {
	case state.GameOver:
		s.drawOverlay(screenW, screenH, "GAME OVER", fmt.Sprintf("Score %d  -  R to restart", state.Score))
	case state.Paused:
		s.drawOverlay(screenW, screenH, "PAUSED", "P to resume")
	}
}

func (s *session) drawHUD() {
	state := s.game.State()
	text := fmt.Sprintf("Score: %d  Best: %d", state.Score, max(s.best, state.Score))
	rl.DrawText(text, hudMargin, hudMargin, hudFontSize, hudColor)
}

func (s *session) drawOverlay(screenW, screenH int, title, hint string) {
	rl.DrawRectangle(0, 0, int32(screenW), int32(screenH), overlayShade)
	drawCentered(screenW, screenH-overlayFontSize, title, overlayFontSize, rl.RayWhite)
	drawCentered(screenW, screenH+overlayFontSize, hint, hudFontSize, rl.RayWhite)
}

// drawCentered draws text centred on (screenW/2, screenH/2).
func drawCentered(screenW, screenH int, text string, size int32, c rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(screenW)/2-w/2, int32(screenH)/2-size/2, size, c)
}
