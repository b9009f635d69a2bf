package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	cellRune   = '█'
	appleRune  = '●'
	borderRune = '░'
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	l := g.layout()
	if !l.Fits {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst, l)
	g.renderApple(dst, l)
	g.renderSnake(dst, l)

	// Draw overlays
	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Best: %d  Length: %d  Deaths: %d",
		g.title, g.score, g.best, g.body.Len(), g.deaths)
	dst.DrawText(0, 0, hud)

	// Draw separator
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame around the grid.
func (g *Game) renderBoard(dst *core.Screen, l Layout) {
	dst.DrawRect(l.Frame(), borderRune, g.palette.BorderBG.Color())
	dst.DrawRect(l.Grid(), ' ', core.ColorDefault)
	dst.DrawBox(l.Frame(), g.palette.BorderBG.Color())
}

// renderApple draws the apple, if the grid still has room for one.
func (g *Game) renderApple(dst *core.Screen, l Layout) {
	if g.apple == NoCell {
		return
	}
	r := l.CellRect(g.apple)
	dst.DrawRect(r, appleRune, g.palette.Apple.Color())
}

// renderSnake draws the body from head to tail, each segment darker than
// the one before it.
func (g *Game) renderSnake(dst *core.Screen, l Layout) {
	n := g.body.Len()
	for i := 0; i < n; i++ {
		shade := core.Shade(g.palette.Head, i, n)
		dst.DrawRect(l.CellRect(g.body.At(i)), cellRune, shade.Color())
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
