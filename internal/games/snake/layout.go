package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Terminal layout constants.
const (
	hudRows        = 2 // Status line plus separator
	terminalBorder = 1 // Box-drawing frame around the grid
)

// Layout places a grid inside a screen. All values are in screen units
// (terminal cells or pixels).
type Layout struct {
	CellW   int // Width of one grid cell
	CellH   int // Height of one grid cell
	OffsetX int // Left edge of the grid
	OffsetY int // Top edge of the grid
	Fits    bool
	gridW   int
	gridH   int
	border  int
}

// ComputeLayout picks the largest integer cell size that fits a gridW x gridH
// grid inside the screen, leaving border units on every side and top units
// above the play area. aspect is the cell width in units per unit of height
// (1 for square pixels, 2 for terminal cells). The grid is centred in the
// space left below top.
func ComputeLayout(gridW, gridH, screenW, screenH, border, aspect, top int) Layout {
	aspect = max(1, aspect)
	border = max(0, border)
	top = max(0, top)

	l := Layout{gridW: gridW, gridH: gridH, border: border}
	if gridW <= 0 || gridH <= 0 {
		return l
	}

	availW := screenW - 2*border
	availH := screenH - top - 2*border
	size := min(availW/(gridW*aspect), availH/gridH)
	if size < 1 {
		return l
	}

	l.CellW = size * aspect
	l.CellH = size
	l.OffsetX = (screenW - l.CellW*gridW) / 2
	l.OffsetY = top + (screenH-top-l.CellH*gridH)/2
	l.Fits = true
	return l
}

// Grid returns the rectangle covered by the grid cells.
func (l Layout) Grid() core.Rect {
	return core.NewRect(l.OffsetX, l.OffsetY, l.CellW*l.gridW, l.CellH*l.gridH)
}

// Frame returns the grid rectangle grown by the border on every side.
func (l Layout) Frame() core.Rect {
	return l.Grid().Inset(-l.border)
}

// CellRect returns the screen rectangle of a grid cell.
func (l Layout) CellRect(c Cell) core.Rect {
	return core.NewRect(l.OffsetX+c.X*l.CellW, l.OffsetY+c.Y*l.CellH, l.CellW, l.CellH)
}

// layout computes the terminal layout for the current screen size.
func (g *Game) layout() Layout {
	return ComputeLayout(g.width, g.height, g.screenW, g.screenH, terminalBorder, g.cfg.Render.CellAspect, hudRows)
}
