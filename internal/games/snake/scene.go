package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Sprite is a filled rectangle in pixels.
type Sprite struct {
	Rect  core.Rect
	Color core.RGB
}

// Scene is the pixel-space picture of one frame for raster front ends.
// Sprites are ordered apple first, then the snake from head to tail.
type Scene struct {
	Layout      Layout
	Frame       core.Rect // Grid plus border
	Border      int
	BorderColor core.RGB
	BorderBG    core.RGB
	Sprites     []Sprite
}

// Scene lays the game out in a screenW x screenH pixel window with square
// cells and the configured border. It returns a scene with Layout.Fits false
// when the window cannot hold one pixel per cell.
func (g *Game) Scene(screenW, screenH int) Scene {
	border := g.cfg.Render.BorderThickness
	l := ComputeLayout(g.width, g.height, screenW, screenH, border, 1, 0)
	sc := Scene{
		Layout:      l,
		Border:      border,
		BorderColor: g.palette.Border,
		BorderBG:    g.palette.BorderBG,
	}
	if !l.Fits {
		return sc
	}
	sc.Frame = l.Frame()

	n := g.body.Len()
	sc.Sprites = make([]Sprite, 0, n+1)
	if g.apple != NoCell {
		sc.Sprites = append(sc.Sprites, Sprite{Rect: l.CellRect(g.apple), Color: g.palette.Apple})
	}
	for i := 0; i < n; i++ {
		sc.Sprites = append(sc.Sprites, Sprite{
			Rect:  l.CellRect(g.body.At(i)),
			Color: core.Shade(g.palette.Head, i, n),
		})
	}
	return sc
}
