package snake

import "math/rand"

// Occupied is the set of cells an apple must avoid.
type Occupied interface {
	Contains(c Cell) bool
	Len() int
}

// Placer chooses a new apple cell outside the occupied set.
// It returns (NoCell, false) when every cell of the grid is occupied.
type Placer interface {
	Place(rng *rand.Rand, width, height int, occupied Occupied) (Cell, bool)
}

// EnumeratePlacer collects every free cell and picks one uniformly.
// Cost is bounded by the grid size regardless of how full the grid is.
type EnumeratePlacer struct{}

// Place implements Placer.
func (EnumeratePlacer) Place(rng *rand.Rand, width, height int, occupied Occupied) (Cell, bool) {
	free := make([]Cell, 0, max(0, width*height-occupied.Len()))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Cell{X: x, Y: y}
			if !occupied.Contains(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return NoCell, false
	}
	return free[rng.Intn(len(free))], true
}

// DefaultSampleAttempts bounds rejection sampling before falling back.
const DefaultSampleAttempts = 64

// SamplePlacer draws random cells until one is free. Sampling degrades as
// the snake fills the grid, so after Attempts misses it falls back to
// enumeration, which also detects a full grid.
type SamplePlacer struct {
	Attempts int
}

// Place implements Placer.
func (p SamplePlacer) Place(rng *rand.Rand, width, height int, occupied Occupied) (Cell, bool) {
	if width <= 0 || height <= 0 {
		return NoCell, false
	}
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = DefaultSampleAttempts
	}
	if occupied.Len() < width*height {
		for range attempts {
			c := Cell{X: rng.Intn(width), Y: rng.Intn(height)}
			if !occupied.Contains(c) {
				return c, true
			}
		}
	}
	return EnumeratePlacer{}.Place(rng, width, height, occupied)
}

// NewPlacer returns the placer for a strategy name ("enumerate" or "sample").
// Unknown names get the enumerating placer.
func NewPlacer(strategy string, attempts int) Placer {
	if strategy == "sample" {
		return SamplePlacer{Attempts: attempts}
	}
	return EnumeratePlacer{}
}
