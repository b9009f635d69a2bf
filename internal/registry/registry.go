// Package registry maps variant ids to game constructors.
//
// Each variant registers itself from an init function. The terminal, window
// and SSH front ends only ever talk to the Game interface, so a new variant
// needs no changes outside its own package.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownVariant is returned by Create for ids nobody registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is a playable variant: pure simulation driven by abstract actions.
// It never touches the terminal or a clock of its own.
type Game interface {
	// ID is the variant id used on the command line and as the score key.
	ID() string
	Title() string

	// Reset starts a fresh round on the grid that fits the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick of 1/TickRate seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without losing their state.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game in its initial state.
type Factory func() Game

type variant struct {
	info    GameInfo
	factory Factory
}

var (
	mu       sync.RWMutex
	variants = map[string]variant{}
	order    []string
)

// Register adds a variant under id. The title is read from a throwaway
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := variants[id]; dup {
		panic(fmt.Sprintf("registry: variant %q registered twice", id))
	}
	variants[id] = variant{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
	order = append(order, id)
}

// List returns the registered variants in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(order))
	for i, id := range order {
		out[i] = variants[id].info
	}
	return out
}

// Lookup returns the description of a variant without building it.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	return v.info, ok
}

// Create builds a fresh game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return v.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
