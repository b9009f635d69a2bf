// Package tui is the Bubble Tea front end: the variant menu, the game
// screen, the scoreboard, and the SSH server that serves all three to
// remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one tick period from now.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.Elapsed(1), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
