package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func sessionConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 3}
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, sessionConfig())
	view := m.View()
	for _, title := range []string{"Snake", "Snake (Sampled Apples)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu should list %q", title)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, sessionConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("select should end the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != "snake_sampled" {
		t.Errorf("Selected = %+v, want snake_sampled", m.Selected())
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(Options{}, sessionConfig())

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("enter should start a game")
	}
	if m.gameModel.game.ID() != "snake" {
		t.Errorf("started %q, want snake", m.gameModel.game.ID())
	}

	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, cmd := sessionUpdate(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatal("back while paused should return to the menu")
	}
	if m.quitting {
		t.Error("session should keep running")
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("returning to the menu must not quit the program")
		}
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(Options{}, sessionConfig())

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(Options{}, sessionConfig())
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
