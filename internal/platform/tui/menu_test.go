package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestMenuShowsRecords(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{3, 11} {
		if _, err := store.SaveRun(storage.Run{GameID: "snake", Score: score}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	view := NewMenuModel(store, sessionConfig()).View()
	if !strings.Contains(view, "best 11 · 2 runs") {
		t.Errorf("menu should show the classic record:\n%s", view)
	}
	if !strings.Contains(view, "no runs yet") {
		t.Errorf("menu should mark the variant without runs:\n%s", view)
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuResult
	}{
		{"enter picks the first variant", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuResult{GameID: "snake"}},
		{"cursor stops at the top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, MenuResult{GameID: "snake"}},
		{"tab opens scores", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuResult{WantsScoreboard: true}},
		{"esc quits", []tea.KeyMsg{{Type: tea.KeyEsc}}, MenuResult{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, sessionConfig())
			for _, k := range tt.keys {
				next, _ := m.Update(k)
				m = next.(MenuModel)
			}

			tt.want.Config = sessionConfig()
			if got := m.Result(); got != tt.want {
				t.Errorf("Result() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, sessionConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 50 || cfg.Seed != sessionConfig().Seed {
		t.Errorf("Config() = %+v", cfg)
	}
}
