package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// MenuItem is one variant in the picker, with its saved record.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
	Runs   int
}

// MenuModel lets the player pick a variant or open the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting   bool
	selected   *MenuItem
	wantScores bool
}

// loadMenuItems lists the registered variants. A nil store leaves the
// records empty.
func loadMenuItems(store *storage.Store) []MenuItem {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	var items []MenuItem
	for _, info := range registry.List() {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if st, ok := stats[info.ID]; ok {
			item.Best, item.Runs = st.HighScore, st.GamesCount
		}
		items = append(items, item)
	}
	return items
}

// NewMenuModel builds the picker with the cursor on the first variant.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     loadMenuItems(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(0, m.cursor-1)
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if m.cursor < len(m.items) {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.wantScores = true
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4782ff")).MarginBottom(1)
	menuItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).PaddingLeft(1).PaddingRight(1)
	menuRecordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
)

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		record := "no runs yet"
		if item.Runs > 0 {
			record = fmt.Sprintf("best %d · %d runs", item.Best, item.Runs)
		}
		title := fmt.Sprintf("%-24s", item.Title)
		if i == m.cursor {
			title = menuSelectedStyle.Render(title)
		} else {
			title = menuItemStyle.Render(title)
		}
		rows = append(rows, title+"  "+menuRecordStyle.Render(record))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("S N A K E"),
		menuBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		menuRecordStyle.Render("↑/↓ choose · enter play · tab scores · q quit"),
	)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the chosen variant, or nil before a choice.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func (m MenuModel) WantsScoreboard() bool {
	return m.wantScores
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to center it in width cells. Styled text
// is measured by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player chose in the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result reports the menu outcome.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.wantScores:
		r.WantsScoreboard = true
	case m.selected != nil:
		r.GameID = m.selected.GameID
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the menu full screen until the player decides.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
