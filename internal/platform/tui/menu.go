package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-snake/internal/config"
	"github.com/vovakirdan/fruit-snake/internal/core"
	"github.com/vovakirdan/fruit-snake/internal/storage"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Preset      config.DifficultyPreset
	Title       string
	Description string
}

// DefaultMenuItems lists the difficulty presets in menu order.
func DefaultMenuItems() []MenuItem {
	descriptions := map[config.DifficultyPreset][2]string{
		config.DifficultyEasy:   {"Easy", "slow start"},
		config.DifficultyNormal: {"Normal", "as configured"},
		config.DifficultyHard:   {"Hard", "fast start"},
		config.DifficultyFixed:  {"Fixed speed", "no speedup"},
	}
	presets := config.Presets()
	items := make([]MenuItem, len(presets))
	for i, p := range presets {
		d := descriptions[p]
		items[i] = MenuItem{Preset: p, Title: d[0], Description: d[1]}
	}
	return items
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	best           int
	rounds         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model with the cursor on the given preset.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, current config.DifficultyPreset) MenuModel {
	m := MenuModel{
		items:     DefaultMenuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, it := range m.items {
		if it.Preset == current {
			m.cursor = i
		}
	}
	if store != nil {
		if st, err := store.Stats(); err == nil {
			m.best = st.BestScore
			m.rounds = st.Rounds
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("🍎  F R U I T   S N A K E  🍍"), m.width))
	b.WriteString("\n\n")

	if m.rounds > 0 {
		b.WriteString(centerText(fmt.Sprintf("Session best: %d  (%d rounds)", m.best, m.rounds), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, item.Title, dimStyle.Render(item.Description))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styling and wide runes are
// measured by their display width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, current config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, current)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Preset = m.Selected().Preset
	}
	return result
}
