// Package tui provides the Bubble Tea integration for Fruit Snake.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain; ticks from an older chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd arms a single tick after interval. Each handled tick arms the
// next one, so the period follows the game's current speed.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
