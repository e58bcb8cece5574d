package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// SwipeTracker turns a left-button press and the following release into a
// swipe gesture measured in terminal cells.
type SwipeTracker struct {
	pressed bool
	x, y    int
}

// Track consumes a mouse message. It returns a gesture when a drag ends.
// A release without movement is a click, not a swipe.
func (s *SwipeTracker) Track(msg tea.MouseMsg) (core.Gesture, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.Gesture{}, false
		}
		s.pressed = true
		s.x, s.y = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !s.pressed {
			return core.Gesture{}, false
		}
		s.pressed = false
		g := core.Gesture{DX: msg.X - s.x, DY: msg.Y - s.y}
		if g.DX == 0 && g.DY == 0 {
			return core.Gesture{}, false
		}
		return g, true
	}
	return core.Gesture{}, false
}
