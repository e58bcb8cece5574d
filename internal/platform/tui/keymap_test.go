package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-snake/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"vim k", runeKey("k"), core.ActionUp, false},
		{"vim h", runeKey("h"), core.ActionLeft, false},
		{"vim j", runeKey("j"), core.ActionDown, false},
		{"vim l", runeKey("l"), core.ActionRight, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := km.MapKey(tc.msg)
			if got != tc.want || quit != tc.wantQuit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tc.msg.String(), got, quit, tc.want, tc.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("z"), &frame) || !frame.Empty() {
		t.Error("unbound key should leave the frame empty")
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Error("left is not a quit key")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should carry ActionLeft")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.want)
		}
	}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name   string
		events []tea.MouseMsg
		want   core.Gesture
		wantOK bool
	}{
		{
			name: "drag right",
			events: []tea.MouseMsg{
				mouse(tea.MouseActionPress, tea.MouseButtonLeft, 10, 10),
				mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 15, 9),
				mouse(tea.MouseActionRelease, tea.MouseButtonNone, 20, 7),
			},
			want:   core.Gesture{DX: 10, DY: -3},
			wantOK: true,
		},
		{
			name: "click",
			events: []tea.MouseMsg{
				mouse(tea.MouseActionPress, tea.MouseButtonLeft, 4, 4),
				mouse(tea.MouseActionRelease, tea.MouseButtonNone, 4, 4),
			},
		},
		{
			name: "release without press",
			events: []tea.MouseMsg{
				mouse(tea.MouseActionRelease, tea.MouseButtonNone, 9, 9),
			},
		},
		{
			name: "right button ignored",
			events: []tea.MouseMsg{
				mouse(tea.MouseActionPress, tea.MouseButtonRight, 0, 0),
				mouse(tea.MouseActionRelease, tea.MouseButtonNone, 5, 5),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s SwipeTracker
			var got core.Gesture
			var ok bool
			for _, ev := range tc.events {
				got, ok = s.Track(ev)
			}
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("Track() = %+v, %v; expected %+v, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
