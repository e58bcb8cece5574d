package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-snake/internal/audio"
	"github.com/vovakirdan/fruit-snake/internal/config"
	"github.com/vovakirdan/fruit-snake/internal/core"
	"github.com/vovakirdan/fruit-snake/internal/games/snake"
	"github.com/vovakirdan/fruit-snake/internal/storage"
)

// shortBoard ends a round after one apple: eat on tick 1, leave the board
// on tick 2, game over on tick 3.
func shortBoard() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.XMax = 6
	cfg.Eating.Tolerance = 0
	cfg.Start.Food = config.Cell{X: 6, Y: 5}
	return cfg
}

func newTestModel(t *testing.T, g *snake.Game, opts Options) Model {
	t.Helper()
	return NewModel(g, core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24}, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickAdvancesGame(t *testing.T) {
	g := snake.NewDefault(1)
	m := newTestModel(t, g, Options{})

	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd == nil {
		t.Error("tick should arm the next tick")
	}
	if g.Head() != (snake.Point{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected {6 5}", g.Head())
	}

	// A tick from another chain is dropped.
	_, cmd = update(t, m, TickMsg{Gen: 3})
	if cmd != nil {
		t.Error("stale tick should not re-arm")
	}
	if g.Head() != (snake.Point{X: 6, Y: 5}) {
		t.Errorf("stale tick moved the snake to %v", g.Head())
	}
}

func TestModelKeySetsPendingDirection(t *testing.T) {
	g := snake.NewDefault(1)
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if g.PendingDirection() != snake.DirDown {
		t.Errorf("pending = %s, expected down", g.PendingDirection())
	}
	if g.Head() != (snake.Point{X: 5, Y: 5}) {
		t.Error("a key must not move the snake before the tick")
	}

	update(t, m, TickMsg{Gen: 0})
	if g.Head() != (snake.Point{X: 5, Y: 6}) {
		t.Errorf("head = %v, expected {5 6}", g.Head())
	}
}

func TestModelSwipe(t *testing.T) {
	g := snake.NewDefault(1)
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 40, 10))
	update(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 37, 16))

	if g.PendingDirection() != snake.DirDown {
		t.Errorf("pending = %s, expected down", g.PendingDirection())
	}
}

func TestModelRestartStartsNewTickChain(t *testing.T) {
	g := snake.NewDefault(1)
	rec := &audio.Recorder{}
	m := newTestModel(t, g, Options{Player: rec})

	m, _ = update(t, m, TickMsg{Gen: 0})
	m, cmd := update(t, m, runeKey("r"))
	if cmd == nil {
		t.Fatal("restart should arm a new tick chain")
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, expected 1", m.gen)
	}
	if g.Head() != (snake.Point{X: 5, Y: 5}) {
		t.Errorf("head = %v after restart", g.Head())
	}

	// The old chain is dead.
	update(t, m, TickMsg{Gen: 0})
	if g.Head() != (snake.Point{X: 5, Y: 5}) {
		t.Error("tick from the old chain advanced the game")
	}

	sounds := rec.Sounds()
	if len(sounds) == 0 || sounds[len(sounds)-1] != audio.SoundStart {
		t.Errorf("sounds = %v, expected restart jingle last", sounds)
	}
}

func TestModelSavesRoundOnce(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := snake.New(shortBoard(), 1)
	rec := &audio.Recorder{}
	m := newTestModel(t, g, Options{Store: store, Player: rec, Difficulty: "normal"})

	for i := 0; i < 6; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.gen})
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("recorded %d rounds, expected 1", len(rounds))
	}
	if r := rounds[0]; r.Score != 10 || r.Eaten != 1 || r.Level != 1 || r.Difficulty != "normal" {
		t.Errorf("round = %+v", r)
	}

	hasEat, hasOver := false, false
	for _, s := range rec.Sounds() {
		hasEat = hasEat || s == audio.SoundEat
		hasOver = hasOver || s == audio.SoundGameOver
	}
	if !hasEat || !hasOver {
		t.Errorf("sounds = %v, expected eat and game_over", rec.Sounds())
	}

	// A second round is recorded separately.
	m, _ = update(t, m, runeKey("r"))
	for i := 0; i < 6; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.gen})
	}
	rounds, _ = store.TopRounds(10)
	if len(rounds) != 2 {
		t.Errorf("recorded %d rounds, expected 2", len(rounds))
	}
}

func TestModelPauseKey(t *testing.T) {
	g := snake.NewDefault(1)
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, runeKey("p"))
	if !m.State().Paused {
		t.Fatal("expected paused")
	}
	update(t, m, TickMsg{Gen: 0})
	if g.Head() != (snake.Point{X: 5, Y: 5}) {
		t.Error("paused game advanced")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("view should show the pause overlay")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t, snake.NewDefault(1), Options{})

	quit, cmd := update(t, m, runeKey("q"))
	if !quit.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quitting")
	}

	back, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.WantsBack() || back.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, snake.NewDefault(1), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "Fruit Snake") {
		t.Error("view should contain the HUD")
	}
}
