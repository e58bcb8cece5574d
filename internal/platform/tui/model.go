package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-snake/internal/audio"
	"github.com/vovakirdan/fruit-snake/internal/core"
	"github.com/vovakirdan/fruit-snake/internal/storage"
)

// Game is the contract between a game and the terminal platform.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	HandleInput(in core.InputFrame) core.StepResult
	Step() core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Level() int
	Eaten() int
	TickInterval() time.Duration
}

// Options carries the collaborators of a game session.
type Options struct {
	Store      *storage.Store // Session scoreboard; nil disables recording
	Player     audio.Player   // Nil means silent
	Logger     *log.Logger    // Nil discards logs
	Difficulty string         // Recorded with each round
}

func (o Options) withDefaults() Options {
	if o.Player == nil {
		o.Player = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	swipe      *SwipeTracker
	gameState  core.GameState
	gen        int // Current tick chain
	startedAt  time.Time
	quitting   bool
	back       bool
	scoreSaved bool // Whether the round has been recorded
}

// NewModel creates a new Bubble Tea model and starts a round.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts.withDefaults(),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		swipe:     &SwipeTracker{},
		gameState: game.State(),
		startedAt: time.Now(),
	}
}

// Init plays the start jingle and arms the first tick.
func (m Model) Init() tea.Cmd {
	m.opts.Player.Play(audio.SoundStart)
	m.opts.Logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed, "interval", m.game.TickInterval())
	return tickCmd(m.gen, m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Input is applied at once; a direction
// change is picked up by the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if frame.Has(core.ActionBack) {
		m.back = true
		return m, tea.Quit
	}
	if frame.Empty() {
		return m, nil
	}
	cmd := m.apply(m.game.HandleInput(frame))
	return m, cmd
}

// handleMouse turns drags into swipes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g, ok := m.swipe.Track(msg)
	if !ok {
		return m, nil
	}
	frame := core.NewInputFrame()
	frame.Swipe(g.DX, g.DY)
	cmd := m.apply(m.game.HandleInput(frame))
	return m, cmd
}

// handleTick advances the game and arms the next tick at the current speed.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil // Stale chain from before a restart
	}
	if cmd := m.apply(m.game.Step()); cmd != nil {
		return m, cmd
	}
	return m, tickCmd(m.gen, m.game.TickInterval())
}

// apply reacts to a step result. It returns a command only when a new tick
// chain has to be started.
func (m *Model) apply(res core.StepResult) tea.Cmd {
	m.gameState = res.State
	audio.PlayEvents(m.opts.Player, res.Events)

	var cmd tea.Cmd
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventRestart:
			m.gen++
			m.scoreSaved = false
			m.startedAt = time.Now()
			m.opts.Logger.Info("round restarted")
			cmd = tickCmd(m.gen, m.game.TickInterval())
		case core.EventLevelUp:
			m.opts.Logger.Info("level up", "level", e.Value, "interval", m.game.TickInterval())
		case core.EventGameOver:
			m.opts.Logger.Info("game over", "score", e.Value, "level", res.State.Level)
			m.saveRound(e.Value)
		}
	}
	return cmd
}

// saveRound records the finished round once. Empty rounds are not kept.
func (m *Model) saveRound(score int) {
	if m.scoreSaved || score <= 0 || m.opts.Store == nil {
		m.scoreSaved = true
		return
	}
	_, err := m.opts.Store.SaveRound(storage.RoundResult{
		Score:      score,
		Level:      m.game.Level(),
		Eaten:      m.game.Eaten(),
		Difficulty: m.opts.Difficulty,
		Duration:   time.Since(m.startedAt),
	})
	if err != nil {
		m.opts.Logger.Warn("round not recorded", "error", err)
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if the player asked to return to the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game session.
// It reports whether the player quit the program rather than going back.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (quit bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags become swipes
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return true, nil
	}
	return m.IsQuitting() && !m.WantsBack(), nil
}
