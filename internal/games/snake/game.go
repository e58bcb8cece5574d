package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/fruit-snake/internal/config"
	"github.com/vovakirdan/fruit-snake/internal/core"
)

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the Fruit Snake game.
// It is not safe for concurrent use; the TUI update loop or a Runner
// owns it.
type Game struct {
	cfg      config.SnakeConfig
	progress *config.Progression
	bounds   Bounds
	start    []Point
	startDir Direction

	rng  *rand.Rand
	tick uint64

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Written by input, consumed by the next tick

	food     Food
	score    int
	eaten    int
	level    int
	interval time.Duration
	phase    Phase

	// Events produced since the last StepResult
	events []core.Event
}

// New creates a game from a validated configuration and starts a round.
func New(cfg config.SnakeConfig, seed int64) *Game {
	g := &Game{
		cfg:      cfg,
		progress: config.NewProgression(cfg.Speed),
		bounds:   BoundsFrom(cfg.Board),
		rng:      rand.New(rand.NewSource(seed)),
	}
	g.start = make([]Point, len(cfg.Start.Snake))
	for i, c := range cfg.Start.Snake {
		g.start[i] = Point{X: c.X, Y: c.Y}
	}
	if len(g.start) == 0 {
		g.start = []Point{{X: 5, Y: 5}}
	}
	g.startDir, _ = ParseDirection(cfg.Start.Direction)
	g.restart()
	return g
}

// NewDefault creates a game with the built-in configuration.
func NewDefault(seed int64) *Game {
	return New(config.DefaultSnakeConfig(), seed)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Fruit Snake"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Reset reseeds the food RNG and starts a fresh round without emitting
// events. The screen size is ignored: Render fits the board to whatever
// screen it is given.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.restart()
}

// Restart rebuilds the round from the start configuration.
// It is allowed from any phase.
func (g *Game) Restart() {
	g.restart()
	g.emit(core.EventRestart, 0)
}

func (g *Game) restart() {
	g.tick = 0
	g.snake = append(g.snake[:0:0], g.start...)
	g.direction = g.startDir
	g.nextDir = g.startDir
	g.food = Food{
		Point: Point{X: g.cfg.Start.Food.X, Y: g.cfg.Start.Food.Y},
		Kind:  FruitKind(g.cfg.Start.Fruit),
	}
	g.score = 0
	g.eaten = 0
	g.level = 1
	g.interval = g.progress.Initial()
	g.phase = PhaseRunning
	g.events = g.events[:0]
}

// SetDirection sets the direction the next tick will move in.
// Only the latest call before a tick has any effect.
func (g *Game) SetDirection(d Direction) {
	g.nextDir = d
}

// Pause stops ticks from advancing the round.
func (g *Game) Pause() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhasePaused
	g.emit(core.EventPause, 0)
}

// Resume continues a paused round.
func (g *Game) Resume() {
	if g.phase != PhasePaused {
		return
	}
	g.phase = PhaseRunning
	g.emit(core.EventResume, 0)
}

// TogglePause switches between running and paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	}
}

// AdvanceTick moves the snake by one cell. It does nothing unless the round
// is running.
func (g *Game) AdvanceTick() {
	if g.phase != PhaseRunning {
		return
	}
	g.tick++
	g.direction = g.nextDir

	// The head is checked where it stands, so a head that just left the
	// board ends the round on the following tick.
	head := g.snake[0]
	if IsOutOfBounds(head, g.bounds) {
		g.phase = PhaseGameOver
		g.emit(core.EventGameOver, g.score)
		return
	}

	newHead := head.Add(g.direction.Offset())
	if CheckEatsFood(newHead, g.food.Point, g.cfg.Eating.Tolerance) {
		g.snake = append([]Point{newHead}, g.snake...)
		g.eat()
		return
	}

	g.snake = append([]Point{newHead}, g.snake[:len(g.snake)-1]...)
	g.emit(core.EventMove, 0)
}

// eat scores the current fruit, places the next one and handles leveling.
func (g *Game) eat() {
	points := g.cfg.Fruits.Points(string(g.food.Kind))
	g.score += points
	g.eaten++
	g.emit(core.EventEat, points)

	g.food = Food{
		Point: PlaceFood(g.rng, g.bounds.XMax, g.bounds.YMax),
		Kind:  RandomFruit(g.rng, g.cfg.Fruits),
	}

	if g.progress.LevelsUp(g.eaten) {
		g.level = g.progress.LevelFor(g.eaten)
		g.interval = g.progress.IntervalFor(g.level)
		g.emit(core.EventLevelUp, g.level)
	}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// drain returns the pending events and clears the buffer.
func (g *Game) drain() []core.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// Step advances one tick and reports what happened. Events left over from
// direct calls such as Pause are discarded; only the tick's own are reported.
func (g *Game) Step() core.StepResult {
	g.events = g.events[:0]
	g.AdvanceTick()
	return core.StepResult{State: g.State(), Events: g.drain()}
}

// HandleInput applies player input immediately. Direction changes only take
// effect on the next tick. The result carries the events of this input only.
func (g *Game) HandleInput(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	switch {
	case in.Has(core.ActionUp):
		g.SetDirection(DirUp)
	case in.Has(core.ActionDown):
		g.SetDirection(DirDown)
	case in.Has(core.ActionLeft):
		g.SetDirection(DirLeft)
	case in.Has(core.ActionRight):
		g.SetDirection(DirRight)
	}
	if in.Gesture != nil {
		g.SetDirection(MapGestureToDirection(in.Gesture.DX, in.Gesture.DY))
	}

	return core.StepResult{State: g.State(), Events: g.drain()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Snake returns a copy of the snake, head first.
func (g *Game) Snake() []Point {
	out := make([]Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Head returns the first snake segment.
func (g *Game) Head() Point {
	return g.snake[0]
}

// Food returns the active fruit.
func (g *Game) Food() Food {
	return g.food
}

// Score returns the points collected this round.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// Eaten returns the number of fruits eaten this round.
func (g *Game) Eaten() int {
	return g.eaten
}

// Direction returns the direction used by the last tick.
func (g *Game) Direction() Direction {
	return g.direction
}

// PendingDirection returns the direction the next tick will use.
func (g *Game) PendingDirection() Direction {
	return g.nextDir
}

// TickInterval returns the period between ticks at the current level.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

// Phase returns the lifecycle state of the round.
func (g *Game) Phase() Phase {
	return g.phase
}

// IsGameOver reports whether the round has ended.
func (g *Game) IsGameOver() bool {
	return g.phase == PhaseGameOver
}

// IsPaused reports whether the round is paused.
func (g *Game) IsPaused() bool {
	return g.phase == PhasePaused
}

// Bounds returns the legal head area.
func (g *Game) Bounds() Bounds {
	return g.bounds
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Level: %d, Phase: %s\n", g.tick, g.score, g.level, g.phase)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Next: %s\n", len(g.snake), g.direction, g.nextDir)
	head := g.snake[0]
	fmt.Fprintf(&b, "Head: (%d, %d), Food: %s (%d, %d)\n", head.X, head.Y, g.food.Kind, g.food.X, g.food.Y)
	fmt.Fprintf(&b, "Interval: %s\n", g.interval)
	return b.String()
}
