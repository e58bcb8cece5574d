package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-snake/internal/audio"
	"github.com/vovakirdan/fruit-snake/internal/core"
)

const (
	inputQueueSize = 16
	minInterval    = time.Millisecond
)

// Runner drives a Game headlessly. A single goroutine serialises ticks and
// input, so the game never sees concurrent access.
type Runner struct {
	game      *Game
	sched     *Scheduler
	player    audio.Player
	logger    *log.Logger
	inputs    chan core.InputFrame
	observer  func(core.StepResult)
	timeScale int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithAudio sets the player that receives event sounds.
func WithAudio(p audio.Player) RunnerOption {
	return func(r *Runner) {
		if p != nil {
			r.player = p
		}
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver registers a callback invoked after every tick or input that
// produced a result. It runs on the runner goroutine.
func WithObserver(fn func(core.StepResult)) RunnerOption {
	return func(r *Runner) {
		r.observer = fn
	}
}

// WithTimeScale divides every tick interval by n. Values below 1 are ignored.
func WithTimeScale(n int) RunnerOption {
	return func(r *Runner) {
		if n >= 1 {
			r.timeScale = n
		}
	}
}

// NewRunner creates a runner for g.
func NewRunner(g *Game, opts ...RunnerOption) *Runner {
	r := &Runner{
		game:      g,
		sched:     NewScheduler(),
		player:    audio.Nop{},
		logger:    log.New(io.Discard),
		inputs:    make(chan core.InputFrame, inputQueueSize),
		timeScale: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send posts input to the runner without blocking. It returns false if the
// input queue is full and the frame was dropped.
func (r *Runner) Send(in core.InputFrame) bool {
	select {
	case r.inputs <- in.Clone():
		return true
	default:
		return false
	}
}

// Run ticks the game until ctx is done. The timer is restarted whenever the
// game changes speed.
func (r *Runner) Run(ctx context.Context) error {
	r.sched.Start(r.interval())
	defer r.sched.Stop()

	r.logger.Info("round started", "interval", r.game.TickInterval(), "food", r.game.Food().Kind)

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner stopped", "score", r.game.Score())
			return ctx.Err()
		case in := <-r.inputs:
			r.dispatch(r.game.HandleInput(in))
		case <-r.sched.C():
			r.dispatch(r.game.Step())
		}
	}
}

// interval is the scaled tick period, never below minInterval.
func (r *Runner) interval() time.Duration {
	return max(r.game.TickInterval()/time.Duration(r.timeScale), minInterval)
}

// dispatch fans a step result out to audio, the logger and the observer.
func (r *Runner) dispatch(res core.StepResult) {
	if len(res.Events) == 0 {
		return
	}
	audio.PlayEvents(r.player, res.Events)

	for _, e := range res.Events {
		switch e.Kind {
		case core.EventEat:
			r.logger.Debug("fruit eaten", "points", e.Value, "score", res.State.Score)
		case core.EventLevelUp:
			r.sched.Reconfigure(r.interval())
			r.logger.Info("level up", "level", e.Value, "interval", r.sched.Interval())
		case core.EventRestart:
			r.logger.Info("round restarted")
			r.sched.Reconfigure(r.interval())
		case core.EventGameOver:
			r.logger.Info("game over", "score", e.Value, "level", res.State.Level)
		case core.EventPause:
			r.logger.Debug("paused")
		case core.EventResume:
			r.logger.Debug("resumed")
		}
	}

	if r.observer != nil {
		r.observer(res)
	}
}
