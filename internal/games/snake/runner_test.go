package snake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/fruit-snake/internal/audio"
	"github.com/vovakirdan/fruit-snake/internal/config"
	"github.com/vovakirdan/fruit-snake/internal/core"
)

func TestSchedulerLifecycle(t *testing.T) {
	s := NewScheduler()
	if s.C() != nil {
		t.Fatal("new scheduler should be stopped")
	}

	s.Start(5 * time.Millisecond)
	select {
	case <-s.C():
	case <-time.After(time.Second):
		t.Fatal("no tick within a second")
	}

	old := s.C()
	s.Reconfigure(7 * time.Millisecond)
	if s.Interval() != 7*time.Millisecond {
		t.Errorf("Interval() = %v, expected 7ms", s.Interval())
	}
	if s.C() == old {
		t.Error("Reconfigure should replace the ticker")
	}

	s.Stop()
	s.Stop()
	if s.C() != nil || s.Interval() != 0 {
		t.Error("scheduler should be stopped")
	}

	s.Start(0)
	if s.C() != nil {
		t.Error("non-positive interval should leave the scheduler stopped")
	}
}

// fastConfig levels up on every eat and starts with food in reach.
func fastConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Speed = config.SpeedConfig{
		InitialIntervalMS: 20,
		StepMS:            10,
		MinIntervalMS:     5,
		EatsPerLevel:      1,
	}
	cfg.Start.Food = config.Cell{X: 6, Y: 5}
	return cfg
}

func TestRunnerReconfiguresOnLevelUp(t *testing.T) {
	g := New(fastConfig(), 1)
	rec := &audio.Recorder{}
	levels := make(chan time.Duration, 1)

	var r *Runner
	r = NewRunner(g, WithAudio(rec), WithObserver(func(res core.StepResult) {
		if res.Has(core.EventLevelUp) {
			select {
			case levels <- r.sched.Interval():
			default:
			}
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case got := <-levels:
		if got != 10*time.Millisecond {
			t.Errorf("scheduler interval after level up = %v, expected 10ms", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no level up observed")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if r.sched.C() != nil {
		t.Error("scheduler should be stopped after Run returns")
	}

	sounds := rec.Sounds()
	hasEat, hasLevel := false, false
	for _, s := range sounds {
		hasEat = hasEat || s == audio.SoundEat
		hasLevel = hasLevel || s == audio.SoundLevelUp
	}
	if !hasEat || !hasLevel {
		t.Errorf("sounds = %v, expected eat and level_up", sounds)
	}
}

func TestRunnerAppliesInput(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Speed.InitialIntervalMS = 1000
	cfg.Speed.MinIntervalMS = 1000
	g := New(cfg, 1)

	results := make(chan core.StepResult, 4)
	r := NewRunner(g, WithObserver(func(res core.StepResult) { results <- res }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Run(ctx) }()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if !r.Send(in) {
		t.Fatal("Send() dropped the frame")
	}

	select {
	case res := <-results:
		if !res.State.Paused || !res.Has(core.EventPause) {
			t.Errorf("result = %+v, expected pause", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("input was not applied")
	}
}

func TestRunnerSendDropsWhenFull(t *testing.T) {
	r := NewRunner(NewDefault(1))
	in := core.NewInputFrame()
	in.Swipe(1, 0)

	for i := 0; i < inputQueueSize; i++ {
		if !r.Send(in) {
			t.Fatalf("Send() %d dropped early", i)
		}
	}
	if r.Send(in) {
		t.Error("Send() should drop when the queue is full")
	}
}

func TestRunnerTimeScale(t *testing.T) {
	r := NewRunner(NewDefault(1), WithTimeScale(4), WithTimeScale(0))
	if got := r.interval(); got != 50*time.Millisecond {
		t.Errorf("interval() = %v, expected 50ms", got)
	}

	r = NewRunner(NewDefault(1), WithTimeScale(100_000_000))
	if got := r.interval(); got != time.Millisecond {
		t.Errorf("interval() = %v with a huge scale, expected the 1ms floor", got)
	}
}

func TestAutopilotSteersTowardFood(t *testing.T) {
	g := NewDefault(1)
	in := Autopilot{}.Next(g)
	if in.Gesture == nil {
		t.Fatal("expected a swipe")
	}
	// Food at {5 20}, head at {5 5}.
	if MapGestureToDirection(in.Gesture.DX, in.Gesture.DY) != DirDown {
		t.Errorf("gesture %+v should map to down", *in.Gesture)
	}

	g.Pause()
	if in := (Autopilot{}).Next(g); !in.Empty() {
		t.Error("autopilot should idle while paused")
	}
}
