// Package audio plays short sound effects in response to game events.
// Playback is fire-and-forget: a Player never blocks the game loop and
// never reports failures to it.
package audio

import (
	"sync"

	"github.com/vovakirdan/fruit-snake/internal/core"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundMove Sound = iota
	SoundEat
	SoundLevelUp
	SoundGameOver
	SoundPause
	SoundStart
)

func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundEat:
		return "eat"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	case SoundPause:
		return "pause"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// Player plays sound effects.
type Player interface {
	// Play starts a sound and returns immediately.
	Play(s Sound)
	// Close stops playback and releases held resources.
	Close() error
}

// ForEvent returns the sound for a game event.
func ForEvent(e core.Event) (Sound, bool) {
	switch e.Kind {
	case core.EventMove:
		return SoundMove, true
	case core.EventEat:
		return SoundEat, true
	case core.EventLevelUp:
		return SoundLevelUp, true
	case core.EventGameOver:
		return SoundGameOver, true
	case core.EventPause, core.EventResume:
		return SoundPause, true
	case core.EventRestart:
		return SoundStart, true
	default:
		return 0, false
	}
}

// PlayEvents plays the sound of every event in order.
func PlayEvents(p Player, events []core.Event) {
	for _, e := range events {
		if s, ok := ForEvent(e); ok {
			p.Play(s)
		}
	}
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Sound) {}

func (Nop) Close() error { return nil }

// Recorder is a Player that remembers what it was asked to play.
type Recorder struct {
	mu     sync.Mutex
	sounds []Sound
	closed bool
}

// Play records s.
func (r *Recorder) Play(s Sound) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sounds = append(r.sounds, s)
}

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Sounds returns a copy of the recorded sounds.
func (r *Recorder) Sounds() []Sound {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sound, len(r.sounds))
	copy(out, r.sounds)
	return out
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
