package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fruit-snake/internal/config"
)

// queueSize bounds the sounds waiting for the worker. Extra requests are
// dropped so Play never blocks.
const queueSize = 8

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the output device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	return speakerErr
}

// Beep plays synthesised effects through the system speaker.
// It holds a single current sound; starting a new one releases the previous.
type Beep struct {
	logger *log.Logger
	volume float64
	queue  chan Sound
	done   chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	current *beep.Ctrl
	closed  bool
}

// New returns a speaker-backed Player, or Nop when audio is disabled or the
// device cannot be opened. Failures are logged, never returned.
func New(cfg config.AudioConfig, logger *log.Logger) Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		return Nop{}
	}
	if err := initSpeaker(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return Nop{}
	}
	b := &Beep{
		logger: logger,
		volume: cfg.Volume,
		queue:  make(chan Sound, queueSize),
		done:   make(chan struct{}),
	}
	b.wg.Add(1)
	go b.run()
	return b
}

// Play queues s for playback. The sound is dropped if the queue is full or
// the player is closed.
func (b *Beep) Play(s Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.queue <- s:
	default:
		b.logger.Debug("sound dropped", "sound", s)
	}
}

// Close stops the worker and releases the current sound.
func (b *Beep) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()

	b.wg.Wait()
	b.release(nil)
	return nil
}

func (b *Beep) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return
		case s := <-b.queue:
			b.start(s)
		}
	}
}

func (b *Beep) start(s Sound) {
	st := Synthesize(s, sampleRate, b.volume)
	if st == nil {
		b.logger.Warn("unknown sound", "sound", s)
		return
	}
	ctrl := &beep.Ctrl{Streamer: st}
	b.release(ctrl)
	speaker.Play(ctrl)
}

// release detaches the current sound, if any, and makes next current.
// A Ctrl without a streamer reports end of stream, so the speaker drops it.
func (b *Beep) release(next *beep.Ctrl) {
	speaker.Lock()
	if b.current != nil {
		b.current.Streamer = nil
	}
	b.current = next
	speaker.Unlock()
}
