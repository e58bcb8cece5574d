package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a sound effect.
type note struct {
	freq     float64
	duration time.Duration
	square   bool
}

var melodies = map[Sound][]note{
	SoundMove:     {{freq: 220, duration: 12 * time.Millisecond, square: true}},
	SoundEat:      {{freq: 880, duration: 50 * time.Millisecond}, {freq: 1320, duration: 70 * time.Millisecond}},
	SoundLevelUp:  {{freq: 523.25, duration: 70 * time.Millisecond}, {freq: 659.25, duration: 70 * time.Millisecond}, {freq: 783.99, duration: 70 * time.Millisecond}, {freq: 1046.5, duration: 120 * time.Millisecond}},
	SoundGameOver: {{freq: 392, duration: 150 * time.Millisecond}, {freq: 329.63, duration: 150 * time.Millisecond}, {freq: 261.63, duration: 300 * time.Millisecond, square: true}},
	SoundPause:    {{freq: 440, duration: 60 * time.Millisecond}},
	SoundStart:    {{freq: 523.25, duration: 80 * time.Millisecond}, {freq: 783.99, duration: 120 * time.Millisecond}},
}

// moveGain keeps the per-tick click well below the other effects.
const moveGain = 0.25

// Synthesize builds the streamer for a sound at the given volume (0..1).
// It returns nil for unknown sounds.
func Synthesize(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	melody, ok := melodies[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(melody))
	for i, n := range melody {
		parts[i] = newTone(n, rate)
	}
	if s == SoundMove {
		volume *= moveGain
	}
	return withVolume(beep.Seq(parts...), volume)
}

// tone is a finite oscillator with a short linear fade at both ends.
type tone struct {
	freq     float64
	square   bool
	rate     beep.SampleRate
	total    int
	fade     int
	position int
}

func newTone(n note, rate beep.SampleRate) *tone {
	total := rate.N(n.duration)
	return &tone{
		freq:   n.freq,
		square: n.square,
		rate:   rate,
		total:  total,
		fade:   min(rate.N(5*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		phase := float64(t.position) * t.freq / float64(t.rate)
		val := math.Sin(2 * math.Pi * phase)
		if t.square {
			val = math.Copysign(0.6, val)
		}
		val *= t.envelope()
		samples[i][0] = val
		samples[i][1] = val
		t.position++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.fade == 0 {
		return 1
	}
	if t.position < t.fade {
		return float64(t.position) / float64(t.fade)
	}
	if remaining := t.total - t.position; remaining < t.fade {
		return float64(remaining) / float64(t.fade)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// withVolume wraps s in a volume effect; log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
