// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear fade-in over attack and a fade-out over
// the final release of duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume control.
// math.Log2(0) is -Inf, so zero volume becomes silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect durations.
const (
	eatNoteDuration = 60 * time.Millisecond
	crashNoise      = 80 * time.Millisecond
	crashDuration   = 300 * time.Millisecond
	fanfareNote     = 90 * time.Millisecond
	effectAttack    = 5 * time.Millisecond
	effectRelease   = 40 * time.Millisecond
	crashRelease    = 250 * time.Millisecond
)

// CreateEatSound generates a short rising two-note blip.
func CreateEatSound(cfg Config) beep.Streamer {
	rate := cfg.Rate()

	n1 := NewEnvelope(NewOscillator(659.25, eatNoteDuration, WaveSquare, rate), eatNoteDuration, effectAttack, effectRelease, rate)
	n2 := NewEnvelope(NewOscillator(987.77, eatNoteDuration, WaveSquare, rate), eatNoteDuration, effectAttack, effectRelease, rate)

	return newVolume(beep.Seq(n1, n2), 0.5*cfg.Volume)
}

// CreateCrashSound generates a burst of noise followed by a low buzz.
func CreateCrashSound(cfg Config) beep.Streamer {
	rate := cfg.Rate()

	noise := NewEnvelope(NewOscillator(0, crashNoise, WaveNoise, rate), crashNoise, effectAttack, effectRelease, rate)
	buzz := NewEnvelope(NewOscillator(110, crashDuration, WaveSaw, rate), crashDuration, effectAttack, crashRelease, rate)

	return newVolume(beep.Seq(newVolume(noise, 0.4), buzz), 0.8*cfg.Volume)
}

// CreateFanfareSound generates an ascending arpeggio for a filled board.
func CreateFanfareSound(cfg Config) beep.Streamer {
	rate := cfg.Rate()

	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, fanfareNote, WaveSine, rate)
		parts = append(parts, NewEnvelope(osc, fanfareNote, effectAttack, effectRelease, rate))
	}
	return newVolume(beep.Seq(parts...), 0.7*cfg.Volume)
}
