// Package audio synthesizes the game's sound cues and plays them through the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// silenceGain is the floor an exponential ramp starts from and returns to.
// An exponential ramp can never reach zero.
const silenceGain = 0.001

// Tone describes one synthesized cue.
type Tone struct {
	Freq     float64
	Wave     WaveType
	Duration time.Duration // Oscillator stop time
	Attack   time.Duration // Ramp up to Peak
	Release  time.Duration // Time from start at which the gain is back at the floor
	Peak     float64
}

// Tones maps each cue to its sound.
var Tones = map[core.Cue]Tone{
	core.CueScore: {
		Freq:     800,
		Wave:     WaveSine,
		Duration: 260 * time.Millisecond,
		Attack:   10 * time.Millisecond,
		Release:  250 * time.Millisecond,
		Peak:     0.08,
	},
	core.CueHit: {
		Freq:     120,
		Wave:     WaveSquare,
		Duration: 500 * time.Millisecond,
		Attack:   10 * time.Millisecond,
		Release:  500 * time.Millisecond,
		Peak:     0.12,
	},
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// newOscillator creates an oscillator that stops after duration.
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with an exponential attack to peak followed by an
// exponential release back to the silence floor.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	peak     float64
}

func newEnvelope(s beep.Streamer, attack, release time.Duration, peak float64, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		peak:     peak,
	}
}

// gain returns the envelope level at sample position pos.
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos < e.attack:
		t := float64(pos) / float64(e.attack)
		return silenceGain * math.Pow(e.peak/silenceGain, t)
	case pos < e.release:
		t := float64(pos-e.attack) / float64(e.release-e.attack)
		return e.peak * math.Pow(silenceGain/e.peak, t)
	default:
		return silenceGain
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect.
// math.Log2(0) is -Inf, so zero volume is handled as silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Streamer builds a fresh streamer for the tone at the given rate and master
// volume.
func (t Tone) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	osc := newOscillator(t.Freq, t.Duration, t.Wave, rate)
	shaped := newEnvelope(osc, t.Attack, t.Release, t.Peak, rate)
	return newVolume(shaped, master)
}
