// Package audio synthesizes the game's chiptune effects and plays them
// through the system speaker. Everything is generated; no sample assets.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// oscillator generates a fixed-length square wave. Square matches the
// piezo-buzzer character the effects are tuned for; a zero frequency
// produces silence, used for rests between notes.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newOscillator(freq float64, duration time.Duration) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: sampleRate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		if o.freq > 0 {
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
			o.phase += o.freq / float64(sampleRate)
			o.phase -= math.Floor(o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a short attack and release onto a stream so note edges
// don't click.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	edge := sampleRate.N(5 * time.Millisecond)
	if 2*edge > total {
		edge = total / 2
	}
	return &envelope{streamer: s, attack: edge, release: edge, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream to a 0..1 gain. math.Log2(0) is -Inf, so zero
// gain switches to the silent path instead.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// note is one step of a melody. Freq 0 is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// melody chains notes into a single streamer.
func melody(notes []note) beep.Streamer {
	streams := make([]beep.Streamer, len(notes))
	for i, nt := range notes {
		osc := newOscillator(nt.freq, nt.dur)
		streams[i] = newEnvelope(osc, nt.dur)
	}
	return beep.Seq(streams...)
}
