package motion

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Simulator produces a 50 Hz acceleration stream for keyboard-driven play.
// At rest it emits ~1.0g with mild seeded noise; Impulse queues a jump-shaped
// burst (spike above the takeoff threshold, dip below the free-fall
// threshold, settle back to rest) that the detector recognizes as one jump.
//
// Impulse may be called from the input goroutine while Next runs on the
// sensor goroutine, so the pending burst is guarded by a mutex.
type Simulator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	pending []float64 // remaining burst magnitudes, consumed front-first
}

// Burst shape, one value per sample tick (20 ms apart). The spike holds long
// enough to survive the low-pass filter, the dip long enough to trip the
// free-fall threshold, and the tail settles into the landing band. Total
// cycle span lands well inside the 80–1500 ms acceptance window.
var jumpBurst = []float64{
	2.4, 2.6, 2.7, 2.6, 2.3, // takeoff spike
	0.3, 0.2, 0.2, 0.2, 0.3, 0.4, // airborne free fall
	1.1, 1.0, 1.0, // landing settle
}

// NewSimulator creates a simulator with a seeded noise source.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Impulse queues one jump burst. Bursts do not stack; an impulse during an
// active burst is ignored, mirroring how a player cannot jump mid-air.
func (s *Simulator) Impulse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) > 0 {
		return
	}
	s.pending = append(s.pending[:0], jumpBurst...)
}

// Next returns the sample for the current tick.
func (s *Simulator) Next(now time.Time) Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	magnitude := 1.0 + (s.rng.Float64()-0.5)*0.04
	if len(s.pending) > 0 {
		magnitude = s.pending[0]
		s.pending = s.pending[1:]
	}

	// Spread the magnitude over the axes with a slight wobble so traces
	// look like real sensor output rather than a pure Z signal.
	tilt := (s.rng.Float64() - 0.5) * 0.1
	z := magnitude * math.Cos(tilt)
	x := magnitude * math.Sin(tilt)
	return Sample{X: x, Y: 0, Z: z}
}
