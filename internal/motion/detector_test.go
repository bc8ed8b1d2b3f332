package motion

import (
	"math"
	"testing"
	"time"
)

// feedMagnitudes runs a z-axis magnitude sequence through the detector at
// the nominal 50 Hz cadence and returns the number of accepted jumps.
func feedMagnitudes(d *Detector, start time.Time, mags []float64) int {
	jumps := 0
	for i, m := range mags {
		now := start.Add(time.Duration(i) * SamplePeriodMs * time.Millisecond)
		if d.Ingest(Sample{Z: m}, now) {
			jumps++
		}
	}
	return jumps
}

// rest returns n samples of steady 1.0g.
func rest(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0
	}
	return out
}

func TestDetectorAcceptsJumpCycle(t *testing.T) {
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	seq := append(append([]float64{}, jumpBurst...), rest(10)...)
	if got := feedMagnitudes(d, start, seq); got != 1 {
		t.Errorf("jump cycle produced %d detections, want 1", got)
	}
}

func TestDetectorSpikeWithoutFreeFall(t *testing.T) {
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// Sustained acceleration that settles straight back to rest. Without
	// the free-fall dip this is shaking or travel, not a jump.
	seq := append([]float64{2.5, 2.5, 2.5, 2.5, 2.5}, rest(80)...)
	if got := feedMagnitudes(d, start, seq); got != 0 {
		t.Errorf("spike without free fall produced %d detections, want 0", got)
	}
}

func TestDetectorTooShortCycleRejected(t *testing.T) {
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// Spike, dip and landing inside 60 ms. Under the minimum airborne
	// time, so it must be rejected as a sensor glitch.
	seq := []float64{3.0, 0.0, 0.0, 1.2}
	if got := feedMagnitudes(d, start, seq); got != 0 {
		t.Errorf("sub-minimum cycle produced %d detections, want 0", got)
	}
}

func TestDetectorCooldownAbsorbsLandingBounce(t *testing.T) {
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// A full jump immediately followed by a bounce-shaped cycle. The
	// bounce lands within the cooldown window and must not count.
	seq := append(append([]float64{}, jumpBurst...), 2.8, 2.8, 0.2, 0.2, 0.2, 1.0, 1.0)
	if got := feedMagnitudes(d, start, seq); got != 1 {
		t.Errorf("jump plus bounce produced %d detections, want 1", got)
	}
}

func TestDetectorSeparatedJumpsBothCount(t *testing.T) {
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// Two bursts with enough rest between them to clear the cooldown.
	seq := append(append([]float64{}, jumpBurst...), rest(20)...)
	seq = append(seq, jumpBurst...)
	seq = append(seq, rest(10)...)
	if got := feedMagnitudes(d, start, seq); got != 2 {
		t.Errorf("two separated jumps produced %d detections, want 2", got)
	}
}

func TestDetectorSkipsInvalidSamples(t *testing.T) {
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	before := d.Filtered()
	d.Ingest(Sample{Z: math.NaN()}, start)
	d.Ingest(Sample{X: math.Inf(1)}, start)
	if d.Filtered() != before {
		t.Errorf("invalid samples changed filter state: %v -> %v", before, d.Filtered())
	}

	// A clean jump after the glitches still detects.
	seq := append(append([]float64{}, jumpBurst...), rest(10)...)
	if got := feedMagnitudes(d, start.Add(time.Second), seq); got != 1 {
		t.Errorf("jump after glitches produced %d detections, want 1", got)
	}
}

func TestDetectorResetClearsState(t *testing.T) {
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	feedMagnitudes(d, start, jumpBurst)
	d.Reset()

	if d.Filtered() != 1.0 {
		t.Errorf("Filtered() after reset = %v, want 1.0", d.Filtered())
	}
	// After reset the cooldown from the previous jump is gone.
	seq := append(append([]float64{}, jumpBurst...), rest(10)...)
	if got := feedMagnitudes(d, start.Add(20*time.Millisecond), seq); got != 1 {
		t.Errorf("jump after reset produced %d detections, want 1", got)
	}
}

func TestSimulatorDeterministicWithSeed(t *testing.T) {
	a := NewSimulator(42)
	b := NewSimulator(42)
	now := time.Now()

	for i := 0; i < 100; i++ {
		if i == 10 {
			a.Impulse()
			b.Impulse()
		}
		sa := a.Next(now)
		sb := b.Next(now)
		if sa != sb {
			t.Fatalf("sample %d differs: %v vs %v", i, sa, sb)
		}
	}
}

func TestSimulatorImpulseDetectsAsOneJump(t *testing.T) {
	sim := NewSimulator(7)
	d := NewDetector()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	sim.Impulse()
	jumps := 0
	for i := 0; i < 50; i++ {
		now := start.Add(time.Duration(i) * SamplePeriodMs * time.Millisecond)
		if d.Ingest(sim.Next(now), now) {
			jumps++
		}
	}
	if jumps != 1 {
		t.Errorf("impulse produced %d detections, want 1", jumps)
	}
}

func TestSimulatorRestNearGravity(t *testing.T) {
	sim := NewSimulator(3)
	now := time.Now()

	for i := 0; i < 200; i++ {
		m := sim.Next(now).Magnitude()
		if m < 0.9 || m > 1.1 {
			t.Fatalf("rest magnitude %v outside [0.9, 1.1]", m)
		}
	}
}
