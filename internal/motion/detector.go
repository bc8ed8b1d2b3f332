package motion

import "time"

// Jump detection tuning. Thresholds are in g-units, durations in wall time.
const (
	thresholdHigh = 1.5 // takeoff spike
	thresholdLow  = 0.8 // free-fall dip
	landingLow    = 0.8 // landing band lower bound
	landingHigh   = 1.2 // landing band upper bound

	filterAlpha = 0.7 // low-pass coefficient, tuned for 50 Hz

	minJumpDuration = 80 * time.Millisecond
	maxJumpDuration = 1500 * time.Millisecond
	jumpCooldown    = 250 * time.Millisecond
)

// phase is the internal detector phase.
type phase int

const (
	phaseIdle phase = iota
	phaseRising
	phaseFalling
	phaseCooldown
)

// Detector classifies discrete jumps from a stream of Samples.
//
// It applies an exponential low-pass filter to the acceleration magnitude and
// drives a four-phase machine: a spike above the high threshold starts a
// cycle, a dip below the low threshold marks free fall, and a return into the
// landing band completes it. Cycles outside the 80–1500 ms duration window
// are rejected, and a cooldown keeps a single hard landing from counting
// twice. At most one jump is reported per cycle.
type Detector struct {
	phase    phase
	filtered float64
	started  time.Time // cycle start
	lastJump time.Time // last accepted jump
}

// NewDetector returns a detector with the filter primed at rest (1.0g).
func NewDetector() *Detector {
	return &Detector{filtered: 1.0}
}

// Ingest feeds one sample and reports whether it completed a jump.
// Invalid (non-finite) samples are skipped without touching filter state.
func (d *Detector) Ingest(s Sample, now time.Time) bool {
	if !s.valid() {
		return false
	}

	d.filtered = filterAlpha*d.filtered + (1-filterAlpha)*s.Magnitude()

	switch d.phase {
	case phaseIdle:
		if d.filtered > thresholdHigh {
			d.phase = phaseRising
			d.started = now
		}

	case phaseRising:
		switch {
		case d.filtered < thresholdLow:
			d.phase = phaseFalling
		case now.Sub(d.started) > maxJumpDuration:
			// Sustained acceleration (shaking, travel), not a jump.
			d.phase = phaseIdle
		}

	case phaseFalling:
		switch {
		case d.filtered > landingLow && d.filtered < landingHigh:
			duration := now.Sub(d.started)
			accepted := duration >= minJumpDuration && duration <= maxJumpDuration &&
				(d.lastJump.IsZero() || now.Sub(d.lastJump) >= jumpCooldown)
			if accepted {
				d.lastJump = now
			}
			// Rejected cycles still go through cooldown so the landing
			// bounce cannot start a fresh cycle immediately.
			d.phase = phaseCooldown
			return accepted
		case now.Sub(d.started) > maxJumpDuration:
			d.phase = phaseIdle
		}

	case phaseCooldown:
		if now.Sub(d.lastJump) >= jumpCooldown {
			d.phase = phaseIdle
		}
	}

	return false
}

// Filtered returns the current filtered magnitude, for display readouts.
func (d *Detector) Filtered() float64 {
	return d.filtered
}

// Reset returns the detector to idle with the filter primed at rest.
func (d *Detector) Reset() {
	d.phase = phaseIdle
	d.filtered = 1.0
	d.started = time.Time{}
	d.lastJump = time.Time{}
}
