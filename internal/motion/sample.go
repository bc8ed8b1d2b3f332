// Package motion provides the accelerometer sample types and the jump
// detection state machine. Detection works on a low-pass filtered magnitude
// signal sampled at a fixed cadence (nominally 50 Hz).
package motion

import "math"

// SampleRate is the nominal sampling cadence of a motion source.
const SampleRate = 50 // Hz

// SamplePeriod is the interval between two samples at SampleRate.
const SamplePeriodMs = 1000 / SampleRate

// Sample is a single 3-axis acceleration reading in g-units.
// At rest the magnitude is ~1.0g.
type Sample struct {
	X, Y, Z float64
}

// Magnitude returns the euclidean norm of the reading.
func (s Sample) Magnitude() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// valid reports whether every axis is a finite number. Sensor glitches
// (NaN/Inf) must not poison the filter state.
func (s Sample) valid() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) &&
		!math.IsNaN(s.Y) && !math.IsInf(s.Y, 0) &&
		!math.IsNaN(s.Z) && !math.IsInf(s.Z, 0)
}
