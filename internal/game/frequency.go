package game

import "time"

// Jump frequency is measured over a sliding window of recent jump
// timestamps and reported in jumps per minute.
const (
	frequencyWindow = 5 * time.Second
	maxJumpRecords  = 50
)

// freqWindow is a ring of recent jump times. Single-writer (game task).
type freqWindow struct {
	times [maxJumpRecords]time.Time
	next  int
}

func (w *freqWindow) reset() {
	*w = freqWindow{}
}

func (w *freqWindow) add(now time.Time) {
	w.times[w.next] = now
	w.next = (w.next + 1) % maxJumpRecords
}

// perMinute counts jumps inside the window and extrapolates to a
// per-minute rate.
func (w *freqWindow) perMinute(now time.Time) float64 {
	var inWindow int
	for _, t := range w.times {
		if !t.IsZero() && now.Sub(t) <= frequencyWindow {
			inWindow++
		}
	}
	return float64(inWindow) * float64(time.Minute) / float64(frequencyWindow)
}

// Intensity grades the workout 0-10 from the current jump rate and the
// elapsed playtime. Coarse heuristic for the result screen.
func Intensity(perMinute float64, elapsed time.Duration) float64 {
	intensity := perMinute * elapsed.Minutes() / 10.0
	if intensity > 10 {
		intensity = 10
	}
	return intensity
}
