package game

import (
	"time"

	"github.com/sheacoding/jumprocket/internal/config"
)

// Target monitor timing. Checks are self-throttled; the flash window tells
// the display layer to alternate visibility while it is active.
const (
	targetCheckInterval = 500 * time.Millisecond
	flashDuration       = 3 * time.Second
	flashPeriod         = 200 * time.Millisecond
)

// TargetMonitor watches a running session for the configured jump, time and
// calorie targets. Each metric is a one-shot latch: it fires once per
// session and stays achieved. Independent of the launch condition.
type TargetMonitor struct {
	JumpsAchieved    bool
	TimeAchieved     bool
	CaloriesAchieved bool

	lastCheck  time.Time
	flashStart time.Time
	flashing   bool
}

// reset clears all latches for a new session.
func (t *TargetMonitor) reset() {
	*t = TargetMonitor{}
}

// LiveCalories is the real-time calorie heuristic used for target checks:
// 0.5 kcal per jump plus 5 kcal per minute. Simpler than the final session
// derivation on purpose; it only drives motivational feedback.
func LiveCalories(jumps int, elapsed time.Duration) float64 {
	return float64(jumps)*0.5 + elapsed.Minutes()*5.0
}

// check evaluates the three OR'd targets against the session. Callers may
// invoke it every tick; actual evaluation runs at most every 500 ms.
// Returns true when a new latch fired this call.
func (t *TargetMonitor) check(cfg config.System, s *Session, now time.Time) bool {
	if !cfg.TargetsEnabled {
		return false
	}
	if !t.lastCheck.IsZero() && now.Sub(t.lastCheck) < targetCheckInterval {
		return false
	}
	t.lastCheck = now

	fired := false

	if !t.JumpsAchieved && s.JumpCount >= s.Difficulty.TargetJumps(cfg) {
		t.JumpsAchieved = true
		fired = true
	}
	if !t.TimeAchieved && int(s.Elapsed/time.Second) >= s.Difficulty.TargetTime(cfg) {
		t.TimeAchieved = true
		fired = true
	}
	if !t.CaloriesAchieved && LiveCalories(s.JumpCount, s.Elapsed) >= cfg.TargetCalories {
		t.CaloriesAchieved = true
		fired = true
	}

	if fired {
		t.flashing = true
		t.flashStart = now
	}
	return fired
}

// FlashActive reports whether the achievement flash window is running.
func (t *TargetMonitor) FlashActive(now time.Time) bool {
	if !t.flashing {
		return false
	}
	if now.Sub(t.flashStart) >= flashDuration {
		t.flashing = false
		return false
	}
	return true
}

// ShowNow reports whether the display should be visible at this instant of
// the flash: visibility alternates every 200 ms. Always true outside an
// active flash window.
func (t *TargetMonitor) ShowNow(now time.Time) bool {
	if !t.FlashActive(now) {
		return true
	}
	return (now.Sub(t.flashStart)/flashPeriod)%2 == 0
}
