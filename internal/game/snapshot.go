package game

import (
	"time"

	"github.com/sheacoding/jumprocket/internal/config"
)

// Snapshot is the read-only view the presentation layer polls each render
// tick. Everything is value-copied; the display never aliases live state.
type Snapshot struct {
	State   State
	Session Session

	// Difficulty selection in progress (valid in DifficultySelect).
	Cursor        Difficulty
	CursorTargets TargetSummary

	// Target monitor flags and flash queries, pre-resolved at snapshot time.
	JumpsAchieved    bool
	TimeAchieved     bool
	CaloriesAchieved bool
	FlashActive      bool
	ShowNow          bool

	// Live readouts.
	JumpsPerMinute float64
	LiveCalories   float64
}

// TargetSummary is the resolved target pair for a tier, for display.
type TargetSummary struct {
	Jumps int
	Time  int
}

// Snapshot captures the current machine state for rendering.
func (m *Machine) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:   m.state,
		Session: m.session,
		Cursor:  m.cursor,
		CursorTargets: TargetSummary{
			Jumps: m.cursor.TargetJumps(m.cfg),
			Time:  m.cursor.TargetTime(m.cfg),
		},
		JumpsAchieved:    m.monitor.JumpsAchieved,
		TimeAchieved:     m.monitor.TimeAchieved,
		CaloriesAchieved: m.monitor.CaloriesAchieved,
		FlashActive:      m.monitor.FlashActive(now),
		ShowNow:          m.monitor.ShowNow(now),
		JumpsPerMinute:   m.freq.perMinute(now),
		LiveCalories:     LiveCalories(m.session.JumpCount, m.session.Elapsed),
	}
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.System {
	return m.cfg
}
