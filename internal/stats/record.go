// Package stats holds the persisted session model and the pure folds that
// roll completed sessions into daily and historical aggregates. Nothing
// here touches storage; the storage package persists these values.
package stats

import (
	"time"

	"github.com/sheacoding/jumprocket/internal/config"
	"github.com/sheacoding/jumprocket/internal/game"
)

// DateLayout is the calendar-day key format.
const DateLayout = "2006-01-02"

// TimeLayout is the intra-day start-time format.
const TimeLayout = "15:04:05"

// SessionRecord is one completed game, immutable once created.
type SessionRecord struct {
	Date           string  // calendar-day key, DateLayout
	StartTime      string  // TimeLayout
	DurationSecs   int
	Difficulty     game.Difficulty
	JumpCount      int
	Calories       float64
	MaxHeight      float64 // estimated per-jump height, meters
	AvgFrequency   float64 // jumps per second
	Score          int
	TargetAchieved bool
}

// NewSessionRecord derives the full record from a finished session. Pure:
// same inputs, same record.
func NewSessionRecord(cfg config.System, done game.Completion) SessionRecord {
	seconds := int(done.Duration / time.Second)
	freq := game.AvgFrequency(done.JumpCount, seconds)

	return SessionRecord{
		Date:           done.StartedAt.Format(DateLayout),
		StartTime:      done.StartedAt.Format(TimeLayout),
		DurationSecs:   seconds,
		Difficulty:     done.Difficulty,
		JumpCount:      done.JumpCount,
		Calories:       done.Difficulty.Calories(done.JumpCount, seconds),
		MaxHeight:      game.EstimatedJumpHeight(freq),
		AvgFrequency:   freq,
		Score:          done.Difficulty.Score(cfg, done.JumpCount, seconds, freq),
		TargetAchieved: done.Difficulty.TargetAchieved(cfg, done.JumpCount, seconds),
	}
}

// DailyTotal is the roll-up over one day's sessions. Always equal to the
// fold of the session list; never mutated independently.
type DailyTotal struct {
	TotalJumps      int
	TotalCalories   float64
	TotalDuration   int // seconds
	SessionCount    int
	BestScore       int
	TargetsAchieved int
}

// add folds one session into the total.
func (t *DailyTotal) add(s SessionRecord) {
	t.TotalJumps += s.JumpCount
	t.TotalCalories += s.Calories
	t.TotalDuration += s.DurationSecs
	t.SessionCount++
	if s.Score > t.BestScore {
		t.BestScore = s.Score
	}
	if s.TargetAchieved {
		t.TargetsAchieved++
	}
}

// DailyData is one calendar day: the ordered session list plus its total.
type DailyData struct {
	Date     string
	Sessions []SessionRecord
	Total    DailyTotal
}

// AddSession appends a record and refolds the total. The refold is always
// complete, never incremental, so the total cannot drift from the list.
func (d *DailyData) AddSession(s SessionRecord) {
	d.Sessions = append(d.Sessions, s)
	d.Recompute()
}

// Recompute refolds the daily total from the session list. Idempotent.
func (d *DailyData) Recompute() {
	d.Total = DailyTotal{}
	for _, s := range d.Sessions {
		d.Total.add(s)
	}
}

// Empty reports whether the day has no sessions.
func (d *DailyData) Empty() bool {
	return len(d.Sessions) == 0
}
