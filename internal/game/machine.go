// Package game implements the jump-rocket core: the difficulty policy, the
// live session counters, the target monitor and the state machine that ties
// them together. The package has no rendering or I/O besides the Recorder
// handoff; the presentation layer polls snapshots and drains sound requests.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sheacoding/jumprocket/internal/config"
)

// State is the canonical machine state.
type State int

const (
	StateIdle State = iota
	StateDifficultySelect
	StatePlaying
	StatePaused
	StateResetConfirm
	StateLaunching
	StateResult
	stateCount
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDifficultySelect:
		return "difficulty_select"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateResetConfirm:
		return "reset_confirm"
	case StateLaunching:
		return "launching"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// Launch and flow timing.
const (
	// Starting the game from idle requires two detected jumps inside this
	// window, filtering accidental motion.
	idleStartJumps  = 2
	idleStartWindow = 2 * time.Second

	// Safety caps: a session launches no matter what once either is hit.
	maxPlayDuration = 10 * time.Minute
	maxPlayJumps    = 500

	launchDuration    = 3 * time.Second
	resultTimeout     = 30 * time.Second
	victoryHeight     = 50000 // meters; plays the victory fanfare
)

// Completion carries the finalized session fields across the persistence
// handoff. Value type; the stats layer derives everything else from it.
type Completion struct {
	StartedAt    time.Time
	Difficulty   Difficulty
	JumpCount    int
	Duration     time.Duration
	Fuel         int
	FlightHeight int
}

// Recorder persists a completed session. Failures are logged and absorbed;
// the result screen always shows the in-memory figures.
type Recorder interface {
	Record(Completion) error
}

// Machine is the central game controller. It owns the Session exclusively;
// all mutation happens on the game task via HandleJump, HandleButton and
// Tick. Snapshot returns value copies for other tasks.
type Machine struct {
	cfg      config.System
	recorder Recorder
	logger   *log.Logger

	state   State
	session Session
	monitor TargetMonitor
	sounds  soundQueue
	freq    freqWindow

	startTime  time.Time
	pauseStart time.Time
	totalPause time.Duration

	// Idle double-jump confirmation.
	idleJumps    int
	lastIdleJump time.Time

	cursor      Difficulty // difficulty selection in progress
	launchStart time.Time
	resultStart time.Time
}

// NewMachine creates a machine in the idle state. A nil recorder disables
// persistence; a nil logger discards logs.
func NewMachine(cfg config.System, recorder Recorder, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Machine{
		cfg:      cfg,
		recorder: recorder,
		logger:   logger,
		state:    StateIdle,
		session:  newSession(ParseDifficulty(cfg.DefaultDifficulty)),
	}
	m.sounds.push(SoundBoot)
	return m
}

// State returns the current canonical state.
func (m *Machine) State() State {
	return m.state
}

// Sounds drains the pending sound requests.
func (m *Machine) Sounds() []SoundEvent {
	return m.sounds.drain()
}

// HandleJump feeds one detected jump into the machine.
func (m *Machine) HandleJump(now time.Time) {
	switch m.state {
	case StateIdle:
		// Require consecutive jumps in a short window so a bumped table
		// does not start a game.
		if !m.lastIdleJump.IsZero() && now.Sub(m.lastIdleJump) > idleStartWindow {
			m.idleJumps = 0
		}
		m.idleJumps++
		m.lastIdleJump = now
		if m.idleJumps >= idleStartJumps {
			m.idleJumps = 0
			m.enterDifficultySelect()
		}

	case StatePlaying:
		m.session.recordJump(now)
		m.freq.add(now)
		m.sounds.push(SoundJump)
	}
	// All other states ignore jumps.
}

// HandleButton feeds one button event into the machine.
func (m *Machine) HandleButton(ev ButtonEvent, now time.Time) {
	if ev == ButtonNone {
		return
	}

	switch m.state {
	case StateIdle:
		m.enterDifficultySelect()

	case StateDifficultySelect:
		switch ev {
		case ButtonShortPress:
			m.cursor = m.cursor.Next()
			m.sounds.push(SoundDifficultySelect)
		case ButtonLongPress:
			m.sounds.push(SoundDifficultyConfirm)
			m.start(m.cursor, now)
		}

	case StatePlaying:
		switch ev {
		case ButtonShortPress:
			m.pause(now)
		case ButtonLongPress:
			m.enterResetConfirm(now)
		}

	case StatePaused:
		switch ev {
		case ButtonShortPress:
			m.resume(now)
		case ButtonLongPress:
			m.enterResetConfirm(now)
		}

	case StateResetConfirm:
		switch ev {
		case ButtonShortPress:
			// Cancel: the confirm screen is a pause-adjacent safety gate,
			// so cancellation always lands on Paused.
			m.setState(StatePaused)
		case ButtonLongPress:
			m.reset()
		}

	case StateLaunching:
		// Launch animation cannot be interrupted.

	case StateResult:
		if ev == ButtonShortPress {
			m.setState(StateIdle)
		}
	}
}

// Tick advances time-driven behavior. Call at the game task cadence (~20 Hz).
func (m *Machine) Tick(now time.Time) {
	switch m.state {
	case StatePlaying:
		m.updateElapsed(now)
		m.session.refresh(now)
		if m.monitor.check(m.cfg, &m.session, now) {
			m.sounds.push(SoundTargetAchieved)
		}
		if m.shouldLaunch() {
			m.logger.Info("launch condition met",
				"jumps", m.session.JumpCount,
				"fuel", m.session.Fuel,
				"difficulty", m.session.Difficulty)
			m.launchStart = now
			m.sounds.push(SoundRocketLaunch)
			m.setState(StateLaunching)
		}

	case StateLaunching:
		if now.Sub(m.launchStart) >= launchDuration {
			m.finishLaunch(now)
		}

	case StateResult:
		if now.Sub(m.resultStart) >= resultTimeout {
			m.setState(StateIdle)
		}

	case StateIdle, StateDifficultySelect, StatePaused, StateResetConfirm:
		// Nothing time-driven.

	default:
		// A corrupt state value must not wedge the machine.
		m.logger.Error("unknown state, coercing to idle", "state", int(m.state))
		m.setState(StateIdle)
	}
}

// shouldLaunch checks the difficulty fuel threshold and the safety caps.
func (m *Machine) shouldLaunch() bool {
	if m.session.Fuel >= m.session.Difficulty.FuelThreshold() {
		return true
	}
	if m.session.Elapsed >= maxPlayDuration {
		return true
	}
	return m.session.JumpCount >= maxPlayJumps
}

func (m *Machine) enterDifficultySelect() {
	m.cursor = m.session.Difficulty
	m.sounds.push(SoundDifficultySelect)
	m.setState(StateDifficultySelect)
}

func (m *Machine) enterResetConfirm(now time.Time) {
	// Confirm is only reachable from Playing and Paused. Entering from
	// Playing freezes the clock like a pause would.
	if m.state == StatePlaying {
		m.pauseStart = now
		m.updateElapsed(now)
	}
	m.sounds.push(SoundResetWarning)
	m.setState(StateResetConfirm)
}

// start begins a fresh session with the chosen difficulty.
func (m *Machine) start(difficulty Difficulty, now time.Time) {
	m.session = newSession(difficulty)
	m.monitor.reset()
	m.freq.reset()
	m.startTime = now
	m.pauseStart = time.Time{}
	m.totalPause = 0
	m.sounds.push(SoundGameStart)
	m.setState(StatePlaying)
	m.logger.Info("game started", "difficulty", difficulty)
}

func (m *Machine) pause(now time.Time) {
	m.updateElapsed(now)
	m.pauseStart = now
	m.sounds.push(SoundPause)
	m.setState(StatePaused)
}

func (m *Machine) resume(now time.Time) {
	if !m.pauseStart.IsZero() {
		m.totalPause += now.Sub(m.pauseStart)
		m.pauseStart = time.Time{}
	}
	m.sounds.push(SoundResume)
	m.setState(StatePlaying)
}

// reset zeroes the session but keeps the player's difficulty choice.
func (m *Machine) reset() {
	difficulty := m.session.Difficulty
	m.session = newSession(difficulty)
	m.monitor.reset()
	m.freq.reset()
	m.startTime = time.Time{}
	m.pauseStart = time.Time{}
	m.totalPause = 0
	m.idleJumps = 0
	m.setState(StateIdle)
	m.logger.Info("game reset", "difficulty", difficulty)
}

// updateElapsed recomputes the net play time, excluding paused intervals.
func (m *Machine) updateElapsed(now time.Time) {
	if m.startTime.IsZero() {
		return
	}
	m.session.Elapsed = now.Sub(m.startTime) - m.totalPause
}

// finishLaunch finalizes the flight height, persists the session and moves
// to the result screen. This is the single point where the volatile session
// becomes durable; a persistence failure never blocks the result.
func (m *Machine) finishLaunch(now time.Time) {
	m.session.finalizeFlight()
	if m.session.FlightHeight >= victoryHeight {
		m.sounds.push(SoundVictory)
	}

	if m.recorder != nil {
		done := Completion{
			StartedAt:    m.startTime,
			Difficulty:   m.session.Difficulty,
			JumpCount:    m.session.JumpCount,
			Duration:     m.session.Elapsed,
			Fuel:         m.session.Fuel,
			FlightHeight: m.session.FlightHeight,
		}
		if err := m.recorder.Record(done); err != nil {
			m.logger.Error("session not persisted", "err", err)
		}
	}

	m.resultStart = now
	m.setState(StateResult)
	m.logger.Info("flight complete",
		"height", m.session.FlightHeight,
		"jumps", m.session.JumpCount,
		"duration", m.session.Elapsed.Round(time.Second))
}

func (m *Machine) setState(s State) {
	if s == m.state {
		return
	}
	m.logger.Debug("state change", "from", m.state, "to", s)
	m.state = s
}
