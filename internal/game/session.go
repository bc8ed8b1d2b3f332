package game

import "time"

// Fuel and flight tuning. Fuel charges strictly from jumps; flight height is
// computed once at the end of the launch window.
const (
	fuelPerJump = 5
	maxFuel     = 100

	heightBase       = 100
	heightPerJump    = 50
	heightPerSecond  = 10
	heightMultiplier = 10
	fullFuelBonus    = 500

	jumpingFlagTimeout = 500 * time.Millisecond
)

// Session holds the live counters for the game in progress. It is owned
// exclusively by the Machine; other tasks see value-copied snapshots.
type Session struct {
	JumpCount    int
	Elapsed      time.Duration // net play time, paused intervals excluded
	Fuel         int           // 0-100, derived from JumpCount
	FlightHeight int           // meters, zero until launch completes
	Difficulty   Difficulty    // sticky across reset

	jumping      bool      // transient, drives the jump animation
	lastJumpTime time.Time // when the jumping flag was last set
}

// newSession returns a zeroed session carrying over the sticky difficulty.
func newSession(difficulty Difficulty) Session {
	return Session{Difficulty: difficulty}
}

// recordJump counts one jump and arms the animation flag.
func (s *Session) recordJump(now time.Time) {
	s.JumpCount++
	s.jumping = true
	s.lastJumpTime = now
}

// refresh recomputes the derived fields. Fuel is a pure function of the
// jump count, never of time, so it can only grow while playing.
func (s *Session) refresh(now time.Time) {
	fuel := s.JumpCount * fuelPerJump
	if fuel > maxFuel {
		fuel = maxFuel
	}
	s.Fuel = fuel

	if s.jumping && now.Sub(s.lastJumpTime) > jumpingFlagTimeout {
		s.jumping = false
	}
}

// finalizeFlight computes the flight height at the end of the launch
// window: a base altitude plus contributions from jumps and playtime, with
// a bonus for launching on a full tank.
func (s *Session) finalizeFlight() {
	seconds := int(s.Elapsed / time.Second)
	height := (heightBase + s.JumpCount*heightPerJump + seconds*heightPerSecond) * heightMultiplier
	if s.Fuel >= maxFuel {
		height += fullFuelBonus * heightMultiplier
	}
	s.FlightHeight = height
}

// Jumping reports whether the jump animation flag is currently set.
func (s *Session) Jumping() bool {
	return s.jumping
}
