package game

// SoundEvent is a discrete request to the sound layer. The core only
// enqueues requests; playback never blocks gameplay.
type SoundEvent int

const (
	SoundBoot SoundEvent = iota
	SoundGameStart
	SoundJump
	SoundPause
	SoundResume
	SoundResetWarning
	SoundRocketLaunch
	SoundVictory
	SoundTargetAchieved
	SoundDifficultySelect
	SoundDifficultyConfirm
)

func (e SoundEvent) String() string {
	switch e {
	case SoundBoot:
		return "boot"
	case SoundGameStart:
		return "game_start"
	case SoundJump:
		return "jump"
	case SoundPause:
		return "pause"
	case SoundResume:
		return "resume"
	case SoundResetWarning:
		return "reset_warning"
	case SoundRocketLaunch:
		return "rocket_launch"
	case SoundVictory:
		return "victory"
	case SoundTargetAchieved:
		return "target_achieved"
	case SoundDifficultySelect:
		return "difficulty_select"
	case SoundDifficultyConfirm:
		return "difficulty_confirm"
	default:
		return "unknown"
	}
}

// soundQueueCap bounds the pending sound requests. A stalled consumer drops
// the oldest request rather than blocking the game task.
const soundQueueCap = 16

// soundQueue is a bounded FIFO of sound requests, written only by the game
// task and drained by the presentation layer.
type soundQueue struct {
	events []SoundEvent
}

func (q *soundQueue) push(e SoundEvent) {
	if len(q.events) >= soundQueueCap {
		q.events = q.events[1:]
	}
	q.events = append(q.events, e)
}

// drain returns and clears all pending requests.
func (q *soundQueue) drain() []SoundEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
