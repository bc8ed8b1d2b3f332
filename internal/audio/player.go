package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/sheacoding/jumprocket/internal/config"
	"github.com/sheacoding/jumprocket/internal/game"
)

// Note frequencies used by the effect table.
const (
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteF4 = 349.23
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteF5 = 698.46
	noteG5 = 783.99
	noteA5 = 880.00
)

// effectTable maps each sound event to its melody.
var effectTable = map[game.SoundEvent][]note{
	game.SoundBoot: {
		{noteC4, 200 * time.Millisecond},
		{noteE4, 200 * time.Millisecond},
		{noteG4, 200 * time.Millisecond},
		{noteC5, 400 * time.Millisecond},
	},
	game.SoundGameStart: {
		{noteG4, 150 * time.Millisecond},
		{noteA4, 150 * time.Millisecond},
		{noteB4, 150 * time.Millisecond},
		{noteC5, 150 * time.Millisecond},
		{noteD5, 300 * time.Millisecond},
	},
	game.SoundJump: {
		{noteC5, 100 * time.Millisecond},
		{noteE5, 150 * time.Millisecond},
	},
	game.SoundPause: {
		{noteA4, 200 * time.Millisecond},
		{noteF4, 300 * time.Millisecond},
	},
	game.SoundResume: {
		{noteF4, 150 * time.Millisecond},
		{noteA4, 150 * time.Millisecond},
		{noteC5, 200 * time.Millisecond},
	},
	game.SoundResetWarning: {
		{noteA5, 200 * time.Millisecond},
		{0, 100 * time.Millisecond},
		{noteA5, 200 * time.Millisecond},
		{0, 100 * time.Millisecond},
		{noteA5, 200 * time.Millisecond},
	},
	game.SoundRocketLaunch: {
		{noteG4, 300 * time.Millisecond},
		{0, 200 * time.Millisecond},
		{noteG4, 300 * time.Millisecond},
		{0, 200 * time.Millisecond},
		{noteG4, 300 * time.Millisecond},
		{0, 200 * time.Millisecond},
		// Rising launch sweep.
		{noteC4, 100 * time.Millisecond},
		{noteD4, 100 * time.Millisecond},
		{noteE4, 100 * time.Millisecond},
		{noteF4, 100 * time.Millisecond},
		{noteG4, 100 * time.Millisecond},
		{noteA4, 100 * time.Millisecond},
		{noteB4, 100 * time.Millisecond},
		{noteC5, 100 * time.Millisecond},
		{noteD5, 100 * time.Millisecond},
		{noteE5, 100 * time.Millisecond},
	},
	game.SoundVictory: {
		{noteC5, 200 * time.Millisecond},
		{noteC5, 200 * time.Millisecond},
		{noteG5, 200 * time.Millisecond},
		{noteG5, 200 * time.Millisecond},
		{noteA5, 200 * time.Millisecond},
		{noteA5, 200 * time.Millisecond},
		{noteG5, 400 * time.Millisecond},
		{noteF5, 200 * time.Millisecond},
		{noteF5, 200 * time.Millisecond},
		{noteE5, 200 * time.Millisecond},
		{noteE5, 200 * time.Millisecond},
		{noteD5, 200 * time.Millisecond},
		{noteD5, 200 * time.Millisecond},
		{noteC5, 400 * time.Millisecond},
	},
	game.SoundTargetAchieved: {
		{noteE5, 100 * time.Millisecond},
		{noteG5, 100 * time.Millisecond},
		{noteC5, 200 * time.Millisecond},
	},
	game.SoundDifficultySelect: {
		{noteA4, 100 * time.Millisecond},
		{noteC5, 100 * time.Millisecond},
	},
	game.SoundDifficultyConfirm: {
		{noteC5, 150 * time.Millisecond},
		{noteE5, 150 * time.Millisecond},
		{noteG5, 200 * time.Millisecond},
	},
}

// Player plays discrete sound effects through the system speaker. It is
// safe to use before Init or after a failed Init: every method degrades
// to a no-op, so a headless box still runs the game silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	enabled     bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer builds a player from the system config. Call Init before Play.
func NewPlayer(cfg config.System, logger *log.Logger) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		gain:    float64(cfg.Volume) / 100.0,
		enabled: cfg.SoundEnabled,
		logger:  logger,
	}
}

// Init opens the speaker. Failure is reported and remembered, never fatal.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		if p.logger != nil {
			p.logger.Warn("speaker unavailable, sound disabled", "error", err)
		}
		p.enabled = false
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the effect for the event. Unknown events are ignored.
func (p *Player) Play(ev game.SoundEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}
	notes, ok := effectTable[ev]
	if !ok {
		return
	}

	stream := newVolume(melody(notes), p.gain)
	speaker.Lock()
	p.mixer.Add(stream)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself has no close in beep;
// clearing the mixer is enough to stop output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
