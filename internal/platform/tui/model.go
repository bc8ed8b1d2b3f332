package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheacoding/jumprocket/internal/game"
	"github.com/sheacoding/jumprocket/internal/motion"
)

// SoundSink plays a discrete sound effect. The audio player satisfies it;
// SSH sessions pass nil and run silent.
type SoundSink interface {
	Play(game.SoundEvent)
}

// Model is the Bubble Tea model driving one game session. The machine is
// only touched from Update, which Bubble Tea serializes; the sensor feed
// crosses in through JumpMsg.
type Model struct {
	machine  *game.Machine
	feed     *SensorFeed
	sim      *motion.Simulator // nil when a trace drives the feed
	sounds   SoundSink
	keys     *KeyMapper
	fuel     progress.Model
	width    int
	height   int
	quitting bool

	recommended    game.Difficulty
	hasRecommended bool
}

// NewModel assembles a session model. The feed must not be started yet;
// Init starts it so the goroutine lifetime matches the program's.
func NewModel(machine *game.Machine, feed *SensorFeed, sim *motion.Simulator, sounds SoundSink) Model {
	fuel := progress.New(progress.WithDefaultGradient())
	fuel.Width = 40

	return Model{
		machine: machine,
		feed:    feed,
		sim:     sim,
		sounds:  sounds,
		keys:    NewKeyMapper(),
		fuel:    fuel,
	}
}

// WithRecommendation sets the difficulty hint shown on the idle screen,
// derived from play history.
func (m Model) WithRecommendation(d game.Difficulty) Model {
	m.recommended = d
	m.hasRecommended = true
	return m
}

// Init starts the sensor feed and the tick loop.
func (m Model) Init() tea.Cmd {
	m.feed.Start()
	return tea.Batch(tickCmd(), waitForJump(m.feed.Jumps()))
}

// Update handles messages and advances the game.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 20; w > 10 && w < 60 {
			m.fuel.Width = w
		}
		return m, nil

	case JumpMsg:
		m.machine.HandleJump(time.Time(msg))
		return m, waitForJump(m.feed.Jumps())

	case TickMsg:
		m.machine.Tick(time.Time(msg))
		m.playSounds()
		return m, tickCmd()
	}

	return m, nil
}

// handleKey maps keyboard input onto the two-button control scheme plus
// the simulated jump.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	control, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.feed.Stop()
		return m, tea.Quit
	}

	now := time.Now()
	switch control {
	case ControlJump:
		// The impulse goes through the full detector pipeline rather
		// than directly into the machine, so simulated play exercises
		// the same path as a real sensor.
		if m.sim != nil {
			m.sim.Impulse()
		}
	case ControlShortPress:
		m.machine.HandleButton(game.ButtonShortPress, now)
		m.playSounds()
	case ControlLongPress:
		m.machine.HandleButton(game.ButtonLongPress, now)
		m.playSounds()
	}

	return m, nil
}

// playSounds drains queued sound requests into the sink.
func (m Model) playSounds() {
	events := m.machine.Sounds()
	if m.sounds == nil {
		return
	}
	for _, ev := range events {
		m.sounds.Play(ev)
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var hint string
	if m.hasRecommended {
		hint = m.recommended.String()
	}
	return renderSnapshot(m.machine.Snapshot(time.Now()), m.machine.Config(), m.fuel, m.width, hint)
}

// Run starts a local Bubble Tea program with the given session model.
func Run(model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
