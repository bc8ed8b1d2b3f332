package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Control is a mapped input. The game itself only knows jumps and the two
// button press lengths; the mapper is where keyboard convenience lives.
type Control int

const (
	ControlNone Control = iota
	ControlJump
	ControlShortPress
	ControlLongPress
)

// KeyMapper translates Bubble Tea key messages to game controls.
// Centralizing the bindings keeps them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a control. Returns the control (may
// be ControlNone) and whether the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (control Control, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlNone, true
	case " ", "up", "w":
		// Space drives a simulated jump impulse.
		return ControlJump, false
	case "enter":
		return ControlShortPress, false
	case "r", "esc":
		// Long press stands in for holding the physical button.
		return ControlLongPress, false
	}
	return ControlNone, false
}
