// Package tui provides the Bubble Tea integration for the jump rocket
// game. It runs the render loop, maps keys to the two-button control
// scheme and bridges the sensor goroutine into the message stream.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickRate is the render/update cadence in frames per second.
const TickRate = 20

// TickMsg is sent to advance the game clock.
type TickMsg time.Time

// JumpMsg carries one jump detection from the sensor feed.
type JumpMsg time.Time

// tickCmd schedules the next game tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/TickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForJump blocks on the detection channel and turns the next jump into
// a message. Re-armed after every delivery.
func waitForJump(jumps <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-jumps
		if !ok {
			return nil
		}
		return JumpMsg(t)
	}
}
