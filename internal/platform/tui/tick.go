// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that fires one TickMsg after a frame interval.
// A non-positive rate falls back to one tick per second.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 1
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
