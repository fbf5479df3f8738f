package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Jump     key.Binding
	LongJump key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.LongJump, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.LongJump},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "jump"),
		),
		LongJump: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "long jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame adds the actions for msg to frame.
// Every key except quit also counts as "any key".
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		frame.Set(core.ActionQuit)
		return true
	}

	frame.Set(core.ActionAnyKey)
	switch {
	case key.Matches(msg, k.Jump):
		frame.Set(core.ActionJump)
	case key.Matches(msg, k.LongJump):
		frame.Set(core.ActionLongJump)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}
