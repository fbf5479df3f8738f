package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		quit   bool
		action core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, false, core.ActionJump},
		{"w", runeKey('w'), false, core.ActionJump},
		{"l", runeKey('l'), false, core.ActionLongJump},
		{"r", runeKey('r'), false, core.ActionRestart},
		{"other key", runeKey('x'), false, core.ActionNone},
		{"q", runeKey('q'), true, core.ActionNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true, core.ActionNone},
	}

	keys := DefaultKeyMap()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := keys.MapKeyToFrame(tc.msg, &frame)

			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if tc.quit {
				if !frame.Has(core.ActionQuit) || frame.Has(core.ActionAnyKey) {
					t.Errorf("quit key frame = %v, expected only Quit", frame.Actions)
				}
				return
			}
			if !frame.Has(core.ActionAnyKey) {
				t.Error("non-quit key should set AnyKey")
			}
			if tc.action != core.ActionNone && !frame.Has(tc.action) {
				t.Errorf("expected %v in frame, got %v", tc.action, frame.Actions)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if got := len(keys.ShortHelp()); got != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", got)
	}
	if got := len(keys.FullHelp()); got != 2 {
		t.Errorf("FullHelp() has %d columns, expected 2", got)
	}
}
