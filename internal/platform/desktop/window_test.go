package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestMapKeys(t *testing.T) {
	tests := []struct {
		name   string
		keys   []ebiten.Key
		quit   bool
		action core.Action
	}{
		{"no keys", nil, false, core.ActionNone},
		{"space", []ebiten.Key{ebiten.KeySpace}, false, core.ActionJump},
		{"arrow up", []ebiten.Key{ebiten.KeyArrowUp}, false, core.ActionJump},
		{"l", []ebiten.Key{ebiten.KeyL}, false, core.ActionLongJump},
		{"r", []ebiten.Key{ebiten.KeyR}, false, core.ActionRestart},
		{"other", []ebiten.Key{ebiten.KeyZ}, false, core.ActionAnyKey},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, true, core.ActionNone},
		{"quit wins", []ebiten.Key{ebiten.KeySpace, ebiten.KeyQ}, true, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := mapKeys(tc.keys, &frame)
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if tc.quit && !frame.Has(core.ActionQuit) {
				t.Errorf("quit frame %v missing Quit", frame.Actions)
			}
			if tc.action == core.ActionNone {
				if !tc.quit && !frame.Empty() {
					t.Errorf("expected empty frame, got %v", frame.Actions)
				}
				return
			}
			if !frame.Has(tc.action) || !frame.Has(core.ActionAnyKey) {
				t.Errorf("frame %v missing %v or AnyKey", frame.Actions, tc.action)
			}
		})
	}
}

func TestPaletteFallback(t *testing.T) {
	if rgba(core.Color(200)) != palette[core.ColorWhite] {
		t.Error("unknown colors should fall back to white")
	}
	if rgba(core.ColorDefault) != background {
		t.Error("ColorDefault should paint the background")
	}
}

func TestTextWidth(t *testing.T) {
	// basicfont glyphs are 7 pixels wide
	if got := textWidth("GAME OVER"); got != 63 {
		t.Errorf("textWidth() = %d, expected 63", got)
	}
	if got := textWidth(""); got != 0 {
		t.Errorf("textWidth(\"\") = %d, expected 0", got)
	}
}
