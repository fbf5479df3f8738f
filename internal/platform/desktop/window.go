// Package desktop runs the game in a window with ebiten.
package desktop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Window drives a core.Game from ebiten's update loop.
// It implements ebiten.Game.
type Window struct {
	game   core.Game
	canvas *Canvas
	logger *log.Logger
	keys   []ebiten.Key
	input  core.InputFrame
	state  core.GameState
}

// NewWindow wraps game for a width x height logical canvas.
func NewWindow(game core.Game, width, height int, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:   game,
		canvas: NewCanvas(width, height),
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Update runs one simulation frame. ebiten calls it FrameRate times a second.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	w.input.Clear()
	if mapKeys(w.keys, &w.input) {
		w.logger.Debug("quit requested", "phase", w.state.Phase, "score", w.state.Score)
		return ebiten.Termination
	}

	result := w.game.Step(w.input)
	if result.PhaseChanged {
		w.logger.Debug("phase changed",
			"from", w.state.Phase,
			"to", result.State.Phase,
			"score", result.State.Score,
			"high", result.State.HighScore,
		)
	}
	w.state = result.State
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.Target(screen)
	w.game.Render(w.canvas)
}

// Layout keeps the logical canvas size regardless of the window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.canvas.Size()
}

// mapKeys adds the actions for the pressed keys to frame.
// Returns true if any key asks to quit.
func mapKeys(keys []ebiten.Key, frame *core.InputFrame) bool {
	for _, k := range keys {
		switch k {
		case ebiten.KeyQ, ebiten.KeyEscape:
			frame.Set(core.ActionQuit)
			return true
		case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
			frame.Set(core.ActionJump)
		case ebiten.KeyL:
			frame.Set(core.ActionLongJump)
		case ebiten.KeyR:
			frame.Set(core.ActionRestart)
		}
		frame.Set(core.ActionAnyKey)
	}
	return false
}

// Run opens a window and plays game until it is closed or the player quits.
func Run(game core.Game, width, height int, logger *log.Logger) error {
	game.Reset(core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Clock:   core.NewSystemClock(),
	})

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.FrameRate())

	if err := ebiten.RunGame(NewWindow(game, width, height, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
