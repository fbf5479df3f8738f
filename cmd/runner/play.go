package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/runner"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Jump
  L          - Long jump
  R          - End the current run
  Ctrl+S     - Save a text screenshot to ~/.runner/screenshots
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --fps 30
  runner play --log-level debug --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logging to the terminal would draw over the game
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := runner.New(cfg)
	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Clock:   core.NewSystemClock(),
	}
	if err := tui.Run(game, cfg.Canvas.Width, cfg.Canvas.Height, runtime, logger); err != nil {
		return err
	}

	if st := game.State(); st.HighScore > 0 {
		fmt.Printf("High score: %d\n", st.HighScore)
	}
	return nil
}
