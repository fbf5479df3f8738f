package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/games/runner"
	"github.com/vovakirdan/dino-runner/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/W - Jump
  L          - Long jump
  R          - End the current run
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

func runDesktop(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	game := runner.New(cfg)
	logger.Info("opening window", "width", cfg.Canvas.Width, "height", cfg.Canvas.Height)
	if err := desktop.Run(game, cfg.Canvas.Width, cfg.Canvas.Height, logger); err != nil {
		return err
	}
	logger.Info("window closed", "high_score", game.State().HighScore)
	return nil
}
