// runner is a Chrome Dino-style endless runner for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	runner play      - Play in the terminal
//	runner desktop   - Play in a window
//	runner serve     - Start SSH server for remote play
//	runner config    - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Override the configured frame rate
//	--config <path>     - Load a custom config YAML
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file (terminal play logs nowhere otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("runner failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Runner - jump over obstacles for as long as you can",
	Long: `Dino Runner is an endless runner in the spirit of the Chrome dino game.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a window
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Config search order:
  --config, $RUNNER_CONFIG, ~/.runner/runner.yaml, ./configs/runner.yaml,
  then the built-in defaults.

Examples:
  runner play
  runner play --fps 30
  runner desktop --config ./fast.yaml
  runner serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the level chosen by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	}), nil
}

// openLogger returns the logger for a command. When --log-file is set logs go
// there; otherwise to fallback. The returned close func is never nil.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(fallback)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}

// loadConfig resolves the runner configuration and applies --fps.
func loadConfig(logger *log.Logger) (config.RunnerConfig, error) {
	cfg, source, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.Timing.FrameRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("--fps %d: %w", flagFPS, err)
		}
	}
	logger.Info("config loaded", "source", source, "fps", cfg.Timing.FrameRate)
	return cfg, nil
}

// gameFactory returns a constructor for fresh games sharing cfg.
func gameFactory(cfg config.RunnerConfig) core.GameFactory {
	return func() core.Game {
		return runner.New(cfg)
	}
}
