package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// helpHeight is the number of terminal rows kept for the key help footer.
const helpHeight = 1

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game       core.Game
	screen     *core.Screen
	canvas     *core.ScaledCanvas
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model for game. The game draws on a
// canvasW x canvasH logical canvas that is scaled onto the terminal.
func NewModel(game core.Game, canvasW, canvasH int, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = core.NewSystemClock()
	}

	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpHeight, 1))
	return Model{
		game:       game,
		screen:     screen,
		canvas:     core.NewScaledCanvas(screen, canvasW, canvasH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "fps", m.game.FrameRate(),
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.game.FrameRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit is honored at once in every phase,
// including the game-over delay.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, screenshotKey) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Debug("quit requested", "phase", m.gameState.Phase, "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running; only
// the projection onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	if result.PhaseChanged {
		m.logger.Debug("phase changed",
			"from", m.gameState.Phase,
			"to", result.State.Phase,
			"score", result.State.Score,
			"high", result.State.HighScore,
		)
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.game.FrameRate())
}

// screenshotKey dumps the current frame to a text file.
var screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"))

// saveScreenshot writes the current screen to ~/.runner/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game core.Game, canvasW, canvasH int, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, canvasW, canvasH, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
