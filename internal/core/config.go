package core

// RuntimeConfig contains what a backend hands to a game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Output surface width (characters or pixels)
	ScreenH int   // Output surface height
	Clock   Clock // Time source; nil keeps the game's current clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// Phase is the top-level state of a game session.
type Phase int

const (
	PhaseAwaitingStart Phase = iota // Title screen, waiting for any key
	PhasePlaying                    // Run in progress
	PhaseGameOver                   // Run ended, waiting out the restart delay
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     Phase
	Score     int // Current run score
	HighScore int // Best score seen during this process
	Speed     int // Current obstacle speed
}

// GameOver reports whether the session is in the game-over phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// PhaseChanged is true when this tick moved the session to a new phase.
	PhaseChanged bool
}

// Game is the contract between a game and the backends that drive it.
// Games contain pure logic; the platform handles input mapping, timing and
// display.
type Game interface {
	// ID returns a short identifier (e.g. "runner").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// FrameRate returns the target ticks per second. Backends cap their loop
	// to this value.
	FrameRate() int

	// Reset initializes the session. Called once before the first Step.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one frame.
	Step(in InputFrame) StepResult

	// Render draws the current state into the canvas.
	Render(dst Canvas)

	// State returns the current game state.
	State() GameState
}

// GameFactory creates a fresh game for a new session.
type GameFactory func() Game
