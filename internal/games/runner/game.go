// Package runner implements a Chrome Dino-style endless runner.
// The player jumps over obstacles while the score ticks up and the obstacles
// speed up every few hundred points.
package runner

import (
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// ID is the game identifier used by the CLI and logs.
const ID = "runner"

// Palette
const (
	playerColor   = core.ColorGreen
	obstacleColor = core.ColorBlue
	groundColor   = core.ColorWhite
	textColor     = core.ColorWhite
	hintColor     = core.ColorGray
	alertColor    = core.ColorRed
)

// hudWidth is the space reserved for the right-hand HUD column.
const hudWidth = 200

// Game is the runner's state machine:
// AwaitingStart -> Playing -> GameOver -> (delay) -> AwaitingStart.
// It owns the player, the obstacle collection and all score state.
type Game struct {
	cfg   config.RunnerConfig // Immutable for the life of the game
	clock core.Clock

	phase      core.Phase
	player     *Player
	obstacles  *ObstacleManager
	spawner    *Spawner
	tracker    *Tracker
	highScore  int   // Best score seen by this process
	gameOverAt int64 // Clock time the current game over started
}

// New creates a runner game with the given configuration.
func New(cfg config.RunnerConfig) *Game {
	return &Game{
		cfg:       cfg,
		clock:     core.NewSystemClock(),
		player:    NewPlayer(cfg),
		obstacles: NewObstacleManager(),
		spawner:   NewSpawner(cfg),
		tracker:   NewTracker(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// FrameRate returns the configured frames per second.
func (g *Game) FrameRate() int {
	return g.cfg.Timing.FrameRate
}

// Reset returns to the title screen with a fresh session.
// The high score survives; it lasts as long as the process.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Clock != nil {
		g.clock = runtime.Clock
	}
	g.resetSession()
	g.phase = core.PhaseAwaitingStart
}

// resetSession restores the player, the obstacle collection and the score
// state together.
func (g *Game) resetSession() {
	g.player.Reset()
	g.obstacles.Clear()
	g.tracker.Reset()
	g.gameOverAt = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.phase
	now := g.clock.Millis()

	switch g.phase {
	case core.PhaseAwaitingStart:
		if in.Has(core.ActionAnyKey) {
			g.startRun(now)
		}
	case core.PhasePlaying:
		g.stepPlaying(in, now)
	case core.PhaseGameOver:
		if now-g.gameOverAt >= g.cfg.Timing.GameOverDelay {
			g.resetSession()
			g.phase = core.PhaseAwaitingStart
		}
	}

	return core.StepResult{
		State:        g.State(),
		PhaseChanged: g.phase != before,
	}
}

// startRun begins a new run. The frame that starts it runs no simulation.
func (g *Game) startRun(now int64) {
	g.resetSession()
	g.spawner.Reset(now)
	g.phase = core.PhasePlaying
}

// endRun moves to game over and records the high score.
func (g *Game) endRun(now int64) {
	g.highScore = core.Max(g.highScore, g.tracker.Score)
	g.gameOverAt = now
	g.phase = core.PhaseGameOver
}

// stepPlaying runs one frame of a run:
// input -> spawn -> move everything -> collide -> score.
func (g *Game) stepPlaying(in core.InputFrame, now int64) {
	if in.Has(core.ActionRestart) {
		g.endRun(now)
		return
	}

	// Both guards check Jumping, so only the first one can take effect
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	if in.Has(core.ActionLongJump) {
		g.player.LongJump()
	}

	if o, ok := g.spawner.MaybeSpawn(now, g.tracker.Speed); ok {
		g.obstacles.Add(o)
	}

	g.player.ApplyGravity()
	g.player.Advance()
	g.obstacles.Update()

	if g.obstacles.CheckCollision(g.player.Rect()) {
		g.endRun(now)
		return
	}

	g.tracker.Tick()
}

// Render draws the current game state.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()
	w, h := dst.Size()

	if g.phase == core.PhaseAwaitingStart {
		g.drawStartScreen(dst, w, h)
		return
	}

	dst.DrawHLine(0, g.cfg.Canvas.GroundY(), w, groundColor)

	// Obstacles first so the player is drawn on top
	for _, o := range g.obstacles.Obstacles() {
		dst.FillRect(o.Rect(), obstacleColor)
	}
	dst.FillRect(g.player.Rect(), playerColor)

	dst.DrawText(10, 10, fmt.Sprintf("Score: %d", g.tracker.Score), textColor)
	dst.DrawText(w-hudWidth, 10, fmt.Sprintf("High: %d", g.highScore), hintColor)
	dst.DrawText(w-hudWidth, 30, fmt.Sprintf("Speed: %d", g.tracker.Speed), hintColor)

	if g.phase == core.PhaseGameOver {
		g.drawCenteredMessage(dst, w, h, "GAME OVER", fmt.Sprintf("Score: %d", g.tracker.Score))
	}
}

// drawStartScreen renders the title and prompt.
func (g *Game) drawStartScreen(dst core.Canvas, w, h int) {
	dst.DrawTextCentered(h/4, g.Title(), textColor)
	dst.DrawTextCentered(h/2, "Press any key to start", textColor)
	if g.highScore > 0 {
		dst.DrawTextCentered(h/2+40, fmt.Sprintf("High score: %d", g.highScore), hintColor)
	}
	dst.DrawTextCentered(h-60, "Space: jump   L: long jump   R: restart   Q: quit", hintColor)
}

// drawCenteredMessage draws a message box in the center of the canvas.
func (g *Game) drawCenteredMessage(dst core.Canvas, w, h int, title, subtitle string) {
	box := core.CenteredRect(w, h, w*3/8, h/4)
	dst.FillRect(box, core.ColorDefault)
	dst.DrawFrame(box, textColor)

	_, cy := box.Center()
	dst.DrawTextCentered(box.Y+box.H/5, title, alertColor)
	dst.DrawTextCentered(cy+box.H/10, subtitle, textColor)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.tracker.Score,
		HighScore: g.highScore,
		Speed:     g.tracker.Speed,
	}
}

var _ core.Game = (*Game)(nil)
