package runner

import (
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Player is the runner's character. Only its vertical position changes.
// Motion is driven by velocity alone: a jump sets an upward velocity, gravity
// pulls it back down, and Advance clamps it to the ground.
type Player struct {
	X        int     // Left edge, fixed
	Y        float64 // Top edge in pixels (down is positive)
	Velocity float64 // Vertical velocity in pixels per frame
	Width    int
	Height   int
	Jumping  bool // True while airborne; cleared only by landing in Advance

	groundY  int
	gravity  float64
	impulse  float64
	longMult float64
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		X:        cfg.Player.X,
		Width:    cfg.Player.Width,
		Height:   cfg.Player.Height,
		groundY:  cfg.Canvas.GroundY(),
		gravity:  cfg.Physics.Gravity,
		impulse:  cfg.Physics.JumpImpulse,
		longMult: cfg.Physics.LongJumpMultiplier,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the ground at rest.
func (p *Player) Reset() {
	p.Y = float64(p.groundY - p.Height)
	p.Velocity = 0
	p.Jumping = false
}

// ApplyGravity accelerates the player downward. Runs every frame, airborne or not.
func (p *Player) ApplyGravity() {
	p.Velocity += p.gravity
}

// Advance moves the player by its velocity and lands it if it reached the ground.
func (p *Player) Advance() {
	p.Y += p.Velocity
	if p.Bottom() > float64(p.groundY) {
		p.Y = float64(p.groundY - p.Height)
		p.Velocity = 0
		p.Jumping = false
	}
}

// Jump starts a regular jump. Ignored while airborne.
func (p *Player) Jump() {
	p.jumpWith(p.impulse)
}

// LongJump starts a jump with a stronger impulse. Ignored while airborne.
func (p *Player) LongJump() {
	p.jumpWith(p.impulse * p.longMult)
}

func (p *Player) jumpWith(impulse float64) {
	if p.Jumping {
		return
	}
	p.Velocity = impulse
	p.Jumping = true
}

// Bottom returns the y-coordinate of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Y + float64(p.Height)
}

// Rect returns the player's hitbox in whole pixels.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, int(math.Round(p.Y)), p.Width, p.Height)
}
