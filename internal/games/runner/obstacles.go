package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Obstacle is a ground block scrolling toward the player.
// Its speed is fixed at creation, so speed-ups only affect later spawns.
type Obstacle struct {
	X      int // Left edge
	Y      int // Top edge; the bottom rests on the ground
	Width  int
	Height int
	Speed  int // Pixels per frame
}

// NewObstacle creates an obstacle at x standing on the ground.
func NewObstacle(cfg config.RunnerConfig, x, speed int) Obstacle {
	return Obstacle{
		X:      x,
		Y:      cfg.Canvas.GroundY() - cfg.Obstacles.Height,
		Width:  cfg.Obstacles.Width,
		Height: cfg.Obstacles.Height,
		Speed:  speed,
	}
}

// Advance moves the obstacle left and reports whether it has fully left the
// canvas (no column at x >= 0 remains).
func (o *Obstacle) Advance() (expired bool) {
	o.X -= o.Speed
	return o.X+o.Width <= 0
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// ObstacleManager owns the live obstacle collection.
type ObstacleManager struct {
	obstacles []Obstacle
}

// NewObstacleManager creates an empty collection.
func NewObstacleManager() *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
	}
}

// Add inserts a new obstacle.
func (om *ObstacleManager) Add(o Obstacle) {
	om.obstacles = append(om.obstacles, o)
}

// Update advances every obstacle and drops the expired ones.
// Returns the number removed.
func (om *ObstacleManager) Update() int {
	live := om.obstacles[:0]
	for _, o := range om.obstacles {
		if !o.Advance() {
			live = append(live, o)
		}
	}
	removed := len(om.obstacles) - len(live)
	om.obstacles = live
	return removed
}

// Clear removes all obstacles.
func (om *ObstacleManager) Clear() {
	om.obstacles = om.obstacles[:0]
}

// Obstacles returns the current list of obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}

// CheckCollision tests if the given rectangle collides with any obstacle.
func (om *ObstacleManager) CheckCollision(player core.Rect) bool {
	return AnyCollision(player, om.obstacles)
}

// AnyCollision reports whether player overlaps any obstacle. Touching edges
// do not count. Stops at the first hit.
func AnyCollision(player core.Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if player.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Spawner decides when new obstacles appear.
//
// The gap between spawns is spawnDistance / speed * frameRate milliseconds,
// so faster obstacles spawn proportionally more often and the spacing on
// screen stays roughly constant.
type Spawner struct {
	cfg      config.RunnerConfig
	deadline float64 // Absolute clock time (ms) after which the next obstacle spawns
}

// NewSpawner creates a spawner; call Reset before use.
func NewSpawner(cfg config.RunnerConfig) *Spawner {
	return &Spawner{cfg: cfg}
}

// Reset arms the first spawn of a run relative to now.
func (s *Spawner) Reset(now int64) {
	s.deadline = float64(now + s.cfg.Obstacles.InitialSpawnDelay)
}

// Deadline returns the absolute time of the next spawn.
func (s *Spawner) Deadline() float64 {
	return s.deadline
}

// Interval returns the spawn gap in milliseconds at the given speed.
func (s *Spawner) Interval(speed int) float64 {
	return s.cfg.Obstacles.SpawnDistance / float64(speed) * float64(s.cfg.Timing.FrameRate)
}

// MaybeSpawn creates an obstacle at the right edge once now is past the
// deadline. At most one obstacle is produced per call, and the deadline moves
// forward by one interval even if several were missed.
func (s *Spawner) MaybeSpawn(now int64, speed int) (Obstacle, bool) {
	if float64(now) <= s.deadline {
		return Obstacle{}, false
	}
	s.deadline += s.Interval(speed)
	return NewObstacle(s.cfg, s.cfg.Canvas.Width, speed), true
}
