package runner

import "github.com/vovakirdan/dino-runner/internal/config"

// Tracker counts score and raises obstacle speed at milestones.
// Score is frame-based: one point per Interval frames, independent of wall time.
type Tracker struct {
	Score    int
	Speed    int
	subTicks int

	interval  int
	milestone int
	increment int
	baseSpeed int
}

// NewTracker creates a tracker at its initial values.
func NewTracker(cfg config.RunnerConfig) *Tracker {
	t := &Tracker{
		interval:  cfg.Scoring.Interval,
		milestone: cfg.Scoring.Milestone,
		increment: cfg.Scoring.SpeedIncrement,
		baseSpeed: cfg.Obstacles.BaseSpeed,
	}
	t.Reset()
	return t
}

// Reset zeroes the score and restores the base speed.
func (t *Tracker) Reset() {
	t.Score = 0
	t.Speed = t.baseSpeed
	t.subTicks = 0
}

// SubTicks returns frames counted since the last point.
func (t *Tracker) SubTicks() int {
	return t.subTicks
}

// Tick records one played frame. scored is true when the score went up;
// levelUp is true when that new score hit a milestone and speed increased.
// The milestone check only runs on the scoring edge, so each milestone fires once.
func (t *Tracker) Tick() (scored, levelUp bool) {
	t.subTicks++
	if t.subTicks < t.interval {
		return false, false
	}
	t.subTicks = 0
	t.Score++

	if t.Score%t.milestone == 0 {
		t.Speed += t.increment
		return true, true
	}
	return true, false
}
