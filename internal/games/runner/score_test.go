package runner

import (
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
)

func TestTrackerScoresEveryIntervalFrames(t *testing.T) {
	tr := NewTracker(config.DefaultRunnerConfig())

	for i := 1; i <= 9; i++ {
		if scored, _ := tr.Tick(); scored {
			t.Fatalf("scored on frame %d", i)
		}
	}
	scored, levelUp := tr.Tick()
	if !scored || levelUp {
		t.Errorf("frame 10: scored=%v levelUp=%v, expected true/false", scored, levelUp)
	}
	if tr.Score != 1 || tr.SubTicks() != 0 {
		t.Errorf("after 10 frames: score=%d subTicks=%d", tr.Score, tr.SubTicks())
	}
}

func TestTrackerSpeedMilestones(t *testing.T) {
	tests := []struct {
		frames    int
		wantScore int
		wantSpeed int
	}{
		{990, 99, 5},
		{1000, 100, 7},
		{1990, 199, 7},
		{2000, 200, 9},
		{3000, 300, 11},
	}

	for _, tc := range tests {
		tr := NewTracker(config.DefaultRunnerConfig())
		levelUps := 0
		for i := 0; i < tc.frames; i++ {
			if _, up := tr.Tick(); up {
				levelUps++
			}
		}
		if tr.Score != tc.wantScore || tr.Speed != tc.wantSpeed {
			t.Errorf("%d frames: score=%d speed=%d, expected %d/%d",
				tc.frames, tr.Score, tr.Speed, tc.wantScore, tc.wantSpeed)
		}
		if want := tc.wantScore / 100; levelUps != want {
			t.Errorf("%d frames: %d level-ups, expected %d", tc.frames, levelUps, want)
		}
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(config.DefaultRunnerConfig())
	for i := 0; i < 1005; i++ {
		tr.Tick()
	}
	tr.Reset()
	if tr.Score != 0 || tr.Speed != 5 || tr.SubTicks() != 0 {
		t.Errorf("Reset() left score=%d speed=%d subTicks=%d", tr.Score, tr.Speed, tr.SubTicks())
	}
}
