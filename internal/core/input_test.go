package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero-value frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero-value frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionAnyKey)
	if !f.Has(ActionJump) || !f.Has(ActionAnyKey) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionLongJump) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionLongJump.String() != "LongJump" {
		t.Errorf("String() = %q, expected LongJump", ActionLongJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	c.Advance(50)
	if c.Millis() != 150 {
		t.Errorf("Millis() = %d, expected 150", c.Millis())
	}

	c.Set(120) // backwards, ignored
	if c.Millis() != 150 {
		t.Errorf("clock went backwards to %d", c.Millis())
	}

	c.Set(1000)
	if c.Millis() != 1000 {
		t.Errorf("Millis() = %d, expected 1000", c.Millis())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseGameOver.String() != "GameOver" {
		t.Errorf("String() = %q", PhaseGameOver.String())
	}
	if !(GameState{Phase: PhaseGameOver}).GameOver() {
		t.Error("GameOver() should be true in PhaseGameOver")
	}
}
