package tui

import "testing"

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(0.3)

	if h.Move() != 0 {
		t.Errorf("Move() = %d, expected 0", h.Move())
	}

	h.Press(1)
	if h.Move() != 1 {
		t.Errorf("Move() after right = %d, expected 1", h.Move())
	}

	h.Advance(0.2)
	if h.Move() != 1 {
		t.Errorf("Move() inside hold = %d, expected 1", h.Move())
	}

	// Auto-repeat refreshes the hold
	h.Press(1)
	h.Advance(0.2)
	if h.Move() != 1 {
		t.Errorf("Move() after repeat = %d, expected 1", h.Move())
	}

	h.Advance(0.2)
	if h.Move() != 0 {
		t.Errorf("Move() after hold expired = %d, expected 0", h.Move())
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(1)
	h.Press(1)
	h.Press(-1)
	if h.Move() != -1 {
		t.Errorf("Move() = %d, expected -1", h.Move())
	}

	h.Release()
	if h.Move() != 0 {
		t.Errorf("Move() after Release = %d, expected 0", h.Move())
	}
}

func TestHoldTrackerDefault(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(-1)
	h.Advance(DefaultHold - 0.01)
	if h.Move() != -1 {
		t.Errorf("Move() = %d, expected -1", h.Move())
	}
	h.Advance(0.02)
	if h.Move() != 0 {
		t.Errorf("Move() = %d, expected 0", h.Move())
	}
}
