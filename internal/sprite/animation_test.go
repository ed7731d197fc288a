package sprite

import (
	"math"
	"testing"
)

func twoFrames(t *testing.T, loop bool) *Animation {
	t.Helper()
	a, err := NewAnimation([]*Sprite{MustFromRows("@"), MustFromRows(".")}, 0.5, loop)
	if err != nil {
		t.Fatalf("NewAnimation() failed: %v", err)
	}
	return a
}

func TestAnimationLoopWrap(t *testing.T) {
	a := twoFrames(t, true)

	a.Advance(1.2)

	if math.Abs(a.Elapsed()-0.2) > 1e-9 {
		t.Errorf("Elapsed() = %f, expected 0.2", a.Elapsed())
	}
	if a.FrameIndex() != 0 {
		t.Errorf("FrameIndex() = %d, expected 0", a.FrameIndex())
	}
	if !a.Active() {
		t.Error("looping animation should stay active")
	}
}

func TestAnimationFrameSelection(t *testing.T) {
	a := twoFrames(t, true)

	steps := []struct {
		dt       float64
		expected int
	}{
		{0.25, 0},
		{0.25, 1}, // elapsed 0.5
		{0.4, 1},  // elapsed 0.9
		{0.2, 0},  // elapsed 1.1 -> wraps to 0.1
		{0.5, 1},  // elapsed 0.6
	}
	for i, s := range steps {
		a.Advance(s.dt)
		if a.FrameIndex() != s.expected {
			t.Errorf("step %d: FrameIndex() = %d, expected %d", i, a.FrameIndex(), s.expected)
		}
		if a.Current() != a.Frame(s.expected) {
			t.Errorf("step %d: Current() does not match Frame(%d)", i, s.expected)
		}
	}
}

func TestAnimationIndexStableBetweenAdvances(t *testing.T) {
	a := twoFrames(t, true)
	a.Advance(0.6)

	first := a.FrameIndex()
	for i := 0; i < 5; i++ {
		if a.FrameIndex() != first {
			t.Fatal("FrameIndex() changed without Advance")
		}
	}
}

func TestAnimationOneShotFinishes(t *testing.T) {
	a := twoFrames(t, false)

	a.Advance(0.7)
	if !a.Active() || a.FrameIndex() != 1 {
		t.Fatalf("mid-sequence: active=%v index=%d, expected active at 1", a.Active(), a.FrameIndex())
	}

	a.Advance(0.5) // elapsed 1.2 >= 1.0
	if a.Active() {
		t.Error("one-shot animation should be inactive after its sequence")
	}
	if a.Elapsed() != 0 {
		t.Errorf("Elapsed() = %f, expected reset to 0", a.Elapsed())
	}

	a.Advance(0.3)
	if a.Elapsed() != 0 {
		t.Error("finished animation should not accumulate time")
	}

	a.Reset()
	if !a.Active() || a.FrameIndex() != 0 {
		t.Error("Reset should reactivate at frame 0")
	}
}

func TestAnimationIgnoresNegativeDT(t *testing.T) {
	a := twoFrames(t, true)
	a.Advance(0.3)
	a.Advance(-1)
	if math.Abs(a.Elapsed()-0.3) > 1e-9 {
		t.Errorf("Elapsed() = %f, expected 0.3", a.Elapsed())
	}
}

func TestNewAnimationValidation(t *testing.T) {
	if _, err := NewAnimation(nil, 0.5, true); err == nil {
		t.Error("empty frame list should fail")
	}
	if _, err := NewAnimation([]*Sprite{MustFromRows("@")}, 0, true); err == nil {
		t.Error("zero frame duration should fail")
	}
	if _, err := NewAnimation([]*Sprite{nil}, 0.5, true); err == nil {
		t.Error("nil frame should fail")
	}
}
