package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set(ActionPause) should be visible through Has")
	}
	if f.Has(ActionRestart) {
		t.Error("unrelated action should not be set")
	}
}

func TestInputFrameClearKeepsMove(t *testing.T) {
	f := NewInputFrame()
	f.Move = -1
	f.Fire = true
	f.DT = 0.016
	f.Set(ActionRestart)

	f.Clear()

	if f.Fire {
		t.Error("Clear should consume the fire request")
	}
	if f.Has(ActionRestart) {
		t.Error("Clear should consume actions")
	}
	if f.Move != -1 {
		t.Errorf("Clear should keep Move, got %d", f.Move)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Move = 1
	f.Fire = true
	f.Set(ActionPause)

	c := f.Clone()
	f.Clear()

	if !c.Fire || c.Move != 1 || !c.Has(ActionPause) {
		t.Errorf("Clone should be independent of the original, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	if ActionQuit.String() != "Quit" {
		t.Errorf("ActionQuit.String() = %q, expected \"Quit\"", ActionQuit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected \"Unknown\"", Action(99).String())
	}
}

func TestRuntimeConfigFrameDT(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if cfg.FrameDT() != 0.02 {
		t.Errorf("FrameDT() = %f, expected 0.02", cfg.FrameDT())
	}
	if (RuntimeConfig{}).FrameDT() != 1.0/60.0 {
		t.Error("zero tick rate should fall back to 60 ticks per second")
	}
}
