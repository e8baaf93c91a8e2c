package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Release(ActionRotateCW)

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() should report only pressed actions")
	}
	if !f.Released(ActionRotateCW) || f.Released(ActionLeft) {
		t.Error("Released() should report only released actions")
	}

	c := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !c.Has(ActionLeft) || !c.Released(ActionRotateCW) {
		t.Error("clone should be unaffected by Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) || f.Released(ActionPause) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionPause)
	f.Release(ActionPause)
	if !f.Has(ActionPause) || !f.Released(ActionPause) {
		t.Error("zero frame should accept Set and Release")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionHardDrop, "HardDrop"},
		{ActionRotateCCW, "RotateCCW"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
