package core

import "testing"

func TestStepResultHas(t *testing.T) {
	res := StepResult{Events: []Event{{Kind: EventMoved}, {Kind: EventHighScore, Value: 128}}}

	if !res.Has(EventHighScore) {
		t.Error("Has(EventHighScore) = false, want true")
	}
	if res.Has(EventNoMove) {
		t.Error("Has(EventNoMove) = true, want false")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUndo)

	if !f.Has(ActionUndo) {
		t.Error("Has(ActionUndo) = false after Set")
	}

	f.Clear()
	if f.Has(ActionUndo) {
		t.Error("Has(ActionUndo) = true after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
}
