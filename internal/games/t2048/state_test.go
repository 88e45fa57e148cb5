package t2048

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadSessionRejectsCorruptState(t *testing.T) {
	valid := [][]int{{2, 0}, {0, 4}}

	tests := []struct {
		name string
		st   State
	}{
		{"size mismatch", State{Size: 3, Cells: valid, Target: 8, Policy: PolicyAlways2}},
		{"bad tile", State{Size: 2, Cells: [][]int{{3, 0}, {0, 4}}, Target: 8, Policy: PolicyAlways2}},
		{"ragged rows", State{Size: 2, Cells: [][]int{{2, 0, 0}, {0, 4}}, Target: 8, Policy: PolicyAlways2}},
		{"negative score", State{Size: 2, Cells: valid, Score: -4, Target: 8, Policy: PolicyAlways2}},
		{"bad target", State{Size: 2, Cells: valid, Target: 12, Policy: PolicyAlways2}},
		{"bad policy", State{Size: 2, Cells: valid, Target: 8, Policy: "whatever"}},
		{"bad previous", State{Size: 2, Cells: valid, Target: 8, Policy: PolicyAlways2, AllowUndo: true, Previous: [][]int{{5, 0}, {0, 0}}}},
		{"previous wrong size", State{Size: 2, Cells: valid, Target: 8, Policy: PolicyAlways2, AllowUndo: true, Previous: [][]int{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSession(tt.st, Options{Rand: &seqRand{}})
			if !errors.Is(err, ErrCorruptState) {
				t.Errorf("LoadSession error = %v, want ErrCorruptState", err)
			}
		})
	}
}

func TestLoadSessionRederivesWon(t *testing.T) {
	st := State{
		Size:   2,
		Cells:  [][]int{{16, 0}, {0, 0}},
		Target: 16,
		Policy: PolicyAlways2,
	}

	s, err := LoadSession(st, Options{Rand: &seqRand{}})
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if !s.Won() {
		t.Error("board with the target tile should load as won")
	}

	st.Target = 32
	st.Won = true
	s, _ = LoadSession(st, Options{Rand: &seqRand{}})
	if !s.Won() {
		t.Error("stored won flag should be kept")
	}
}

func TestSerializeRestoresUndo(t *testing.T) {
	s := newTestSession(t, Options{AllowUndo: true, Target: 64})
	before := s.Grid()
	s.Move(DirLeft)

	st := s.Serialize()
	if st.Previous == nil || st.PreviousScore != 0 || st.Score != 4 {
		t.Fatalf("serialized = %+v, want undo snapshot and score 4", st)
	}

	data, err := MarshalState(st)
	if err != nil {
		t.Fatalf("MarshalState: %v", err)
	}
	decoded, err := UnmarshalState(data)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}

	restored, err := LoadSession(decoded, Options{Rand: &seqRand{}})
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if !restored.Grid().Equal(s.Grid()) || restored.Score() != 4 || restored.Target() != 64 {
		t.Errorf("restored session differs: %+v", restored.Serialize())
	}
	if restored.Policy() != PolicyAlways2 || !restored.AllowUndo() {
		t.Errorf("policy %v undo %v not restored", restored.Policy(), restored.AllowUndo())
	}

	if !restored.Undo() {
		t.Fatal("undo snapshot should survive a reload")
	}
	if !restored.Grid().Equal(before) || restored.Score() != 0 {
		t.Errorf("undo after reload gave\n%v\nscore %d", restored.Grid(), restored.Score())
	}
}

func TestLoadSessionIgnoresPreviousWithoutUndo(t *testing.T) {
	st := State{
		Size:     2,
		Cells:    [][]int{{4, 0}, {0, 0}},
		Target:   8,
		Policy:   PolicyAlways2,
		Previous: [][]int{{2, 2}, {0, 0}},
	}

	s, err := LoadSession(st, Options{Rand: &seqRand{}})
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if s.CanUndo() {
		t.Error("previous grid should be ignored when undo is disabled")
	}
}

func TestLoadSessionRaisesHighScore(t *testing.T) {
	st := State{Size: 2, Cells: [][]int{{4, 0}, {0, 0}}, Score: 500, Target: 8, Policy: PolicyAlways2}

	s, _ := LoadSession(st, Options{Rand: &seqRand{}, HighScore: 200})
	if s.HighScore() != 500 {
		t.Errorf("high score = %d, want 500", s.HighScore())
	}

	s, _ = LoadSession(st, Options{Rand: &seqRand{}, HighScore: 900})
	if s.HighScore() != 900 {
		t.Errorf("high score = %d, want 900", s.HighScore())
	}
}

func TestUnmarshalStateGarbage(t *testing.T) {
	if _, err := UnmarshalState([]byte("{not json")); !errors.Is(err, ErrCorruptState) {
		t.Errorf("error = %v, want ErrCorruptState", err)
	}
}

func TestCorruptStateMessageNamesCauseOnce(t *testing.T) {
	tests := []State{
		{Size: 2, Cells: [][]int{{2, 0}, {0, 1}}, Target: 8, Policy: PolicyAlways2},
		{Size: 2, Cells: [][]int{{2, 0}, {0, 4}}, Target: 8, Policy: PolicyAlways2, AllowUndo: true, Previous: [][]int{{6, 0}, {0, 0}}},
	}

	for _, st := range tests {
		_, err := LoadSession(st, Options{Rand: &seqRand{}})
		if !errors.Is(err, ErrCorruptState) {
			t.Fatalf("LoadSession error = %v, want ErrCorruptState", err)
		}
		if n := strings.Count(err.Error(), ErrCorruptState.Error()); n != 1 {
			t.Errorf("error %q repeats the cause %d times", err, n)
		}
	}
}
