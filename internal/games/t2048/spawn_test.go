package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy TilePolicy
		prob   float64
		floats []float64
		want   int
	}{
		{"always two", PolicyAlways2, 0.5, nil, 2},
		{"always four", PolicyAlways4, 0.5, nil, 4},
		{"random below threshold", PolicyRandom, 0.5, []float64{0.1}, 4},
		{"random above threshold", PolicyRandom, 0.5, []float64{0.7}, 2},
		{"random never four", PolicyRandom, 0, []float64{0.0}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := NewSpawner(&seqRand{floats: tt.floats}, tt.policy, tt.prob)
			if err != nil {
				t.Fatalf("NewSpawner: %v", err)
			}
			g, _ := NewGrid(3)
			_, v, ok := sp.Spawn(&g)
			if !ok {
				t.Fatal("Spawn on empty board failed")
			}
			if v != tt.want {
				t.Errorf("spawned %d, want %d", v, tt.want)
			}
		})
	}
}

func TestSpawnPicksEmptyCell(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 4},
		{0, 8, 0},
		{2, 2, 2},
	})

	// Empty cells in row-major order: (0,1) (1,0) (1,2)
	sp, _ := NewSpawner(&seqRand{ints: []int{2}}, PolicyAlways2, 0)
	cell, _, ok := sp.Spawn(&g)
	if !ok {
		t.Fatal("Spawn failed")
	}
	if cell != (Cell{Row: 1, Col: 2}) {
		t.Errorf("spawned at %+v, want (1,2)", cell)
	}
	if g.At(1, 2) != 2 {
		t.Errorf("At(1,2) = %d, want 2", g.At(1, 2))
	}
}

func TestSpawnFullBoard(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 4}, {8, 16}})
	before := g.Clone()

	sp, _ := NewSpawner(&seqRand{}, PolicyRandom, 0.5)
	if _, _, ok := sp.Spawn(&g); ok {
		t.Error("Spawn on full board should report ok == false")
	}
	if !g.Equal(before) {
		t.Error("Spawn on full board changed the grid")
	}
}

func TestSpawnFillsBoard(t *testing.T) {
	sp, _ := NewSpawner(rand.New(rand.NewSource(1)), PolicyRandom, 0.5)
	g, _ := NewGrid(4)

	for i := range 16 {
		if _, v, ok := sp.Spawn(&g); !ok || (v != 2 && v != 4) {
			t.Fatalf("spawn %d: value %d ok %v", i, v, ok)
		}
	}
	if g.HasEmptyCell() {
		t.Error("16 spawns should fill a 4x4 board")
	}
}

func TestNewSpawnerValidation(t *testing.T) {
	if _, err := NewSpawner(&seqRand{}, "sometimes", 0.5); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("error = %v, want ErrInvalidPolicy", err)
	}

	// Out of range probability falls back to the default
	sp, err := NewSpawner(&seqRand{floats: []float64{0.4}}, PolicyRandom, 3)
	if err != nil {
		t.Fatalf("NewSpawner: %v", err)
	}
	g, _ := NewGrid(2)
	if _, v, _ := sp.Spawn(&g); v != 4 {
		t.Errorf("spawned %d, want 4 with default probability", v)
	}
}
