package t2048

import (
	"errors"
	"testing"
)

func TestNewGridSize(t *testing.T) {
	for _, size := range []int{0, 1, MaxGridSize + 1, -3} {
		if _, err := NewGrid(size); !errors.Is(err, ErrInvalidGridSize) {
			t.Errorf("NewGrid(%d) error = %v, want ErrInvalidGridSize", size, err)
		}
	}
	for _, size := range []int{MinGridSize, DefaultGridSize, MaxGridSize} {
		g, err := NewGrid(size)
		if err != nil {
			t.Fatalf("NewGrid(%d): %v", size, err)
		}
		if g.Size() != size || len(g.EmptyCells()) != size*size {
			t.Errorf("NewGrid(%d) not an empty %dx%d board", size, size, size)
		}
	}
}

func TestGridFromRowsRejectsBadCells(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"not a power of two", [][]int{{3, 0}, {0, 0}}},
		{"one", [][]int{{1, 0}, {0, 0}}},
		{"negative", [][]int{{-2, 0}, {0, 0}}},
		{"ragged", [][]int{{2, 0}, {0}}},
		{"single row", [][]int{{2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GridFromRows(tt.rows); !errors.Is(err, ErrCorruptState) {
				t.Errorf("GridFromRows(%v) error = %v, want ErrCorruptState", tt.rows, err)
			}
		})
	}
}

func TestGridAccessors(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 0},
		{0, 16, 0},
		{4, 0, 2},
	})

	if got := g.MaxTile(); got != 16 {
		t.Errorf("MaxTile() = %d, want 16", got)
	}
	if got := g.Sum(); got != 24 {
		t.Errorf("Sum() = %d, want 24", got)
	}
	if got := len(g.EmptyCells()); got != 5 {
		t.Errorf("len(EmptyCells()) = %d, want 5", got)
	}
	if first := g.EmptyCells()[0]; first != (Cell{Row: 0, Col: 1}) {
		t.Errorf("EmptyCells()[0] = %+v, want row-major order", first)
	}
	if got, want := g.String(), "2 0 0\n0 16 0\n4 0 2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0}, {0, 0}})
	c := g.Clone()
	c.set(Cell{Row: 1, Col: 1}, 4)

	if g.At(1, 1) != 0 {
		t.Error("modifying clone changed the original")
	}
	if g.Equal(c) {
		t.Error("grids should differ after modifying clone")
	}

	rows := g.Rows()
	rows[0][0] = 8
	if g.At(0, 0) != 2 {
		t.Error("Rows() should return a copy")
	}
}
