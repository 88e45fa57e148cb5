package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid size limits.
const (
	MinGridSize = 2
	MaxGridSize = 8

	// DefaultGridSize is the classic 4x4 board.
	DefaultGridSize = 4
)

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

// Grid is an NxN board of tile values. Zero marks an empty cell.
// Every non-zero value is a power of two.
type Grid struct {
	size  int
	cells []int
}

// NewGrid returns an empty grid of the given size.
func NewGrid(size int) (Grid, error) {
	if size < MinGridSize || size > MaxGridSize {
		return Grid{}, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidGridSize, size, MinGridSize, MaxGridSize)
	}
	return Grid{size: size, cells: make([]int, size*size)}, nil
}

// GridFromRows builds a grid from row-major values, validating shape and
// the power-of-two invariant.
func GridFromRows(rows [][]int) (Grid, error) {
	if len(rows) < MinGridSize || len(rows) > MaxGridSize {
		return Grid{}, fmt.Errorf("%w: %d rows (want %d..%d)", ErrCorruptState, len(rows), MinGridSize, MaxGridSize)
	}
	g := Grid{size: len(rows), cells: make([]int, len(rows)*len(rows))}
	for r, row := range rows {
		if len(row) != g.size {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrCorruptState, r, len(row), g.size)
		}
		for c, v := range row {
			if !validTile(v) {
				return Grid{}, fmt.Errorf("%w: value %d at (%d,%d)", ErrCorruptState, v, r, c)
			}
			g.cells[r*g.size+c] = v
		}
	}
	return g, nil
}

// validTile reports whether v is zero or a positive power of two.
func validTile(v int) bool {
	return v == 0 || (v > 1 && v&(v-1) == 0)
}

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return g.size
}

// At returns the value at (row, col).
func (g Grid) At(row, col int) int {
	return g.cells[row*g.size+col]
}

func (g *Grid) set(c Cell, v int) {
	g.cells[c.Row*g.size+c.Col] = v
}

// Clone returns an independent copy.
func (g Grid) Clone() Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and values.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size || len(g.cells) != len(other.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the board as a freshly allocated row-major matrix.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range g.size {
		rows[r] = make([]int, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, v := range g.cells {
		if v == 0 {
			cells = append(cells, Cell{Row: i / g.size, Col: i % g.size})
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for _, v := range g.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// MaxTile returns the largest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total value of all tiles.
func (g Grid) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += v
	}
	return total
}

// String renders the grid as space separated rows, one per line.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g.size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(g.At(r, c)))
		}
	}
	return sb.String()
}
