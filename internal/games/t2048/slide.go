package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four canonical directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// TileMove is a LineMove translated to grid coordinates.
type TileMove struct {
	From Cell
	To   Cell
	Kind MoveKind
}

// SlideResult is the outcome of sliding the whole board.
type SlideResult struct {
	Grid          Grid
	Moved         bool
	Score         int
	ReachedTarget bool
	Moves         []TileMove
}

// lineCells returns the cells of line i in compression order: the first
// cell is the one tiles slide towards.
func lineCells(size int, dir Direction, i int) []Cell {
	cells := make([]Cell, size)
	for k := range size {
		switch dir {
		case DirLeft:
			cells[k] = Cell{Row: i, Col: k}
		case DirRight:
			cells[k] = Cell{Row: i, Col: size - 1 - k}
		case DirUp:
			cells[k] = Cell{Row: k, Col: i}
		case DirDown:
			cells[k] = Cell{Row: size - 1 - k, Col: i}
		}
	}
	return cells
}

// Slide performs a move in the given direction.
// Every row (left/right) or column (up/down) is compressed towards the
// move side and written back in place. When nothing moves the returned
// grid equals the input.
func Slide(g Grid, dir Direction, target int) (SlideResult, error) {
	if !dir.Valid() {
		return SlideResult{Grid: g}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	res := SlideResult{Grid: g.Clone()}
	line := make([]int, g.size)

	for i := range g.size {
		cells := lineCells(g.size, dir, i)
		for k, c := range cells {
			line[k] = g.At(c.Row, c.Col)
		}

		lr := CompressLine(line, target)
		res.Score += lr.Score
		res.Moved = res.Moved || lr.Changed
		res.ReachedTarget = res.ReachedTarget || lr.ReachedTarget

		for k, c := range cells {
			res.Grid.set(c, lr.Line[k])
		}
		for _, m := range lr.Moves {
			res.Moves = append(res.Moves, TileMove{From: cells[m.From], To: cells[m.To], Kind: m.Kind})
		}
	}

	if !res.Moved {
		res.Grid = g
	}

	return res, nil
}

// CanMove returns true if any direction changes the board.
func CanMove(g Grid) bool {
	if g.HasEmptyCell() {
		return true
	}
	for _, d := range Directions {
		if res, _ := Slide(g, d, 0); res.Moved {
			return true
		}
	}
	return false
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(g Grid) bool {
	return !CanMove(g)
}
