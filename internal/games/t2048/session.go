package t2048

import (
	"fmt"
	"math/rand"
	"time"
)

// Session defaults.
const (
	DefaultTarget       = 2048
	DefaultInitialTiles = 2
)

// Status is the externally visible state of a session.
type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusOver   Status = "over"
)

// Hooks are side effects the session triggers but does not implement
// (sound, vibration, high score persistence). Nil hooks are skipped.
type Hooks struct {
	OnSuccessfulMove   func()
	OnFailedMove       func()
	OnHighScoreUpdated func(highScore int)
}

func (h Hooks) successfulMove() {
	if h.OnSuccessfulMove != nil {
		h.OnSuccessfulMove()
	}
}

func (h Hooks) failedMove() {
	if h.OnFailedMove != nil {
		h.OnFailedMove()
	}
}

func (h Hooks) highScoreUpdated(score int) {
	if h.OnHighScoreUpdated != nil {
		h.OnHighScoreUpdated(score)
	}
}

// Options configures a new or restored session. Zero values pick the
// defaults: 4x4 board, target 2048, random policy with a 50% chance of 4,
// two initial tiles and a time-seeded random source. A nil Spawn4Prob
// means the default; a pointer to 0 means 4s never spawn.
type Options struct {
	Size         int
	Target       int
	AllowUndo    bool
	Policy       TilePolicy
	Spawn4Prob   *float64
	InitialTiles int
	HighScore    int
	Rand         RandomSource
	Hooks        Hooks
}

func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = DefaultGridSize
	}
	if o.Target == 0 {
		o.Target = DefaultTarget
	}
	if o.Policy == "" {
		o.Policy = PolicyRandom
	}
	if o.Spawn4Prob == nil {
		p := DefaultSpawn4Prob
		o.Spawn4Prob = &p
	}
	if o.InitialTiles <= 0 {
		o.InitialTiles = DefaultInitialTiles
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// MoveResult reports the effect of a single Move call.
type MoveResult struct {
	Moved            bool
	ScoreGained      int
	ReachedTargetNow bool // first time the target tile appeared
	GameOverNow      bool // this move left no legal moves
	Spawned          *Tile
}

// undoState is the pre-move snapshot kept for single-step undo.
type undoState struct {
	grid  Grid
	score int
	ids   []int
}

// Session owns one game: current grid, score, win flag and the undo
// snapshot. It is not safe for concurrent use.
type Session struct {
	grid      Grid
	prev      *undoState
	score     int
	highScore int
	target    int
	allowUndo bool
	won       bool
	spawner   *Spawner
	tracker   *TileTracker
	hooks     Hooks
}

func newSession(opts Options) (*Session, error) {
	if opts.Target < 4 || !isPowerOfTwo(opts.Target) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, opts.Target)
	}
	spawner, err := NewSpawner(opts.Rand, opts.Policy, *opts.Spawn4Prob)
	if err != nil {
		return nil, err
	}
	return &Session{
		highScore: opts.HighScore,
		target:    opts.Target,
		allowUndo: opts.AllowUndo,
		spawner:   spawner,
		hooks:     opts.Hooks,
	}, nil
}

// NewSession creates a game with an empty board seeded with the initial
// tiles.
func NewSession(opts Options) (*Session, error) {
	opts = opts.withDefaults()
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(opts.Size)
	if err != nil {
		return nil, err
	}
	s.grid = grid
	s.tracker = NewTileTracker(grid)

	for range opts.InitialTiles {
		if cell, _, ok := s.spawner.Spawn(&s.grid); ok {
			s.tracker.Place(cell)
		}
	}

	return s, nil
}

// Move slides the board. A move that changes nothing leaves the session
// untouched and only fires OnFailedMove.
func (s *Session) Move(dir Direction) (MoveResult, error) {
	res, err := Slide(s.grid, dir, s.target)
	if err != nil {
		return MoveResult{}, err
	}

	if !res.Moved {
		s.hooks.failedMove()
		return MoveResult{}, nil
	}

	if s.allowUndo {
		s.prev = &undoState{grid: s.grid, score: s.score, ids: s.tracker.snapshot()}
	}

	s.grid = res.Grid
	s.tracker.Apply(res.Moves)
	s.score += res.Score
	if s.score > s.highScore {
		s.highScore = s.score
		s.hooks.highScoreUpdated(s.highScore)
	}

	out := MoveResult{Moved: true, ScoreGained: res.Score}

	if cell, value, ok := s.spawner.Spawn(&s.grid); ok {
		id := s.tracker.Place(cell)
		out.Spawned = &Tile{ID: id, Value: value, Row: cell.Row, Col: cell.Col, New: true}
	}

	if res.ReachedTarget && !s.won {
		s.won = true
		out.ReachedTargetNow = true
	}
	out.GameOverNow = IsGameOver(s.grid)

	s.hooks.successfulMove()
	return out, nil
}

// Undo restores the grid and score from before the last accepted move.
// Only one step is kept; it returns false when nothing can be undone.
// The win flag is sticky and survives an undo.
func (s *Session) Undo() bool {
	if s.prev == nil {
		return false
	}
	s.grid = s.prev.grid
	s.score = s.prev.score
	s.tracker.restore(s.prev.ids)
	s.prev = nil
	return true
}

// Status derives the session state. Game over takes precedence over won.
func (s *Session) Status() Status {
	switch {
	case IsGameOver(s.grid):
		return StatusOver
	case s.won:
		return StatusWon
	default:
		return StatusActive
	}
}

// Grid returns a copy of the current board.
func (s *Session) Grid() Grid {
	return s.grid.Clone()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Target returns the winning tile value.
func (s *Session) Target() int {
	return s.target
}

// Won reports whether the target tile has ever been reached.
func (s *Session) Won() bool {
	return s.won
}

// GameOver reports whether no direction can move.
func (s *Session) GameOver() bool {
	return IsGameOver(s.grid)
}

// AllowUndo reports whether undo snapshots are recorded.
func (s *Session) AllowUndo() bool {
	return s.allowUndo
}

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool {
	return s.prev != nil
}

// Policy returns the new-tile policy.
func (s *Session) Policy() TilePolicy {
	return s.spawner.Policy()
}

// Tiles returns the current tiles with their identities.
func (s *Session) Tiles() []Tile {
	return s.tracker.Tiles(s.grid)
}
