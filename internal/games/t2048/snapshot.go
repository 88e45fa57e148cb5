package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Size      int
	Target    int
	Score     int
	HighScore int
	Board     [][]int
	MaxTile   int
	CanUndo   bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		State:   StatePlaying,
	}
	if g.session == nil {
		snap.State = StateError
		return snap
	}

	s := g.session
	snap.Size = s.grid.Size()
	snap.Target = s.Target()
	snap.Score = s.Score()
	snap.HighScore = s.HighScore()
	snap.Board = s.grid.Rows()
	snap.MaxTile = s.grid.MaxTile()
	snap.CanUndo = s.CanUndo()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case s.Status() == StatusOver:
		snap.State = StateGameOver
	case g.paused:
		snap.State = StatePaused
	case s.Status() == StatusWon:
		snap.State = StateWon
	}
	return snap
}
