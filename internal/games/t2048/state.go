package t2048

import (
	"encoding/json"
	"fmt"
)

// State is the persisted form of a session. Game over is never stored;
// it is recomputed from the cells on load.
type State struct {
	Size          int        `json:"size"`
	Cells         [][]int    `json:"cells"`
	Score         int        `json:"score"`
	Won           bool       `json:"won"`
	AllowUndo     bool       `json:"allow_undo"`
	Target        int        `json:"target"`
	Policy        TilePolicy `json:"policy"`
	Previous      [][]int    `json:"previous,omitempty"`
	PreviousScore int        `json:"previous_score,omitempty"`
}

// Serialize captures the session for persistence.
func (s *Session) Serialize() State {
	st := State{
		Size:      s.grid.size,
		Cells:     s.grid.Rows(),
		Score:     s.score,
		Won:       s.won,
		AllowUndo: s.allowUndo,
		Target:    s.target,
		Policy:    s.spawner.Policy(),
	}
	if s.prev != nil {
		st.Previous = s.prev.grid.Rows()
		st.PreviousScore = s.prev.score
	}
	return st
}

// LoadSession rebuilds a session from persisted state. Board shape, target,
// policy and undo setting come from st; the random source, hooks, spawn
// probability and high score come from opts. Cells that break the
// power-of-two invariant are rejected with ErrCorruptState rather than
// coerced. Won is re-derived: it holds if it was stored or if the board
// already carries a tile at or above the target.
func LoadSession(st State, opts Options) (*Session, error) {
	if st.Size != len(st.Cells) {
		return nil, fmt.Errorf("%w: size %d but %d rows", ErrCorruptState, st.Size, len(st.Cells))
	}
	if st.Score < 0 || st.PreviousScore < 0 {
		return nil, fmt.Errorf("%w: negative score", ErrCorruptState)
	}

	grid, err := GridFromRows(st.Cells)
	if err != nil {
		return nil, err
	}

	opts.Size = st.Size
	opts.Target = st.Target
	opts.Policy = st.Policy
	opts.AllowUndo = st.AllowUndo
	opts = opts.withDefaults()

	s, err := newSession(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}

	s.grid = grid
	s.score = st.Score
	s.won = st.Won || grid.MaxTile() >= s.target
	s.tracker = NewTileTracker(grid)
	if s.score > s.highScore {
		s.highScore = s.score
	}

	if st.AllowUndo && st.Previous != nil {
		prev, err := GridFromRows(st.Previous)
		if err != nil {
			return nil, fmt.Errorf("previous grid: %w", err)
		}
		if prev.size != grid.size {
			return nil, fmt.Errorf("%w: previous grid is %dx%d", ErrCorruptState, prev.size, prev.size)
		}
		// Previous tiles get their own identities; they never share IDs
		// with the current board after an undo.
		prevTracker := NewTileTracker(prev)
		ids := prevTracker.snapshot()
		for i, id := range ids {
			if id != 0 {
				ids[i] = id + s.tracker.nextID
			}
		}
		s.tracker.nextID += prevTracker.nextID
		s.prev = &undoState{grid: prev, score: st.PreviousScore, ids: ids}
	}

	return s, nil
}

// MarshalState encodes a state as JSON.
func MarshalState(st State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("t2048: encode state: %w", err)
	}
	return data, nil
}

// UnmarshalState decodes JSON produced by MarshalState.
func UnmarshalState(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	return st, nil
}
