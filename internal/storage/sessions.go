package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no saved session has the given ID.
var ErrSessionNotFound = errors.New("storage: session not found")

// SavedSession is an unfinished game stored for later resumption.
// State is the game's own encoding; the store does not interpret it.
type SavedSession struct {
	ID        string
	GameID    string
	Score     int
	State     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveSession stores a new session and returns its generated ID.
func (s *Store) SaveSession(gameID string, score int, state []byte) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, game_id, score, state) VALUES (?, ?, ?, ?)",
		id, gameID, score, string(state),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return id, nil
}

// UpdateSession overwrites the state of an existing session.
func (s *Store) UpdateSession(id string, score int, state []byte) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET score = ?, state = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		score, string(state), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update session: %w", err)
	}
	return requireAffected(res, id)
}

// LoadSession retrieves a saved session by ID.
func (s *Store) LoadSession(id string) (*SavedSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}

	var (
		sess      SavedSession
		state     string
		createdAt any
		updatedAt any
	)
	err := s.db.QueryRow(
		`SELECT id, game_id, score, state, created_at, updated_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.GameID, &sess.Score, &state, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load session: %w", err)
	}

	sess.State = []byte(state)
	sess.CreatedAt = parseTime(createdAt)
	sess.UpdatedAt = parseTime(updatedAt)
	return &sess, nil
}

// ListSessions returns saved sessions, most recently updated first.
// An empty gameID lists sessions of every game. State is not loaded.
func (s *Store) ListSessions(gameID string) ([]SavedSession, error) {
	query := `SELECT id, game_id, score, created_at, updated_at FROM sessions`
	var args []any
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY updated_at DESC, rowid DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SavedSession
	for rows.Next() {
		var sess SavedSession
		var createdAt, updatedAt any
		if err := rows.Scan(&sess.ID, &sess.GameID, &sess.Score, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sess.UpdatedAt = parseTime(updatedAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// DeleteSession removes a saved session.
func (s *Store) DeleteSession(id string) error {
	res, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}
