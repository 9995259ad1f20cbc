// Package storage keeps board snapshots and a journal of attempted moves in
// a SQLite database.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/LIAMBB/figure-moves/components"
)

var ErrStateNotFound = errors.New("board state not found")

const schema = `
	CREATE TABLE IF NOT EXISTS board_states (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		state TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS move_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		state_id INTEGER NOT NULL,
		kind TEXT NOT NULL,
		from_x INTEGER NOT NULL,
		from_y INTEGER NOT NULL,
		to_x INTEGER NOT NULL,
		to_y INTEGER NOT NULL,
		accepted INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY(state_id) REFERENCES board_states(id)
	);
	CREATE INDEX IF NOT EXISTS idx_move_log_state
	ON move_log(state_id);
`

// MoveRecord is one attempted move as stored in the journal.
type MoveRecord struct {
	ID       int64
	StateID  int64
	Kind     string
	From     components.Coordinates
	To       components.Coordinates
	Accepted bool
	At       time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and makes sure the
// tables exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := &Store{db: db}
	if err := store.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Init creates the tables. It is safe to call more than once.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBoardState stores snapshot and returns its id. Saving a state that is
// already stored returns the existing id.
func (s *Store) SaveBoardState(snapshot components.Snapshot) (int64, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("failed to encode board state: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op once committed

	var id int64
	err = tx.QueryRow("SELECT id FROM board_states WHERE state = ?", string(data)).Scan(&id)
	switch {
	case err == nil:
		return id, tx.Commit()
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("failed to look up board state: %w", err)
	}

	result, err := tx.Exec("INSERT INTO board_states (state) VALUES (?)", string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to store board state: %w", err)
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read board state id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// BoardState loads the snapshot stored under id.
func (s *Store) BoardState(id int64) (components.Snapshot, error) {
	var data string
	err := s.db.QueryRow("SELECT state FROM board_states WHERE id = ?", id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return components.Snapshot{}, fmt.Errorf("%w: id %d", ErrStateNotFound, id)
	}
	if err != nil {
		return components.Snapshot{}, fmt.Errorf("failed to query board state: %w", err)
	}

	var snapshot components.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return components.Snapshot{}, fmt.Errorf("failed to decode board state %d: %w", id, err)
	}
	return snapshot, nil
}

// RecordMove appends an attempted move to the journal of the given state.
func (s *Store) RecordMove(stateID int64, kind components.Kind, from, to components.Coordinates, accepted bool) error {
	_, err := s.db.Exec(`
		INSERT INTO move_log (state_id, kind, from_x, from_y, to_x, to_y, accepted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stateID, kind.String(), from.X, from.Y, to.X, to.Y, accepted, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}
	return nil
}

// Moves returns the journal of a state, oldest first.
func (s *Store) Moves(stateID int64) ([]MoveRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, state_id, kind, from_x, from_y, to_x, to_y, accepted, created_at
		FROM move_log
		WHERE state_id = ?
		ORDER BY id
	`, stateID)
	if err != nil {
		return nil, fmt.Errorf("error querying moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var record MoveRecord
		if err := rows.Scan(&record.ID, &record.StateID, &record.Kind,
			&record.From.X, &record.From.Y, &record.To.X, &record.To.Y,
			&record.Accepted, &record.At); err != nil {
			return nil, fmt.Errorf("error scanning move: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over moves: %w", err)
	}
	return records, nil
}
