// Package storage keeps a ledger of the rounds played during one session.
// The ledger is an in-memory SQLite database (pure-Go modernc.org/sqlite
// driver), so nothing outlives the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded for a round.
const (
	EndCollision = "collision"
	EndQuit      = "quit"
)

// Store manages the session ledger.
type Store struct {
	db        *sql.DB
	sessionID string
}

// Round is one finished round of play.
type Round struct {
	ID        string
	SessionID string
	GameID    string
	Score     int
	Length    int
	Ticks     uint64
	EndReason string
	EndedAt   time.Time
}

// SessionStats contains aggregated statistics for the session.
type SessionStats struct {
	Rounds     int
	Best       int
	AvgScore   float64
	TotalScore int64
}

// Open creates an empty in-memory ledger for a new session.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" gets its own database; pin the pool to one.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, sessionID: uuid.NewString()}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SessionID returns the identifier shared by every round of this session.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Close releases the database. The ledger is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRound adds a finished round and returns its ID.
// Missing ID and EndedAt are filled in.
func (s *Store) RecordRound(r Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	if r.Score < 0 {
		return "", errors.New("storage: negative score")
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, session_id, game_id, score, length, ticks, end_reason, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, s.sessionID, r.GameID, r.Score, r.Length, int64(r.Ticks), r.EndReason, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record round: %w", err)
	}
	return r.ID, nil
}

// Rounds returns every recorded round in the order they ended.
func (s *Store) Rounds() ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, game_id, score, length, ticks, end_reason, ended_at
		 FROM rounds
		 ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var ticks, endedAt int64
		if err := rows.Scan(&r.ID, &r.SessionID, &r.GameID, &r.Score, &r.Length, &ticks, &r.EndReason, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.EndedAt = time.UnixMilli(endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// Stats returns aggregated statistics for the session.
func (s *Store) Stats() (SessionStats, error) {
	var st SessionStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.Best, &st.AvgScore, &st.TotalScore)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	return st, nil
}
