// Package storage keeps the session scoreboard in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the board is gone when the
// process exits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory database holding finished rounds.
type Store struct {
	db *sql.DB
}

// RoundResult is one finished round.
type RoundResult struct {
	ID         int64
	Score      int
	Level      int
	Eaten      int
	Difficulty string
	Duration   time.Duration
	EndedAt    time.Time
}

// SessionStats aggregates all rounds of the session.
type SessionStats struct {
	Rounds     int
	BestScore  int
	BestLevel  int
	AvgScore   float64
	TotalEaten int
	LastPlayed time.Time
}

// Open creates an empty in-memory scoreboard.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			eaten INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
// A zero EndedAt is replaced by the current time.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO rounds (score, level, eaten, difficulty, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, r.Level, r.Eaten, r.Difficulty, r.Duration.Milliseconds(), r.EndedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRounds returns the best rounds, highest score first. Equal scores keep
// the order they were played in.
func (s *Store) TopRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT id, score, level, eaten, difficulty, duration_ms, ended_at
		 FROM rounds
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRounds returns the latest rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT id, score, level, eaten, difficulty, duration_ms, ended_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundResult
	for rows.Next() {
		var r RoundResult
		var durationMS, endedAt int64
		if err := rows.Scan(&r.ID, &r.Score, &r.Level, &r.Eaten, &r.Difficulty, &durationMS, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.EndedAt = time.Unix(0, endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// Stats aggregates the session.
func (s *Store) Stats() (SessionStats, error) {
	var st SessionStats
	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(eaten), 0), MAX(ended_at)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.BestScore, &st.BestLevel, &st.AvgScore, &st.TotalEaten, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return SessionStats{}, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	if lastPlayed.Valid {
		st.LastPlayed = time.Unix(0, lastPlayed.Int64)
	}
	return st, nil
}

// Clear deletes every round.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
