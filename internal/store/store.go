// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tasbih/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the counter record and the daily journal.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS daily_tallies (
			day TEXT NOT NULL,
			dhikr TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (day, dhikr)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_tallies_day ON daily_tallies(day);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored under key. The boolean is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set overwrites the value stored under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// AddTally adds n increments of dhikr to the given day (YYYY-MM-DD).
func (s *Store) AddTally(ctx context.Context, day, dhikr string, n int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_tallies (day, dhikr, count) VALUES (?, ?, ?)
		 ON CONFLICT(day, dhikr) DO UPDATE SET count = count + excluded.count`,
		day, dhikr, n)
	return err
}

// ListDailyTallies returns tallies on or after since (YYYY-MM-DD), oldest day first.
// An empty since returns every row.
func (s *Store) ListDailyTallies(ctx context.Context, since string) ([]model.DailyTally, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day, dhikr, count FROM daily_tallies
		 WHERE (? = '' OR day >= ?)
		 ORDER BY day ASC, count DESC, dhikr ASC`, since, since)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.DailyTally
	for rows.Next() {
		var tally model.DailyTally
		if err := rows.Scan(&tally.Day, &tally.Dhikr, &tally.Count); err != nil {
			return nil, err
		}
		result = append(result, tally)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
