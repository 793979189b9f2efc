package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using a small key-value table in SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLiteStore with the given database path.
// It creates the parent directories and the schema automatically.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(
		"CREATE TABLE IF NOT EXISTS session_kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)",
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadSession reads both entries. A session missing either entry is reported
// as absent.
func (s *SQLiteStore) LoadSession(ctx context.Context) (Session, bool, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, value FROM session_kv WHERE key IN (?, ?)",
		KeyAuthToken, KeyUserID,
	)
	if err != nil {
		return Session{}, false, fmt.Errorf("failed to read session: %w", err)
	}
	defer rows.Close()

	var sess Session
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Session{}, false, fmt.Errorf("failed to scan session entry: %w", err)
		}
		switch key {
		case KeyAuthToken:
			sess.Token = value
		case KeyUserID:
			sess.UserID = value
		}
	}
	if err := rows.Err(); err != nil {
		return Session{}, false, fmt.Errorf("failed to iterate session entries: %w", err)
	}

	if sess.Token == "" || sess.UserID == "" {
		return Session{}, false, nil
	}
	return sess, true, nil
}

// SaveSession writes both entries in one transaction.
func (s *SQLiteStore) SaveSession(ctx context.Context, sess Session) error {
	if sess.Token == "" || sess.UserID == "" {
		return fmt.Errorf("refusing to save partial session (token present: %t, user id present: %t)",
			sess.Token != "", sess.UserID != "")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		KeyAuthToken: sess.Token,
		KeyUserID:    sess.UserID,
	} {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO session_kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		); err != nil {
			return fmt.Errorf("failed to write session entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

// ClearSession deletes both entries. Idempotent.
func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM session_kv WHERE key IN (?, ?)",
		KeyAuthToken, KeyUserID,
	); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
