package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"outflow/internal/model"
)

// slotName keys the single durable slot holding the collection.
const slotName = "expenses"

// SQLiteStore persists the collection in a one-row slot table inside a
// SQLite database. The payload is the same JSON document the file
// backend writes; SQLite just provides the durable slot.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite-backed store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create slots table: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// SaveAll overwrites the slot with the full collection.
func (s *SQLiteStore) SaveAll(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := encodeExpenses(expenses)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, slotName, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}

	return nil
}

// LoadAll reads the slot back. An absent or undecodable slot yields an
// empty collection; the failure is logged, never returned.
func (s *SQLiteStore) LoadAll(ctx context.Context) []model.Expense {
	if err := validateContext(ctx); err != nil {
		return []model.Expense{}
	}

	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM slots WHERE name = ?`, slotName).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("Failed to read slot", "db", s.dbPath, "error", err)
		}
		return []model.Expense{}
	}

	expenses, err := decodeExpenses([]byte(payload))
	if err != nil {
		slog.Error("Failed to decode slot", "db", s.dbPath, "error", err)
		return []model.Expense{}
	}

	return expenses
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
