package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"outflow/internal/model"
)

// FileStore persists the collection as a single JSON document on disk.
// This is the default backend.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) (*FileStore, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStore{path: path}, nil
}

// SaveAll overwrites the slot with the full collection. The write goes
// through a temp file and rename so a crash mid-write cannot leave a
// truncated document behind.
func (s *FileStore) SaveAll(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := encodeExpenses(expenses)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write expenses file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace expenses file: %w", err)
	}

	return nil
}

// LoadAll reads the slot back. A missing or unreadable file yields an
// empty collection; the failure is logged, never returned.
func (s *FileStore) LoadAll(ctx context.Context) []model.Expense {
	if err := validateContext(ctx); err != nil {
		return []model.Expense{}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Failed to read expenses file", "path", s.path, "error", err)
		}
		return []model.Expense{}
	}

	expenses, err := decodeExpenses(data)
	if err != nil {
		slog.Error("Failed to decode expenses file", "path", s.path, "error", err)
		return []model.Expense{}
	}

	return expenses
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}
