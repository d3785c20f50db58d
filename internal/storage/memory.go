package storage

import (
	"context"
	"errors"

	"outflow/internal/model"
)

// ErrWriteFailed is returned by a MemoryStore configured to fail writes.
var ErrWriteFailed = errors.New("simulated write failure")

// MemoryStore is an in-memory Store used in tests and dry runs. It
// records how often SaveAll was called and can simulate write failures.
type MemoryStore struct {
	snapshot  []model.Expense
	SaveCalls int
	FailWrite bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates an in-memory store pre-seeded with a collection.
func NewMemoryStoreWith(expenses []model.Expense) *MemoryStore {
	s := &MemoryStore{}
	s.snapshot = append(s.snapshot, expenses...)
	return s
}

// SaveAll replaces the held snapshot with a copy of the collection.
func (s *MemoryStore) SaveAll(_ context.Context, expenses []model.Expense) error {
	s.SaveCalls++
	if s.FailWrite {
		return ErrWriteFailed
	}
	s.snapshot = append([]model.Expense(nil), expenses...)
	return nil
}

// LoadAll returns a copy of the held snapshot.
func (s *MemoryStore) LoadAll(_ context.Context) []model.Expense {
	return append([]model.Expense(nil), s.snapshot...)
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error {
	return nil
}
