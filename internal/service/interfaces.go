// Package service defines the interfaces between the ledger and its collaborators.
package service

import (
	"context"

	"outflow/internal/model"
)

// Store is the contract for the persistence layer. The unit of
// persistence is always the whole collection: SaveAll overwrites the
// single durable slot with a full snapshot, and LoadAll reads it back.
//
// LoadAll never fails from the caller's perspective. An absent,
// unreadable, or undecodable slot yields an empty collection; the cause
// is logged inside the adapter. Write failures are returned so the
// caller can log them, but the in-memory state stays authoritative for
// the running session.
type Store interface {
	SaveAll(ctx context.Context, expenses []model.Expense) error
	LoadAll(ctx context.Context) []model.Expense
	Close() error
}
