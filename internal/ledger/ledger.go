// Package ledger owns the canonical in-memory expense collection and
// keeps it synchronized with a persistence adapter.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"outflow/internal/common"
	"outflow/internal/model"
	"outflow/internal/service"
)

// Ledger holds the expense collection and the active filter criteria.
// All mutation funnels through its command methods; there is exactly
// one logical writer, so no locking is needed.
type Ledger struct {
	store   service.Store
	nowFunc func() time.Time
	newID   func() string
	records []model.Expense
	filter  model.Filter
	loaded  bool
}

// New creates a ledger backed by the given store. The collection is
// empty until Load is called.
func New(store service.Store) *Ledger {
	return &Ledger{
		store:   store,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
}

// Load reads the persisted collection. Absent or unreadable data yields
// an empty collection; Load never fails. Until Load has run, mutations
// stay in memory only, so a fresh process cannot clobber durable
// storage with an empty snapshot.
func (l *Ledger) Load(ctx context.Context) {
	l.records = l.store.LoadAll(ctx)
	l.loaded = true
}

// Add validates the draft, assigns an identifier and creation
// timestamp, appends the record, and persists the collection.
func (l *Ledger) Add(ctx context.Context, draft model.Draft) (model.Expense, error) {
	if errs := draft.Validate(); errs != nil {
		return model.Expense{}, errs
	}

	expense := model.Expense{
		ID:          l.newID(),
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        draft.Date,
		CreatedAt:   l.nowFunc().UTC(),
	}

	l.records = append(l.records, expense)
	l.persist(ctx)

	return expense, nil
}

// Update replaces the record with a matching identifier. An unknown
// identifier is reported as common.ErrNotFound and leaves the
// collection untouched.
func (l *Ledger) Update(ctx context.Context, expense model.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	for i := range l.records {
		if l.records[i].ID == expense.ID {
			l.records[i] = expense
			l.persist(ctx)
			return nil
		}
	}

	return fmt.Errorf("expense %s: %w", expense.ID, common.ErrNotFound)
}

// Remove deletes the record with a matching identifier. Removing an
// unknown identifier is a silent no-op, keeping the command idempotent.
func (l *Ledger) Remove(ctx context.Context, id string) {
	for i := range l.records {
		if l.records[i].ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			l.persist(ctx)
			return
		}
	}
}

// Get returns the record with the given identifier.
func (l *Ledger) Get(id string) (model.Expense, bool) {
	for _, e := range l.records {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}

// SetFilter replaces the active filter criteria. Filters are ephemeral
// and never persisted.
func (l *Ledger) SetFilter(f model.Filter) {
	l.filter = f
}

// ClearFilter resets the active filter criteria.
func (l *Ledger) ClearFilter() {
	l.filter = model.Filter{}
}

// Filter returns the active filter criteria.
func (l *Ledger) Filter() model.Filter {
	return l.filter
}

// Records returns a snapshot copy of the collection.
func (l *Ledger) Records() []model.Expense {
	return append([]model.Expense(nil), l.records...)
}

// persist writes the full collection through the store. Write failures
// are logged and never roll back the in-memory mutation: for the
// running session, memory is the source of truth.
func (l *Ledger) persist(ctx context.Context) {
	if !l.loaded {
		return
	}
	if err := l.store.SaveAll(ctx, l.records); err != nil {
		common.LogError(err, "Failed to persist expenses", common.Fields{"count": len(l.records)})
	}
}
