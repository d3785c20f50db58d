// Package model defines the core domain types for the expense tracker.
package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded spending event. Expenses are
// immutable by replacement: edits swap the whole record, keyed by ID.
type Expense struct {
	CreatedAt   time.Time       `json:"createdAt"`
	Date        Date            `json:"date"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// Validate checks the record's invariants: non-empty ID, positive amount,
// known category, non-blank description, and a real date.
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	draft := Draft{
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
	}
	if errs := draft.Validate(); errs != nil {
		return errs
	}
	return nil
}

// Draft carries the user-supplied fields of an expense before the store
// assigns an ID and creation timestamp.
type Draft struct {
	Date        Date
	Description string
	Category    Category
	Amount      decimal.Decimal
}

// FieldError describes a validation failure on a single field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates per-field validation failures. It is
// returned as a value for callers to render next to the offending
// inputs; it never mutates the collection.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Validate returns the field-level problems with the draft, or nil when
// the draft is acceptable.
func (d *Draft) Validate() ValidationErrors {
	var errs ValidationErrors
	if !d.Amount.IsPositive() {
		errs = append(errs, FieldError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if d.Category == CategoryNone {
		errs = append(errs, FieldError{Field: "category", Message: "category is required"})
	} else if !d.Category.Valid() {
		errs = append(errs, FieldError{Field: "category", Message: "unknown category " + string(d.Category)})
	}
	if strings.TrimSpace(d.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}
	if d.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}
	return errs
}
