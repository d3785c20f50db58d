// Package storage provides the persistence adapters for the expense collection.
//
// Every adapter writes the collection as one JSON document into a single
// durable slot and reads it back whole; there are no incremental writes.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"outflow/internal/model"
)

func init() {
	// The persisted layout stores amounts as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// encodeExpenses serializes the collection for the durable slot.
func encodeExpenses(expenses []model.Expense) ([]byte, error) {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return nil, fmt.Errorf("failed to encode expenses: %w", err)
	}
	return data, nil
}

// decodeExpenses deserializes a slot payload back into a collection.
func decodeExpenses(data []byte) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return expenses, nil
}
