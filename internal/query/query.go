// Package query computes filtered views and aggregate statistics over a
// snapshot of the expense collection. Everything here is pure: inputs
// are never mutated and no state is carried between calls.
package query

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"outflow/internal/model"
)

// ApplyFilter returns the records passing every active constraint,
// sorted by date descending. The sort is stable, so records on the same
// day keep their original collection order. Filtering an already
// filtered result with the same criteria returns the same result.
func ApplyFilter(records []model.Expense, f model.Filter) []model.Expense {
	out := make([]model.Expense, 0, len(records))
	for _, e := range records {
		if f.Matches(e) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})

	return out
}

// Stats aggregates spending across the whole collection. Stats are
// always global and independent of any active filter.
type Stats struct {
	CategoryTotals map[model.Category]decimal.Decimal
	CategoryOrder  []model.Category
	TopCategory    model.Category
	TotalSpending  decimal.Decimal
	MonthSpending  decimal.Decimal
	Count          int
}

// ComputeStats aggregates the unfiltered collection. MonthSpending sums
// records dated within the calendar month of now, bounds inclusive.
// CategoryOrder lists categories with at least one record, in
// first-encountered order; TopCategory is the category with the highest
// total, ties going to the earlier-encountered one. An empty collection
// yields zero sums and the CategoryNone sentinel.
func ComputeStats(records []model.Expense, now time.Time) Stats {
	stats := Stats{
		CategoryTotals: make(map[model.Category]decimal.Decimal),
		TopCategory:    model.CategoryNone,
		TotalSpending:  decimal.Zero,
		MonthSpending:  decimal.Zero,
		Count:          len(records),
	}

	monthStart := model.NewDate(now.Year(), now.Month(), 1)
	monthEnd := model.DateOf(monthStart.Time().AddDate(0, 1, -1))

	for _, e := range records {
		stats.TotalSpending = stats.TotalSpending.Add(e.Amount)

		if !e.Date.Before(monthStart) && !e.Date.After(monthEnd) {
			stats.MonthSpending = stats.MonthSpending.Add(e.Amount)
		}

		if _, seen := stats.CategoryTotals[e.Category]; !seen {
			stats.CategoryOrder = append(stats.CategoryOrder, e.Category)
		}
		stats.CategoryTotals[e.Category] = stats.CategoryTotals[e.Category].Add(e.Amount)
	}

	top := decimal.Zero
	for _, c := range stats.CategoryOrder {
		if total := stats.CategoryTotals[c]; total.GreaterThan(top) {
			top = total
			stats.TopCategory = c
		}
	}

	return stats
}

// CategoryShare returns a category's percentage of total spending,
// guarding against a zero total.
func CategoryShare(stats Stats, c model.Category) decimal.Decimal {
	if stats.TotalSpending.IsZero() {
		return decimal.Zero
	}
	total, ok := stats.CategoryTotals[c]
	if !ok {
		return decimal.Zero
	}
	return total.Mul(decimal.NewFromInt(100)).Div(stats.TotalSpending)
}
