package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outflow/internal/model"
)

func ptr[T any](v T) *T { return &v }

func expense(id string, amount string, category model.Category, date string) model.Expense {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Expense{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: string(category) + " purchase",
		Date:        d,
	}
}

// The worked scenario: two Food records and one Bills record across
// January and February 2024.
func scenario() []model.Expense {
	return []model.Expense{
		expense("1", "50", model.CategoryFood, "2024-01-15"),
		expense("2", "30", model.CategoryFood, "2024-02-01"),
		expense("3", "20", model.CategoryBills, "2024-02-10"),
	}
}

func ids(records []model.Expense) []string {
	out := make([]string, len(records))
	for i, e := range records {
		out[i] = e.ID
	}
	return out
}

func TestApplyFilterScenario(t *testing.T) {
	records := scenario()

	byCategory := ApplyFilter(records, model.Filter{Category: ptr(model.CategoryFood)})
	assert.Equal(t, []string{"2", "1"}, ids(byCategory))

	byStart := ApplyFilter(records, model.Filter{Start: ptr(model.NewDate(2024, time.February, 1))})
	assert.Equal(t, []string{"3", "2"}, ids(byStart))

	all := ApplyFilter(records, model.Filter{})
	assert.Equal(t, []string{"3", "2", "1"}, ids(all), "sorted by date descending")
}

func TestApplyFilterSearchIsCaseInsensitive(t *testing.T) {
	records := []model.Expense{
		{ID: "1", Description: "Groceries", Category: model.CategoryFood, Date: model.NewDate(2024, time.January, 2)},
		{ID: "2", Description: "Cinema", Category: model.CategoryEntertainment, Date: model.NewDate(2024, time.January, 3)},
	}

	got := ApplyFilter(records, model.Filter{Search: "grocer"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Matches against category text as well.
	got = ApplyFilter(records, model.Filter{Search: "ENTERTAIN"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestApplyFilterIsIdempotent(t *testing.T) {
	f := model.Filter{
		Category: ptr(model.CategoryFood),
		Start:    ptr(model.NewDate(2024, time.January, 1)),
		Search:   "purchase",
	}

	once := ApplyFilter(scenario(), f)
	twice := ApplyFilter(once, f)
	assert.Equal(t, once, twice)
}

func TestApplyFilterStableOnEqualDates(t *testing.T) {
	records := []model.Expense{
		expense("a", "1", model.CategoryOther, "2024-03-05"),
		expense("b", "2", model.CategoryOther, "2024-03-05"),
		expense("c", "3", model.CategoryOther, "2024-03-05"),
	}

	got := ApplyFilter(records, model.Filter{})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got), "ties keep collection order")
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	records := scenario()
	ApplyFilter(records, model.Filter{})
	assert.Equal(t, []string{"1", "2", "3"}, ids(records))
}

func TestComputeStatsScenario(t *testing.T) {
	now := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)
	stats := ComputeStats(scenario(), now)

	assert.True(t, stats.TotalSpending.Equal(decimal.NewFromInt(100)), "total = %s", stats.TotalSpending)
	assert.True(t, stats.MonthSpending.Equal(decimal.NewFromInt(50)), "month = %s", stats.MonthSpending)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, model.CategoryFood, stats.TopCategory)

	require.Len(t, stats.CategoryTotals, 2)
	assert.True(t, stats.CategoryTotals[model.CategoryFood].Equal(decimal.NewFromInt(80)))
	assert.True(t, stats.CategoryTotals[model.CategoryBills].Equal(decimal.NewFromInt(20)))
	assert.Equal(t, []model.Category{model.CategoryFood, model.CategoryBills}, stats.CategoryOrder)
}

func TestComputeStatsEmptyCollection(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	assert.True(t, stats.TotalSpending.IsZero())
	assert.True(t, stats.MonthSpending.IsZero())
	assert.Zero(t, stats.Count)
	assert.Empty(t, stats.CategoryTotals)
	assert.Equal(t, model.CategoryNone, stats.TopCategory)

	// No division by zero on share computation either.
	assert.True(t, CategoryShare(stats, model.CategoryFood).IsZero())
}

func TestComputeStatsCategoryTotalsSumToTotal(t *testing.T) {
	records := []model.Expense{
		expense("1", "19.99", model.CategoryShopping, "2024-04-01"),
		expense("2", "0.01", model.CategoryFood, "2024-04-02"),
		expense("3", "33.33", model.CategoryShopping, "2024-04-03"),
		expense("4", "46.67", model.CategoryBills, "2024-04-04"),
	}

	stats := ComputeStats(records, time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))

	sum := decimal.Zero
	for _, total := range stats.CategoryTotals {
		sum = sum.Add(total)
	}
	assert.True(t, sum.Equal(stats.TotalSpending), "category totals %s != total %s", sum, stats.TotalSpending)
}

func TestComputeStatsTopCategoryTieGoesToFirstEncountered(t *testing.T) {
	records := []model.Expense{
		expense("1", "40", model.CategoryShopping, "2024-05-01"),
		expense("2", "40", model.CategoryFood, "2024-05-02"),
	}

	stats := ComputeStats(records, time.Now())
	assert.Equal(t, model.CategoryShopping, stats.TopCategory)
}

func TestComputeStatsMonthBoundsInclusive(t *testing.T) {
	records := []model.Expense{
		expense("first", "1", model.CategoryOther, "2024-02-01"),
		expense("last", "2", model.CategoryOther, "2024-02-29"),
		expense("before", "4", model.CategoryOther, "2024-01-31"),
		expense("after", "8", model.CategoryOther, "2024-03-01"),
	}

	now := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	stats := ComputeStats(records, now)
	assert.True(t, stats.MonthSpending.Equal(decimal.NewFromInt(3)), "month = %s", stats.MonthSpending)
}

func TestCategoryShare(t *testing.T) {
	stats := ComputeStats(scenario(), time.Now())

	assert.True(t, CategoryShare(stats, model.CategoryFood).Equal(decimal.NewFromInt(80)))
	assert.True(t, CategoryShare(stats, model.CategoryBills).Equal(decimal.NewFromInt(20)))
	assert.True(t, CategoryShare(stats, model.CategoryShopping).IsZero())
}
