package model

import "fmt"

// Category is a spending category. The set is closed: expenses always
// carry exactly one of the values below.
type Category string

const (
	// CategoryFood covers groceries, restaurants, and takeout.
	CategoryFood Category = "Food"
	// CategoryTransportation covers fuel, transit, parking, and rideshares.
	CategoryTransportation Category = "Transportation"
	// CategoryEntertainment covers leisure spending.
	CategoryEntertainment Category = "Entertainment"
	// CategoryShopping covers retail purchases.
	CategoryShopping Category = "Shopping"
	// CategoryBills covers recurring obligations like rent and utilities.
	CategoryBills Category = "Bills"
	// CategoryOther is the catch-all for everything else.
	CategoryOther Category = "Other"
)

// CategoryNone is the sentinel for "no category", reported by stats when
// the collection is empty. It is not a valid expense category.
const CategoryNone Category = ""

// Categories returns all valid categories in canonical display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBills,
		CategoryOther,
	}
}

// ParseCategory converts a string to a Category, rejecting anything
// outside the fixed set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category %q", s)
}

// Valid reports whether the category is a member of the fixed set.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) String() string {
	return string(c)
}
