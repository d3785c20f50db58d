package model

import "strings"

// Filter holds the active filter criteria for display views.
// Fields are pointers (or blank for Search) to distinguish "not set"
// from zero values; an unset field places no constraint on that
// dimension. Start and End together define an inclusive date interval.
type Filter struct {
	Category *Category
	Start    *Date
	End      *Date
	Search   string
}

// IsZero reports whether no criteria are set.
func (f Filter) IsZero() bool {
	return f.Category == nil && f.Start == nil && f.End == nil && strings.TrimSpace(f.Search) == ""
}

// MatchesCategory reports whether the expense passes the category constraint.
func (f Filter) MatchesCategory(e Expense) bool {
	return f.Category == nil || e.Category == *f.Category
}

// MatchesDate reports whether the expense date falls inside the
// inclusive [Start, End] interval; either bound may be open.
func (f Filter) MatchesDate(e Expense) bool {
	if f.Start != nil && e.Date.Before(*f.Start) {
		return false
	}
	if f.End != nil && e.Date.After(*f.End) {
		return false
	}
	return true
}

// MatchesSearch reports whether the search term, if set, appears in the
// description or category, ignoring case.
func (f Filter) MatchesSearch(e Expense) bool {
	term := strings.TrimSpace(f.Search)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Description), term) ||
		strings.Contains(strings.ToLower(string(e.Category)), term)
}

// Matches reports whether the expense passes every active constraint.
// Constraints are independent predicates ANDed together.
func (f Filter) Matches(e Expense) bool {
	return f.MatchesCategory(e) && f.MatchesDate(e) && f.MatchesSearch(e)
}
